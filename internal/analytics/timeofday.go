package analytics

import (
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/format"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// HoursPerDay is the number of slots returned by AnalyzeTimeOfDay.
const HoursPerDay = 24

// AnalyzeTimeOfDay buckets activity instances by the hour of the activity's
// configured start time (not its completion time). Activities without a
// start time are left out entirely. The result always holds exactly 24
// slots, hour 0 first.
func AnalyzeTimeOfDay(catalog map[string]models.Activity, records map[string]models.DailyRecord, days int, ref time.Time) []models.TimeSlot {
	var completed, total [HoursPerDay]int

	recordedDays(records, dates.Range(days, ref), func(_ string, rec *models.DailyRecord) {
		for _, id := range rec.ActivityIDs() {
			activity, ok := catalog[id]
			if !ok || !activity.StartTime.Valid || activity.StartTime.Value < 0 {
				continue
			}
			hour := activity.StartTime.Value / 60
			if hour >= HoursPerDay {
				continue
			}
			total[hour]++
			if rec.Activities[id].Completed {
				completed[hour]++
			}
		}
	})

	slots := make([]models.TimeSlot, HoursPerDay)
	for h := range slots {
		slots[h] = models.TimeSlot{
			Hour:            h,
			Label:           format.HourLabel(h),
			CompletionCount: completed[h],
			TotalCount:      total[h],
			CompletionRate:  percent(completed[h], total[h]),
		}
	}
	return slots
}
