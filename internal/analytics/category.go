package analytics

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

type categoryAcc struct {
	totalTime      int
	completedCount int
	plannedCount   int
	color          string
}

// AggregateTimeByCategory groups every recorded activity of the window by the
// catalog category of the activity. Records of activities that are no longer
// in the catalog are skipped. The result is sorted by total time, descending;
// categories with equal time keep the order in which they were first seen.
func AggregateTimeByCategory(catalog map[string]models.Activity, records map[string]models.DailyRecord, days int, ref time.Time) []models.CategoryData {
	accs := make(map[string]*categoryAcc)
	var order []string

	recordedDays(records, dates.Range(days, ref), func(_ string, rec *models.DailyRecord) {
		for _, id := range rec.ActivityIDs() {
			activity, ok := catalog[id]
			if !ok {
				continue
			}
			acc, exists := accs[activity.Category]
			if !exists {
				acc = &categoryAcc{}
				accs[activity.Category] = acc
				order = append(order, activity.Category)
			}
			if acc.color == "" {
				acc.color = activity.Color
			}

			ar := rec.Activities[id]
			if ar.Completed {
				acc.completedCount++
				acc.totalTime += ResolveDuration(ar, &activity)
			}
			if ar.Planned {
				acc.plannedCount++
			}
		}
	})

	out := make([]models.CategoryData, 0, len(order))
	for _, category := range order {
		acc := accs[category]
		color := acc.color
		if color == "" {
			color = DefaultCategoryColor
		}
		out = append(out, models.CategoryData{
			Category:       category,
			TotalTime:      acc.totalTime,
			CompletedCount: acc.completedCount,
			PlannedCount:   acc.plannedCount,
			CompletionRate: percent(acc.completedCount, acc.plannedCount),
			Color:          color,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalTime > out[j].TotalTime
	})
	return out
}
