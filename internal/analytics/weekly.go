package analytics

import (
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// Metric names reported by CompareWeeks, in output order.
const (
	MetricAvgCompletionRate   = "Avg Completion Rate"
	MetricTotalFocusTime      = "Total Focus Time (hrs)"
	MetricActivitiesCompleted = "Activities Completed"
	MetricPerfectDays         = "Perfect Days"
)

type weekMetrics struct {
	avgCompletionRate   float64
	totalFocusedMinutes int
	activitiesCompleted int
	perfectDays         int
}

func measureWeek(records map[string]models.DailyRecord, catalog map[string]models.Activity, week []string) weekMetrics {
	var m weekMetrics
	var rateSum float64
	activeDays := 0

	recordedDays(records, week, func(_ string, rec *models.DailyRecord) {
		activeDays++
		rate := rec.Rate()
		rateSum += rate
		if rate == 100 {
			m.perfectDays++
		}
		for _, id := range rec.ActivityIDs() {
			ar := rec.Activities[id]
			if !ar.Completed {
				continue
			}
			m.activitiesCompleted++
			m.totalFocusedMinutes += ResolveDuration(ar, lookup(catalog, id))
		}
	})

	m.avgCompletionRate = mean(rateSum, activeDays)
	return m
}

// CompareWeeks compares the 7 days ending on ref's day with the 7 days before
// them.
func CompareWeeks(records map[string]models.DailyRecord, catalog map[string]models.Activity, ref time.Time) []models.WeekComparison {
	fortnight := dates.Range(14, ref)
	previous := measureWeek(records, catalog, fortnight[:7])
	current := measureWeek(records, catalog, fortnight[7:])

	return []models.WeekComparison{
		compare(MetricAvgCompletionRate, current.avgCompletionRate, previous.avgCompletionRate),
		compare(MetricTotalFocusTime, float64(current.totalFocusedMinutes)/60, float64(previous.totalFocusedMinutes)/60),
		compare(MetricActivitiesCompleted, float64(current.activitiesCompleted), float64(previous.activitiesCompleted)),
		compare(MetricPerfectDays, float64(current.perfectDays), float64(previous.perfectDays)),
	}
}

// compare computes the percentage change from previous to current. A zero
// previous value reports no change rather than an infinite one.
func compare(metric string, current, previous float64) models.WeekComparison {
	change := 0.0
	if previous > 0 {
		change = (current - previous) / previous * 100
	}

	changeType := models.ChangeNeutral
	switch {
	case change > 0:
		changeType = models.ChangeIncrease
	case change < 0:
		changeType = models.ChangeDecrease
	}

	return models.WeekComparison{
		Metric:       metric,
		CurrentWeek:  current,
		PreviousWeek: previous,
		Change:       change,
		ChangeType:   changeType,
	}
}
