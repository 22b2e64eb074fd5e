package analytics

import (
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// CompletionTrends returns one point per day of the window, oldest first.
// Unlike the averaging aggregators, a day without a record is reported as a
// 0% day so the series stays continuous.
func CompletionTrends(records map[string]models.DailyRecord, days int, ref time.Time) []models.CompletionTrendPoint {
	window := dates.Range(days, ref)
	points := make([]models.CompletionTrendPoint, 0, len(window))
	for _, date := range window {
		points = append(points, models.CompletionTrendPoint{
			Date:           date,
			CompletionRate: rateOn(records, date),
			Label:          dates.Label(date),
			DayOfWeek:      dates.DayOfWeek(date),
		})
	}
	return points
}
