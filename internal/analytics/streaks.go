package analytics

import (
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// StreakHistory recomputes a streak counter from the rate series of the
// window for charting. A day whose rate (0 without a record) reaches goal
// extends the run, any other day resets it. The result is derived only from
// the rates and may legitimately differ from the stored streak state.
func StreakHistory(records map[string]models.DailyRecord, goal float64, days int, ref time.Time) []models.StreakHistoryPoint {
	window := dates.Range(days, ref)
	history := make([]models.StreakHistoryPoint, 0, len(window))
	streak := 0

	for _, date := range window {
		rate := rateOn(records, date)
		if rate >= goal {
			streak++
		} else {
			streak = 0
		}
		history = append(history, models.StreakHistoryPoint{
			Date:           date,
			Streak:         streak,
			CompletionRate: rate,
			IsPerfectDay:   rate == 100,
		})
	}
	return history
}
