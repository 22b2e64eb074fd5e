package analytics

import (
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// CalculateKeyMetrics summarises the window. Only days that have a record
// count: the average completion rate divides by active days, not by the
// window length. Streak fields are copied from the stored streak state.
func CalculateKeyMetrics(profile *models.Profile, days int, ref time.Time) models.KeyMetrics {
	if profile == nil {
		return models.KeyMetrics{}
	}

	metrics := models.KeyMetrics{
		CurrentStreak: profile.Streaks.Current,
		BestStreak:    profile.Streaks.Best,
		PerfectDays:   profile.Streaks.PerfectDays,
	}

	var rateSum float64
	completions := make(map[string]int)
	var encountered []string

	recordedDays(profile.DailyRecords, dates.Range(days, ref), func(date string, rec *models.DailyRecord) {
		metrics.ActiveDays++
		rate := rec.Rate()
		rateSum += rate

		if metrics.MostProductiveDay == nil || rate > metrics.MostProductiveDay.Rate {
			metrics.MostProductiveDay = &models.DayRate{Date: date, Rate: rate}
		}

		for _, id := range rec.ActivityIDs() {
			ar := rec.Activities[id]
			if !ar.Completed {
				continue
			}
			metrics.TotalActivitiesCompleted++
			metrics.TotalFocusedTime += ResolveDuration(ar, lookup(profile.Activities, id))

			if _, seen := completions[id]; !seen {
				encountered = append(encountered, id)
			}
			completions[id]++
		}
	})

	metrics.AverageCompletionRate = mean(rateSum, metrics.ActiveDays)
	metrics.FavoriteActivity = favoriteActivity(profile.Activities, encountered, completions)
	return metrics
}

// favoriteActivity picks the most completed activity; a later id must beat
// the current count strictly, so ties go to the first id encountered.
func favoriteActivity(catalog map[string]models.Activity, order []string, counts map[string]int) *models.FavoriteActivity {
	var fav *models.FavoriteActivity
	for _, id := range order {
		count := counts[id]
		if fav != nil && count <= fav.Count {
			continue
		}
		activity, ok := catalog[id]
		if !ok {
			continue
		}
		fav = &models.FavoriteActivity{Name: activity.Name, Count: count, Icon: activity.Icon}
	}
	return fav
}
