package analytics

import (
	"sort"
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

type activityAcc struct {
	completedCount int
	plannedCount   int
	totalTime      int
	ratingSum      int
	ratingCount    int
}

// ActivityLeaderboard ranks every catalog activity recorded in the window by
// sortBy, descending. The sort is stable: activities with equal keys keep the
// order in which they were first seen, so rank numbers are reproducible.
func ActivityLeaderboard(catalog map[string]models.Activity, records map[string]models.DailyRecord, days int, ref time.Time, sortBy models.LeaderboardSort) []models.LeaderboardItem {
	accs := make(map[string]*activityAcc)
	var order []string

	recordedDays(records, dates.Range(days, ref), func(_ string, rec *models.DailyRecord) {
		for _, id := range rec.ActivityIDs() {
			acc, exists := accs[id]
			if !exists {
				acc = &activityAcc{}
				accs[id] = acc
				order = append(order, id)
			}

			ar := rec.Activities[id]
			if ar.Planned {
				acc.plannedCount++
			}
			if !ar.Completed {
				continue
			}
			acc.completedCount++
			acc.totalTime += ResolveDuration(ar, lookup(catalog, id))
			if ar.FocusRating.Valid {
				acc.ratingSum += ar.FocusRating.Value
				acc.ratingCount++
			}
		}
	})

	items := make([]models.LeaderboardItem, 0, len(order))
	for _, id := range order {
		activity, ok := catalog[id]
		if !ok {
			continue
		}
		acc := accs[id]

		var avgRating *float64
		if acc.ratingCount > 0 {
			avg := float64(acc.ratingSum) / float64(acc.ratingCount)
			avgRating = &avg
		}

		items = append(items, models.LeaderboardItem{
			ID:             id,
			Name:           activity.Name,
			Icon:           activity.Icon,
			Category:       activity.Category,
			Color:          activity.Color,
			CompletionRate: percent(acc.completedCount, acc.plannedCount),
			CompletedCount: acc.completedCount,
			PlannedCount:   acc.plannedCount,
			TotalTime:      acc.totalTime,
			AvgFocusRating: avgRating,
		})
	}

	key := leaderboardKey(sortBy)
	sort.SliceStable(items, func(i, j int) bool {
		return key(items[i]) > key(items[j])
	})
	return items
}

func leaderboardKey(sortBy models.LeaderboardSort) func(models.LeaderboardItem) float64 {
	switch sortBy {
	case models.SortByTotalTime:
		return func(it models.LeaderboardItem) float64 { return float64(it.TotalTime) }
	case models.SortByCompletedCount:
		return func(it models.LeaderboardItem) float64 { return float64(it.CompletedCount) }
	default:
		return func(it models.LeaderboardItem) float64 { return it.CompletionRate }
	}
}
