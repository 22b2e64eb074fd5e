// Package analytics is the aggregation engine behind the dashboard.
//
// Every function is a pure, synchronous computation over an immutable
// snapshot of a profile: the activity catalog, the date-keyed daily records
// and a few scalar parameters. "Today" is never read from the host clock;
// callers pass a reference time and its calendar day ends every window.
//
// Missing data is never an error. Days without a record, ids missing from
// the catalog, empty catalogs and non-positive windows all degrade to
// zero values, empty slices or nil sentinels.
package analytics

import "github.com/JonnyWalker81/focusflow/backend/internal/models"

// DefaultCategoryColor is used when no activity of a category carries a color.
const DefaultCategoryColor = "#3B82F6"

// ResolveDuration returns the minutes a completed record contributes: the
// recorded actual duration when positive, otherwise the catalog default of
// the activity, otherwise 0 for an activity no longer in the catalog.
// Records that are not completed contribute nothing.
func ResolveDuration(rec models.ActivityRecord, activity *models.Activity) int {
	if !rec.Completed {
		return 0
	}
	if rec.ActualDuration > 0 {
		return rec.ActualDuration
	}
	if activity != nil {
		return activity.Duration
	}
	return 0
}

// percent returns part/whole*100, or 0 when whole is zero.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// mean returns sum/n, or 0 when n is zero.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func lookup(catalog map[string]models.Activity, id string) *models.Activity {
	a, ok := catalog[id]
	if !ok {
		return nil
	}
	return &a
}

// recordedDays calls fn for every date of the window that has a record,
// oldest first.
func recordedDays(records map[string]models.DailyRecord, window []string, fn func(date string, rec *models.DailyRecord)) {
	for _, date := range window {
		rec, ok := records[date]
		if !ok {
			continue
		}
		fn(date, &rec)
	}
}

// rateOn returns the completion rate of a date, 0 when it has no record.
func rateOn(records map[string]models.DailyRecord, date string) float64 {
	rec, ok := records[date]
	if !ok {
		return 0
	}
	return rec.Rate()
}
