// Package tracking applies completion toggles and focus ratings to a profile.
//
// It is the only code that mutates daily records and the stored streak
// state. Every operation works on a clone; the caller's profile is never
// modified and the updated copy is returned in the Result.
package tracking

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrActivityNotCompleted = errors.New("activity is not completed today")
	ErrInvalidFocusRating   = errors.New("focus rating must be between 1 and 5")
)

// Focus rating bounds
const (
	MinFocusRating = 1
	MaxFocusRating = 5
)

// AlmostThereRate is the lowest rate that triggers the almost-there notice.
const AlmostThereRate = 60

// NoticeKind identifies a user facing notice produced by a toggle
type NoticeKind string

const (
	NoticeStreakIncreased NoticeKind = "streak_increased"
	NoticeStreakAtRisk    NoticeKind = "streak_at_risk"
	NoticeAlmostThere     NoticeKind = "almost_there"
)

// Notice is a message for the user about the effect of a toggle
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Title   string     `json:"title"`
	Message string     `json:"message"`
}

// Result is the outcome of a tracking operation
type Result struct {
	Profile    *models.Profile    `json:"-"`
	Date       string             `json:"date"`
	ActivityID string             `json:"activityId"`
	Completed  bool               `json:"completed"`
	Record     models.DailyRecord `json:"record"`
	Streaks    models.Streaks     `json:"streaks"`
	Notices    []Notice           `json:"notices"`
}

// ToggleActivity flips the completion state of an activity for the calendar
// day of now. The day's completion rate is recomputed against the whole
// catalog, and the streak state is advanced or reset once per day.
func ToggleActivity(profile *models.Profile, activityID string, now time.Time) (*Result, error) {
	if profile == nil {
		return nil, fmt.Errorf("failed to toggle activity: %w", ErrActivityNotFound)
	}
	activity, ok := profile.Activities[activityID]
	if !ok {
		return nil, fmt.Errorf("failed to toggle activity %q: %w", activityID, ErrActivityNotFound)
	}

	p := profile.Clone()
	today := dates.Today(now)
	daily := dailyRecord(p, today)

	ar := daily.Activities[activityID]
	completed := !ar.Completed
	ar.Planned = true
	ar.Completed = completed
	if completed {
		ar.ActualDuration = activity.Duration
		ar.CompletedAt = models.Some(now.UTC())
	} else {
		ar.ActualDuration = 0
		ar.CompletedAt = models.Null[time.Time]()
		ar.FocusRating = models.Null[int]()
	}
	daily.Activities[activityID] = ar

	recompute(&daily, p.Activities)
	p.DailyRecords[today] = daily

	notices := updateStreaks(p, daily.Rate(), today)
	p.Streaks.PerfectDays = countPerfectDays(p.DailyRecords)

	return &Result{
		Profile:    p,
		Date:       today,
		ActivityID: activityID,
		Completed:  completed,
		Record:     daily,
		Streaks:    p.Streaks,
		Notices:    notices,
	}, nil
}

// SetFocusRating rates an activity completed on the calendar day of now.
func SetFocusRating(profile *models.Profile, activityID string, rating int, now time.Time) (*Result, error) {
	if rating < MinFocusRating || rating > MaxFocusRating {
		return nil, fmt.Errorf("failed to set focus rating %d: %w", rating, ErrInvalidFocusRating)
	}
	if profile == nil {
		return nil, fmt.Errorf("failed to set focus rating: %w", ErrActivityNotFound)
	}
	if _, ok := profile.Activities[activityID]; !ok {
		return nil, fmt.Errorf("failed to set focus rating for %q: %w", activityID, ErrActivityNotFound)
	}

	p := profile.Clone()
	today := dates.Today(now)
	daily, ok := p.DailyRecords[today]
	if !ok || !daily.Activities[activityID].Completed {
		return nil, fmt.Errorf("failed to set focus rating for %q: %w", activityID, ErrActivityNotCompleted)
	}

	ar := daily.Activities[activityID]
	ar.FocusRating = models.Some(rating)
	daily.Activities[activityID] = ar
	p.DailyRecords[today] = daily

	return &Result{
		Profile:    p,
		Date:       today,
		ActivityID: activityID,
		Completed:  true,
		Record:     daily,
		Streaks:    p.Streaks,
		Notices:    []Notice{},
	}, nil
}

func dailyRecord(p *models.Profile, date string) models.DailyRecord {
	if p.DailyRecords == nil {
		p.DailyRecords = make(map[string]models.DailyRecord)
	}
	daily, ok := p.DailyRecords[date]
	if !ok {
		daily = models.DailyRecord{Date: date}
	}
	if daily.Activities == nil {
		daily.Activities = make(map[string]models.ActivityRecord)
	}
	return daily
}

// recompute derives the rate and time totals of a day. The rate is measured
// against the catalog size, not the number of planned records.
func recompute(daily *models.DailyRecord, catalog map[string]models.Activity) {
	done := 0
	completedTime := 0
	for _, ar := range daily.Activities {
		if ar.Completed {
			done++
			completedTime += ar.ActualDuration
		}
	}

	plannedTime := 0
	for _, a := range catalog {
		plannedTime += a.Duration
	}

	rate := 0.0
	if len(catalog) > 0 {
		rate = math.Round(float64(done) / float64(len(catalog)) * 100)
	}
	daily.CompletionRate = models.Some(rate)
	daily.TotalPlannedTime = plannedTime
	daily.TotalCompletedTime = completedTime
}

func updateStreaks(p *models.Profile, rate float64, today string) []Notice {
	notices := []Notice{}
	goal := p.Preferences.Goal()

	if rate >= AlmostThereRate && rate < goal {
		notices = append(notices, Notice{
			Kind:    NoticeAlmostThere,
			Title:   "Almost there!",
			Message: fmt.Sprintf("You're at %.0f%%. Just a bit more to reach %.0f%% and maintain your streak!", rate, goal),
		})
	}

	if p.Streaks.LastUpdate == today {
		return notices
	}
	p.Streaks.LastUpdate = today

	if rate >= goal {
		p.Streaks.Current++
		p.Streaks.Best = max(p.Streaks.Best, p.Streaks.Current)
		notices = append(notices, Notice{
			Kind:    NoticeStreakIncreased,
			Title:   "Streak increased!",
			Message: fmt.Sprintf("You've maintained a %d day streak!", p.Streaks.Current),
		})
		return notices
	}

	p.Streaks.Current = 0
	notices = append(notices, Notice{
		Kind:    NoticeStreakAtRisk,
		Title:   "Streak at risk!",
		Message: fmt.Sprintf("Keep your daily completion above %.0f%% to maintain your streak!", goal),
	})
	return notices
}

func countPerfectDays(records map[string]models.DailyRecord) int {
	n := 0
	for _, rec := range records {
		if rec.Rate() == 100 {
			n++
		}
	}
	return n
}
