package analytics

import (
	"fmt"
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/format"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// Rule names carried by the emitted insights.
const (
	RuleBestWeekday       = "best_weekday"
	RuleStreak            = "streak"
	RuleCategoryBalance   = "category_balance"
	RuleRecentPerformance = "recent_performance"
)

// Thresholds of the insight rules.
const (
	PowerDayThreshold        = 70.0
	ConsistencyStreakDays    = 7
	CategoryShareThreshold   = 50.0
	LowWeekThreshold         = 50.0
	ExceptionalWeekThreshold = 80.0
)

// insightRule inspects a profile and reports at most one insight.
type insightRule func(profile *models.Profile, days int, ref time.Time) (models.Insight, bool)

// insightRules run in this order; each is independent of the others.
var insightRules = []insightRule{
	bestWeekdayRule,
	streakRule,
	categoryBalanceRule,
	recentPerformanceRule,
}

// IdentifyProductivityPatterns evaluates the heuristic insight rules against
// the profile and returns the insights that fired, in rule order.
func IdentifyProductivityPatterns(profile *models.Profile, days int, ref time.Time) []models.Insight {
	insights := []models.Insight{}
	if profile == nil || days <= 0 {
		return insights
	}
	for _, rule := range insightRules {
		if insight, ok := rule(profile, days, ref); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

// bestWeekdayRule fires when the weekday with the highest mean completion
// rate over recorded days is above PowerDayThreshold. Ties keep the weekday
// seen first in the window.
func bestWeekdayRule(profile *models.Profile, days int, ref time.Time) (models.Insight, bool) {
	type weekdayAcc struct {
		sum   float64
		count int
	}
	accs := make(map[time.Weekday]*weekdayAcc)
	var order []time.Weekday

	for _, date := range dates.Range(days, ref) {
		wd := dates.Weekday(date)
		acc, ok := accs[wd]
		if !ok {
			acc = &weekdayAcc{}
			accs[wd] = acc
			order = append(order, wd)
		}
		if rec, ok := profile.DailyRecords[date]; ok {
			acc.sum += rec.Rate()
			acc.count++
		}
	}

	var best time.Weekday
	bestRate := 0.0
	found := false
	for _, wd := range order {
		avg := mean(accs[wd].sum, accs[wd].count)
		if avg > bestRate {
			best, bestRate, found = wd, avg, true
		}
	}
	if !found || bestRate <= PowerDayThreshold {
		return models.Insight{}, false
	}

	return models.Insight{
		Rule:        RuleBestWeekday,
		Type:        models.InsightSuccess,
		Title:       fmt.Sprintf("%ss are your power days!", best),
		Description: fmt.Sprintf("You complete %s of tasks on %ss on average.", format.Percentage(bestRate, 0), best),
		Icon:        "🚀",
	}, true
}

func streakRule(profile *models.Profile, _ int, _ time.Time) (models.Insight, bool) {
	s := profile.Streaks
	switch {
	case s.Current >= ConsistencyStreakDays:
		return models.Insight{
			Rule:        RuleStreak,
			Type:        models.InsightSuccess,
			Title:       "Impressive consistency!",
			Description: fmt.Sprintf("You've maintained a %d-day streak. Keep it up!", s.Current),
			Icon:        "🔥",
		}, true
	case s.Best > s.Current && s.Current > 0:
		return models.Insight{
			Rule:        RuleStreak,
			Type:        models.InsightInfo,
			Title:       "Almost there!",
			Description: fmt.Sprintf("Your best streak was %d days. You can beat it!", s.Best),
			Icon:        "💪",
		}, true
	}
	return models.Insight{}, false
}

// categoryBalanceRule fires when the top category holds more than
// CategoryShareThreshold percent of all tracked time.
func categoryBalanceRule(profile *models.Profile, days int, ref time.Time) (models.Insight, bool) {
	categories := AggregateTimeByCategory(profile.Activities, profile.DailyRecords, days, ref)
	if len(categories) == 0 {
		return models.Insight{}, false
	}

	total := 0
	for _, c := range categories {
		total += c.TotalTime
	}
	top := categories[0]
	share := percent(top.TotalTime, total)
	if share <= CategoryShareThreshold {
		return models.Insight{}, false
	}

	return models.Insight{
		Rule:        RuleCategoryBalance,
		Type:        models.InsightWarning,
		Title:       "Balance your activities",
		Description: fmt.Sprintf("%s of your time is spent on %s. Consider diversifying.", format.Percentage(share, 0), top.Category),
		Icon:        "⚖️",
	}, true
}

// recentPerformanceRule looks at the last 7 days regardless of the window,
// counting days without a record as 0.
func recentPerformanceRule(profile *models.Profile, _ int, ref time.Time) (models.Insight, bool) {
	week := dates.Range(7, ref)
	sum := 0.0
	for _, date := range week {
		sum += rateOn(profile.DailyRecords, date)
	}
	avg := mean(sum, len(week))

	switch {
	case avg < LowWeekThreshold:
		return models.Insight{
			Rule:        RuleRecentPerformance,
			Type:        models.InsightWarning,
			Title:       "Low completion this week",
			Description: fmt.Sprintf("Your average completion is %s. Try breaking tasks into smaller chunks.", format.Percentage(avg, 0)),
			Icon:        "📉",
		}, true
	case avg >= ExceptionalWeekThreshold:
		return models.Insight{
			Rule:        RuleRecentPerformance,
			Type:        models.InsightSuccess,
			Title:       "Exceptional week!",
			Description: fmt.Sprintf("You're averaging %s completion. Outstanding work!", format.Percentage(avg, 0)),
			Icon:        "⭐",
		}, true
	}
	return models.Insight{}, false
}
