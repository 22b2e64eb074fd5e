package analytics

import (
	"testing"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

func findInsight(insights []models.Insight, rule string) (models.Insight, bool) {
	for _, in := range insights {
		if in.Rule == rule {
			return in, true
		}
	}
	return models.Insight{}, false
}

func uniformWeek(rate float64) map[string]models.DailyRecord {
	recs := make(map[string]models.DailyRecord)
	for _, date := range []string{"2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"} {
		recs[date] = day(date, rate, nil)
	}
	return recs
}

func TestBestWeekdayRule(t *testing.T) {
	t.Run("fires above threshold", func(t *testing.T) {
		profile := &models.Profile{DailyRecords: records(
			day("2024-03-01", 90, nil), // Friday
			day("2024-03-08", 100, nil),
			day("2024-03-09", 60, nil),
		)}
		in, ok := findInsight(IdentifyProductivityPatterns(profile, 14, ref), RuleBestWeekday)
		if !ok {
			t.Fatal("expected best weekday insight")
		}
		if in.Title != "Fridays are your power days!" {
			t.Errorf("Title = %q", in.Title)
		}
		if in.Description != "You complete 95% of tasks on Fridays on average." {
			t.Errorf("Description = %q", in.Description)
		}
		if in.Type != models.InsightSuccess || in.Icon != "🚀" {
			t.Errorf("insight = %+v", in)
		}
	})

	t.Run("silent at threshold", func(t *testing.T) {
		profile := &models.Profile{DailyRecords: uniformWeek(70)}
		if _, ok := findInsight(IdentifyProductivityPatterns(profile, 7, ref), RuleBestWeekday); ok {
			t.Error("70% must not qualify as a power day")
		}
	})

	t.Run("ties keep first weekday in window", func(t *testing.T) {
		profile := &models.Profile{DailyRecords: uniformWeek(90)}
		in, ok := findInsight(IdentifyProductivityPatterns(profile, 7, ref), RuleBestWeekday)
		if !ok || in.Title != "Mondays are your power days!" {
			t.Errorf("got %+v, want Monday", in)
		}
	})
}

func TestStreakRule(t *testing.T) {
	tests := []struct {
		name     string
		streaks  models.Streaks
		wantFire bool
		wantType models.InsightType
		wantIcon string
	}{
		{name: "long streak", streaks: models.Streaks{Current: 7, Best: 7}, wantFire: true, wantType: models.InsightSuccess, wantIcon: "🔥"},
		{name: "best is beatable", streaks: models.Streaks{Current: 2, Best: 5}, wantFire: true, wantType: models.InsightInfo, wantIcon: "💪"},
		{name: "no current streak", streaks: models.Streaks{Current: 0, Best: 5}},
		{name: "current equals best", streaks: models.Streaks{Current: 3, Best: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.Profile{Streaks: tt.streaks}
			in, ok := findInsight(IdentifyProductivityPatterns(profile, 7, ref), RuleStreak)
			if ok != tt.wantFire {
				t.Fatalf("fired = %v, want %v", ok, tt.wantFire)
			}
			if ok && (in.Type != tt.wantType || in.Icon != tt.wantIcon) {
				t.Errorf("insight = %+v", in)
			}
		})
	}
}

func TestCategoryBalanceRule(t *testing.T) {
	t.Run("dominant category", func(t *testing.T) {
		profile := &models.Profile{
			Activities:   testCatalog(),
			DailyRecords: records(day("2024-03-10", 100, map[string]models.ActivityRecord{"gym": done(60), "reading": done(20)})),
		}
		in, ok := findInsight(IdentifyProductivityPatterns(profile, 7, ref), RuleCategoryBalance)
		if !ok {
			t.Fatal("expected category balance insight")
		}
		if in.Description != "75% of your time is spent on health. Consider diversifying." {
			t.Errorf("Description = %q", in.Description)
		}
		if in.Type != models.InsightWarning {
			t.Errorf("Type = %s", in.Type)
		}
	})

	t.Run("even split", func(t *testing.T) {
		profile := &models.Profile{
			Activities:   testCatalog(),
			DailyRecords: records(day("2024-03-10", 100, map[string]models.ActivityRecord{"gym": done(60), "email": done(60)})),
		}
		if _, ok := findInsight(IdentifyProductivityPatterns(profile, 7, ref), RuleCategoryBalance); ok {
			t.Error("50% must not trigger the balance warning")
		}
	})

	t.Run("no tracked time", func(t *testing.T) {
		profile := &models.Profile{
			Activities:   testCatalog(),
			DailyRecords: records(day("2024-03-10", 0, map[string]models.ActivityRecord{"gym": skipped()})),
		}
		if _, ok := findInsight(IdentifyProductivityPatterns(profile, 7, ref), RuleCategoryBalance); ok {
			t.Error("zero tracked time must not trigger the balance warning")
		}
	})
}

func TestRecentPerformanceRule(t *testing.T) {
	tests := []struct {
		name      string
		records   map[string]models.DailyRecord
		wantFire  bool
		wantTitle string
	}{
		{name: "no data counts as zero", records: nil, wantFire: true, wantTitle: "Low completion this week"},
		{name: "exceptional", records: uniformWeek(80), wantFire: true, wantTitle: "Exceptional week!"},
		{name: "middling", records: uniformWeek(65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.Profile{DailyRecords: tt.records}
			// a 1-day window still evaluates the last 7 days
			in, ok := findInsight(IdentifyProductivityPatterns(profile, 1, ref), RuleRecentPerformance)
			if ok != tt.wantFire {
				t.Fatalf("fired = %v, want %v", ok, tt.wantFire)
			}
			if ok && in.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", in.Title, tt.wantTitle)
			}
		})
	}
}

func TestIdentifyProductivityPatternsOrderAndEmpty(t *testing.T) {
	profile := &models.Profile{
		Activities:   testCatalog(),
		DailyRecords: uniformWeek(100),
		Streaks:      models.Streaks{Current: 10, Best: 10},
	}
	profile.DailyRecords["2024-03-10"] = day("2024-03-10", 100, map[string]models.ActivityRecord{"gym": done(60)})

	got := IdentifyProductivityPatterns(profile, 7, ref)
	wantRules := []string{RuleBestWeekday, RuleStreak, RuleCategoryBalance, RuleRecentPerformance}
	if len(got) != len(wantRules) {
		t.Fatalf("got %d insights, want %d: %+v", len(got), len(wantRules), got)
	}
	for i, rule := range wantRules {
		if got[i].Rule != rule {
			t.Errorf("[%d] rule = %s, want %s", i, got[i].Rule, rule)
		}
	}

	if got := IdentifyProductivityPatterns(profile, 0, ref); len(got) != 0 {
		t.Errorf("zero window got %+v, want empty", got)
	}
	if got := IdentifyProductivityPatterns(nil, 7, ref); len(got) != 0 {
		t.Errorf("nil profile got %+v, want empty", got)
	}
}
