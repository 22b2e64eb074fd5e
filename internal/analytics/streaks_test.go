package analytics

import (
	"testing"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

func TestStreakHistory(t *testing.T) {
	recs := records(
		day("2024-03-06", 80, nil),
		day("2024-03-07", 60, nil),
		day("2024-03-08", 90, nil),
		day("2024-03-09", 100, nil),
		day("2024-03-10", 50, nil),
	)

	got := StreakHistory(recs, 70, 5, ref)

	wantStreaks := []int{1, 0, 1, 2, 0}
	wantPerfect := []bool{false, false, false, true, false}
	if len(got) != len(wantStreaks) {
		t.Fatalf("len = %d, want %d", len(got), len(wantStreaks))
	}
	for i, p := range got {
		if p.Streak != wantStreaks[i] {
			t.Errorf("[%d] %s streak = %d, want %d", i, p.Date, p.Streak, wantStreaks[i])
		}
		if p.IsPerfectDay != wantPerfect[i] {
			t.Errorf("[%d] %s perfect = %v, want %v", i, p.Date, p.IsPerfectDay, wantPerfect[i])
		}
	}
}

func TestStreakHistoryMissingDaysReset(t *testing.T) {
	recs := records(
		day("2024-03-08", 100, nil),
		day("2024-03-10", 100, nil),
	)
	got := StreakHistory(recs, 70, 3, ref)

	want := []int{1, 0, 1}
	for i, p := range got {
		if p.Streak != want[i] {
			t.Errorf("%s streak = %d, want %d", p.Date, p.Streak, want[i])
		}
	}
	if got[1].CompletionRate != 0 {
		t.Errorf("missing day rate = %v, want 0", got[1].CompletionRate)
	}
}

func TestStreakHistoryIgnoresStoredStreak(t *testing.T) {
	profile := &models.Profile{
		DailyRecords: records(day("2024-03-10", 40, nil)),
		Streaks:      models.Streaks{Current: 12, Best: 12},
	}
	got := StreakHistory(profile.DailyRecords, profile.Preferences.Goal(), 1, ref)
	if got[0].Streak != 0 {
		t.Errorf("streak = %d, want 0 regardless of stored state", got[0].Streak)
	}
}

func TestStreakHistoryGoalIsInclusive(t *testing.T) {
	got := StreakHistory(records(day("2024-03-10", 70, nil)), 70, 1, ref)
	if got[0].Streak != 1 {
		t.Errorf("streak = %d, want 1 when rate equals goal", got[0].Streak)
	}
}
