package analytics

import (
	"testing"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

func TestAnalyzeTimeOfDay(t *testing.T) {
	catalog := testCatalog()
	catalog["late"] = models.Activity{ID: "late", Duration: 10, StartTime: models.Some(24*60 + 5)}

	recs := records(
		day("2024-03-09", 50, map[string]models.ActivityRecord{
			"deep-work": done(0),
			"email":     skipped(),
		}),
		day("2024-03-10", 100, map[string]models.ActivityRecord{
			"deep-work": skipped(),
			"gym":       done(0),
			"reading":   done(0),
			"late":      done(0),
			"ghost":     done(0),
		}),
	)

	got := AnalyzeTimeOfDay(catalog, recs, 7, ref)
	if len(got) != HoursPerDay {
		t.Fatalf("len = %d, want %d", len(got), HoursPerDay)
	}

	total := 0
	for h, slot := range got {
		if slot.Hour != h {
			t.Errorf("slot %d has hour %d", h, slot.Hour)
		}
		total += slot.TotalCount
	}
	// reading has no start time, late is out of range, ghost is unknown
	if total != 4 {
		t.Errorf("bucketed instances = %d, want 4", total)
	}

	if s := got[9]; s.TotalCount != 2 || s.CompletionCount != 1 || s.CompletionRate != 50 {
		t.Errorf("9am = %+v", s)
	}
	if s := got[8]; s.TotalCount != 1 || s.CompletionCount != 0 || s.CompletionRate != 0 {
		t.Errorf("8am = %+v", s)
	}
	if s := got[18]; s.TotalCount != 1 || s.CompletionRate != 100 || s.Label != "6pm" {
		t.Errorf("6pm = %+v", s)
	}
	if got[0].Label != "12am" || got[12].Label != "12pm" {
		t.Errorf("labels = %q, %q", got[0].Label, got[12].Label)
	}
}

func TestAnalyzeTimeOfDayAlwaysReturns24Slots(t *testing.T) {
	for _, days := range []int{-1, 0, 1, 30} {
		got := AnalyzeTimeOfDay(nil, nil, days, ref)
		if len(got) != HoursPerDay {
			t.Errorf("days=%d: len = %d, want %d", days, len(got), HoursPerDay)
		}
		for _, s := range got {
			if s.TotalCount != 0 || s.CompletionRate != 0 {
				t.Errorf("days=%d: slot %d = %+v, want empty", days, s.Hour, s)
			}
		}
	}
}
