package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

func setReportFlags(t *testing.T, rng, start, end string, days int) {
	t.Helper()
	reportRange, reportStart, reportEnd, reportDays = rng, start, end, days
	t.Cleanup(func() {
		reportRange, reportStart, reportEnd, reportDays = "", "", "", 0
	})
}

func TestReportWindow(t *testing.T) {
	tests := []struct {
		name     string
		rng      string
		start    string
		end      string
		days     int
		wantDays int
		wantErr  bool
	}{
		{name: "config default", wantDays: 7},
		{name: "preset", rng: "30days", wantDays: 30},
		{name: "days override", rng: "90days", days: 14, wantDays: 14},
		{name: "custom bounds", rng: "custom", start: "2024-03-01", end: "2024-03-10", wantDays: 10},
		{name: "clamped", rng: "90days", wantDays: 60},
		{name: "bad preset", rng: "1year", wantErr: true},
		{name: "bad date", rng: "custom", start: "2024-13-01", end: "2024-03-10", wantErr: true},
		{name: "negative days", days: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setReportFlags(t, tt.rng, tt.start, tt.end, tt.days)
			w, err := reportWindow(dates.Preset7Days, 60)
			if (err != nil) != tt.wantErr {
				t.Fatalf("reportWindow() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && w.Days != tt.wantDays {
				t.Errorf("days = %d, want %d", w.Days, tt.wantDays)
			}
		})
	}
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, report{
		Profile: "Alex",
		Label:   "Last 7 Days",
		Metrics: &models.KeyMetrics{
			TotalFocusedTime:         150,
			AverageCompletionRate:    75,
			CurrentStreak:            2,
			BestStreak:               5,
			TotalActivitiesCompleted: 1200,
			FavoriteActivity:         &models.FavoriteActivity{Name: "Deep Work", Count: 4, Icon: "🧠"},
		},
		WeekComparison: []models.WeekComparison{
			{Metric: "Completion Rate", CurrentWeek: 80, PreviousWeek: 40, Change: 100, ChangeType: models.ChangeIncrease},
		},
		Insights: []models.Insight{{Title: "On a roll", Description: "Keep it up", Icon: "🔥"}},
	})

	out := buf.String()
	for _, want := range []string{
		"Alex: Last 7 Days",
		"2h 30m",
		"(good)",
		"2 (best 5)",
		"1,200",
		"Deep Work (4x)",
		"+100.0% (increase)",
		"On a roll: Keep it up",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Best day") {
		t.Error("best day printed without data")
	}
}
