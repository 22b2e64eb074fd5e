package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/format"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a productivity summary for a profile",
	Long: `Print key metrics, the week over week comparison and insights for a
profile. Defaults to the currently selected profile.`,
	RunE: runReport,
}

var (
	reportProfile string
	reportRange   string
	reportStart   string
	reportEnd     string
	reportDays    int
	reportJSON    bool
)

func init() {
	reportCmd.Flags().StringVar(&reportProfile, "profile", "", "Profile ID (defaults to the current profile)")
	reportCmd.Flags().StringVarP(&reportRange, "range", "r", "", "Range preset: 7days, 30days, 90days or custom")
	reportCmd.Flags().StringVar(&reportStart, "start", "", "Start date of a custom range (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportEnd, "end", "", "End date of a custom range (YYYY-MM-DD)")
	reportCmd.Flags().IntVar(&reportDays, "days", 0, "Lookback in days (overrides --range)")
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "Print the report as JSON")
}

// report is the document printed by the report command
type report struct {
	Profile        string                  `json:"profile"`
	Window         dates.Window            `json:"window"`
	Label          string                  `json:"label"`
	Metrics        *models.KeyMetrics      `json:"metrics"`
	WeekComparison []models.WeekComparison `json:"weekComparison"`
	Insights       []models.Insight        `json:"insights"`
}

func runReport(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	window, err := reportWindow(dates.Preset(a.cfg.Analytics.DefaultRange), a.cfg.Analytics.MaxDays)
	if err != nil {
		return err
	}

	var profile *models.Profile
	if reportProfile != "" {
		profile, err = a.profiles.GetProfile(ctx, reportProfile)
	} else {
		profile, err = a.profiles.CurrentProfile(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	metrics, err := a.analytics.GetKeyMetrics(ctx, profile.ID, window)
	if err != nil {
		return err
	}
	weeks, err := a.analytics.GetWeekComparison(ctx, profile.ID)
	if err != nil {
		return err
	}
	insights, err := a.analytics.GetInsights(ctx, profile.ID, window)
	if err != nil {
		return err
	}

	r := report{
		Profile:        profile.Name,
		Window:         window,
		Label:          window.Label(),
		Metrics:        metrics,
		WeekComparison: weeks,
		Insights:       insights,
	}

	out := cmd.OutOrStdout()
	if reportJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	printReport(out, r)
	return nil
}

// reportWindow resolves the window flags the same way the API resolves its
// query parameters.
func reportWindow(fallback dates.Preset, maxDays int) (dates.Window, error) {
	var w dates.Window
	if reportDays != 0 {
		if reportDays < 0 {
			return dates.Window{}, fmt.Errorf("--days must be a positive integer, got %d", reportDays)
		}
		w = dates.Window{Preset: dates.PresetCustom, Days: reportDays}
	} else {
		preset := fallback
		if reportRange != "" {
			p, err := dates.ParsePreset(reportRange)
			if err != nil {
				return dates.Window{}, err
			}
			preset = p
		}
		for _, bound := range []string{reportStart, reportEnd} {
			if bound == "" {
				continue
			}
			if _, err := dates.Parse(bound); err != nil {
				return dates.Window{}, fmt.Errorf("invalid date %q: %w", bound, err)
			}
		}
		var err error
		if w, err = dates.NewWindow(preset, reportStart, reportEnd); err != nil {
			return dates.Window{}, err
		}
	}
	if maxDays > 0 && w.Days > maxDays {
		w.Days = maxDays
	}
	return w, nil
}

func printReport(w io.Writer, r report) {
	m := r.Metrics
	fmt.Fprintf(w, "%s: %s\n\n", r.Profile, r.Label)

	tier := format.CompletionRateTier(m.AverageCompletionRate)
	fmt.Fprintf(w, "  Focused time       %s\n", format.MinutesToHours(m.TotalFocusedTime))
	fmt.Fprintf(w, "  Completion rate    %s (%s)\n", format.Percentage(m.AverageCompletionRate, 1), tier.Name)
	fmt.Fprintf(w, "  Streak             %d (best %d)\n", m.CurrentStreak, m.BestStreak)
	fmt.Fprintf(w, "  Perfect days       %d\n", m.PerfectDays)
	fmt.Fprintf(w, "  Active days        %d\n", m.ActiveDays)
	fmt.Fprintf(w, "  Completed          %s\n", format.Number(float64(m.TotalActivitiesCompleted)))
	if m.MostProductiveDay != nil {
		fmt.Fprintf(w, "  Best day           %s (%s)\n", m.MostProductiveDay.Date, format.Percentage(m.MostProductiveDay.Rate, 0))
	}
	if m.FavoriteActivity != nil {
		fmt.Fprintf(w, "  Favorite activity  %s %s (%dx)\n", m.FavoriteActivity.Icon, m.FavoriteActivity.Name, m.FavoriteActivity.Count)
	}

	if len(r.WeekComparison) > 0 {
		fmt.Fprintln(w, "\nThis week vs last week")
		for _, c := range r.WeekComparison {
			fmt.Fprintf(w, "  %-18s %10s %10s  %+.1f%% (%s)\n",
				c.Metric, format.Number(c.CurrentWeek), format.Number(c.PreviousWeek), c.Change, c.ChangeType)
		}
	}

	if len(r.Insights) > 0 {
		fmt.Fprintln(w, "\nInsights")
		for _, in := range r.Insights {
			fmt.Fprintf(w, "  %s %s: %s\n", in.Icon, in.Title, in.Description)
		}
	}
}
