package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/analytics"
	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/logger"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/observability"
	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
)

type analyticsService struct {
	profileRepo repository.ProfileRepository
	now         Clock
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(profileRepo repository.ProfileRepository, now Clock) AnalyticsService {
	if now == nil {
		now = SystemClock(nil)
	}
	return &analyticsService{
		profileRepo: profileRepo,
		now:         now,
	}
}

// observe is deferred with the start time captured at the defer statement.
func observe(view string, start time.Time) {
	observability.ObserveAggregation(view, time.Since(start))
}

func (s *analyticsService) load(ctx context.Context, profileID string) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// reference returns the instant a window ends at. Preset windows end today;
// a custom window whose later bound is in the past ends on that bound.
func (s *analyticsService) reference(window dates.Window) time.Time {
	now := s.now()
	if window.Preset != dates.PresetCustom || window.Start == "" || window.End == "" {
		return now
	}
	last := window.End
	if window.Start > last {
		last = window.Start
	}
	if last >= dates.Today(now) {
		return now
	}
	t, err := dates.Parse(last)
	if err != nil {
		return now
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, now.Location())
}

func (s *analyticsService) GetOverview(ctx context.Context, profileID string, window dates.Window) (*models.Overview, error) {
	defer observe("overview", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	ref := s.reference(window)

	logger.Ctx(ctx).Debug("building overview",
		logger.String("profile_id", profileID),
		logger.Int("days", window.Days),
	)

	return &models.Overview{
		Metrics:    analytics.CalculateKeyMetrics(profile, window.Days, ref),
		Trend:      analytics.CompletionTrends(profile.DailyRecords, window.Days, ref),
		Categories: analytics.AggregateTimeByCategory(profile.Activities, profile.DailyRecords, window.Days, ref),
		Goal:       profile.Preferences.Goal(),
		Days:       window.Days,
	}, nil
}

func (s *analyticsService) GetTrends(ctx context.Context, profileID string, window dates.Window) ([]models.CompletionTrendPoint, error) {
	defer observe("trends", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return analytics.CompletionTrends(profile.DailyRecords, window.Days, s.reference(window)), nil
}

func (s *analyticsService) GetKeyMetrics(ctx context.Context, profileID string, window dates.Window) (*models.KeyMetrics, error) {
	defer observe("metrics", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	metrics := analytics.CalculateKeyMetrics(profile, window.Days, s.reference(window))
	return &metrics, nil
}

func (s *analyticsService) GetCategories(ctx context.Context, profileID string, window dates.Window) ([]models.CategoryData, error) {
	defer observe("categories", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return analytics.AggregateTimeByCategory(profile.Activities, profile.DailyRecords, window.Days, s.reference(window)), nil
}

func (s *analyticsService) GetLeaderboard(ctx context.Context, profileID string, window dates.Window, sortBy models.LeaderboardSort) ([]models.LeaderboardItem, error) {
	defer observe("leaderboard", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return analytics.ActivityLeaderboard(profile.Activities, profile.DailyRecords, window.Days, s.reference(window), sortBy), nil
}

func (s *analyticsService) GetStreakHistory(ctx context.Context, profileID string, window dates.Window) ([]models.StreakHistoryPoint, error) {
	defer observe("streaks", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return analytics.StreakHistory(profile.DailyRecords, profile.Preferences.Goal(), window.Days, s.reference(window)), nil
}

// GetWeekComparison always compares the last seven days with the seven
// before them.
func (s *analyticsService) GetWeekComparison(ctx context.Context, profileID string) ([]models.WeekComparison, error) {
	defer observe("weekly", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return analytics.CompareWeeks(profile.DailyRecords, profile.Activities, s.now()), nil
}

func (s *analyticsService) GetTimeOfDay(ctx context.Context, profileID string, window dates.Window) ([]models.TimeSlot, error) {
	defer observe("time_of_day", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeTimeOfDay(profile.Activities, profile.DailyRecords, window.Days, s.reference(window)), nil
}

func (s *analyticsService) GetInsights(ctx context.Context, profileID string, window dates.Window) ([]models.Insight, error) {
	defer observe("insights", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	insights := analytics.IdentifyProductivityPatterns(profile, window.Days, s.reference(window))

	logger.Ctx(ctx).Debug("insights generated",
		logger.String("profile_id", profileID),
		logger.Int("count", len(insights)),
	)
	return insights, nil
}

func (s *analyticsService) GetCalendar(ctx context.Context, profileID string, window dates.Window) (*models.PerformanceCalendar, error) {
	defer observe("calendar", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	cal := analytics.PerformanceCalendar(profile.DailyRecords, window.Days, s.reference(window))
	return &cal, nil
}

func (s *analyticsService) GetHeatmap(ctx context.Context, profileID string, year, month int) (*models.MonthlyHeatmap, error) {
	defer observe("heatmap", time.Now())

	profile, err := s.load(ctx, profileID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if year == 0 || month == 0 {
		year, month = now.Year(), int(now.Month())
	}
	heatmap := analytics.MonthlyHeatmap(profile.DailyRecords, year, month, now)
	return &heatmap, nil
}
