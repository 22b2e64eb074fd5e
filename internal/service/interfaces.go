package service

import (
	"context"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/tracking"
)

// AnalyticsService defines the interface for the dashboard analytics views
type AnalyticsService interface {
	GetOverview(ctx context.Context, profileID string, window dates.Window) (*models.Overview, error)
	GetTrends(ctx context.Context, profileID string, window dates.Window) ([]models.CompletionTrendPoint, error)
	GetKeyMetrics(ctx context.Context, profileID string, window dates.Window) (*models.KeyMetrics, error)
	GetCategories(ctx context.Context, profileID string, window dates.Window) ([]models.CategoryData, error)
	GetLeaderboard(ctx context.Context, profileID string, window dates.Window, sortBy models.LeaderboardSort) ([]models.LeaderboardItem, error)
	GetStreakHistory(ctx context.Context, profileID string, window dates.Window) ([]models.StreakHistoryPoint, error)
	GetWeekComparison(ctx context.Context, profileID string) ([]models.WeekComparison, error)
	GetTimeOfDay(ctx context.Context, profileID string, window dates.Window) ([]models.TimeSlot, error)
	GetInsights(ctx context.Context, profileID string, window dates.Window) ([]models.Insight, error)
	GetCalendar(ctx context.Context, profileID string, window dates.Window) (*models.PerformanceCalendar, error)
	// GetHeatmap builds the grid of a calendar month; a zero year or month
	// selects the current one.
	GetHeatmap(ctx context.Context, profileID string, year, month int) (*models.MonthlyHeatmap, error)
}

// TrackingService defines the interface for recording today's progress
type TrackingService interface {
	ToggleActivity(ctx context.Context, profileID, activityID string) (*tracking.Result, error)
	SetFocusRating(ctx context.Context, profileID, activityID string, rating int) (*tracking.Result, error)
}

// ProfileService defines the interface for profile listing and onboarding
type ProfileService interface {
	ListProfiles(ctx context.Context) ([]models.ProfileSummary, error)
	GetProfile(ctx context.Context, profileID string) (*models.Profile, error)
	CreateProfile(ctx context.Context, req *models.CreateProfileRequest) (*models.Profile, error)
	SelectProfile(ctx context.Context, profileID string) error
	// CurrentProfile returns the selected profile, or ErrNoCurrentProfile.
	CurrentProfile(ctx context.Context) (*models.Profile, error)
}
