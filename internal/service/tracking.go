package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/JonnyWalker81/focusflow/backend/internal/logger"
	"github.com/JonnyWalker81/focusflow/backend/internal/observability"
	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
	"github.com/JonnyWalker81/focusflow/backend/internal/tracking"
)

type trackingService struct {
	profileRepo repository.ProfileRepository
	now         Clock

	// mu serialises read-modify-write cycles so concurrent toggles on one
	// profile do not lose updates.
	mu sync.Mutex
}

// NewTrackingService creates a new tracking service
func NewTrackingService(profileRepo repository.ProfileRepository, now Clock) TrackingService {
	if now == nil {
		now = SystemClock(nil)
	}
	return &trackingService{
		profileRepo: profileRepo,
		now:         now,
	}
}

func (s *trackingService) ToggleActivity(ctx context.Context, profileID, activityID string) (*tracking.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	result, err := tracking.ToggleActivity(profile, activityID, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, result.Profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	observability.RecordToggle(result.Completed)

	logger.Ctx(ctx).Info("activity toggled",
		logger.String("profile_id", profileID),
		logger.String("activity_id", activityID),
		logger.Bool("completed", result.Completed),
		logger.Float64("completion_rate", result.Record.Rate()),
		logger.Int("streak", result.Streaks.Current),
	)
	return result, nil
}

func (s *trackingService) SetFocusRating(ctx context.Context, profileID, activityID string, rating int) (*tracking.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	result, err := tracking.SetFocusRating(profile, activityID, rating, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, result.Profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	logger.Ctx(ctx).Info("focus rating set",
		logger.String("profile_id", profileID),
		logger.String("activity_id", activityID),
		logger.Int("rating", rating),
	)
	return result, nil
}
