package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JonnyWalker81/focusflow/backend/internal/dates"
	"github.com/JonnyWalker81/focusflow/backend/internal/logger"
	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
)

var (
	// ErrInvalidProfileType indicates a profile type without a template
	ErrInvalidProfileType = errors.New("invalid profile type")
	// ErrInvalidProfileName indicates an empty or over-long display name
	ErrInvalidProfileName = errors.New("invalid profile name")
	// ErrProfileExists indicates a client supplied id that is already taken
	ErrProfileExists = errors.New("profile already exists")
	// ErrNoCurrentProfile indicates no profile has been selected yet
	ErrNoCurrentProfile = errors.New("no current profile")
)

// Defaults applied to new profiles
const (
	DefaultAvatar       = "😀"
	DefaultWeeklyGoal   = 35
	DefaultWorkingStart = "06:00"
	DefaultWorkingEnd   = "22:00"
)

type profileService struct {
	repo repository.Store
	now  Clock
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.Store, now Clock) ProfileService {
	if now == nil {
		now = SystemClock(nil)
	}
	return &profileService{repo: repo, now: now}
}

func (s *profileService) ListProfiles(ctx context.Context) ([]models.ProfileSummary, error) {
	profiles, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

func (s *profileService) GetProfile(ctx context.Context, profileID string) (*models.Profile, error) {
	profile, err := s.repo.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// CreateProfile seeds a profile from the activity template of its type and
// selects it as the current profile.
func (s *profileService) CreateProfile(ctx context.Context, req *models.CreateProfileRequest) (*models.Profile, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len([]rune(name)) > models.MaxProfileNameLength {
		return nil, fmt.Errorf("%w: must be 1-%d characters", ErrInvalidProfileName, models.MaxProfileNameLength)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProfileType, req.Type)
	}

	now := s.now()
	created := now.UTC()
	id := req.ID
	if id == "" {
		generated, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate profile id: %w", err)
		}
		id = generated.String()
	} else {
		if err := ValidateUUIDv7(id); err != nil {
			return nil, err
		}
		// Offline clients create the id when the profile is made
		created = ExtractUUIDv7Timestamp(id).UTC()

		_, err := s.repo.GetByID(ctx, id)
		if err == nil {
			return nil, fmt.Errorf("%w: %s", ErrProfileExists, id)
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to check profile: %w", err)
		}
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = DefaultAvatar
	}

	profile := &models.Profile{
		ID:           id,
		Name:         name,
		Type:         string(req.Type),
		Avatar:       avatar,
		Created:      created.Format(time.RFC3339),
		Activities:   activitiesFromTemplate(req.Type),
		DailyRecords: make(map[string]models.DailyRecord),
		Streaks:      models.Streaks{LastUpdate: dates.Today(now)},
		Preferences: models.Preferences{
			CompletionGoal: models.DefaultCompletionGoal,
			WorkingHours:   models.WorkingHours{Start: DefaultWorkingStart, End: DefaultWorkingEnd},
			BreakReminders: true,
			WeeklyGoal:     DefaultWeeklyGoal,
		},
	}

	if err := s.repo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	if err := s.repo.SetCurrentProfile(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to select profile: %w", err)
	}

	logger.Ctx(ctx).Info("profile created",
		logger.String("profile_id", id),
		logger.String("type", profile.Type),
		logger.Int("activities", len(profile.Activities)),
	)
	return profile, nil
}

// activitiesFromTemplate builds the catalog of a new profile. Template keys
// become activity ids; order starts at 1.
func activitiesFromTemplate(t models.ProfileType) map[string]models.Activity {
	templates := models.ActivityTemplates[t]
	activities := make(map[string]models.Activity, len(templates))
	for i, tpl := range templates {
		activities[tpl.Key] = models.Activity{
			ID:        tpl.Key,
			Name:      tpl.Name,
			Duration:  tpl.Duration,
			Color:     tpl.Color,
			Icon:      tpl.Icon,
			Category:  tpl.Category,
			Order:     models.Some(i + 1),
			IsDefault: true,
		}
	}
	return activities
}

func (s *profileService) SelectProfile(ctx context.Context, profileID string) error {
	if err := s.repo.SetCurrentProfile(ctx, profileID); err != nil {
		return fmt.Errorf("failed to select profile: %w", err)
	}
	return nil
}

func (s *profileService) CurrentProfile(ctx context.Context) (*models.Profile, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.CurrentProfile == nil || *settings.CurrentProfile == "" {
		return nil, ErrNoCurrentProfile
	}
	return s.GetProfile(ctx, *settings.CurrentProfile)
}
