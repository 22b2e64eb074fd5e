package repository

import (
	"context"
	"errors"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// ErrProfileNotFound is returned when no profile has the requested id
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile data access.
// Implementations hand out independent copies: mutating a returned profile
// never changes stored state until it is passed to Save.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	List(ctx context.Context) ([]models.ProfileSummary, error)
	Save(ctx context.Context, profile *models.Profile) error
}

// SettingsRepository defines the interface for application level settings
type SettingsRepository interface {
	GetSettings(ctx context.Context) (*models.AppSettings, error)
	SetCurrentProfile(ctx context.Context, id string) error
}

// Store is the full data access surface backed by one app document
type Store interface {
	ProfileRepository
	SettingsRepository
}
