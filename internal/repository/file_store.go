package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

// StorageVersion is the version tag of the persisted app document.
const StorageVersion = "1.0"

// ErrUnsupportedVersion is returned when the data file was written by an
// incompatible version.
var ErrUnsupportedVersion = errors.New("unsupported data file version")

// FileStore keeps the whole app document in memory and writes it back to a
// JSON file on every save. An empty path keeps the store in memory only.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data *models.AppData
}

var _ Store = (*FileStore)(nil)

// NewFileStore opens the data file at path, starting from an empty document
// when the file does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: emptyAppData()}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if data.Version != StorageVersion {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, data.Version)
	}
	if data.Profiles == nil {
		data.Profiles = make(map[string]*models.Profile)
	}
	for id, p := range data.Profiles {
		if p == nil {
			delete(data.Profiles, id)
			continue
		}
		if p.ID == "" {
			p.ID = id
		}
	}
	s.data = &data
	return s, nil
}

func emptyAppData() *models.AppData {
	return &models.AppData{
		Version:  StorageVersion,
		Profiles: make(map[string]*models.Profile),
		Settings: models.AppSettings{
			Theme:         "light",
			Notifications: true,
			Sound:         true,
			Language:      "en",
		},
	}
}

// Path returns the data file path, empty for a memory-only store.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.data.Profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", id, ErrProfileNotFound)
	}
	return p.Clone(), nil
}

// List returns a summary of every profile ordered by name, then id.
func (s *FileStore) List(ctx context.Context) ([]models.ProfileSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ProfileSummary, 0, len(s.data.Profiles))
	for _, p := range s.data.Profiles {
		out = append(out, p.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Save stores a copy of profile and persists the document. The in-memory
// state is left untouched when the write fails.
func (s *FileStore) Save(ctx context.Context, profile *models.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if profile == nil || profile.ID == "" {
		return errors.New("failed to save profile: missing id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.data.Profiles[profile.ID]
	s.data.Profiles[profile.ID] = profile.Clone()
	if err := s.persist(); err != nil {
		if existed {
			s.data.Profiles[profile.ID] = prev
		} else {
			delete(s.data.Profiles, profile.ID)
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (s *FileStore) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings := s.data.Settings
	if settings.CurrentProfile != nil {
		id := *settings.CurrentProfile
		settings.CurrentProfile = &id
	}
	return &settings, nil
}

// SetCurrentProfile records the profile selected by the user.
func (s *FileStore) SetCurrentProfile(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Profiles[id]; !ok {
		return fmt.Errorf("profile %q: %w", id, ErrProfileNotFound)
	}
	prev := s.data.Settings.CurrentProfile
	s.data.Settings.CurrentProfile = &id
	if err := s.persist(); err != nil {
		s.data.Settings.CurrentProfile = prev
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// persist writes the document to a temp file next to the data file and
// renames it into place. Callers hold the write lock.
func (s *FileStore) persist() error {
	if s.path == "" {
		return nil
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
