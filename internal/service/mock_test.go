package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
)

// testNow is a Sunday evening.
var testNow = time.Date(2024, 3, 10, 18, 45, 0, 0, time.UTC)

// mockProfileStore is an in-memory repository.Store with call counters
type mockProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*models.Profile
	current  *string

	getCalls  int
	saveCalls int
	saveErr   error
}

func newMockProfileStore(profiles ...*models.Profile) *mockProfileStore {
	m := &mockProfileStore{profiles: make(map[string]*models.Profile)}
	for _, p := range profiles {
		m.profiles[p.ID] = p.Clone()
	}
	return m
}

func (m *mockProfileStore) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("profile %q: %w", id, repository.ErrProfileNotFound)
	}
	return p.Clone(), nil
}

func (m *mockProfileStore) List(ctx context.Context) ([]models.ProfileSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ProfileSummary
	for _, p := range m.profiles {
		out = append(out, p.Summary())
	}
	return out, nil
}

func (m *mockProfileStore) Save(ctx context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.profiles[profile.ID] = profile.Clone()
	return nil
}

func (m *mockProfileStore) GetSettings(ctx context.Context) (*models.AppSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return &models.AppSettings{CurrentProfile: m.current}, nil
}

func (m *mockProfileStore) SetCurrentProfile(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return fmt.Errorf("profile %q: %w", id, repository.ErrProfileNotFound)
	}
	m.current = &id
	return nil
}

func (m *mockProfileStore) stored(id string) *models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profiles[id]
}

const testProfileID = "0190f5a4-3b7e-7c3a-9f1e-2d4b6a8c0e12"

// newTestProfile has two activities and a week of history ending on
// testNow's calendar day; 2024-03-07 has no record.
func newTestProfile() *models.Profile {
	doneRec := func(minutes int) models.ActivityRecord {
		return models.ActivityRecord{Completed: true, Planned: true, ActualDuration: minutes}
	}
	dayRec := func(date string, rate float64, acts map[string]models.ActivityRecord) models.DailyRecord {
		return models.DailyRecord{Date: date, Activities: acts, CompletionRate: models.Some(rate)}
	}
	return &models.Profile{
		ID:   testProfileID,
		Name: "Alex",
		Type: string(models.ProfileProfessional),
		Activities: map[string]models.Activity{
			"deep-work": {ID: "deep-work", Name: "Deep Work", Duration: 90, Category: "work", Color: "#3B82F6", Icon: "💻", StartTime: models.Some(9 * 60)},
			"gym":       {ID: "gym", Name: "Gym", Duration: 60, Category: "health", Color: "#10B981", Icon: "🏋️", StartTime: models.Some(18 * 60)},
		},
		DailyRecords: map[string]models.DailyRecord{
			"2024-03-01": dayRec("2024-03-01", 100, map[string]models.ActivityRecord{"deep-work": doneRec(90), "gym": doneRec(60)}),
			"2024-03-02": dayRec("2024-03-02", 50, map[string]models.ActivityRecord{"deep-work": doneRec(90)}),
			"2024-03-08": dayRec("2024-03-08", 50, map[string]models.ActivityRecord{"gym": doneRec(45)}),
			"2024-03-09": dayRec("2024-03-09", 100, map[string]models.ActivityRecord{"deep-work": doneRec(0), "gym": doneRec(60)}),
		},
		Streaks:     models.Streaks{Current: 2, Best: 5, LastUpdate: "2024-03-09"},
		Preferences: models.Preferences{CompletionGoal: 70},
	}
}
