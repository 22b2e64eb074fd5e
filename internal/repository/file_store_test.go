package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/focusflow/backend/internal/models"
)

func sampleProfile(id, name string) *models.Profile {
	return &models.Profile{
		ID:   id,
		Name: name,
		Type: string(models.ProfileProfessional),
		Activities: map[string]models.Activity{
			"deep-work": {ID: "deep-work", Name: "Deep Work", Duration: 120, Category: "work"},
		},
		DailyRecords: map[string]models.DailyRecord{
			"2024-03-10": {
				Date: "2024-03-10",
				Activities: map[string]models.ActivityRecord{
					"deep-work": {Completed: true, Planned: true, ActualDuration: 100, FocusRating: models.Some(4)},
				},
				CompletionRate: models.Some(100.0),
			},
		},
		Streaks: models.Streaks{Current: 1, Best: 3},
	}
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = store.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestFileStoreSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleProfile("p1", "Alex")))
	require.NoError(t, store.SetCurrentProfile(ctx, "p1"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
	rec := got.DailyRecords["2024-03-10"].Activities["deep-work"]
	assert.True(t, rec.FocusRating.Valid)
	assert.Equal(t, 4, rec.FocusRating.Value)
	assert.False(t, rec.CompletedAt.Valid)

	settings, err := reopened.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings.CurrentProfile)
	assert.Equal(t, "p1", *settings.CurrentProfile)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files must not be left behind")
}

func TestFileStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore("")
	require.NoError(t, err)

	original := sampleProfile("p1", "Alex")
	require.NoError(t, store.Save(ctx, original))
	original.Name = "changed after save"

	got, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)

	got.DailyRecords["2024-03-10"].Activities["deep-work"] = models.ActivityRecord{}
	again, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, again.DailyRecords["2024-03-10"].Activities["deep-work"].Completed)
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore("")
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, sampleProfile("p2", "Sam")))
	require.NoError(t, store.Save(ctx, sampleProfile("p1", "Alex")))
	require.NoError(t, store.Save(ctx, sampleProfile("p0", "Sam")))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"p1", "p0", "p2"}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, 1, list[0].ActivityCount)
	assert.Equal(t, 1, list[0].RecordedDays)
	assert.Equal(t, 1, list[0].CurrentStreak)
}

func TestFileStoreRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore("")
	require.NoError(t, err)

	assert.Error(t, store.Save(ctx, nil))
	assert.Error(t, store.Save(ctx, &models.Profile{}))
	assert.ErrorIs(t, store.SetCurrentProfile(ctx, "missing"), ErrProfileNotFound)
}

func TestFileStoreRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"9.9","profiles":{}}`), 0o644))

	_, err := NewFileStore(path)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestFileStoreRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestFileStoreFillsMissingIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{"version":"1.0","profiles":{"abc":{"name":"Kim","activities":{},"dailyRecords":{}}},"settings":{"currentProfile":null}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	store, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := store.GetByID(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", got.ID)
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	store, err := NewFileStore("")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, sampleProfile("p1", "Alex")), context.Canceled)
}

func TestFileStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, sampleProfile("p1", "Alex")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			p, err := store.GetByID(ctx, "p1")
			if err == nil {
				p.Streaks.Current++
				_ = store.Save(ctx, p)
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	got, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Streaks.Current, 2)
}
