package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/focusflow/backend/internal/repository"
	"github.com/JonnyWalker81/focusflow/backend/internal/tracking"
)

func TestToggleActivityPersists(t *testing.T) {
	repo := newMockProfileStore(newTestProfile())
	svc := NewTrackingService(repo, FixedClock(testNow))

	result, err := svc.ToggleActivity(context.Background(), testProfileID, "deep-work")
	require.NoError(t, err)

	assert.True(t, result.Completed)
	assert.Equal(t, "2024-03-10", result.Date)
	assert.Equal(t, 50.0, result.Record.Rate())
	assert.Equal(t, 0, result.Streaks.Current, "below goal on a new day resets the streak")
	assert.Equal(t, 2, result.Streaks.PerfectDays)
	assert.Equal(t, 1, repo.saveCalls)

	stored := repo.stored(testProfileID)
	rec := stored.DailyRecords["2024-03-10"].Activities["deep-work"]
	assert.True(t, rec.Completed)
	assert.Equal(t, 90, rec.ActualDuration)
	assert.Equal(t, "2024-03-10", stored.Streaks.LastUpdate)
}

func TestToggleActivityErrors(t *testing.T) {
	t.Run("unknown activity", func(t *testing.T) {
		repo := newMockProfileStore(newTestProfile())
		svc := NewTrackingService(repo, FixedClock(testNow))

		_, err := svc.ToggleActivity(context.Background(), testProfileID, "nap")
		assert.ErrorIs(t, err, tracking.ErrActivityNotFound)
		assert.Equal(t, 0, repo.saveCalls)
	})

	t.Run("unknown profile", func(t *testing.T) {
		svc := NewTrackingService(newMockProfileStore(), FixedClock(testNow))

		_, err := svc.ToggleActivity(context.Background(), "missing", "gym")
		assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	})

	t.Run("save failure", func(t *testing.T) {
		repo := newMockProfileStore(newTestProfile())
		repo.saveErr = errors.New("disk full")
		svc := NewTrackingService(repo, FixedClock(testNow))

		_, err := svc.ToggleActivity(context.Background(), testProfileID, "gym")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		_, today := repo.stored(testProfileID).DailyRecords["2024-03-10"]
		assert.False(t, today)
	})
}

func TestToggleActivityConcurrent(t *testing.T) {
	repo := newMockProfileStore(newTestProfile())
	svc := NewTrackingService(repo, FixedClock(testNow))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ToggleActivity(context.Background(), testProfileID, "gym")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, repo.saveCalls)
	rec := repo.stored(testProfileID).DailyRecords["2024-03-10"].Activities["gym"]
	assert.False(t, rec.Completed, "an even number of toggles leaves the activity incomplete")
	assert.True(t, rec.Planned)
}

func TestSetFocusRating(t *testing.T) {
	repo := newMockProfileStore(newTestProfile())
	svc := NewTrackingService(repo, FixedClock(testNow))
	ctx := context.Background()

	_, err := svc.SetFocusRating(ctx, testProfileID, "gym", 4)
	assert.ErrorIs(t, err, tracking.ErrActivityNotCompleted)

	_, err = svc.ToggleActivity(ctx, testProfileID, "gym")
	require.NoError(t, err)

	_, err = svc.SetFocusRating(ctx, testProfileID, "gym", 6)
	assert.ErrorIs(t, err, tracking.ErrInvalidFocusRating)

	result, err := svc.SetFocusRating(ctx, testProfileID, "gym", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Record.Activities["gym"].FocusRating.Value)

	stored := repo.stored(testProfileID).DailyRecords["2024-03-10"].Activities["gym"]
	assert.True(t, stored.FocusRating.Valid)
	assert.Equal(t, 4, stored.FocusRating.Value)
}
