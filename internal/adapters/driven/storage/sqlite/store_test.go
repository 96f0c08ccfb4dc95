package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly-sub000/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_RecordAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := domain.DiffRun{
		ID:        uuid.New().String(),
		Kind:      domain.RunKindGeneric,
		OldSource: "old.yaml",
		NewSource: "new.yaml",
		Changes:   3,
		RanAt:     time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Record(ctx, run))

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, domain.RunKindGeneric, runs[0].Kind)
	assert.Equal(t, "old.yaml", runs[0].OldSource)
	assert.Equal(t, 3, runs[0].Changes)
	assert.True(t, run.RanAt.Equal(runs[0].RanAt))
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		run := domain.DiffRun{
			ID:        uuid.New().String(),
			Kind:      domain.RunKindDocument,
			OldSource: "a",
			NewSource: "b",
			RanAt:     base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Record(ctx, run))
	}

	runs, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.True(t, runs[0].RanAt.After(runs[1].RanAt))
	assert.True(t, runs[1].RanAt.After(runs[2].RanAt))
}

func TestStore_ListHonoursLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, domain.DiffRun{
			ID:    uuid.New().String(),
			Kind:  domain.RunKindGeneric,
			RanAt: time.Now().UTC(),
		}))
	}

	runs, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_ListEmpty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}
