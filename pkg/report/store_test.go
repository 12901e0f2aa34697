package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pbanos/grove/pkg/grove"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close(ctx)

	first := &grove.Report{Seed: 1, Folds: 2}
	second := &grove.Report{Seed: 2, Folds: 3, CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	_, err := uuid.Parse(first.ID)
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 2020, second.CreatedAt.Year())

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, ids)

	got, err := store.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	missing, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewMemoryStore()
	assert.ErrorIs(t, store.Create(ctx, &grove.Report{}), context.Canceled)
	ids, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}
