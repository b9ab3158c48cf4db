package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/example/commerce-dashboard/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRefresher(latency time.Duration) (*Refresher, *SnapshotStore) {
	s := NewSnapshotStore()
	cfg := dataset.Config{Products: 5, Customers: 5, Orders: 10}
	r := NewRefresher(s, cfg, dataset.SeededSource(1), latency)
	return r, s
}

func TestRefresher_InstallsSnapshot(t *testing.T) {
	r, s := newTestRefresher(0)

	generation, err := r.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(1), generation)

	snap, ok := s.Snapshot()
	require.True(t, ok)
	assert.Len(t, snap.Products, 5)
	assert.Len(t, snap.Orders, 10)
}

func TestRefresher_SingleFlight(t *testing.T) {
	r, _ := newTestRefresher(50 * time.Millisecond)

	var wg sync.WaitGroup
	results := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Refresh(context.Background())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, coalesced int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, ErrRefreshInFlight):
			coalesced++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 3, coalesced)
}

func TestRefresher_ContextCancelledDuringLatency(t *testing.T) {
	r, s := newTestRefresher(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := r.Refresh(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	_, ok := s.Snapshot()
	assert.False(t, ok)
}

func TestRefresher_ReleasesGuardAfterCompletion(t *testing.T) {
	r, _ := newTestRefresher(0)

	_, err := r.Refresh(context.Background())
	require.NoError(t, err)

	generation, err := r.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), generation)
}

func TestRefresher_InvalidConfigSurfaces(t *testing.T) {
	s := NewSnapshotStore()
	r := NewRefresher(s, dataset.Config{Orders: 10}, dataset.SeededSource(1), 0)

	_, err := r.Refresh(context.Background())

	assert.ErrorIs(t, err, dataset.ErrInvalidConfig)
	_, ok := s.Snapshot()
	assert.False(t, ok)
}
