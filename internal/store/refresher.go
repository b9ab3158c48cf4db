package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/example/commerce-dashboard/internal/dataset"
)

// ErrRefreshInFlight is returned when a regeneration is already running;
// callers are expected to treat it as "your refresh is on its way".
var ErrRefreshInFlight = errors.New("refresh already in progress")

// Refresher regenerates the dataset and installs it into the snapshot store.
// A simulated latency imitates a real backend round trip, and a single-flight
// guard keeps at most one regeneration running at a time.
type Refresher struct {
	store   *SnapshotStore
	cfg     dataset.Config
	src     dataset.Source
	latency time.Duration
	now     func() time.Time

	mu       sync.Mutex
	inFlight bool
}

func NewRefresher(store *SnapshotStore, cfg dataset.Config, src dataset.Source, latency time.Duration) *Refresher {
	return &Refresher{
		store:   store,
		cfg:     cfg,
		src:     src,
		latency: latency,
		now:     time.Now,
	}
}

// Refresh regenerates the dataset and swaps it in, returning the new
// generation number. Returns ErrRefreshInFlight if another refresh is
// running, and the context error if the caller goes away during the
// simulated latency.
func (r *Refresher) Refresh(ctx context.Context) (uint64, error) {
	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return 0, ErrRefreshInFlight
	}
	r.inFlight = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inFlight = false
		r.mu.Unlock()
	}()

	if r.latency > 0 {
		select {
		case <-time.After(r.latency):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	snap, err := dataset.Generate(r.cfg, r.src, r.now())
	if err != nil {
		return 0, err
	}

	generation := r.store.Replace(snap)
	log.Printf("[Store] Snapshot %d installed: %d products, %d customers, %d orders",
		generation, len(snap.Products), len(snap.Customers), len(snap.Orders))
	return generation, nil
}
