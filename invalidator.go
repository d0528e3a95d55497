package annotile

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/paulmach/orb/maptile"
	"golang.org/x/time/rate"

	"github.com/hupe1980/annotile/scheduler"
)

type invalidatorOptions struct {
	window    time.Duration
	flushRate rate.Limit
	pool      *scheduler.Pool
}

// InvalidatorOption configures TileInvalidator constructor behavior.
type InvalidatorOption func(*invalidatorOptions)

// WithCoalesceWindow sets how long invalidations are merged before delivery.
// Non-positive values are ignored.
func WithCoalesceWindow(d time.Duration) InvalidatorOption {
	return func(o *invalidatorOptions) {
		if d > 0 {
			o.window = d
		}
	}
}

// WithFlushRate caps deliveries to the listener at r per second. The default
// is unlimited.
func WithFlushRate(r rate.Limit) InvalidatorOption {
	return func(o *invalidatorOptions) {
		o.flushRate = r
	}
}

// WithScheduler runs delivery on a shared pool. The caller keeps ownership of
// the pool; Close will not shut it down.
func WithScheduler(pool *scheduler.Pool) InvalidatorOption {
	return func(o *invalidatorOptions) {
		o.pool = pool
	}
}

// TileInvalidator coalesces tile invalidations and delivers them to a
// listener in batches, so a burst of edits touching the same tiles costs one
// notification.
//
// Feed it the affected tiles returned by Manager.AddPointAnnotations and
// Manager.RemoveAnnotations.
type TileInvalidator struct {
	listener func([]maptile.Tile)
	window   time.Duration
	limiter  *rate.Limiter
	pool     *scheduler.Pool
	ownsPool bool

	mu        sync.Mutex
	pending   map[maptile.Tile]struct{}
	scheduled *scheduler.Task
	closed    bool
}

// NewTileInvalidator creates an invalidator delivering to listener. Unless
// WithScheduler provides a shared pool, it runs its own single worker.
func NewTileInvalidator(listener func([]maptile.Tile), optFns ...InvalidatorOption) *TileInvalidator {
	opts := invalidatorOptions{
		window:    100 * time.Millisecond,
		flushRate: rate.Inf,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	pool := opts.pool
	ownsPool := false
	if pool == nil {
		pool = scheduler.NewPool(1)
		ownsPool = true
	}

	return &TileInvalidator{
		listener: listener,
		window:   opts.window,
		limiter:  rate.NewLimiter(opts.flushRate, 1),
		pool:     pool,
		ownsPool: ownsPool,
		pending:  make(map[maptile.Tile]struct{}),
	}
}

// Invalidate merges tiles into the pending batch and arms the delivery timer
// if it is not already armed. Calls after Close are ignored.
func (ti *TileInvalidator) Invalidate(tiles []maptile.Tile) {
	if len(tiles) == 0 {
		return
	}

	ti.mu.Lock()
	defer ti.mu.Unlock()

	if ti.closed {
		return
	}

	for _, key := range tiles {
		ti.pending[key] = struct{}{}
	}

	if ti.scheduled == nil {
		ti.scheduled = ti.pool.ScheduleAfter(ti.window, ti.flush)
	}
}

// Flush delivers the pending batch immediately instead of waiting out the
// coalescing window.
func (ti *TileInvalidator) Flush() {
	ti.mu.Lock()
	if ti.scheduled != nil {
		ti.scheduled.Cancel()
		ti.scheduled = nil
	}
	ti.mu.Unlock()

	ti.flush()
}

func (ti *TileInvalidator) flush() {
	ti.mu.Lock()

	ti.scheduled = nil
	if len(ti.pending) == 0 {
		ti.mu.Unlock()
		return
	}

	batch := make([]maptile.Tile, 0, len(ti.pending))
	for key := range ti.pending {
		batch = append(batch, key)
	}
	ti.pending = make(map[maptile.Tile]struct{}, len(batch))

	ti.mu.Unlock()

	sort.Slice(batch, func(i, j int) bool {
		a, b := batch[i], batch[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	_ = ti.limiter.Wait(context.Background())
	ti.listener(batch)
}

// Close delivers any pending batch, stops the timer, and shuts down the pool
// if the invalidator owns it. It is idempotent.
func (ti *TileInvalidator) Close() error {
	ti.mu.Lock()
	if ti.closed {
		ti.mu.Unlock()
		return nil
	}
	ti.closed = true
	if ti.scheduled != nil {
		ti.scheduled.Cancel()
		ti.scheduled = nil
	}
	ti.mu.Unlock()

	ti.flush()

	if ti.ownsPool {
		return ti.pool.Close()
	}
	return nil
}
