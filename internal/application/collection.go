// internal/application/collection.go
package application

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/normalize"
)

type Status int

const (
	StatusIdle Status = iota
	StatusRestoring
	StatusOptimistic
	StatusFetching
	StatusReconciled
	StatusFetchFailed
)

func (s Status) String() string {
	switch s {
	case StatusRestoring:
		return "restoring"
	case StatusOptimistic:
		return "optimistic"
	case StatusFetching:
		return "fetching"
	case StatusReconciled:
		return "reconciled"
	case StatusFetchFailed:
		return "fetch_failed"
	default:
		return "idle"
	}
}

// State is a point-in-time view of a collection. Err is the last fetch
// failure; SoftError is set only when that failure left nothing to show.
type State[T any] struct {
	Status    Status
	Items     []T
	Err       error
	SoftError error
	UpdatedAt time.Time
}

// FetchFunc retrieves and normalizes the authoritative list.
type FetchFunc[T any] func(ctx context.Context) (normalize.Result[T], error)

// Collection holds one server-owned list: restored from its snapshot,
// optimistically extended, and replaced by each successful fetch.
//
// Every Refresh takes a sequence number when issued. A response is applied
// only if no later-issued response has been applied already, so overlapping
// fetches settle on the newest one regardless of arrival order.
type Collection[T any] struct {
	name     string
	fetch    FetchFunc[T]
	snapshot *Snapshot[T]
	log      *zap.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu       sync.Mutex
	state    State[T]
	settled  Status
	issued   uint64
	applied  uint64
	epoch    uint64
	inflight int
	subs     map[int]func(State[T])
	nextSub  int

	persistMu sync.Mutex
}

// NewCollection builds a collection; snapshot may be nil for memory-only lists.
func NewCollection[T any](name string, fetch FetchFunc[T], snapshot *Snapshot[T], log *zap.Logger, rec *metrics.Recorder) *Collection[T] {
	return &Collection[T]{
		name:     name,
		fetch:    fetch,
		snapshot: snapshot,
		log:      logger.OrNop(log).With(zap.String("collection", name)),
		metrics:  rec,
		now:      time.Now,
		state:    State[T]{Items: []T{}},
		subs:     make(map[int]func(State[T])),
	}
}

// Restore loads the snapshot without any network call.
func (c *Collection[T]) Restore(ctx context.Context) []T {
	c.mu.Lock()
	c.state.Status = StatusRestoring
	c.mu.Unlock()

	var items []T
	if c.snapshot != nil {
		items = c.snapshot.Restore(ctx)
	}

	c.mu.Lock()
	if c.applied == 0 && c.inflight == 0 {
		c.state.Items = items
		if len(items) > 0 {
			c.state.Status = StatusOptimistic
		} else {
			c.state.Status = StatusIdle
		}
		c.settled = c.state.Status
	} else {
		c.state.Status = c.currentStatus()
	}
	out := c.snapshotState()
	c.mu.Unlock()

	c.notify(out)
	c.log.Debug("restored", zap.Int("items", len(items)))
	return items
}

// Refresh fetches the authoritative list and replaces the items on success.
// Failures keep the current items and are recorded on the state.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	epoch := c.epoch
	c.inflight++
	c.state.Status = StatusFetching
	out := c.snapshotState()
	c.mu.Unlock()
	c.notify(out)

	start := c.now()
	res, err := c.fetch(ctx)
	took := c.now().Sub(start)

	c.mu.Lock()
	c.inflight--
	if seq <= c.applied {
		c.state.Status = c.currentStatus()
		out = c.snapshotState()
		c.mu.Unlock()
		c.metrics.Fetch(c.name, metrics.OutcomeStale, took)
		c.log.Debug("discarding stale response", zap.Uint64("seq", seq))
		c.notify(out)
		return nil
	}
	if err != nil {
		c.settled = StatusFetchFailed
		c.state.Err = err
		c.state.SoftError = nil
		if len(c.state.Items) == 0 {
			c.state.SoftError = err
		}
		c.state.Status = c.currentStatus()
		out = c.snapshotState()
		c.mu.Unlock()
		c.metrics.Fetch(c.name, metrics.OutcomeFailure, took)
		c.log.Warn("fetch failed", zap.Error(err))
		c.notify(out)
		return err
	}

	c.applied = seq
	c.settled = StatusReconciled
	c.state.Items = res.Records
	c.state.Err = nil
	c.state.SoftError = nil
	c.state.UpdatedAt = c.now()
	c.state.Status = c.currentStatus()
	out = c.snapshotState()
	c.mu.Unlock()

	c.metrics.Fetch(c.name, metrics.OutcomeSuccess, took)
	c.metrics.Dropped(c.name, res.Dropped)
	if res.Dropped > 0 {
		c.log.Warn("dropped malformed records", zap.Int("dropped", res.Dropped))
	}
	c.persist(ctx, seq, epoch, res.Records)
	c.notify(out)
	return nil
}

// persist writes the snapshot unless a later response has already been
// applied or the collection was cleared since the request was issued.
func (c *Collection[T]) persist(ctx context.Context, seq, epoch uint64, items []T) {
	if c.snapshot == nil {
		return
	}
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	latest := seq == c.applied && epoch == c.epoch
	c.mu.Unlock()
	if !latest {
		return
	}
	if err := c.snapshot.Save(ctx, items); err != nil {
		c.log.Warn("snapshot write failed", zap.Error(err))
	}
}

// Append adds an item locally ahead of the server round-trip.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	items := make([]T, 0, len(c.state.Items)+1)
	items = append(items, c.state.Items...)
	c.state.Items = append(items, item)
	if c.inflight == 0 {
		c.state.Status = StatusOptimistic
	}
	out := c.snapshotState()
	c.mu.Unlock()
	c.notify(out)
}

// Update replaces every item matching match with fn(item) ahead of the
// server round-trip and reports whether anything matched.
func (c *Collection[T]) Update(match func(T) bool, fn func(T) T) bool {
	c.mu.Lock()
	items := make([]T, 0, len(c.state.Items))
	found := false
	for _, item := range c.state.Items {
		if match(item) {
			item = fn(item)
			found = true
		}
		items = append(items, item)
	}
	if !found {
		c.mu.Unlock()
		return false
	}
	c.state.Items = items
	if c.inflight == 0 {
		c.state.Status = StatusOptimistic
	}
	out := c.snapshotState()
	c.mu.Unlock()
	c.notify(out)
	return true
}

// Clear empties the collection and its snapshot. Responses to requests
// issued before the call are discarded when they arrive.
func (c *Collection[T]) Clear(ctx context.Context) error {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.mu.Lock()
	c.applied = c.issued
	c.epoch++
	c.settled = StatusIdle
	c.state = State[T]{Status: c.currentStatus(), Items: []T{}}
	out := c.snapshotState()
	c.mu.Unlock()
	c.notify(out)

	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Clear(ctx)
}

// Items returns a copy of the current items.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, c.state.Items...)
}

func (c *Collection[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotState()
}

// Subscribe registers fn for every state change and returns its cancel func.
func (c *Collection[T]) Subscribe(fn func(State[T])) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Collection[T]) currentStatus() Status {
	if c.inflight > 0 {
		return StatusFetching
	}
	return c.settled
}

// snapshotState copies the state; callers hold c.mu.
func (c *Collection[T]) snapshotState() State[T] {
	out := c.state
	out.Items = append([]T{}, c.state.Items...)
	return out
}

func (c *Collection[T]) notify(s State[T]) {
	c.mu.Lock()
	fns := make([]func(State[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}
