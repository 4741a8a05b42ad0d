// internal/application/order_buckets.go
package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/normalize"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

type MutationOutcome int

const (
	MutationApplied MutationOutcome = iota
	MutationConflict
	MutationFailed
)

func (o MutationOutcome) String() string {
	switch o {
	case MutationApplied:
		return "applied"
	case MutationConflict:
		return "conflict"
	default:
		return "failed"
	}
}

// SessionSource yields the signed-in supplier, or nil.
type SessionSource interface {
	Current() *domain.Supplier
}

// BucketState is the per-bucket view. Err is the last fetch failure.
type BucketState struct {
	Orders    []domain.Order
	Fetching  bool
	Err       error
	UpdatedAt time.Time
}

type bucketSlot struct {
	orders    []domain.Order
	err       error
	issued    uint64
	applied   uint64
	inflight  int
	updatedAt time.Time
}

// OrderBuckets keeps the pending, accepted and completed order lists. The
// buckets are fetched in parallel and fail independently: a failed bucket
// keeps what it had.
type OrderBuckets struct {
	backend  ports.BackendPort
	resolver *IdentityResolver
	session  SessionSource
	log      *zap.Logger
	metrics  *metrics.Recorder
	now      func() time.Time

	mu    sync.Mutex
	slots map[domain.Bucket]*bucketSlot
	subs  map[int]func(map[domain.Bucket]BucketState)
	next  int
}

func NewOrderBuckets(backend ports.BackendPort, resolver *IdentityResolver, session SessionSource, log *zap.Logger, rec *metrics.Recorder) *OrderBuckets {
	b := &OrderBuckets{
		backend:  backend,
		resolver: resolver,
		session:  session,
		log:      logger.OrNop(log).With(zap.String("collection", "orders")),
		metrics:  rec,
		now:      time.Now,
		slots:    make(map[domain.Bucket]*bucketSlot, len(domain.Buckets)),
		subs:     make(map[int]func(map[domain.Bucket]BucketState)),
	}
	for _, bucket := range domain.Buckets {
		b.slots[bucket] = &bucketSlot{orders: []domain.Order{}}
	}
	return b
}

// Refresh fetches every bucket concurrently. It returns domain.ErrNoTenant
// without sending anything when no tenant can be resolved; per-bucket
// failures are recorded on the bucket state, never returned.
func (b *OrderBuckets) Refresh(ctx context.Context) error {
	id, err := b.resolver.RequestTenant(b.session.Current())
	if err != nil {
		return err
	}
	tenant := domain.TenantRef{ID: id}

	var g errgroup.Group
	for _, bucket := range domain.Buckets {
		g.Go(func() error {
			b.fetch(ctx, tenant, bucket)
			return nil
		})
	}
	return g.Wait()
}

func (b *OrderBuckets) fetch(ctx context.Context, tenant domain.TenantRef, bucket domain.Bucket) {
	name := "orders." + string(bucket)

	b.mu.Lock()
	slot := b.slots[bucket]
	slot.issued++
	seq := slot.issued
	slot.inflight++
	b.mu.Unlock()
	b.notify()

	start := b.now()
	payload, err := b.backend.FetchBucket(ctx, tenant, bucket)
	took := b.now().Sub(start)

	var res normalize.Result[domain.Order]
	if err == nil {
		res = normalize.Orders(payload)
	}

	b.mu.Lock()
	slot.inflight--
	switch {
	case seq <= slot.applied:
		b.mu.Unlock()
		b.metrics.Fetch(name, metrics.OutcomeStale, took)
	case err != nil:
		slot.err = err
		b.mu.Unlock()
		b.metrics.Fetch(name, metrics.OutcomeFailure, took)
		b.log.Warn("bucket fetch failed", zap.String("bucket", string(bucket)), zap.Error(err))
	default:
		slot.applied = seq
		slot.orders = res.Records
		slot.err = nil
		slot.updatedAt = b.now()
		b.mu.Unlock()
		b.metrics.Fetch(name, metrics.OutcomeSuccess, took)
		b.metrics.Dropped("orders", res.Dropped)
		if res.Nested > 0 {
			b.log.Debug("nested order payloads", zap.String("bucket", string(bucket)), zap.Int("nested", res.Nested))
		}
	}
	b.notify()
}

// Accept moves a pending order to accepted.
func (b *OrderBuckets) Accept(ctx context.Context, order domain.Order) (MutationOutcome, error) {
	return b.mutate(ctx, order, domain.ActionAccept, nil)
}

// Complete moves an accepted order to completed.
func (b *OrderBuckets) Complete(ctx context.Context, order domain.Order, fields map[string]any) (MutationOutcome, error) {
	return b.mutate(ctx, order, domain.ActionComplete, fields)
}

// mutate moves the order optimistically, sends the write and refetches all
// buckets whatever the outcome. A write conflict is an expected outcome and
// is reported as MutationConflict without an error.
func (b *OrderBuckets) mutate(ctx context.Context, order domain.Order, action domain.OrderAction, fields map[string]any) (MutationOutcome, error) {
	from, to, ok := action.Transition()
	if !ok {
		return MutationFailed, fmt.Errorf("unknown order action %q", action)
	}
	tenant, err := b.resolver.OrderTenant(order, b.session.Current())
	if err != nil {
		b.metrics.Mutation(string(action), metrics.OutcomeAbandoned)
		b.log.Warn("order mutation abandoned", zap.Int64("order_id", order.ID), zap.Error(err))
		return MutationFailed, err
	}

	b.move(order, from, to)

	_, err = b.backend.MutateOrder(ctx, order.ID, tenant, action, fields)
	outcome := MutationApplied
	switch {
	case errors.Is(err, domain.ErrWriteConflict):
		outcome = MutationConflict
		b.metrics.Mutation(string(action), metrics.OutcomeConflict)
		b.log.Info("order changed on server, refetching", zap.Int64("order_id", order.ID))
		err = nil
	case err != nil:
		outcome = MutationFailed
		b.metrics.Mutation(string(action), metrics.OutcomeFailure)
		err = fmt.Errorf("%s order %d: %w", action, order.ID, err)
	default:
		b.metrics.Mutation(string(action), metrics.OutcomeSuccess)
	}

	if rerr := b.Refresh(ctx); rerr != nil {
		b.log.Warn("refetch after mutation skipped", zap.Error(rerr))
	}
	return outcome, err
}

func (b *OrderBuckets) move(order domain.Order, from, to domain.Bucket) {
	b.mu.Lock()
	src := b.slots[from]
	kept := make([]domain.Order, 0, len(src.orders))
	for _, o := range src.orders {
		if o.ID != order.ID {
			kept = append(kept, o)
		}
	}
	src.orders = kept
	moved := order
	moved.Status = string(to)
	dst := b.slots[to]
	dst.orders = append(append(make([]domain.Order, 0, len(dst.orders)+1), dst.orders...), moved)
	b.mu.Unlock()
	b.notify()
}

// Bucket returns a copy of one bucket's orders.
func (b *OrderBuckets) Bucket(bucket domain.Bucket) []domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	slot, ok := b.slots[bucket]
	if !ok {
		return []domain.Order{}
	}
	return append([]domain.Order{}, slot.orders...)
}

func (b *OrderBuckets) State() map[domain.Bucket]BucketState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *OrderBuckets) stateLocked() map[domain.Bucket]BucketState {
	out := make(map[domain.Bucket]BucketState, len(b.slots))
	for bucket, slot := range b.slots {
		out[bucket] = BucketState{
			Orders:    append([]domain.Order{}, slot.orders...),
			Fetching:  slot.inflight > 0,
			Err:       slot.err,
			UpdatedAt: slot.updatedAt,
		}
	}
	return out
}

// Clear empties every bucket and discards responses still in flight.
func (b *OrderBuckets) Clear(context.Context) error {
	b.mu.Lock()
	for _, slot := range b.slots {
		slot.applied = slot.issued
		slot.orders = []domain.Order{}
		slot.err = nil
		slot.updatedAt = time.Time{}
	}
	b.mu.Unlock()
	b.notify()
	return nil
}

func (b *OrderBuckets) Subscribe(fn func(map[domain.Bucket]BucketState)) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

func (b *OrderBuckets) notify() {
	b.mu.Lock()
	if len(b.subs) == 0 {
		b.mu.Unlock()
		return
	}
	state := b.stateLocked()
	fns := make([]func(map[domain.Bucket]BucketState), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn(state)
	}
}
