// internal/application/coordinator.go
package application

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/metrics"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/normalize"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
	"github.com/mahabubulhasibshawon/storefront-sync/pkg/auth"
)

// Coordinator wires the session, the collections and the backend, and maps
// lifecycle events onto refreshes.
type Coordinator struct {
	Session         *SessionCache
	Auth            *AuthService
	Resolver        *IdentityResolver
	Customers       *Collection[domain.Customer]
	Orders          *OrderBuckets
	Payments        *Collection[domain.Payment]
	PendingPayments *Collection[domain.Payment]
	Notifications   *Collection[domain.Notification]

	backend ports.BackendPort
	log     *zap.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

func NewCoordinator(store ports.StorePort, backend ports.BackendPort, log *zap.Logger, rec *metrics.Recorder) *Coordinator {
	log = logger.OrNop(log)
	c := &Coordinator{
		Resolver: NewIdentityResolver(),
		backend:  backend,
		log:      log,
		metrics:  rec,
		now:      time.Now,
	}

	c.Customers = NewCollection("customers", c.fetchCustomers,
		NewSnapshot[domain.Customer](store, KeyCustomersSnapshot, log), log, rec)
	c.Payments = NewCollection("payments", c.fetchPayments, nil, log, rec)
	c.PendingPayments = NewCollection("payments.pending", c.fetchPendingPayments, nil, log, rec)
	c.Notifications = NewCollection("notifications", c.fetchNotifications, nil, log, rec)

	c.Session = NewSessionCache(store, log, c.Customers, c.Payments, c.PendingPayments, c.Notifications)
	c.Orders = NewOrderBuckets(backend, c.Resolver, c.Session, log, rec)
	c.Auth = NewAuthService(backend, c.Session, c.Resolver, log)
	return c
}

func (c *Coordinator) tenant() (int64, error) {
	return c.Resolver.RequestTenant(c.Session.Current())
}

func (c *Coordinator) fetchCustomers(ctx context.Context) (normalize.Result[domain.Customer], error) {
	id, err := c.tenant()
	if err != nil {
		return normalize.Result[domain.Customer]{}, err
	}
	payload, err := c.backend.FetchCustomers(ctx, id)
	if err != nil {
		return normalize.Result[domain.Customer]{}, err
	}
	return normalize.Customers(payload), nil
}

func (c *Coordinator) fetchPayments(ctx context.Context) (normalize.Result[domain.Payment], error) {
	id, err := c.tenant()
	if err != nil {
		return normalize.Result[domain.Payment]{}, err
	}
	payload, err := c.backend.FetchPayments(ctx, id)
	if err != nil {
		return normalize.Result[domain.Payment]{}, err
	}
	return normalize.Payments(payload), nil
}

func (c *Coordinator) fetchPendingPayments(ctx context.Context) (normalize.Result[domain.Payment], error) {
	id, err := c.tenant()
	if err != nil {
		return normalize.Result[domain.Payment]{}, err
	}
	payload, err := c.backend.FetchPendingPayments(ctx, id)
	if err != nil {
		return normalize.Result[domain.Payment]{}, err
	}
	return normalize.Payments(payload), nil
}

func (c *Coordinator) fetchNotifications(ctx context.Context) (normalize.Result[domain.Notification], error) {
	id, err := c.tenant()
	if err != nil {
		return normalize.Result[domain.Notification]{}, err
	}
	payload, err := c.backend.FetchNotifications(ctx, id)
	if err != nil {
		return normalize.Result[domain.Notification]{}, err
	}
	return normalize.Notifications(payload), nil
}

// Start restores the session and the customers snapshot. It makes no network
// calls; the returned supplier is nil when signed out.
func (c *Coordinator) Start(ctx context.Context) *domain.Supplier {
	supplier, err := c.Session.Restore(ctx)
	if err != nil {
		c.log.Info("no stored session")
		return nil
	}
	if tok, err := c.Session.Token(ctx); err == nil && tok != "" {
		if claims, err := auth.Inspect(tok); err == nil && claims.Expired(c.now()) {
			c.log.Warn("stored token has expired", zap.Int64("supplier_id", supplier.ID))
		}
	}
	customers := c.Customers.Restore(ctx)
	c.log.Info("session restored", zap.Int64("supplier_id", supplier.ID), zap.Int("customers", len(customers)))
	return supplier
}

// OnMount refreshes every collection when a session exists.
func (c *Coordinator) OnMount(ctx context.Context) {
	c.refreshAll(ctx)
}

// OnFocus is the same reconciliation as OnMount, triggered on re-activation.
func (c *Coordinator) OnFocus(ctx context.Context) {
	c.refreshAll(ctx)
}

func (c *Coordinator) refreshAll(ctx context.Context) {
	if !c.Session.Current().Complete() {
		return
	}
	var unauthorized atomic.Bool
	run := func(refresh func(context.Context) error) func() error {
		return func() error {
			if err := refresh(ctx); errors.Is(err, domain.ErrUnauthorized) {
				unauthorized.Store(true)
			}
			return nil
		}
	}

	var g errgroup.Group
	g.Go(run(func(ctx context.Context) error {
		_, err := c.Auth.RefreshSession(ctx)
		return err
	}))
	g.Go(run(c.Customers.Refresh))
	g.Go(run(c.Orders.Refresh))
	g.Go(run(c.Payments.Refresh))
	g.Go(run(c.PendingPayments.Refresh))
	g.Go(run(c.Notifications.Refresh))
	_ = g.Wait()

	if unauthorized.Load() {
		c.OnAuthFailure(ctx)
	}
}

// OnAuthFailure signs out after the backend rejected the stored credentials.
func (c *Coordinator) OnAuthFailure(ctx context.Context) {
	c.log.Warn("credentials rejected, signing out")
	if err := c.Logout(ctx); err != nil {
		c.log.Error("logout failed", zap.Error(err))
	}
}

func (c *Coordinator) Logout(ctx context.Context) error {
	if err := c.Auth.Logout(ctx); err != nil {
		return err
	}
	return c.Orders.Clear(ctx)
}

// AddCustomer shows the customer immediately, creates it and reconciles the
// list with the server whatever the outcome.
func (c *Coordinator) AddCustomer(ctx context.Context, customer domain.Customer, fields map[string]any) error {
	if customer.Name == "" {
		return errors.New("customer name is required")
	}
	id, err := c.tenant()
	if err != nil {
		return err
	}
	c.Customers.Append(customer)

	_, err = c.backend.CreateCustomer(ctx, id, fields)
	c.metrics.Mutation("create_customer", outcome(err))
	if rerr := c.Customers.Refresh(ctx); rerr != nil {
		c.log.Warn("customers refetch failed", zap.Error(rerr))
	}
	if err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// UpdateCustomer replaces the location's record with updated at once, sends
// fields as the patch and reconciles the list with the server either way.
func (c *Coordinator) UpdateCustomer(ctx context.Context, updated domain.Customer, fields map[string]any) error {
	if updated.LocationID <= 0 {
		return errors.New("customer location id is required")
	}
	id, err := c.tenant()
	if err != nil {
		return err
	}
	if !c.Customers.Update(func(cu domain.Customer) bool { return cu.LocationID == updated.LocationID },
		func(domain.Customer) domain.Customer { return updated }) {
		c.log.Debug("updating customer not in list", zap.Int64("location_id", updated.LocationID))
	}

	_, err = c.backend.UpdateCustomer(ctx, id, updated.LocationID, fields)
	c.metrics.Mutation("update_customer", outcome(err))
	if rerr := c.Customers.Refresh(ctx); rerr != nil {
		c.log.Warn("customers refetch failed", zap.Error(rerr))
	}
	if err != nil {
		return fmt.Errorf("update customer %d: %w", updated.LocationID, err)
	}
	return nil
}

// CustomerDetails fetches one customer location from the backend.
func (c *Coordinator) CustomerDetails(ctx context.Context, locationID int64) (domain.Customer, error) {
	id, err := c.tenant()
	if err != nil {
		return domain.Customer{}, err
	}
	payload, err := c.backend.FetchCustomer(ctx, id, locationID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("fetch customer %d: %w", locationID, err)
	}
	customer, ok := normalize.CustomerDetails(payload)
	if !ok {
		return domain.Customer{}, fmt.Errorf("customer %d: %w", locationID, domain.ErrNotFound)
	}
	return customer, nil
}

// Dashboard fetches the supplier's summary counters. They are not cached.
func (c *Coordinator) Dashboard(ctx context.Context) (domain.DashboardMetrics, error) {
	id, err := c.tenant()
	if err != nil {
		return domain.DashboardMetrics{}, err
	}
	payload, err := c.backend.FetchDashboard(ctx, id)
	if err != nil {
		return domain.DashboardMetrics{}, fmt.Errorf("fetch dashboard: %w", err)
	}
	return normalize.Dashboard(payload), nil
}

func (c *Coordinator) AcceptOrder(ctx context.Context, order domain.Order) (MutationOutcome, error) {
	return c.Orders.Accept(ctx, order)
}

func (c *Coordinator) CompleteOrder(ctx context.Context, order domain.Order) (MutationOutcome, error) {
	return c.Orders.Complete(ctx, order, map[string]any{
		"deliveredAt": c.now().UTC().Format(time.RFC3339),
	})
}

func (c *Coordinator) RecordPayment(ctx context.Context, fields map[string]any) error {
	id, err := c.tenant()
	if err != nil {
		return err
	}
	_, err = c.backend.RecordPayment(ctx, id, fields)
	c.metrics.Mutation("record_payment", outcome(err))

	var g errgroup.Group
	g.Go(func() error { return c.Payments.Refresh(ctx) })
	g.Go(func() error { return c.PendingPayments.Refresh(ctx) })
	_ = g.Wait()

	if err != nil {
		return fmt.Errorf("record payment: %w", err)
	}
	return nil
}

func (c *Coordinator) MarkNotificationRead(ctx context.Context, notificationID int64) error {
	_, err := c.backend.MarkNotificationRead(ctx, notificationID)
	c.metrics.Mutation("mark_notification_read", outcome(err))
	_ = c.Notifications.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (c *Coordinator) UnreadCount() int {
	n := 0
	for _, item := range c.Notifications.Items() {
		if !item.IsRead {
			n++
		}
	}
	return n
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrWriteConflict):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeFailure
	}
}
