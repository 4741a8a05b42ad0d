// internal/ports/ports.go
package ports

//go:generate mockgen -destination=mock_ports.go -package=ports . StorePort,BackendPort

import (
	"context"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

// StorePort is the durable key-value capability. Get returns domain.ErrNotFound
// when the key is absent.
type StorePort interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// BackendPort is the remote source of truth. Every method returns the decoded
// JSON body untouched; shape handling belongs to the normalize package.
type BackendPort interface {
	SendCode(ctx context.Context, phone string) (any, error)
	VerifyCode(ctx context.Context, phone, code, name string, tenantID int64) (any, error)
	SetupPIN(ctx context.Context, tenantID int64, pin string) (any, error)
	LoginWithPIN(ctx context.Context, phone, pin string) (any, error)

	FetchSession(ctx context.Context, tenantID int64) (any, error)
	FetchCustomers(ctx context.Context, tenantID int64) (any, error)
	CreateCustomer(ctx context.Context, tenantID int64, fields map[string]any) (any, error)
	FetchCustomer(ctx context.Context, tenantID, locationID int64) (any, error)
	UpdateCustomer(ctx context.Context, tenantID, locationID int64, fields map[string]any) (any, error)
	FetchDashboard(ctx context.Context, tenantID int64) (any, error)

	FetchBucket(ctx context.Context, tenant domain.TenantRef, bucket domain.Bucket) (any, error)
	MutateOrder(ctx context.Context, orderID int64, tenant domain.TenantRef, action domain.OrderAction, fields map[string]any) (any, error)

	FetchPayments(ctx context.Context, tenantID int64) (any, error)
	FetchPendingPayments(ctx context.Context, tenantID int64) (any, error)
	RecordPayment(ctx context.Context, tenantID int64, fields map[string]any) (any, error)

	FetchNotifications(ctx context.Context, tenantID int64) (any, error)
	MarkNotificationRead(ctx context.Context, notificationID int64) (any, error)
}
