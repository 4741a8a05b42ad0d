// internal/adapters/grpc/client.go
package grpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

// TokenSource yields the bearer token for outgoing calls; "" sends none.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

var _ ports.BackendPort = (*Client)(nil)

// Client implements ports.BackendPort over a gRPC connection.
type Client struct {
	conn    grpc.ClientConnInterface
	tokens  TokenSource
	timeout time.Duration
}

func NewClient(conn grpc.ClientConnInterface, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{conn: conn, tokens: tokens, timeout: timeout}
}

// Dial opens a plaintext connection to addr.
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func (c *Client) call(ctx context.Context, method string, in map[string]any) (any, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", method, err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: token: %w", method, err)
		}
		if tok != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok)
		}
	}

	out := new(structpb.Value)
	if err := c.conn.Invoke(ctx, FullMethod(method), req, out); err != nil {
		return nil, fromStatus(err)
	}
	return out.AsInterface(), nil
}

func (c *Client) SendCode(ctx context.Context, phone string) (any, error) {
	return c.call(ctx, MethodSendCode, map[string]any{"phone": phone})
}

func (c *Client) VerifyCode(ctx context.Context, phone, code, name string, tenantID int64) (any, error) {
	return c.call(ctx, MethodVerifyCode, map[string]any{"phone": phone, "code": code, "name": name, "tenant_id": tenantID})
}

func (c *Client) SetupPIN(ctx context.Context, tenantID int64, pin string) (any, error) {
	return c.call(ctx, MethodSetupPIN, map[string]any{"tenant_id": tenantID, "pin": pin})
}

func (c *Client) LoginWithPIN(ctx context.Context, phone, pin string) (any, error) {
	return c.call(ctx, MethodLoginWithPIN, map[string]any{"phone": phone, "pin": pin})
}

func (c *Client) FetchSession(ctx context.Context, tenantID int64) (any, error) {
	return c.call(ctx, MethodFetchSession, map[string]any{"tenant_id": tenantID})
}

func (c *Client) FetchCustomers(ctx context.Context, tenantID int64) (any, error) {
	return c.call(ctx, MethodFetchCustomers, map[string]any{"tenant_id": tenantID})
}

func (c *Client) CreateCustomer(ctx context.Context, tenantID int64, fields map[string]any) (any, error) {
	return c.call(ctx, MethodCreateCustomer, map[string]any{"tenant_id": tenantID, "fields": orEmpty(fields)})
}

func (c *Client) FetchCustomer(ctx context.Context, tenantID, locationID int64) (any, error) {
	return c.call(ctx, MethodFetchCustomer, map[string]any{"tenant_id": tenantID, "location_id": locationID})
}

func (c *Client) UpdateCustomer(ctx context.Context, tenantID, locationID int64, fields map[string]any) (any, error) {
	return c.call(ctx, MethodUpdateCustomer, map[string]any{"tenant_id": tenantID, "location_id": locationID, "fields": orEmpty(fields)})
}

func (c *Client) FetchDashboard(ctx context.Context, tenantID int64) (any, error) {
	return c.call(ctx, MethodFetchDashboard, map[string]any{"tenant_id": tenantID})
}

func (c *Client) FetchBucket(ctx context.Context, tenant domain.TenantRef, bucket domain.Bucket) (any, error) {
	return c.call(ctx, MethodFetchBucket, map[string]any{
		"tenant_id":   tenant.ID,
		"tenant_code": tenant.Code,
		"bucket":      string(bucket),
	})
}

func (c *Client) MutateOrder(ctx context.Context, orderID int64, tenant domain.TenantRef, action domain.OrderAction, fields map[string]any) (any, error) {
	return c.call(ctx, MethodMutateOrder, map[string]any{
		"order_id":    orderID,
		"tenant_id":   tenant.ID,
		"tenant_code": tenant.Code,
		"action":      string(action),
		"fields":      orEmpty(fields),
	})
}

func (c *Client) FetchPayments(ctx context.Context, tenantID int64) (any, error) {
	return c.call(ctx, MethodFetchPayments, map[string]any{"tenant_id": tenantID})
}

func (c *Client) FetchPendingPayments(ctx context.Context, tenantID int64) (any, error) {
	return c.call(ctx, MethodFetchPendingPayments, map[string]any{"tenant_id": tenantID})
}

func (c *Client) RecordPayment(ctx context.Context, tenantID int64, fields map[string]any) (any, error) {
	return c.call(ctx, MethodRecordPayment, map[string]any{"tenant_id": tenantID, "fields": orEmpty(fields)})
}

func (c *Client) FetchNotifications(ctx context.Context, tenantID int64) (any, error) {
	return c.call(ctx, MethodFetchNotifications, map[string]any{"tenant_id": tenantID})
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) (any, error) {
	return c.call(ctx, MethodMarkNotificationRead, map[string]any{"notification_id": notificationID})
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
