// internal/adapters/rest/client.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

// TokenSource yields the bearer token; "" sends the request unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

var _ ports.BackendPort = (*Client)(nil)

// Client implements ports.BackendPort against the JSON HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// conflictCodes are error codes the backend uses for a stale write.
var conflictCodes = map[string]bool{
	"CONFLICT":              true,
	"ORDER_STATUS_CONFLICT": true,
	"INVALID_TRANSITION":    true,
	"ALREADY_ACCEPTED":      true,
}

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s %s: token: %w", method, path, err)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, statusError(method, path, res.StatusCode, data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return out, nil
}

func statusError(method, path string, code int, body []byte) error {
	var e apiError
	_ = json.Unmarshal(body, &e)
	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	switch {
	case code == http.StatusUnauthorized:
		return fmt.Errorf("%s %s: %w: %s", method, path, domain.ErrUnauthorized, msg)
	case code == http.StatusConflict || conflictCodes[strings.ToUpper(e.Code)]:
		return fmt.Errorf("%s %s: %w: %s", method, path, domain.ErrWriteConflict, msg)
	case code == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w: %s", method, path, domain.ErrNotFound, msg)
	}
	return fmt.Errorf("%s %s: status %d: %s", method, path, code, msg)
}

func tenantQuery(id int64) url.Values {
	return url.Values{"supplierId": {strconv.FormatInt(id, 10)}}
}

func withTenant(fields map[string]any, id int64) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["supplierId"] = id
	return out
}

func (c *Client) SendCode(ctx context.Context, phone string) (any, error) {
	return c.do(ctx, http.MethodPost, "/auth/send-otp", nil, map[string]any{"phoneNumber": phone})
}

func (c *Client) VerifyCode(ctx context.Context, phone, code, name string, tenantID int64) (any, error) {
	body := map[string]any{"phoneNumber": phone, "otp": code}
	if name != "" {
		body["name"] = name
	}
	if tenantID > 0 {
		body["supplierId"] = tenantID
	}
	return c.do(ctx, http.MethodPost, "/auth/verify-otp-signup", nil, body)
}

func (c *Client) SetupPIN(ctx context.Context, tenantID int64, pin string) (any, error) {
	return c.do(ctx, http.MethodPost, "/auth/setup-pin", nil, map[string]any{"supplierId": tenantID, "pin": pin})
}

func (c *Client) LoginWithPIN(ctx context.Context, phone, pin string) (any, error) {
	return c.do(ctx, http.MethodPost, "/auth/login-pin", nil, map[string]any{"phoneNumber": phone, "pin": pin})
}

func (c *Client) FetchSession(ctx context.Context, tenantID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/suppliers/"+strconv.FormatInt(tenantID, 10), nil, nil)
}

func (c *Client) FetchCustomers(ctx context.Context, tenantID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/customers", tenantQuery(tenantID), nil)
}

func (c *Client) CreateCustomer(ctx context.Context, tenantID int64, fields map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, "/customers", nil, withTenant(fields, tenantID))
}

func (c *Client) FetchCustomer(ctx context.Context, tenantID, locationID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/customers/"+strconv.FormatInt(locationID, 10), tenantQuery(tenantID), nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, tenantID, locationID int64, fields map[string]any) (any, error) {
	return c.do(ctx, http.MethodPatch, "/customers/"+strconv.FormatInt(locationID, 10), nil, withTenant(fields, tenantID))
}

func (c *Client) FetchDashboard(ctx context.Context, tenantID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/dashboard/metrics", tenantQuery(tenantID), nil)
}

// FetchBucket lists the orders of one bucket, addressed by tenant code when
// the ref carries one.
func (c *Client) FetchBucket(ctx context.Context, tenant domain.TenantRef, bucket domain.Bucket) (any, error) {
	q := url.Values{"status": {string(bucket)}}
	if tenant.ID > 0 {
		q.Set("supplierId", strconv.FormatInt(tenant.ID, 10))
	}
	if tenant.Code != "" {
		q.Set("supplierCode", tenant.Code)
	}
	return c.do(ctx, http.MethodGet, "/orders", q, nil)
}

// orderStatus is the status each action writes. Completion is recorded as
// "delivered", which the backend files under the completed bucket.
var orderStatus = map[domain.OrderAction]string{
	domain.ActionAccept:   "accepted",
	domain.ActionComplete: "delivered",
}

func (c *Client) MutateOrder(ctx context.Context, orderID int64, tenant domain.TenantRef, action domain.OrderAction, fields map[string]any) (any, error) {
	status, ok := orderStatus[action]
	if !ok {
		return nil, errors.New("unknown order action " + string(action))
	}
	body := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		body[k] = v
	}
	body["status"] = status
	if tenant.ID > 0 {
		body["supplierId"] = tenant.ID
	}
	if tenant.Code != "" {
		body["supplierCode"] = tenant.Code
	}
	return c.do(ctx, http.MethodPatch, "/orders/"+strconv.FormatInt(orderID, 10), nil, body)
}

func (c *Client) FetchPayments(ctx context.Context, tenantID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/payments", tenantQuery(tenantID), nil)
}

func (c *Client) FetchPendingPayments(ctx context.Context, tenantID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/payments/pending", tenantQuery(tenantID), nil)
}

func (c *Client) RecordPayment(ctx context.Context, tenantID int64, fields map[string]any) (any, error) {
	return c.do(ctx, http.MethodPost, "/payments", nil, withTenant(fields, tenantID))
}

func (c *Client) FetchNotifications(ctx context.Context, tenantID int64) (any, error) {
	return c.do(ctx, http.MethodGet, "/notifications", tenantQuery(tenantID), nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, notificationID int64) (any, error) {
	return c.do(ctx, http.MethodPatch, "/notifications/"+strconv.FormatInt(notificationID, 10)+"/read", nil, nil)
}
