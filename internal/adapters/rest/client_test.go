package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

func TestClient_FetchCustomers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/customers", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("supplierId"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)
		_, _ = w.Write([]byte(`{"success":true,"data":[{"customer_name":"Asha"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/", staticToken("tok"), time.Second)
	got, err := c.FetchCustomers(context.Background(), 7)
	require.NoError(t, err)
	data := got.(map[string]any)["data"].([]any)
	assert.Equal(t, "Asha", data[0].(map[string]any)["customer_name"])
}

func TestClient_MutateOrderBody(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/orders/41", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, time.Second)
	got, err := c.MutateOrder(context.Background(), 41, domain.TenantRef{ID: 9, Code: "SUP9"}, domain.ActionComplete,
		map[string]any{"deliveredAt": "2024-05-01T10:00:00Z"})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, "delivered", body["status"])
	assert.Equal(t, 9.0, body["supplierId"])
	assert.Equal(t, "SUP9", body["supplierCode"])
	assert.Equal(t, "2024-05-01T10:00:00Z", body["deliveredAt"])
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		errMsg  string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"token expired"}`, wantErr: domain.ErrUnauthorized},
		{name: "conflict status", status: http.StatusConflict, wantErr: domain.ErrWriteConflict},
		{name: "conflict code", status: http.StatusBadRequest, body: `{"code":"order_status_conflict","message":"already accepted"}`, wantErr: domain.ErrWriteConflict},
		{name: "server error", status: http.StatusBadGateway, body: `{"error":"upstream down"}`, errMsg: "GET /orders: status 502: upstream down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, nil, time.Second).FetchBucket(context.Background(), domain.TenantRef{ID: 7}, domain.BucketPending)
			if err == nil {
				t.Fatal("FetchBucket() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("FetchBucket() error = %v, want %v", err, tt.wantErr)
			}
			if tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("FetchBucket() error = %q, want %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestClient_FetchBucketQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "accepted", r.URL.Query().Get("status"))
		assert.Equal(t, "SUP7", r.URL.Query().Get("supplierCode"))
		assert.Empty(t, r.URL.Query().Get("supplierId"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, nil, time.Second).FetchBucket(context.Background(), domain.TenantRef{Code: "SUP7"}, domain.BucketAccepted)
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestClient_OrderStatusOnWire(t *testing.T) {
	tests := []struct {
		name    string
		action  domain.OrderAction
		want    string
		wantErr bool
	}{
		{name: "accept", action: domain.ActionAccept, want: "accepted"},
		{name: "complete", action: domain.ActionComplete, want: "delivered"},
		{name: "unknown", action: domain.OrderAction("cancel"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, nil, time.Second).MutateOrder(context.Background(), 1, domain.TenantRef{ID: 7}, tt.action, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("MutateOrder() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				assert.Equal(t, tt.want, body["status"])
			}
		})
	}
}

func TestClient_CustomerAndDashboardEndpoints(t *testing.T) {
	type request struct {
		method, path, tenant string
		body                 map[string]any
	}
	var got []request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := request{method: r.Method, path: r.URL.Path, tenant: r.URL.Query().Get("supplierId")}
		if r.Method == http.MethodPatch {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req.body))
		}
		got = append(got, req)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	c := NewClient(srv.URL, nil, time.Second)
	_, err := c.FetchCustomer(ctx, 7, 3)
	require.NoError(t, err)
	_, err = c.UpdateCustomer(ctx, 7, 3, map[string]any{"customer_address": "12 Lake Rd"})
	require.NoError(t, err)
	_, err = c.FetchDashboard(ctx, 7)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, request{method: http.MethodGet, path: "/customers/3", tenant: "7"}, got[0])
	assert.Equal(t, http.MethodPatch, got[1].method)
	assert.Equal(t, "/customers/3", got[1].path)
	assert.Equal(t, map[string]any{"customer_address": "12 Lake Rd", "supplierId": 7.0}, got[1].body)
	assert.Equal(t, request{method: http.MethodGet, path: "/dashboard/metrics", tenant: "7"}, got[2])
}
