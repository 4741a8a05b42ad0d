package application

import (
	"errors"
	"testing"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

func TestIdentityResolver_RequestTenant(t *testing.T) {
	tests := []struct {
		name    string
		pending int64
		session *domain.Supplier
		want    int64
		wantErr error
	}{
		{name: "pending wins", pending: 12, session: &domain.Supplier{ID: 7}, want: 12},
		{name: "session", session: &domain.Supplier{ID: 7}, want: 7},
		{name: "pending only", pending: 12, want: 12},
		{name: "nothing", wantErr: domain.ErrNoTenant},
		{name: "incomplete session", session: &domain.Supplier{Name: "Raj"}, wantErr: domain.ErrNoTenant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewIdentityResolver()
			if tt.pending > 0 {
				r.BeginSignup(tt.pending)
			}
			got, err := r.RequestTenant(tt.session)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RequestTenant() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("RequestTenant() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIdentityResolver_ConfirmDropsPending(t *testing.T) {
	r := NewIdentityResolver()
	r.BeginSignup(12)
	r.Confirm()
	got, err := r.RequestTenant(&domain.Supplier{ID: 7})
	if err != nil || got != 7 {
		t.Errorf("RequestTenant() = %d, %v, want 7", got, err)
	}
}

func TestIdentityResolver_OrderTenant(t *testing.T) {
	session := &domain.Supplier{ID: 7}
	tests := []struct {
		name    string
		order   domain.Order
		session *domain.Supplier
		want    domain.TenantRef
		wantErr error
	}{
		{name: "order id wins over session", order: domain.Order{ID: 1, SupplierID: 9}, session: session, want: domain.TenantRef{ID: 9}},
		{name: "order code", order: domain.Order{ID: 1, SupplierCode: "SUP9"}, session: session, want: domain.TenantRef{Code: "SUP9"}},
		{name: "session fallback", order: domain.Order{ID: 1}, session: session, want: domain.TenantRef{ID: 7}},
		{name: "abort", order: domain.Order{ID: 1}, wantErr: domain.ErrNoTenant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIdentityResolver().OrderTenant(tt.order, tt.session)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("OrderTenant() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("OrderTenant() = %+v, want %+v", got, tt.want)
			}
			if err == nil && got.Empty() {
				t.Error("OrderTenant() returned an empty ref without error")
			}
		})
	}
}
