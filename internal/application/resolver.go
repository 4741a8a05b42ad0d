// internal/application/resolver.go
package application

import (
	"sync"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

// IdentityResolver picks the tenant identifier attached to outgoing requests.
//
// Precedence for session-scoped requests: a temporary id issued by the
// send-code step, then the confirmed session id. For order mutations: the
// tenant carried by the order, then the session id. No candidate is
// domain.ErrNoTenant and no request must be sent.
type IdentityResolver struct {
	mu      sync.Mutex
	pending int64
}

func NewIdentityResolver() *IdentityResolver {
	return &IdentityResolver{}
}

// BeginSignup records the temporary id issued before the identity is confirmed.
func (r *IdentityResolver) BeginSignup(tempID int64) {
	r.mu.Lock()
	r.pending = tempID
	r.mu.Unlock()
}

func (r *IdentityResolver) Pending() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// Confirm drops the temporary id once the identity is persisted.
func (r *IdentityResolver) Confirm() {
	r.Reset()
}

func (r *IdentityResolver) Reset() {
	r.mu.Lock()
	r.pending = 0
	r.mu.Unlock()
}

func (r *IdentityResolver) RequestTenant(session *domain.Supplier) (int64, error) {
	if id := r.Pending(); id > 0 {
		return id, nil
	}
	if session.Complete() {
		return session.ID, nil
	}
	return 0, domain.ErrNoTenant
}

func (r *IdentityResolver) OrderTenant(order domain.Order, session *domain.Supplier) (domain.TenantRef, error) {
	if ref := order.Tenant(); !ref.Empty() {
		return ref, nil
	}
	if session.Complete() {
		return domain.TenantRef{ID: session.ID}, nil
	}
	return domain.TenantRef{}, domain.ErrNoTenant
}
