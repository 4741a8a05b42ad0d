package application

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
)

type fixedSession struct{ s *domain.Supplier }

func (f fixedSession) Current() *domain.Supplier { return f.s }

func orderList(ids ...int64) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, map[string]any{"order_id": float64(id), "order_status": "pending"})
	}
	return out
}

func ids(orders []domain.Order) []int64 {
	out := make([]int64, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOrderBuckets_PartialFailureIsolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := ports.NewMockBackendPort(ctrl)
	tenant := domain.TenantRef{ID: 7}
	b := NewOrderBuckets(backend, NewIdentityResolver(), fixedSession{&domain.Supplier{ID: 7}}, nil, nil)

	backend.EXPECT().FetchBucket(gomock.Any(), tenant, domain.BucketPending).Return(orderList(1), nil)
	backend.EXPECT().FetchBucket(gomock.Any(), tenant, domain.BucketAccepted).Return(orderList(2), nil)
	backend.EXPECT().FetchBucket(gomock.Any(), tenant, domain.BucketCompleted).Return(orderList(3), nil)
	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	backend.EXPECT().FetchBucket(gomock.Any(), tenant, domain.BucketPending).Return(map[string]any{"data": orderList(4, 5)}, nil)
	backend.EXPECT().FetchBucket(gomock.Any(), tenant, domain.BucketAccepted).Return(nil, errors.New("502 bad gateway"))
	backend.EXPECT().FetchBucket(gomock.Any(), tenant, domain.BucketCompleted).Return(orderList(6), nil)
	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v, want per-bucket failure kept in state", err)
	}

	tests := []struct {
		bucket  domain.Bucket
		want    []int64
		wantErr bool
	}{
		{domain.BucketPending, []int64{4, 5}, false},
		{domain.BucketAccepted, []int64{2}, true},
		{domain.BucketCompleted, []int64{6}, false},
	}
	state := b.State()
	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			if got := ids(b.Bucket(tt.bucket)); !equalIDs(got, tt.want) {
				t.Errorf("Bucket(%s) = %v, want %v", tt.bucket, got, tt.want)
			}
			if (state[tt.bucket].Err != nil) != tt.wantErr {
				t.Errorf("State()[%s].Err = %v, wantErr %v", tt.bucket, state[tt.bucket].Err, tt.wantErr)
			}
		})
	}
}

func TestOrderBuckets_Mutations(t *testing.T) {
	session := &domain.Supplier{ID: 7}
	tests := []struct {
		name        string
		order       domain.Order
		session     *domain.Supplier
		mockSetup   func(b *ports.MockBackendPort)
		wantOutcome MutationOutcome
		wantErr     error
		errMsg      string
	}{
		{
			name:    "order tenant takes precedence",
			order:   domain.Order{ID: 1, SupplierID: 9},
			session: session,
			mockSetup: func(b *ports.MockBackendPort) {
				b.EXPECT().MutateOrder(gomock.Any(), int64(1), domain.TenantRef{ID: 9}, domain.ActionAccept, gomock.Nil()).Return(map[string]any{"success": true}, nil)
				b.EXPECT().FetchBucket(gomock.Any(), domain.TenantRef{ID: 7}, gomock.Any()).Return(orderList(), nil).Times(3)
			},
			wantOutcome: MutationApplied,
		},
		{
			name:    "session fallback",
			order:   domain.Order{ID: 1},
			session: session,
			mockSetup: func(b *ports.MockBackendPort) {
				b.EXPECT().MutateOrder(gomock.Any(), int64(1), domain.TenantRef{ID: 7}, domain.ActionAccept, gomock.Nil()).Return(nil, nil)
				b.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), gomock.Any()).Return(orderList(), nil).Times(3)
			},
			wantOutcome: MutationApplied,
		},
		{
			name:        "no tenant sends nothing",
			order:       domain.Order{ID: 1},
			mockSetup:   func(b *ports.MockBackendPort) {},
			wantOutcome: MutationFailed,
			wantErr:     domain.ErrNoTenant,
		},
		{
			name:    "conflict refetches",
			order:   domain.Order{ID: 1},
			session: session,
			mockSetup: func(b *ports.MockBackendPort) {
				b.EXPECT().MutateOrder(gomock.Any(), int64(1), gomock.Any(), domain.ActionAccept, gomock.Nil()).Return(nil, domain.ErrWriteConflict)
				b.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), gomock.Any()).Return(orderList(), nil).Times(3)
			},
			wantOutcome: MutationConflict,
		},
		{
			name:    "failure still refetches",
			order:   domain.Order{ID: 1},
			session: session,
			mockSetup: func(b *ports.MockBackendPort) {
				b.EXPECT().MutateOrder(gomock.Any(), int64(1), gomock.Any(), domain.ActionAccept, gomock.Nil()).Return(nil, errors.New("boom"))
				b.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), gomock.Any()).Return(orderList(), nil).Times(3)
			},
			wantOutcome: MutationFailed,
			errMsg:      "accept order 1: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			backend := ports.NewMockBackendPort(ctrl)
			tt.mockSetup(backend)

			b := NewOrderBuckets(backend, NewIdentityResolver(), fixedSession{tt.session}, nil, nil)
			got, err := b.Accept(context.Background(), tt.order)
			if got != tt.wantOutcome {
				t.Errorf("Accept() outcome = %v, want %v", got, tt.wantOutcome)
			}
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Accept() error = %v, want %v", err, tt.wantErr)
				}
			case tt.errMsg != "":
				if err == nil || err.Error() != tt.errMsg {
					t.Errorf("Accept() error = %v, want %q", err, tt.errMsg)
				}
			case err != nil:
				t.Errorf("Accept() unexpected error: %v", err)
			}
		})
	}
}

func TestOrderBuckets_OptimisticMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := ports.NewMockBackendPort(ctrl)
	b := NewOrderBuckets(backend, NewIdentityResolver(), fixedSession{&domain.Supplier{ID: 7}}, nil, nil)

	backend.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), domain.BucketPending).Return(orderList(1, 2), nil)
	backend.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), domain.BucketAccepted).Return(orderList(), nil)
	backend.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), domain.BucketCompleted).Return(orderList(), nil)
	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	var moved bool
	backend.EXPECT().MutateOrder(gomock.Any(), int64(1), gomock.Any(), domain.ActionAccept, gomock.Any()).
		DoAndReturn(func(context.Context, int64, domain.TenantRef, domain.OrderAction, map[string]any) (any, error) {
			accepted := b.Bucket(domain.BucketAccepted)
			moved = equalIDs(ids(b.Bucket(domain.BucketPending)), []int64{2}) &&
				len(accepted) == 1 && accepted[0].Status == "accepted"
			return nil, errors.New("offline")
		})
	backend.EXPECT().FetchBucket(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("offline")).Times(3)

	outcome, _ := b.Accept(context.Background(), domain.Order{ID: 1, Status: "pending"})
	if !moved {
		t.Error("order was not moved before the write was sent")
	}
	if outcome != MutationFailed {
		t.Errorf("Accept() outcome = %v, want failed", outcome)
	}
}

func TestOrderBuckets_RefreshWithoutTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	b := NewOrderBuckets(ports.NewMockBackendPort(ctrl), NewIdentityResolver(), fixedSession{}, nil, nil)
	if err := b.Refresh(context.Background()); !errors.Is(err, domain.ErrNoTenant) {
		t.Errorf("Refresh() error = %v, want ErrNoTenant", err)
	}
}
