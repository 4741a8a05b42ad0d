package application

import (
	"context"
	"errors"
	"testing"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
)

func TestSessionCache_Restore(t *testing.T) {
	tests := []struct {
		name    string
		stored  map[string]string
		want    *domain.Supplier
		wantErr error
	}{
		{
			name:   "valid",
			stored: map[string]string{KeySession: `{"id":7,"name":"Raj"}`},
			want:   &domain.Supplier{ID: 7, Name: "Raj"},
		},
		{
			name:    "absent",
			stored:  nil,
			wantErr: domain.ErrNoSession,
		},
		{
			name:    "corrupt",
			stored:  map[string]string{KeySession: `{"id":7,"na`},
			wantErr: domain.ErrNoSession,
		},
		{
			name:    "incomplete",
			stored:  map[string]string{KeySession: `{"name":"Raj"}`},
			wantErr: domain.ErrNoSession,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewSessionCache(newMemStore(tt.stored), nil)
			got, err := cache.Restore(context.Background())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Restore() error = %v, want %v", err, tt.wantErr)
			}
			if tt.want == nil {
				if got != nil || cache.Current() != nil {
					t.Errorf("Restore() = %+v, want no session", got)
				}
				return
			}
			if *got != *tt.want {
				t.Errorf("Restore() = %+v, want %+v", got, tt.want)
			}
			if cur := cache.Current(); cur == nil || cur.ID != tt.want.ID {
				t.Errorf("Current() = %+v, want id %d", cur, tt.want.ID)
			}
		})
	}
}

func TestSessionCache_SaveRejectsIncomplete(t *testing.T) {
	store := newMemStore(nil)
	cache := NewSessionCache(store, nil)
	if err := cache.Save(context.Background(), domain.Supplier{Name: "Raj"}); err == nil {
		t.Fatal("Save() error = nil, want error for missing id")
	}
	if store.has(KeySession) {
		t.Error("incomplete identity was persisted")
	}
}

func TestSessionCache_SaveIfCurrent(t *testing.T) {
	tests := []struct {
		name     string
		resident bool
		save     domain.Supplier
		wantErr  error
		wantName string
	}{
		{name: "same supplier", resident: true, save: domain.Supplier{ID: 7, Name: "Raj Kumar"}, wantName: "Raj Kumar"},
		{name: "signed out", resident: false, save: domain.Supplier{ID: 7, Name: "Raj Kumar"}, wantErr: domain.ErrNoSession},
		{name: "other supplier", resident: true, save: domain.Supplier{ID: 8, Name: "Other"}, wantErr: domain.ErrNoSession, wantName: "Raj"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newMemStore(nil)
			cache := NewSessionCache(store, nil)
			if tt.resident {
				if err := cache.Save(ctx, domain.Supplier{ID: 7, Name: "Raj"}); err != nil {
					t.Fatalf("Save() error = %v", err)
				}
			}

			err := cache.SaveIfCurrent(ctx, tt.save)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("SaveIfCurrent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantName == "" {
				if store.has(KeySession) {
					t.Error("SaveIfCurrent() wrote a session after sign-out")
				}
				return
			}
			if cur := cache.Current(); cur == nil || cur.Name != tt.wantName {
				t.Errorf("Current() = %+v, want name %q", cur, tt.wantName)
			}
		})
	}
}

func TestSessionCache_ClearCascades(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(map[string]string{
		KeySession:           `{"id":7,"name":"Raj"}`,
		KeyCustomersSnapshot: `[{"customer_name":"Asha"}]`,
		KeyAuthToken:         "tok",
		KeyPINHash:           "hash",
	})
	snap := NewSnapshot[domain.Customer](store, KeyCustomersSnapshot, nil)
	cache := NewSessionCache(store, nil, snap)
	if _, err := cache.Restore(ctx); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	for _, key := range []string{KeySession, KeyCustomersSnapshot, KeyAuthToken, KeyPINHash} {
		if store.has(key) {
			t.Errorf("key %q still present after Clear()", key)
		}
	}
	if store.deletes[0] != KeyCustomersSnapshot {
		t.Errorf("first delete = %q, want the customers snapshot", store.deletes[0])
	}
	if cache.Current() != nil {
		t.Error("Current() != nil after Clear()")
	}
	if err := cache.Clear(ctx); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
}

func TestSessionCache_ClearKeepsSessionWhenCascadeFails(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(map[string]string{
		KeySession:           `{"id":7}`,
		KeyCustomersSnapshot: `[]`,
	})
	store.failDelete = KeyCustomersSnapshot
	cache := NewSessionCache(store, nil, NewSnapshot[domain.Customer](store, KeyCustomersSnapshot, nil))

	if err := cache.Clear(ctx); err == nil {
		t.Fatal("Clear() error = nil, want cascade failure")
	}
	if !store.has(KeySession) {
		t.Error("session removed although the snapshot could not be")
	}
}

func TestSnapshot_RestoreFailsOpen(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(map[string]string{KeyCustomersSnapshot: `not json`})
	snap := NewSnapshot[domain.Customer](store, KeyCustomersSnapshot, nil)

	if got := snap.Restore(ctx); got == nil || len(got) != 0 {
		t.Errorf("Restore() = %v, want empty slice", got)
	}
	if err := snap.Save(ctx, []domain.Customer{{Name: "Asha", DueAmount: 50}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got := snap.Restore(ctx)
	if len(got) != 1 || got[0].Name != "Asha" || got[0].DueAmount != 50 {
		t.Errorf("Restore() = %+v, want Asha with due 50", got)
	}
}
