// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahabubulhasibshawon/storefront-sync/internal/domain"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/logger"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/normalize"
	"github.com/mahabubulhasibshawon/storefront-sync/internal/ports"
	"github.com/mahabubulhasibshawon/storefront-sync/pkg/auth"
)

type AuthService struct {
	backend  ports.BackendPort
	session  *SessionCache
	resolver *IdentityResolver
	log      *zap.Logger
	cost     int
}

func NewAuthService(backend ports.BackendPort, session *SessionCache, resolver *IdentityResolver, log *zap.Logger) *AuthService {
	return &AuthService{
		backend:  backend,
		session:  session,
		resolver: resolver,
		log:      logger.OrNop(log),
		cost:     bcrypt.DefaultCost,
	}
}

func validPIN(pin string) bool {
	if len(pin) < 4 || len(pin) > 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SendCode requests a one-time code. A temporary tenant id in the response
// is kept until the identity is confirmed.
func (s *AuthService) SendCode(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errors.New("phone number is required")
	}
	payload, err := s.backend.SendCode(ctx, phone)
	if err != nil {
		return fmt.Errorf("send code: %w", err)
	}
	if id := normalize.TenantID(payload); id > 0 {
		s.resolver.BeginSignup(id)
		s.log.Debug("signup started", zap.Int64("temp_supplier_id", id))
	}
	return nil
}

// VerifyCode confirms the code and persists the resulting identity and
// token. The supplier id falls back to the token's claims when the response
// body omits it.
func (s *AuthService) VerifyCode(ctx context.Context, phone, code, name string) (*domain.Supplier, error) {
	if phone == "" || code == "" {
		return nil, errors.New("phone and code are required")
	}
	tenantID, err := s.resolver.RequestTenant(s.session.Current())
	if err != nil && !errors.Is(err, domain.ErrNoTenant) {
		return nil, err
	}
	payload, err := s.backend.VerifyCode(ctx, phone, code, name, tenantID)
	if err != nil {
		return nil, fmt.Errorf("verify code: %w", err)
	}
	return s.establish(ctx, payload, phone, name)
}

func (s *AuthService) LoginWithPIN(ctx context.Context, phone, pin string) (*domain.Supplier, error) {
	if phone == "" || !validPIN(pin) {
		return nil, domain.ErrInvalidPIN
	}
	payload, err := s.backend.LoginWithPIN(ctx, phone, pin)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	supplier, err := s.establish(ctx, payload, phone, "")
	if err != nil {
		return nil, err
	}
	if err := s.storePIN(ctx, pin); err != nil {
		s.log.Warn("pin hash not stored", zap.Error(err))
	}
	return supplier, nil
}

func (s *AuthService) establish(ctx context.Context, payload any, phone, name string) (*domain.Supplier, error) {
	token := normalize.Token(payload)
	supplier, ok := normalize.Supplier(payload)
	if !ok && token != "" {
		claims, err := auth.Inspect(token)
		if err == nil && claims.TenantID() > 0 {
			supplier.ID = claims.TenantID()
			if supplier.Phone == "" {
				supplier.Phone = claims.Phone
			}
		}
	}
	if !supplier.Complete() {
		return nil, errors.New("auth response carried no supplier id")
	}
	if supplier.Phone == "" {
		supplier.Phone = phone
	}
	if supplier.Name == "" {
		supplier.Name = name
	}

	if token != "" {
		if err := s.session.SaveToken(ctx, token); err != nil {
			return nil, fmt.Errorf("save token: %w", err)
		}
	}
	if err := s.session.Save(ctx, supplier); err != nil {
		return nil, err
	}
	s.resolver.Confirm()
	s.log.Info("signed in", zap.Int64("supplier_id", supplier.ID))
	return &supplier, nil
}

// SetupPIN registers a PIN with the backend and keeps its hash for offline unlock.
func (s *AuthService) SetupPIN(ctx context.Context, pin string) error {
	if !validPIN(pin) {
		return domain.ErrInvalidPIN
	}
	current := s.session.Current()
	if !current.Complete() {
		return domain.ErrNoSession
	}
	tenantID, err := s.resolver.RequestTenant(current)
	if err != nil {
		return err
	}
	if _, err := s.backend.SetupPIN(ctx, tenantID, pin); err != nil {
		return fmt.Errorf("setup pin: %w", err)
	}
	return s.storePIN(ctx, pin)
}

func (s *AuthService) storePIN(ctx context.Context, pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), s.cost)
	if err != nil {
		return errors.New("failed to hash pin")
	}
	return s.session.SavePINHash(ctx, string(hash))
}

// UnlockWithPIN checks pin against the stored hash without a network call.
func (s *AuthService) UnlockWithPIN(ctx context.Context, pin string) (*domain.Supplier, error) {
	hash, err := s.session.PINHash(ctx)
	if err != nil {
		return nil, domain.ErrInvalidPIN
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return nil, domain.ErrInvalidPIN
	}
	if current := s.session.Current(); current != nil {
		return current, nil
	}
	return s.session.Restore(ctx)
}

// RefreshSession overlays the backend's copy of the supplier onto the
// session. A response for a different supplier is ignored, and nothing is
// written if the supplier signed out while the fetch was in flight.
func (s *AuthService) RefreshSession(ctx context.Context) (*domain.Supplier, error) {
	current := s.session.Current()
	if !current.Complete() {
		return nil, domain.ErrNoSession
	}
	payload, err := s.backend.FetchSession(ctx, current.ID)
	if err != nil {
		return current, fmt.Errorf("fetch session: %w", err)
	}
	fresh, ok := normalize.Supplier(payload)
	if !ok || !current.Refresh(fresh) {
		s.log.Warn("ignoring session payload", zap.Int64("supplier_id", current.ID), zap.Int64("got", fresh.ID))
		return current, nil
	}
	if err := s.session.SaveIfCurrent(ctx, *current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	s.resolver.Reset()
	if err := s.session.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("signed out")
	return nil
}
