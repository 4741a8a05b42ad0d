// pkg/auth/jwt.go
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Phone      string `json:"phone,omitempty"`
	SupplierID int64  `json:"supplier_id"`
	jwt.RegisteredClaims
}

// TenantID returns the supplier id claim, falling back to a numeric subject.
func (c *Claims) TenantID() int64 {
	if c.SupplierID > 0 {
		return c.SupplierID
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// Expired reports whether the token is past its expiry at now. Tokens without
// an exp claim never expire.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(c.ExpiresAt.Time)
}

// GenerateToken signs an HS256 token; used by the relay in tests and local setups.
func GenerateToken(secret []byte, phone string, supplierID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Phone:      phone,
		SupplierID: supplierID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(supplierID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken verifies an HS256 token against secret.
func ValidateToken(secret []byte, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Inspect reads the claims of a token issued by the backend without verifying
// its signature. The client never holds the signing key; the backend remains
// the party that rejects forged tokens.
func Inspect(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, err
	}
	return claims, nil
}
