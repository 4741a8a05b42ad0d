package auth

import (
	"testing"
	"time"
)

func TestValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "9000000001", 7, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name    string
		secret  []byte
		token   string
		wantErr bool
	}{
		{name: "valid", secret: secret, token: token},
		{name: "wrong secret", secret: []byte("other"), token: token, wantErr: true},
		{name: "garbage", secret: secret, token: "not-a-token", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.secret, tt.token)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ValidateToken() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateToken() unexpected error: %v", err)
			}
			if claims.TenantID() != 7 || claims.Phone != "9000000001" {
				t.Errorf("ValidateToken() claims = %+v, want supplier 7", claims)
			}
		})
	}
}

func TestInspect(t *testing.T) {
	token, err := GenerateToken([]byte("backend-only"), "9000000001", 42, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	claims, err := Inspect(token)
	if err != nil {
		t.Fatalf("Inspect() unexpected error: %v", err)
	}
	if claims.TenantID() != 42 {
		t.Errorf("TenantID() = %d, want 42", claims.TenantID())
	}
	if !claims.Expired(time.Now()) {
		t.Errorf("Expired() = false, want true")
	}
	if _, err := Inspect("a.b"); err == nil {
		t.Errorf("Inspect() error = nil for malformed token")
	}
}

func TestClaims_TenantIDFromSubject(t *testing.T) {
	c := &Claims{}
	c.Subject = "15"
	if c.TenantID() != 15 {
		t.Errorf("TenantID() = %d, want 15", c.TenantID())
	}
	c.Subject = "abc"
	if c.TenantID() != 0 {
		t.Errorf("TenantID() = %d, want 0", c.TenantID())
	}
}
