// internal/domain/errors.go
package domain

import "errors"

var (
	ErrNotFound      = errors.New("key not found")
	ErrNoSession     = errors.New("no session")
	ErrNoTenant      = errors.New("no tenant identifier available for request")
	ErrWriteConflict = errors.New("write conflicts with current server state")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrInvalidPIN    = errors.New("invalid PIN")
)
