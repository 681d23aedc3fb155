// Package common defines shared constants and sentinel errors used across
// the recondesk client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Remote lookup errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Token lifecycle errors (invalid or malformed token, expired token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Quota admission errors.
	ErrQuotaExceeded = errors.New("quota exceeded")
)
