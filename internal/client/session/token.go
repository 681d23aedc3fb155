package session

import (
	"fmt"
	"time"

	"github.com/avolkov/recondesk/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry decodes the token's embedded expiry claim without verifying
// the signature. The client holds no signing secret; signature verification
// is the server's job, the client only needs the expiry for local gating.
func tokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", common.ErrInvalidToken)
	}
	return claims.ExpiresAt.Time, nil
}

// tokenExpired reports whether the token is unusable at now. Malformed
// tokens count as expired: they can never authenticate anything.
func tokenExpired(token string, now time.Time) bool {
	exp, err := tokenExpiry(token)
	if err != nil {
		return true
	}
	return !exp.After(now)
}
