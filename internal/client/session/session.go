// Package session owns the client-held session: the durable token store,
// local token-expiry checks, and the login/logout/initialize lifecycle every
// screen depends on.
package session

import (
	"time"

	"github.com/avolkov/recondesk/internal/client/models"
)

// Session is the current authentication state. A Session with a Principal
// must have a token that was non-expired at the moment of last check.
type Session struct {
	Token     string
	ExpiresAt time.Time
	Principal *models.Principal
}

// Empty reports whether no session material is present.
func (s Session) Empty() bool {
	return s.Token == "" && s.Principal == nil
}
