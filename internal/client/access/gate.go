package access

import (
	"context"

	"github.com/avolkov/recondesk/internal/client/session"
)

// Decision is the route gate's verdict for a page request.
type Decision int

const (
	// Render allows the page.
	Render Decision = iota

	// RedirectToLogin sends an unauthenticated principal to the login page.
	RedirectToLogin

	// RedirectToDefault soft-denies a request the principal's role does not
	// cover, landing on the default page rather than an error page.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDefault:
		return "redirect-to-default"
	default:
		return "unknown"
	}
}

// Gate decides whether the current principal may view a route. It settles
// session initialization before deciding, so a not-yet-loaded session can
// never flash through as unauthenticated.
type Gate struct {
	sessions *session.Manager
}

func NewGate(sessions *session.Manager) *Gate {
	return &Gate{sessions: sessions}
}

// Decide yields the verdict for route.
func (g *Gate) Decide(ctx context.Context, route Route) Decision {
	if err := g.sessions.EnsureInitialized(ctx); err != nil {
		// A broken local store means no usable session: treat as
		// unauthenticated rather than failing the page.
		return RedirectToLogin
	}

	if route.Public {
		return Render
	}
	if !g.sessions.IsAuthenticated(ctx) {
		return RedirectToLogin
	}
	if route.AdminOnly && !g.sessions.IsAdmin(ctx) {
		return RedirectToDefault
	}
	return Render
}
