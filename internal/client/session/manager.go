package session

import (
	"context"
	"fmt"
	"time"

	"github.com/avolkov/recondesk/internal/client/api"
	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/logging"
)

// State is the manager's lifecycle state. An expired session is never
// observable from outside: it collapses to StateUnauthenticated the moment
// it is detected.
type State int

const (
	StateUninitialized State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Manager derives authentication state from the Store and exposes the
// login/register/logout operations. All mutation happens on the
// single-threaded command path; the manager is not safe for concurrent use.
type Manager struct {
	store Store
	auth  api.AuthClient
	log   logging.Logger
	now   func() time.Time

	state   State
	session Session
}

func NewManager(store Store, auth api.AuthClient, log logging.Logger) *Manager {
	return &Manager{
		store: store,
		auth:  auth,
		log:   log.With("component", "session"),
		now:   time.Now,
		state: StateUninitialized,
	}
}

// Initialize rehydrates the session from durable storage and settles the
// manager into Authenticated or Unauthenticated. It must complete before any
// route decision is made. A persisted token whose embedded expiry has passed
// is discarded along with the cached profile.
func (m *Manager) Initialize(ctx context.Context) error {
	m.state = StateUnauthenticated
	m.session = Session{}

	token, principal, err := m.store.Load(ctx)
	if err != nil {
		m.log.Error(ctx, "failed to load persisted session", "error", err)
		return err
	}
	if token == "" {
		return nil
	}

	exp, err := tokenExpiry(token)
	if err != nil || !exp.After(m.now()) {
		m.log.Info(ctx, "persisted token expired, clearing session")
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear expired session", "error", clearErr)
		}
		return nil
	}

	if principal == nil {
		// Token without a cached profile is not a usable session.
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear incomplete session", "error", clearErr)
		}
		return nil
	}

	m.session = Session{Token: token, ExpiresAt: exp, Principal: principal}
	m.state = StateAuthenticated
	m.log.Info(ctx, "session restored", "username", principal.Username)
	return nil
}

// EnsureInitialized runs Initialize once if it has not settled yet.
func (m *Manager) EnsureInitialized(ctx context.Context) error {
	if m.state != StateUninitialized {
		return nil
	}
	return m.Initialize(ctx)
}

// Login authenticates against the auth service, persists the session and
// returns the principal. Stored state is untouched on failure.
func (m *Manager) Login(ctx context.Context, username, password string) (*models.Principal, error) {
	token, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		return nil, err
	}

	principal, err := m.auth.CurrentUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}

	if err := m.store.Save(ctx, token, principal); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	m.session = Session{Token: token, ExpiresAt: exp, Principal: principal}
	m.state = StateAuthenticated
	m.log.Info(ctx, "logged in", "username", principal.Username)
	return principal, nil
}

// Register forwards the profile to the auth service. It does not log the
// new user in.
func (m *Manager) Register(ctx context.Context, reg api.Registration) (*models.Principal, error) {
	return m.auth.Register(ctx, reg)
}

// RefreshProfile re-fetches the current principal from the auth service and
// persists it, e.g. after a tier upgrade. No-op result when unauthenticated.
func (m *Manager) RefreshProfile(ctx context.Context) (*models.Principal, error) {
	if !m.IsAuthenticated(ctx) {
		return nil, nil
	}
	principal, err := m.auth.CurrentUser(ctx, m.session.Token)
	if err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, m.session.Token, principal); err != nil {
		return nil, fmt.Errorf("persisting refreshed profile: %w", err)
	}
	m.session.Principal = principal
	return principal, nil
}

// Logout clears the durable store and the in-memory principal. Idempotent:
// logging out twice leaves the store empty both times with no error.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	if m.session.Principal != nil {
		m.log.Info(ctx, "logged out", "username", m.session.Principal.Username)
	}
	m.session = Session{}
	m.state = StateUnauthenticated
	return nil
}

// IsAuthenticated reports whether the current session holds a non-expired
// token and a resolved principal. Expiry is re-checked opportunistically on
// every call; a detected expiry collapses the session immediately.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	if m.state != StateAuthenticated {
		return false
	}
	if tokenExpired(m.session.Token, m.now()) {
		m.expire(ctx)
		return false
	}
	return m.session.Principal != nil
}

// IsAdmin reports whether the authenticated principal has the admin role.
func (m *Manager) IsAdmin(ctx context.Context) bool {
	return m.IsAuthenticated(ctx) && m.session.Principal.IsAdmin()
}

// Principal returns the current principal, or nil when unauthenticated.
func (m *Manager) Principal() *models.Principal {
	if m.state != StateAuthenticated {
		return nil
	}
	return m.session.Principal
}

// Token returns the current session token, or "" when unauthenticated.
func (m *Manager) Token() string {
	if m.state != StateAuthenticated {
		return ""
	}
	return m.session.Token
}

// State returns the manager's lifecycle state.
func (m *Manager) State() State {
	return m.state
}

func (m *Manager) expire(ctx context.Context) {
	m.log.Info(ctx, "session expired, forcing logout")
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear expired session", "error", err)
	}
	m.session = Session{}
	m.state = StateUnauthenticated
}
