// Package cli implements the interactive recondesk shell: authentication,
// key management, scan submission, history, billing and admin screens.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/avolkov/recondesk/internal/client/access"
	"github.com/avolkov/recondesk/internal/client/api"
	"github.com/avolkov/recondesk/internal/client/config"
	"github.com/avolkov/recondesk/internal/client/quota"
	"github.com/avolkov/recondesk/internal/client/repositories/metadata"
	"github.com/avolkov/recondesk/internal/client/scan"
	"github.com/avolkov/recondesk/internal/client/session"
	"github.com/avolkov/recondesk/internal/client/store"
	"github.com/avolkov/recondesk/internal/logging"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	api      *api.HTTPClient
	sessions *session.Manager
	gate     *access.Gate
	tracker  *quota.Tracker
	workflow *scan.Workflow
	prefs    metadata.Repository
	log      logging.Logger
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient, err := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	sessions := session.NewManager(session.NewMetadataStore(db), apiClient, log)
	tracker := quota.NewTracker(apiClient, log)

	return &App{
		config:   cfg,
		db:       db,
		api:      apiClient,
		sessions: sessions,
		gate:     access.NewGate(sessions),
		tracker:  tracker,
		workflow: scan.NewWorkflow(apiClient, tracker, log),
		prefs:    metadata.NewSQLiteRepository(db),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	// Session state must settle before any screen is gated.
	if err := a.sessions.Initialize(ctx); err != nil {
		a.log.Error(ctx, "session initialization failed", "error", err)
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.sessions.IsAuthenticated(ctx)
}

func (a *App) status() string {
	p := a.sessions.Principal()
	if p == nil {
		return ""
	}
	s := p.Username
	if p.IsPaid {
		s += " paid"
	}
	if p.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// guard runs the route gate for path and reports whether the screen may
// render. Redirect verdicts print the redirect destination instead of an
// error page.
func (a *App) guard(ctx context.Context, path string) bool {
	route, ok := access.RouteByPath(path)
	if !ok {
		printlnFn("Unknown page:", path)
		return false
	}
	switch a.gate.Decide(ctx, route) {
	case access.Render:
		return true
	case access.RedirectToLogin:
		printlnFn("Please login first.")
	case access.RedirectToDefault:
		printlnFn("Admin access is required; taking you back to the dashboard.")
	}
	return false
}
