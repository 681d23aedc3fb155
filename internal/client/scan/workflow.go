package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkov/recondesk/internal/client/access"
	"github.com/avolkov/recondesk/internal/client/api"
	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/client/quota"
	"github.com/avolkov/recondesk/internal/common"
	"github.com/avolkov/recondesk/internal/logging"
	"github.com/google/uuid"
)

// State tracks one request through the workflow. Steps are strictly
// sequential: Validating before Admitted before Submitted.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateAdmitted
	StateSubmitted
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateAdmitted:
		return "admitted"
	case StateSubmitted:
		return "submitted"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Request is the ephemeral value object for one submission. It is validated
// and discarded; nothing persists it client-side.
type Request struct {
	// ID correlates log lines and guards against stale results.
	ID     string
	Domain string
	Tool   string
	Key    models.ApiKey
}

// NewRequest builds a Request with a fresh correlation id.
func NewRequest(domain, tool string, key models.ApiKey) Request {
	return Request{
		ID:     uuid.NewString(),
		Domain: strings.TrimSpace(domain),
		Tool:   tool,
		Key:    key,
	}
}

// Result carries the completed scan together with the key as last refreshed.
type Result struct {
	Request Request
	Record  *models.ScanRecord

	// Key holds the server-reconciled usage count after completion.
	Key models.ApiKey
}

// Matches reports whether the result still corresponds to the given form
// state. Callers drop results that no longer match, so a submission raced
// by navigation is discarded on arrival instead of applied.
func (r *Result) Matches(domain, tool, key string) bool {
	return r.Request.Domain == strings.TrimSpace(domain) &&
		r.Request.Tool == tool &&
		r.Request.Key.Key == key
}

// Workflow authorizes and submits scan requests. A Workflow value handles
// one request at a time; concurrent submissions through the same API key are
// the external service's concern, not serialized here.
type Workflow struct {
	scans   api.ScanClient
	tracker *quota.Tracker
	log     logging.Logger

	state State
}

func NewWorkflow(scans api.ScanClient, tracker *quota.Tracker, log logging.Logger) *Workflow {
	return &Workflow{
		scans:   scans,
		tracker: tracker,
		log:     log.With("component", "scan"),
		state:   StateIdle,
	}
}

// State returns the state the last Run reached.
func (w *Workflow) State() State {
	return w.state
}

// Run takes one request through the state machine. No network call is made
// until validation and quota admission have both passed. Validation failures
// come back as common.FieldErrors; a tier mismatch wraps ErrUnauthorized; quota
// denial wraps ErrQuotaExceeded. Remote failures surface the server's
// message verbatim and leave the key state unchanged.
func (w *Workflow) Run(ctx context.Context, principal *models.Principal, req Request) (*Result, error) {
	log := w.log.With("request_id", req.ID, "tool", req.Tool, "domain", req.Domain)

	w.state = StateValidating
	if err := w.validate(principal, req); err != nil {
		w.state = StateFailed
		return nil, err
	}

	// Admission gates on the authoritative count, never the cached one.
	fresh, err := w.tracker.Refresh(ctx, req.Key)
	if err != nil {
		w.state = StateFailed
		return nil, fmt.Errorf("refreshing key usage: %w", err)
	}
	if !quota.CanAdmit(fresh) {
		w.state = StateFailed
		log.Info(ctx, "quota denied admission", "count", fresh.Count)
		return nil, fmt.Errorf("%w: free key %s has used %d of %d scans",
			common.ErrQuotaExceeded, fresh.Redacted(), fresh.Count, quota.FreeTierLimit)
	}
	w.state = StateAdmitted

	w.state = StateSubmitted
	log.Info(ctx, "submitting scan")
	rec, err := w.scans.ExecuteScan(ctx, req.Tool, req.Domain, req.Key.Key)
	if err != nil {
		w.state = StateFailed
		log.Error(ctx, "scan failed", "error", err)
		return nil, err
	}
	w.state = StateCompleted

	// Reconcile the displayed count with the authority; the scan itself
	// already succeeded, so a refresh failure only degrades the display.
	reconciled, err := w.tracker.Refresh(ctx, req.Key)
	if err != nil {
		log.Warn(ctx, "post-scan count refresh failed", "error", err)
		reconciled = fresh
	}

	log.Info(ctx, "scan completed", "scan_id", rec.ID)
	return &Result{Request: req, Record: rec, Key: reconciled}, nil
}

func (w *Workflow) validate(principal *models.Principal, req Request) error {
	errs := common.FieldErrors{}

	if req.Domain == "" {
		errs["domain"] = "domain is required"
	} else if !ValidDomain(req.Domain) {
		errs["domain"] = "enter a valid domain (e.g. example.com)"
	}

	if req.Key.Key == "" {
		errs["api_key"] = "select an API key"
	}

	tool, ok := models.ToolByName(req.Tool)
	if !ok {
		errs["tool"] = fmt.Sprintf("unknown tool %q", req.Tool)
	}

	if len(errs) > 0 {
		return errs
	}

	if !access.CanUseTool(principal, tool) {
		return fmt.Errorf("%w: tool %q is only available in the paid tier", common.ErrUnauthorized, tool.Name)
	}
	return nil
}
