package cli

import (
	"context"
	"fmt"

	"github.com/avolkov/recondesk/internal/client/access"
	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/client/scan"
)

// Tools prints the tool catalog with tier requirements. Tools the current
// principal cannot invoke are shown as locked rather than hidden.
func (a *App) Tools(ctx context.Context) error {
	if !a.guard(ctx, "/scan") {
		return nil
	}
	p := a.sessions.Principal()

	for _, t := range models.Tools() {
		lock := ""
		if !access.CanUseTool(p, t) {
			lock = "  [paid tier required]"
		}
		printlnFn(fmt.Sprintf("  %-10s %-13s %s%s", t.Name, "("+t.Category+")", t.Description, lock))
	}
	return nil
}

// Scan submits one scan through the authorization workflow and prints the
// result with the reconciled key usage.
func (a *App) Scan(ctx context.Context, tool, domain string) error {
	if !a.guard(ctx, "/scan") {
		return nil
	}
	p := a.sessions.Principal()

	key, err := a.selectKey(ctx)
	if err != nil {
		return err
	}

	req := scan.NewRequest(domain, tool, key)
	printlnFn(fmt.Sprintf("Scanning %s with %s... this may take a few moments.", req.Domain, req.Tool))

	res, err := a.workflow.Run(ctx, p, req)
	if err != nil {
		return err
	}
	if !res.Matches(domain, tool, key.Key) {
		// Form state moved on while the scan ran; drop the stale result.
		return nil
	}

	printlnFn(fmt.Sprintf("--- scan %d: %s %s ---", res.Record.ID, res.Record.Tool, res.Record.Domain))
	printlnFn(res.Record.Result)
	printlnFn("--- " + describeKey(res.Key) + " ---")
	return nil
}
