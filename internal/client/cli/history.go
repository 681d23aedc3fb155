package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/avolkov/recondesk/internal/client/models"
)

const defaultHistoryLimit = 10

// selectAnyKey is like selectKey but includes exhausted keys: history stays
// readable after the quota runs out.
func (a *App) selectAnyKey(ctx context.Context) (models.ApiKey, error) {
	p := a.sessions.Principal()

	keys, err := a.api.ListKeys(ctx, a.sessions.Token(), p.Username)
	if err != nil {
		return models.ApiKey{}, err
	}
	if len(keys) == 0 {
		return models.ApiKey{}, errors.New("no API keys: generate one with 'genkey free'")
	}
	if len(keys) == 1 {
		return keys[0], nil
	}

	printlnFn("Select an API key:")
	for i, k := range keys {
		printlnFn(fmt.Sprintf("  %d) %s (%s)", i+1, k.Redacted(), k.Type))
	}
	choice, err := getSimpleText(a.reader, "Key number", stdout())
	if err != nil {
		return models.ApiKey{}, err
	}
	var idx int
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(keys) {
		return models.ApiKey{}, errors.New("invalid key selection")
	}
	return keys[idx-1], nil
}

// History lists past scans for a key, newest first.
func (a *App) History(ctx context.Context, limitArg string) error {
	if !a.guard(ctx, "/history") {
		return nil
	}

	limit := defaultHistoryLimit
	if limitArg != "" {
		n, err := strconv.Atoi(limitArg)
		if err != nil || n < 1 {
			return fmt.Errorf("invalid limit %q", limitArg)
		}
		limit = n
	}

	key, err := a.selectAnyKey(ctx)
	if err != nil {
		return err
	}

	recs, err := a.api.ScanHistory(ctx, key.Key, limit)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		printlnFn("No scans recorded for this key yet.")
		return nil
	}

	for _, r := range recs {
		printlnFn(fmt.Sprintf("  #%-6d %-10s %-30s %s", r.ID, r.Tool, r.Domain, r.ScanTime.Format("2006-01-02 15:04")))
	}
	printlnFn("Use 'result <id>' to see the full output.")
	return nil
}

// Result fetches one scan's full output by id.
func (a *App) Result(ctx context.Context, idArg string) error {
	if !a.guard(ctx, "/results") {
		return nil
	}

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid scan id %q", idArg)
	}

	key, err := a.selectAnyKey(ctx)
	if err != nil {
		return err
	}

	rec, err := a.api.ScanResult(ctx, id, key.Key)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("--- scan %d: %s %s (%s) ---", rec.ID, rec.Tool, rec.Domain, rec.ScanTime.Format("2006-01-02 15:04")))
	printlnFn(rec.Result)
	return nil
}
