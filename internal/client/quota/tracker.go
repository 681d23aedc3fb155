// Package quota models API-key usage against the free-tier ceiling and
// answers admit/deny for prospective scan calls.
package quota

import (
	"context"
	"sync"

	"github.com/avolkov/recondesk/internal/client/api"
	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/logging"
)

// FreeTierLimit is the fixed ceiling on free-key usage. Paid keys have none.
const FreeTierLimit = 15

// Remaining returns how many calls the key has left. The second result is
// true for paid keys, whose quota is unlimited. Free-key remainder never
// goes negative.
func Remaining(k models.ApiKey) (int, bool) {
	if k.Type == models.KeyTypePaid {
		return 0, true
	}
	left := FreeTierLimit - k.Count
	if left < 0 {
		left = 0
	}
	return left, false
}

// CanAdmit reports whether the key's quota permits one more scan.
func CanAdmit(k models.ApiKey) bool {
	if k.Type == models.KeyTypePaid {
		return true
	}
	return k.Count < FreeTierLimit
}

// Tracker re-fetches authoritative usage counts from the key-count
// authority. Cached counts are fine for informational displays; any
// admission decision that matters re-checks through Refresh first.
type Tracker struct {
	keys api.KeyClient
	log  logging.Logger
}

func NewTracker(keys api.KeyClient, log logging.Logger) *Tracker {
	return &Tracker{keys: keys, log: log.With("component", "quota")}
}

// Refresh returns a copy of k carrying the server-reported usage count.
// The server value always overrides whatever the client held, including
// optimistic values.
func (t *Tracker) Refresh(ctx context.Context, k models.ApiKey) (models.ApiKey, error) {
	count, err := t.keys.KeyCount(ctx, k.Key)
	if err != nil {
		return k, err
	}
	k.Count = count
	return k, nil
}

// RefreshAll refreshes every key concurrently and merges results by key
// identifier, so completion order does not matter. A key whose refresh
// fails keeps its last-known count; the failure is logged, not returned.
func (t *Tracker) RefreshAll(ctx context.Context, keys []models.ApiKey) []models.ApiKey {
	out := make([]models.ApiKey, len(keys))
	copy(out, keys)

	counts := make(map[string]int, len(keys))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, k := range keys {
		wg.Add(1)
		go func(k models.ApiKey) {
			defer wg.Done()
			count, err := t.keys.KeyCount(ctx, k.Key)
			if err != nil {
				t.log.Warn(ctx, "count refresh failed, keeping last known value",
					"key", k.Redacted(), "error", err)
				return
			}
			mu.Lock()
			counts[k.Key] = count
			mu.Unlock()
		}(k)
	}
	wg.Wait()

	for i := range out {
		if count, ok := counts[out[i].Key]; ok {
			out[i].Count = count
		}
	}
	return out
}
