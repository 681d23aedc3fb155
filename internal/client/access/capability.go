// Package access computes what a principal may do: which routes it can view,
// which tools it can invoke, and which key types it can generate. Everything
// here is a pure function of the principal; no network calls, no state.
package access

import (
	"fmt"

	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/common"
)

// CanUseTool reports whether the principal's tier admits the tool. Free
// tools are open to any authenticated principal; paid tools require a paid
// subscription.
func CanUseTool(p *models.Principal, tool models.Tool) bool {
	if p == nil {
		return false
	}
	if tool.Tier == models.KeyTypeFree {
		return true
	}
	return p.IsPaid
}

// CanGenerateKey checks key-type generation eligibility before any network
// call. The returned error carries the user-facing explanation; it wraps
// ErrUnauthorized only for tier mismatches.
func CanGenerateKey(p *models.Principal, keyType models.KeyType) error {
	if !keyType.Valid() {
		return fmt.Errorf("unknown key type %q, use %q or %q", keyType, models.KeyTypeFree, models.KeyTypePaid)
	}
	if p == nil {
		return common.ErrNotAuthenticated
	}
	if keyType == models.KeyTypePaid && !p.IsPaid {
		return fmt.Errorf("%w: a paid API key requires a paid subscription; upgrade on the profile page first", common.ErrUnauthorized)
	}
	return nil
}
