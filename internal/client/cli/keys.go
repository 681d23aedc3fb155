package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/recondesk/internal/client/access"
	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/client/quota"
	"github.com/avolkov/recondesk/internal/common"
)

// Keys lists the user's API keys with authoritative usage counts. Exhausted
// free keys are marked disabled here, matching the submission-time check.
func (a *App) Keys(ctx context.Context) error {
	if !a.guard(ctx, "/api-keys") {
		return nil
	}
	p := a.sessions.Principal()

	keys, err := a.api.ListKeys(ctx, a.sessions.Token(), p.Username)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		printlnFn("No API keys yet. Generate one with: genkey free")
		return nil
	}

	keys = a.tracker.RefreshAll(ctx, keys)

	for _, k := range keys {
		printlnFn("  " + describeKey(k))
	}
	return nil
}

func describeKey(k models.ApiKey) string {
	remaining, unlimited := quota.Remaining(k)
	switch {
	case unlimited:
		return fmt.Sprintf("%s  %s  unlimited", k.Redacted(), k.Type)
	case remaining == 0:
		return fmt.Sprintf("%s  %s  %d/%d used (exhausted, disabled)", k.Redacted(), k.Type, k.Count, quota.FreeTierLimit)
	default:
		return fmt.Sprintf("%s  %s  %d/%d used", k.Redacted(), k.Type, k.Count, quota.FreeTierLimit)
	}
}

// GenerateKey requests a new key of the given type. Tier eligibility is
// checked locally first; an ineligible request never reaches the network
// and gets an explanation instead of an error.
func (a *App) GenerateKey(ctx context.Context, keyType string) error {
	if !a.guard(ctx, "/api-keys") {
		return nil
	}
	p := a.sessions.Principal()

	kt := models.KeyType(keyType)
	if err := access.CanGenerateKey(p, kt); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn(err.Error())
			return nil
		}
		return err
	}

	key, err := a.api.GenerateKey(ctx, a.sessions.Token(), p.Username, kt)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Generated %s API key: %s", kt, key))
	printlnFn("Store it safely; it authorizes scans on your behalf.")
	return nil
}

// selectKey picks the API key to use for a submission. Keys that cannot
// admit another scan are excluded from selection, so the picker can never
// offer a key that submission would reject.
func (a *App) selectKey(ctx context.Context) (models.ApiKey, error) {
	p := a.sessions.Principal()

	keys, err := a.api.ListKeys(ctx, a.sessions.Token(), p.Username)
	if err != nil {
		return models.ApiKey{}, err
	}
	keys = a.tracker.RefreshAll(ctx, keys)

	usable := keys[:0]
	for _, k := range keys {
		if quota.CanAdmit(k) {
			usable = append(usable, k)
		}
	}
	if len(usable) == 0 {
		return models.ApiKey{}, errors.New("no usable API keys: generate one with 'genkey free' or wait for quota")
	}
	if len(usable) == 1 {
		return usable[0], nil
	}

	printlnFn("Select an API key:")
	for i, k := range usable {
		printlnFn(fmt.Sprintf("  %d) %s", i+1, describeKey(k)))
	}
	choice, err := getSimpleText(a.reader, "Key number", stdout())
	if err != nil {
		return models.ApiKey{}, err
	}
	var idx int
	if _, err := fmt.Sscanf(choice, "%d", &idx); err != nil || idx < 1 || idx > len(usable) {
		return models.ApiKey{}, errors.New("invalid key selection")
	}
	return usable[idx-1], nil
}
