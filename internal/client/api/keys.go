package api

import (
	"context"
	"errors"
	"net/url"

	"github.com/avolkov/recondesk/internal/client/models"
	"github.com/avolkov/recondesk/internal/common"
)

type generateKeyRequest struct {
	Username string `json:"username"`
	APIType  string `json:"api_type"`
	JWTToken string `json:"jwt_token"`
}

type generateKeyResponse struct {
	APIKey string `json:"api_key"`
}

// GenerateKey requests a new key of the given type. Tier eligibility is
// checked by the caller before any network call; the backend re-checks.
func (c *HTTPClient) GenerateKey(ctx context.Context, token, username string, keyType models.KeyType) (string, error) {
	req := generateKeyRequest{Username: username, APIType: string(keyType), JWTToken: token}
	var resp generateKeyResponse
	if err := c.post(ctx, "/apikeys/generate-api-key", nil, token, req, &resp); err != nil {
		return "", err
	}
	return resp.APIKey, nil
}

// ListKeys returns all keys owned by username. A not-found answer means the
// user simply has no keys yet and is returned as an empty list.
func (c *HTTPClient) ListKeys(ctx context.Context, token, username string) ([]models.ApiKey, error) {
	q := url.Values{"jwt_token": {token}}
	var keys []models.ApiKey
	err := c.get(ctx, "/apikeys/get-api-keys/"+username, q, token, &keys)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return keys, nil
}

type keyCountResponse struct {
	// Count is a pointer so an absent or null value can be told apart from
	// zero; both are treated as zero usage, not as an error.
	Count *int `json:"count"`
}

// KeyCount fetches the authoritative usage count for a key.
func (c *HTTPClient) KeyCount(ctx context.Context, key string) (int, error) {
	var resp keyCountResponse
	if err := c.get(ctx, "/apikeys/get-count/"+key, nil, "", &resp); err != nil {
		return 0, err
	}
	if resp.Count == nil {
		return 0, nil
	}
	return *resp.Count, nil
}

// AllKeys lists every key in the system. Admin only.
func (c *HTTPClient) AllKeys(ctx context.Context, adminSecret string) ([]models.ApiKey, error) {
	q := url.Values{"admin_secret_key": {adminSecret}}
	var keys []models.ApiKey
	if err := c.get(ctx, "/apikeys/fetch-all", q, "", &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// IncrementKeyCount bumps a key's usage counter by one. Admin only.
func (c *HTTPClient) IncrementKeyCount(ctx context.Context, key, adminSecret string) error {
	q := url.Values{"admin_secret_key": {adminSecret}}
	return c.post(ctx, "/apikeys/increment-count/"+key, q, "", nil, nil)
}
