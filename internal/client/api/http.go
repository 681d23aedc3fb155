package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avolkov/recondesk/internal/logging"
)

// HTTPClient talks JSON over HTTP to the scanning backend and implements all
// four service contracts. Timeouts are owned by the underlying http.Client;
// workflows do not reimplement them.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the backend at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}, nil
}

// do performs one request. A non-empty token is sent as a bearer credential.
// Non-2xx responses are decoded into a normalized *Error; on success the
// body is unmarshalled into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, data)
		c.log.Debug(ctx, "request failed", "method", method, "path", path,
			"status", resp.StatusCode, "kind", apiErr.Kind)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *HTTPClient) get(ctx context.Context, path string, query url.Values, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, query, token, nil, out)
}

func (c *HTTPClient) post(ctx context.Context, path string, query url.Values, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, query, token, body, out)
}
