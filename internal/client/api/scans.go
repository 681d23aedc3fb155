package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/avolkov/recondesk/internal/client/models"
)

type scanRequest struct {
	Domain string `json:"domain"`
	APIKey string `json:"api_key"`
}

// ExecuteScan runs tool against domain using key. This is the only call in
// the client that may legitimately take multiple seconds; its deadline is
// the transport timeout.
func (c *HTTPClient) ExecuteScan(ctx context.Context, tool, domain, key string) (*models.ScanRecord, error) {
	var rec models.ScanRecord
	err := c.post(ctx, "/scans/scan/"+tool, nil, "", scanRequest{Domain: domain, APIKey: key}, &rec)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ScanHistory returns up to limit past scans for the key, newest first.
func (c *HTTPClient) ScanHistory(ctx context.Context, key string, limit int) ([]models.ScanRecord, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var recs []models.ScanRecord
	if err := c.get(ctx, "/scans/history/"+key, q, "", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// ScanResult fetches one scan with its full output.
func (c *HTTPClient) ScanResult(ctx context.Context, scanID int64, key string) (*models.ScanRecord, error) {
	q := url.Values{"api_key": {key}}
	var rec models.ScanRecord
	if err := c.get(ctx, "/scans/result/"+strconv.FormatInt(scanID, 10), q, "", &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
