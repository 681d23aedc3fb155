package models

import "time"

// ScanRecord is a historical scan entry owned by the external history store.
// The client only reads these; Result is populated for single-record fetches
// and freshly executed scans, history listings may omit it.
type ScanRecord struct {
	ID       int64     `json:"id"`
	Tool     string    `json:"tool"`
	Domain   string    `json:"domain"`
	Result   string    `json:"result,omitempty"`
	ScanTime time.Time `json:"scan_time"`
}
