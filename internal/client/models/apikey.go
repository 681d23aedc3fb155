package models

import "time"

// KeyType is the tier of an API key: free keys carry a usage ceiling,
// paid keys do not.
type KeyType string

const (
	KeyTypeFree KeyType = "free"
	KeyTypePaid KeyType = "paid"
)

// Valid reports whether t is one of the known key types.
func (t KeyType) Valid() bool {
	return t == KeyTypeFree || t == KeyTypePaid
}

// ApiKey is a scanning credential owned by a user. Count is the
// server-authoritative usage counter; the client reads it, it never
// decrements it locally.
type ApiKey struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Key       string    `json:"apikey"`
	Type      KeyType   `json:"api_type"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// Redacted returns a short display form of the key material.
func (k ApiKey) Redacted() string {
	if len(k.Key) <= 8 {
		return k.Key
	}
	return k.Key[:8] + "..."
}
