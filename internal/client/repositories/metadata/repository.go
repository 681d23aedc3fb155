// Package metadata is the durable client-side key/value store. The session
// token, the cached profile and the theme preference all live here under
// fixed key names.
package metadata

import "context"

type Repository interface {
	// Get returns the value for key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
