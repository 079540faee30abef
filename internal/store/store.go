package store

import "context"

// Blob is the minimal key-value persistence surface the application core
// depends on. The whole application state lives under a single key, with
// a second independent key for the daily-reward marker, so the interface
// is deliberately no richer than a get/set by string key.
type Blob interface {
	// Get returns the stored value for key. The second result reports
	// whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value string) error
}
