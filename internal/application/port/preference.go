package port

import "context"

// PreferenceBackend is a key-value store holding persisted preferences.
// Implementations must tolerate concurrent use.
type PreferenceBackend interface {
	// Get returns the value stored under key and whether it exists.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
