// Package localstore persists the client's small key-value state: the
// registered user list and the current session token. It plays the role the
// browser's local storage played in the original demo — a handful of logical
// keys, read and written synchronously, with no transactional guarantee
// across keys.
package localstore

import "context"

// Repository is a persistent key-value store.
type Repository interface {
	// Get returns the value stored under key, or common.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// Logical keys used by the application.
const (
	// KeyUsers holds the JSON-encoded ordered sequence of user records.
	KeyUsers = "users"

	// KeyAuthToken holds the single current session token. Exactly one token
	// is stored at a time; a second login overwrites the first.
	KeyAuthToken = "auth_token"
)
