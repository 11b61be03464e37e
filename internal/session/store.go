// Package session persists the logged-in user's name and bearer token under
// fixed keys and decodes the token's claims on demand.
package session

import "context"

// Keys under which the session is stored.
const (
	KeyUsername    = "username"
	KeyAccessToken = "access_token"
)

// Store is a small key/value backend for session state.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, values map[string]string) error
	Clear(ctx context.Context) error
}
