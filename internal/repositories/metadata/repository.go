// Package metadata is a small key/value table for local state that must
// survive between CLI runs, such as the cached auth token.
package metadata

import "context"

// Known keys.
const (
	KeyAuthToken = "auth_token"
)

// Repository stores opaque values by key. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
