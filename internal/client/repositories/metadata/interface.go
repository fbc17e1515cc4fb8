// Package metadata is the client-local key/value table. It backs the
// persisted account slot and the identity provider token cache.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get returns (nil, nil) when the key
// is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
