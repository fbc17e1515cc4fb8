// Package slot provides the persisted storage slot behind the account store:
// a single key holding the whole JSON-serialized account collection.
//
// Every Save replaces the previous value wholesale; there are no partial
// writes. Load returns (nil, nil) when nothing has been saved yet.
//
// Backends:
//   - memory  : process-local, for tests and throwaway runs
//   - sqlite  : the client-local metadata table (default)
//   - postgres: a metadata table reached through pgx
//   - redis   : a plain string key
//   - s3      : one object per key in a bucket
package slot

import "context"

// DefaultKey is the slot key used when none is configured.
const DefaultKey = "gophaccounts-accounts"

// Slot is a single persisted value.
type Slot interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
