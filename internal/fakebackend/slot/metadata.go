package slot

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/gophaccounts/internal/client/repositories/metadata"
)

// MetadataSlot stores the value under one key of a metadata repository,
// normally the client-local SQLite database.
type MetadataSlot struct {
	repo metadata.Repository
	key  string
	// db is closed by Close when the slot opened it itself
	db *sql.DB
}

func NewMetadataSlot(repo metadata.Repository, key string) *MetadataSlot {
	return &MetadataSlot{repo: repo, key: key}
}

func (s *MetadataSlot) Load(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, s.key)
}

func (s *MetadataSlot) Save(ctx context.Context, data []byte) error {
	return s.repo.Set(ctx, s.key, data)
}

func (s *MetadataSlot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
