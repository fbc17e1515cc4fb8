package identity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophaccounts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
)

// TokenCache persists the provider session between runs.
type TokenCache interface {
	Load(ctx context.Context) (*AuthResponse, error)
	Save(ctx context.Context, r *AuthResponse) error
	Clear(ctx context.Context) error
}

const (
	keyAccessToken = "fb_access_token"
	keyUserID      = "fb_user_id"
)

// MetadataTokenCache keeps the provider session in the local metadata table.
type MetadataTokenCache struct {
	db *sql.DB
}

func NewMetadataTokenCache(db *sql.DB) *MetadataTokenCache {
	return &MetadataTokenCache{db: db}
}

// Load returns nil when no session is cached.
func (c *MetadataTokenCache) Load(ctx context.Context) (*AuthResponse, error) {
	repo := metadata.NewSQLiteRepository(c.db)

	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return nil, fmt.Errorf("token cache load: %w", err)
	}
	if len(token) == 0 {
		return nil, nil
	}

	userID, err := repo.Get(ctx, keyUserID)
	if err != nil {
		return nil, fmt.Errorf("token cache load: %w", err)
	}
	return &AuthResponse{AccessToken: string(token), UserID: string(userID)}, nil
}

// Save stores both keys in one transaction.
func (c *MetadataTokenCache) Save(ctx context.Context, r *AuthResponse) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(r.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUserID, []byte(r.UserID))
	})
}

// Clear drops the cached session, leaving other metadata keys alone.
func (c *MetadataTokenCache) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyAccessToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyUserID)
	})
}
