package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
)

// PostgresSlot stores the value in the metadata table of a PostgreSQL
// database.
type PostgresSlot struct {
	db  dbx.DBTX
	key string
	// closer is set when the slot owns the connection pool
	closer func() error
}

func NewPostgresSlot(db dbx.DBTX, key string) *PostgresSlot {
	return &PostgresSlot{db: db, key: key}
}

func (s *PostgresSlot) Load(ctx context.Context) ([]byte, error) {
	query :=
		`SELECT value FROM metadata
		 WHERE key = $1
		 `

	var value []byte
	err := s.db.QueryRowContext(ctx, query, s.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return value, nil
}

func (s *PostgresSlot) Save(ctx context.Context, data []byte) error {
	query :=
		`INSERT INTO metadata (key, value, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		 `

	if _, err := s.db.ExecContext(ctx, query, s.key, data); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresSlot) Close() error {
	if s.closer != nil {
		return s.closer()
	}
	return nil
}
