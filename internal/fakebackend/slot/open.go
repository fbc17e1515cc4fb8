package slot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophaccounts/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	"github.com/dmitrijs2005/gophaccounts/internal/dbx"
	"github.com/dmitrijs2005/gophaccounts/internal/filex"
	"github.com/redis/go-redis/v9"
)

// Backend names accepted by Open.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Options selects and configures a slot backend.
type Options struct {
	Backend string
	Key     string

	// SQLitePath is used by the sqlite backend unless SQLiteDB is set.
	SQLitePath string
	// SQLiteDB lets the caller share an already migrated local database.
	SQLiteDB *sql.DB

	PostgresDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3User         string
	S3Password     string
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	openSQLite   = dbx.OpenSQLite
	openPostgres = dbx.OpenPostgres
)

// Open builds the slot described by opts.
func Open(ctx context.Context, opts Options) (Slot, error) {
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}

	switch opts.Backend {
	case BackendMemory:
		return NewMemorySlot(nil), nil

	case BackendSQLite, "":
		if opts.SQLiteDB != nil {
			return NewMetadataSlot(metadata.NewSQLiteRepository(opts.SQLiteDB), key), nil
		}
		path, err := filex.PrepareFile(opts.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("sqlite path: %w", err)
		}
		db, err := openSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		s := NewMetadataSlot(metadata.NewSQLiteRepository(db), key)
		s.db = db
		return s, nil

	case BackendPostgres:
		db, err := openPostgres(ctx, opts.PostgresDSN)
		if err != nil {
			return nil, err
		}
		s := NewPostgresSlot(db, key)
		s.closer = db.Close
		return s, nil

	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     opts.RedisAddr,
			Password: opts.RedisPassword,
			DB:       opts.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping error: %w", err)
		}
		return NewRedisSlot(rdb, key), nil

	case BackendS3:
		client, err := newS3Client(ctx, opts)
		if err != nil {
			return nil, err
		}
		return NewS3Slot(client, opts.S3Bucket, key), nil

	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownStorage, opts.Backend)
	}
}

func newS3Client(ctx context.Context, opts Options) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.S3User,
			opts.S3Password,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config error: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.S3BaseEndpoint)
			// path-style addressing for MinIO
			o.UsePathStyle = true
		}
	}), nil
}
