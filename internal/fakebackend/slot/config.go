package slot

import "flag"

// StorageFlags are the short flags registered by BindFlags.
var StorageFlags = []string{"-s", "-f", "-d", "-r", "-k"}

// BindFlags registers the storage flags on fs, defaulting to the current
// values in o.
//
//	-s string   storage backend: memory, sqlite, postgres, redis or s3
//	-f string   SQLite database file
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-k string   slot key
func BindFlags(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.Backend, "s", o.Backend, "storage backend (memory|sqlite|postgres|redis|s3)")
	fs.StringVar(&o.SQLitePath, "f", o.SQLitePath, "SQLite database file")
	fs.StringVar(&o.PostgresDSN, "d", o.PostgresDSN, "PostgreSQL DSN")
	fs.StringVar(&o.RedisAddr, "r", o.RedisAddr, "Redis address")
	fs.StringVar(&o.Key, "k", o.Key, "storage slot key")
}

// JSONOptions is the JSON form of Options.
type JSONOptions struct {
	Backend       string `json:"storage"`
	Key           string `json:"storage_key"`
	SQLitePath    string `json:"sqlite_path"`
	PostgresDSN   string `json:"database_dsn"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3User         string `json:"s3_root_user"`
	S3Password     string `json:"s3_root_password"`
}

// ApplyTo copies every non-zero field onto o.
func (j JSONOptions) ApplyTo(o *Options) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&o.Backend, j.Backend)
	set(&o.Key, j.Key)
	set(&o.SQLitePath, j.SQLitePath)
	set(&o.PostgresDSN, j.PostgresDSN)
	set(&o.RedisAddr, j.RedisAddr)
	set(&o.RedisPassword, j.RedisPassword)
	if j.RedisDB != 0 {
		o.RedisDB = j.RedisDB
	}
	set(&o.S3Bucket, j.S3Bucket)
	set(&o.S3Region, j.S3Region)
	set(&o.S3BaseEndpoint, j.S3BaseEndpoint)
	set(&o.S3User, j.S3User)
	set(&o.S3Password, j.S3Password)
}
