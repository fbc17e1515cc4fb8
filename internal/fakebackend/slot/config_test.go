package slot

import (
	"encoding/json"
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	o := Options{Backend: BackendSQLite, SQLitePath: "a.db", RedisAddr: "keep:6379"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs, &o)

	require.NoError(t, fs.Parse([]string{"-s", "postgres", "-d", "postgres://x", "-k", "k1"}))

	want := Options{Backend: BackendPostgres, SQLitePath: "a.db", PostgresDSN: "postgres://x", RedisAddr: "keep:6379", Key: "k1"}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONOptions_ApplyTo(t *testing.T) {
	var j JSONOptions
	require.NoError(t, json.Unmarshal([]byte(`{
		"storage": "s3",
		"s3_bucket": "gophaccounts",
		"s3_region": "us-east-1",
		"s3_root_user": "admin",
		"redis_db": 2
	}`), &j))

	o := Options{Backend: BackendSQLite, SQLitePath: "keep.db"}
	j.ApplyTo(&o)

	want := Options{
		Backend:    BackendS3,
		SQLitePath: "keep.db",
		RedisDB:    2,
		S3Bucket:   "gophaccounts",
		S3Region:   "us-east-1",
		S3User:     "admin",
	}
	if diff := cmp.Diff(want, o); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}
