// Package config loads runtime configuration for the gophaccounts CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the accounts API
//	-g string   Graph API base URL
//	-l int      simulated API latency (milliseconds)
//	-v          debug logging
//	-s string   storage backend: memory, sqlite, postgres, redis or s3
//	-f string   SQLite database file ("~" is expanded)
//	-d string   PostgreSQL DSN
//	-r string   Redis address
//	-k string   storage slot key
//
// # JSON schema
//
// Durations use timex.Duration, so "500ms" and integer nanoseconds both
// work. S3 settings are only available here:
//
//	{
//	  "api_base_url": "http://localhost:4000",
//	  "graph_url": "https://graph.facebook.com/v8.0",
//	  "api_delay": "500ms",
//	  "storage": "s3",
//	  "s3_bucket": "gophaccounts",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/"
//	}
package config
