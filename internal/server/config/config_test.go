package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":4000", c.ListenAddr)
	assert.Equal(t, "https://graph.facebook.com/v8.0", c.GraphURL)
	assert.Equal(t, []string{"*"}, c.AllowedOrigins)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
	assert.Equal(t, slot.BackendSQLite, c.Storage.Backend)
	assert.Equal(t, "accounts.db", c.Storage.SQLitePath)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-g", "http://graph", "-s", "postgres", "-d", "postgres://db", "-k", "k",
		}, expected: &Config{
			ListenAddr: "127.0.0.1:9090",
			GraphURL:   "http://graph",
			Storage:    slot.Options{Backend: slot.BackendPostgres, PostgresDSN: "postgres://db", Key: "k"},
		}},
		{name: "Test2 bad bool", args: []string{"cmd", "-v=maybe"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}

func TestLoadConfig_JSONThenFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := filepath.Join(t.TempDir(), "server.json")
	b, err := json.Marshal(map[string]any{
		"listen_addr":      ":7000",
		"allowed_origins":  []string{"http://localhost:4200"},
		"shutdown_timeout": "2s",
		"storage":          "redis",
		"redis_addr":       "redis:6379",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	os.Args = []string{"testbin", "-c", path, "-a", ":7001"}
	cfg := LoadConfig()

	assert.Equal(t, ":7001", cfg.ListenAddr)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slot.BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "redis:6379", cfg.Storage.RedisAddr)
	assert.Equal(t, "accounts.db", cfg.Storage.SQLitePath)
}

func TestParseJson_Invalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	os.Args = []string{"testbin", "-config", bad}

	require.Panics(t, func() { parseJson(&Config{}) })
}
