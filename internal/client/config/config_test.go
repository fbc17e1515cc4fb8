package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:4000", c.APIBaseURL)
	assert.Equal(t, "https://graph.facebook.com/v8.0", c.GraphURL)
	assert.Equal(t, 500*time.Millisecond, c.APIDelay)
	assert.Equal(t, "~/.gophaccounts.db", c.LocalDB)
	assert.Equal(t, slot.BackendSQLite, c.Storage.Backend)
	assert.Equal(t, "gophaccounts-accounts", c.Storage.Key)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:4000", cfg.APIBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.APIDelay)
	assert.Equal(t, cfg.LocalDB, cfg.Storage.SQLitePath)
}
