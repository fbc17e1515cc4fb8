package config

import (
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend"
	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
)

// Config holds runtime settings for the CLI.
//
// LocalDB is the client's own SQLite file. It always holds the provider
// token cache and, with the sqlite backend, the account slot too.
type Config struct {
	APIBaseURL string
	GraphURL   string
	APIDelay   time.Duration
	Debug      bool
	LocalDB    string
	Storage    slot.Options
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = client.DefaultBaseURL
	c.GraphURL = identity.DefaultGraphURL
	c.APIDelay = fakebackend.DefaultDelay
	c.Debug = false
	c.LocalDB = "~/.gophaccounts.db"
	c.Storage = slot.Options{
		Backend: slot.BackendSQLite,
		Key:     slot.DefaultKey,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
