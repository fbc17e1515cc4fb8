// Package config handles configuration for the development server,
// including defaults, JSON overlay, and command-line flags.
//
// Supported flags
//
//	-a string   HTTP listen address
//	-g string   Graph API base URL
//	-v          debug logging
//	-s, -f, -d, -r, -k   storage options, as for the CLI
package config

import (
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/identity"
)

// Config holds runtime settings for the development server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP listener.
//   - GraphURL: identity provider base URL used by the authenticate route.
//   - AllowedOrigins: CORS origins; "*" allows any.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - Storage: where the account collection lives.
type Config struct {
	ListenAddr      string
	GraphURL        string
	Debug           bool
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
	Storage         slot.Options
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":4000"
	c.GraphURL = identity.DefaultGraphURL
	c.Debug = false
	c.AllowedOrigins = []string{"*"}
	c.ShutdownTimeout = 5 * time.Second
	c.Storage = slot.Options{
		Backend:    slot.BackendSQLite,
		Key:        slot.DefaultKey,
		SQLitePath: "accounts.db",
	}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
