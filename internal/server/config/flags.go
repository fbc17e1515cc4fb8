package config

import (
	"flag"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
)

// parseFlags overlays Config with the server's command-line flags. Panics
// on malformed values.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "HTTP listen address")
	fs.StringVar(&cfg.GraphURL, "g", cfg.GraphURL, "Graph API base URL")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")
	slot.BindFlags(fs, &cfg.Storage)

	if err := flagx.ParseOwn(fs); err != nil {
		panic(err)
	}
}
