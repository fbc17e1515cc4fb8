package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Flags owned by
// other components are ignored. Panics on malformed values.
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "accounts API base URL")
	fs.StringVar(&cfg.GraphURL, "g", cfg.GraphURL, "Graph API base URL")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")
	delay := fs.Int("l", int(cfg.APIDelay.Milliseconds()), "simulated API latency (in milliseconds)")

	// -f names the local database; the sqlite slot lives in it
	cfg.Storage.SQLitePath = cfg.LocalDB
	slot.BindFlags(fs, &cfg.Storage)

	if err := flagx.ParseOwn(fs); err != nil {
		panic(err)
	}

	cfg.APIDelay = time.Duration(*delay) * time.Millisecond
	cfg.LocalDB = cfg.Storage.SQLitePath
}
