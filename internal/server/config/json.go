package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/dmitrijs2005/gophaccounts/internal/timex"
)

// JsonConfig is the on-disk form of Config.
type JsonConfig struct {
	ListenAddr      string          `json:"listen_addr"`
	GraphURL        string          `json:"graph_url"`
	Debug           bool            `json:"debug"`
	AllowedOrigins  []string        `json:"allowed_origins"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`

	slot.JSONOptions
}

// parseJson overlays Config with the JSON file named by -c or -config.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.GraphURL != "" {
		cfg.GraphURL = jc.GraphURL
	}
	if jc.Debug {
		cfg.Debug = true
	}
	if jc.AllowedOrigins != nil {
		cfg.AllowedOrigins = jc.AllowedOrigins
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	jc.JSONOptions.ApplyTo(&cfg.Storage)
}
