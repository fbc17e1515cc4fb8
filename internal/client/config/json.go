package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophaccounts/internal/fakebackend/slot"
	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/dmitrijs2005/gophaccounts/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIBaseURL string          `json:"api_base_url"`
	GraphURL   string          `json:"graph_url"`
	APIDelay   *timex.Duration `json:"api_delay"`
	Debug      bool            `json:"debug"`
	LocalDB    string          `json:"local_db"`

	slot.JSONOptions
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Absent keys keep their current value. Panics on read or
// unmarshal errors.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.GraphURL != "" {
		cfg.GraphURL = jc.GraphURL
	}
	if jc.APIDelay != nil {
		cfg.APIDelay = jc.APIDelay.Duration
	}
	if jc.Debug {
		cfg.Debug = true
	}
	if jc.LocalDB != "" {
		cfg.LocalDB = jc.LocalDB
	}
	jc.JSONOptions.ApplyTo(&cfg.Storage)
}
