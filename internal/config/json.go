package config

import (
	"encoding/json"
	"os"
	"time"

	"picshelf/internal/flagx"
	"picshelf/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "10s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ListingEndpoint string         `json:"listing_endpoint"`
	ListingPage     int            `json:"listing_page"`
	ListingLimit    int            `json:"listing_limit"`
	PageSize        int            `json:"page_size"`
	DatabaseDSN     string         `json:"database_dsn"`
	TokenTTL        timex.Duration `json:"token_ttl"`
	IdleTimeout     timex.Duration `json:"idle_timeout"`
	PollInterval    timex.Duration `json:"poll_interval"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies set fields into the provided Config; zero values are skipped so
//     a partial file only overrides what it names.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.ListingEndpoint != "" {
		cfg.ListingEndpoint = jc.ListingEndpoint
	}
	if jc.ListingPage != 0 {
		cfg.ListingPage = jc.ListingPage
	}
	if jc.ListingLimit != 0 {
		cfg.ListingLimit = jc.ListingLimit
	}
	if jc.PageSize != 0 {
		cfg.PageSize = jc.PageSize
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = time.Duration(jc.TokenTTL.Duration)
	}
	if jc.IdleTimeout.Duration != 0 {
		cfg.IdleTimeout = time.Duration(jc.IdleTimeout.Duration)
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = time.Duration(jc.PollInterval.Duration)
	}
}
