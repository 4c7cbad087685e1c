package config

import (
	"encoding/json"
	"os"

	"github.com/dhanya-017/infinart-admin/internal/flagx"
)

// jsonConfig is the DTO for JSON unmarshalling only.
type jsonConfig struct {
	AuthorityAddr string `json:"authority_addr"`
	DatabasePath  string `json:"db_path"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flag. If no file is given the function is a no-op; read and
// unmarshal errors panic, matching the all-or-nothing startup contract.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthorityAddr != "" {
		cfg.AuthorityAddr = jc.AuthorityAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
