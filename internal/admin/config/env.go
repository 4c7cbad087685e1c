package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a local .env
// file first when one exists (missing files are fine).
//
// Recognized variables:
//
//	ADMIN_AUTHORITY_ADDR — base URL of the authority
//	ADMIN_DB_PATH        — path to the local console database
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADMIN_AUTHORITY_ADDR"); v != "" {
		cfg.AuthorityAddr = v
	}
	if v := os.Getenv("ADMIN_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
