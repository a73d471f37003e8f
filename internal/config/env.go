package config

import (
	"os"
	"strconv"

	"github.com/dmitrijs2005/puxvault/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names recognized by parseEnv.
const (
	EnvArchivePath         = "PUXVAULT_ARCHIVE"
	EnvDatabaseDSN         = "PUXVAULT_DB"
	EnvAddLegacyTOTPFields = "PUXVAULT_TOTP_LEGACY_FIELDS"
	EnvAddOTPAuthURL       = "PUXVAULT_TOTP_OTPAUTH_URL"
)

// parseEnv overlays Config with values from the process environment. When
// an env file is named via -c/-config it is loaded first without
// overriding variables already present in the environment (godotenv
// semantics); a missing file is quietly ignored.
func parseEnv(cfg *Config) {
	if envFile := flagx.ConfigFileFlag(); envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv(EnvArchivePath); v != "" {
		cfg.ArchivePath = v
	}
	if v := os.Getenv(EnvDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv(EnvAddLegacyTOTPFields); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AddLegacyTOTPFields = b
		}
	}
	if v := os.Getenv(EnvAddOTPAuthURL); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AddOTPAuthURL = b
		}
	}
}
