// Package config loads runtime configuration for the PuxVault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from an env file selected
//     via flags: -c or -config (see parseEnv).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path to the .1pux archive to import
//	-d string   sqlite DSN of the local vault database
//
// # Environment
//
//	PUXVAULT_ARCHIVE             path to the .1pux archive
//	PUXVAULT_DB                  sqlite DSN of the vault database
//	PUXVAULT_TOTP_LEGACY_FIELDS  bool, append legacy supplementary TOTP fields
//	PUXVAULT_TOTP_OTPAUTH_URL    bool, append the otpauth URL custom field
//
// Primary API
//
//   - type Config                     — holds archive, database and TOTP settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
