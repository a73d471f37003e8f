package config

// Config holds runtime settings for the PuxVault importer CLI.
//
// Fields:
//   - ArchivePath: path to the .1pux export archive to import.
//   - DatabaseDSN: sqlite DSN (file path) of the local vault.
//   - AddLegacyTOTPFields: append legacy supplementary TOTP seed/settings
//     custom fields when installing a token.
//   - AddOTPAuthURL: append the canonical otpauth URL as a custom field
//     when installing a token.
type Config struct {
	ArchivePath         string
	DatabaseDSN         string
	AddLegacyTOTPFields bool
	AddOTPAuthURL       bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "vault.db"
	c.AddLegacyTOTPFields = false
	c.AddOTPAuthURL = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally seeded from an env file given via -c)
// and from command-line flags. Later sources take precedence over earlier
// ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
