package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/puxvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the .1pux archive to import
//	-d string   sqlite DSN of the local vault database
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ArchivePath, "f", cfg.ArchivePath, "path to the .1pux archive")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN of the vault database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
