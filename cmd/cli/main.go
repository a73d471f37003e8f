package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/puxvault/internal/buildinfo"
	"github.com/dmitrijs2005/puxvault/internal/cli"
	"github.com/dmitrijs2005/puxvault/internal/config"
	"github.com/dmitrijs2005/puxvault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app := cli.NewApp(cfg, log)

	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "import failed", "error", err)
		os.Exit(1)
	}

}
