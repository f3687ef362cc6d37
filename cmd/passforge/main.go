package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/passforge/passforge-go/internal/cli"
	"github.com/passforge/passforge-go/internal/config"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded defaults from .env")
	}

	cfg := config.Load()

	var file config.File
	if cfg.ConfigFile != "" {
		var err error
		file, err = config.LoadFile(afero.NewOsFs(), cfg.ConfigFile)
		if err != nil {
			slog.Error("config file rejected", "path", cfg.ConfigFile, "error", err)
			os.Exit(1)
		}
	}

	app := cli.New(cfg, file, os.Stdout, os.Stderr)
	os.Exit(app.Run(os.Args[1:]))
}
