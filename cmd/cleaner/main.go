package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/JonMunkholm/campaignclean/internal/config"
	"github.com/JonMunkholm/campaignclean/internal/core"
	"github.com/JonMunkholm/campaignclean/internal/core/tables"
	"github.com/JonMunkholm/campaignclean/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (only LOG_LEVEL and LOG_FORMAT are read)
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	defs := core.ByGroup(tables.Group)
	service, err := core.NewService(config.InputDir, config.OutputDir, config.ArchiveExt, defs)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		os.Exit(1)
	}

	result, err := service.Run(context.Background())
	if err != nil {
		ue := core.NewUserError(err)
		slog.Error("run failed",
			"run_id", result.RunID,
			"error", ue.Technical,
			"code", ue.User.Code,
			"no_data", errors.Is(err, core.ErrNoValidData),
		)
		if core.IsUserFacing(err) {
			slog.Error(core.FormatUserError(err))
		}
		os.Exit(1)
	}

	for _, out := range result.Outputs {
		slog.Info("wrote", "table", out.Key, "path", out.Path, "rows", out.Rows)
	}
}
