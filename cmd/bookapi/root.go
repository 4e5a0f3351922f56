package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/book_catalog_api/internal/platform/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bookapi",
	Short: "Book catalog API server and maintenance commands",
	// Errors are logged by the subcommands.
	SilenceUsage: true,
}

// loadRuntime reads configuration and installs the JSON logger at the
// configured level.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
