package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/turbot/go-kit/helpers"

	"github.com/oliy/workers-sdk/internal/cmd"
	"github.com/oliy/workers-sdk/internal/config"
	"github.com/oliy/workers-sdk/internal/constants"
	"github.com/oliy/workers-sdk/internal/error_helpers"
	"github.com/oliy/workers-sdk/internal/perr"
	"github.com/oliy/workers-sdk/internal/sanitize"
)

var (
	// These variables will be set by GoReleaser.
	version = "0.0.1-local.1"
	commit  = "none"
	date    = "unknown"
	builtBy = "local"
)

func main() {
	// Create a single, global context for the application
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			err := helpers.ToError(r)
			error_helpers.ShowError(ctx, err)
			os.Exit(perr.GetExitCode(err))
		}
	}()

	setupLogger()

	cfg, err := config.NewConfig()
	error_helpers.FailOnError(err)
	ctx = config.Set(ctx, cfg)

	viper.SetDefault("main.version", version)
	viper.SetDefault("main.commit", commit)
	viper.SetDefault("main.date", date)
	viper.SetDefault("main.builtBy", builtBy)

	// Run the CLI
	cmd.RunCLI(ctx)
}

func setupLogger() {
	handlerOptions := &slog.HandlerOptions{
		Level:       getLogLevel(),
		ReplaceAttr: sanitize.ReplaceAttr,
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions))
	slog.SetDefault(logger)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(constants.EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
