package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/andrii-androshchuk/envseed/internal/bootstrap"
	"github.com/andrii-androshchuk/envseed/internal/config"
	"github.com/andrii-androshchuk/envseed/internal/logger"
	"github.com/andrii-androshchuk/envseed/internal/secretstore"
)

var Version string

// configCacheCheck returns the gate that reports whether the host
// configuration is already cached. The marker file is written by the host
// application; envseed only ever reads it.
func configCacheCheck(path string) func() bool {
	return func() bool {
		if path == "" {
			return false
		}

		_, err := os.Stat(path)

		return err == nil
	}
}

func main() {
	envOverride := flag.String("env", "", "explicit environment name, takes precedence over APP_ENV")
	flag.Parse()

	// Set the default log level to debug
	log := logger.New(slog.LevelDebug)

	// Get the application configuration
	c, err := config.GetAppConfig()
	if err != nil {
		log.Critical("failed to get application configuration", logger.ErrAttr(err))
	}

	// Parse the log level from the app configuration
	logLevel, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		logLevel = slog.LevelInfo
	}

	// Set the actual log level
	log = logger.New(logLevel)

	runID := uuid.NewString()

	log.Info("starting secret loading",
		slog.String("version", Version),
		slog.String("run_id", runID),
		slog.String("log_level", c.LogLevel),
	)

	storeConfig, err := secretstore.GetConfig()
	if err != nil {
		log.Critical("failed to get secret store configuration", logger.ErrAttr(err))
	}

	ctx := context.Background()

	store, err := secretstore.NewFromConfig(ctx, storeConfig)
	if err != nil {
		log.Critical("failed to create secret store client", logger.ErrAttr(err))
	}

	loader := &bootstrap.Loader{
		Store: store,
		Resolver: bootstrap.EnvironmentResolver{
			Override: *envOverride,
			Console:  true,
			Ambient:  c.Environment,
		},
		BasePrefix:          c.BasePrefix,
		AllowedEnvironments: c.AllowedEnvironments,
		ConfigCached:        configCacheCheck(c.ConfigCacheFile),
		Log:                 log,
	}

	if err := loader.Run(ctx); err != nil {
		log.Critical("failed to load secrets", logger.ErrAttr(err))
	}

	log.Debug("secret loading finished", slog.String("run_id", runID))
}
