package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"slices"

	"github.com/andrii-androshchuk/envseed/internal/logger"
	"github.com/andrii-androshchuk/envseed/internal/secretstore"
)

// SecretStore is the read-only store capability the loader drives.
// *secretstore.Store satisfies this interface.
type SecretStore interface {
	ListByPrefix(ctx context.Context, prefix string) ([]string, error)
	FetchValues(ctx context.Context, names []string) (map[string]string, error)
}

// Loader sequences the secret loading pipeline: resolve the environment,
// check the gates, then list, fetch and merge.
type Loader struct {
	Store               SecretStore
	Resolver            EnvironmentResolver
	BasePrefix          string       // BasePrefix scopes the secret names, combined with the environment
	AllowedEnvironments []string     // AllowedEnvironments lists the environments for which loading is permitted
	ConfigCached        func() bool  // ConfigCached reports whether the host configuration is already cached
	SetEnv              Sink         // SetEnv defaults to os.Setenv
	Log                 *logger.Logger
}

// Run executes the pipeline once. Skips (cached configuration, environment
// not in the allow-list) are silent and not errors; any store failure is
// fatal and aborts before a single environment variable is written.
func (l *Loader) Run(ctx context.Context) error {
	log := l.Log
	if log == nil {
		log = logger.New(logger.LevelInfo)
	}

	if l.ConfigCached != nil && l.ConfigCached() {
		log.Debug("configuration already cached, skipping secret loading")

		return nil
	}

	environment := l.Resolver.Resolve()
	if !slices.Contains(l.AllowedEnvironments, environment) {
		log.Debug("environment not in allow-list, skipping secret loading",
			slog.String("environment", environment))

		return nil
	}

	prefix := secretstore.Prefix(l.BasePrefix, environment)

	names, err := l.Store.ListByPrefix(ctx, prefix)
	if err != nil {
		return err
	}

	values, err := l.Store.FetchValues(ctx, names)
	if err != nil {
		return err
	}

	set := l.SetEnv
	if set == nil {
		set = os.Setenv
	}

	written, err := Merge(values, prefix, set)
	if err != nil {
		return err
	}

	log.Info("secrets injected into environment",
		slog.String("environment", environment),
		slog.String("prefix", prefix),
		slog.Int("count", len(written)),
		logger.KeysAttr(written),
	)

	return nil
}
