package main

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/ids"
	"inkwell/internal/logging"
	"inkwell/internal/store"
)

// runtimeEnv is everything a command needs to touch the notebooks.
type runtimeEnv struct {
	cfg     config.CoreConfig
	logger  logging.Logger
	backend store.Backend
	store   *store.Store
}

func openRuntime(ctx context.Context, opts *rootOptions) (*runtimeEnv, error) {
	cfg, err := config.LoadCoreConfig()
	if err != nil {
		return nil, err
	}
	if backend := strings.TrimSpace(opts.backend); backend != "" {
		cfg.Storage.Backend = backend
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
	}
	logger, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, err
	}
	backend, err := store.OpenBackend(cfg.StorageBackend(), path)
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", cfg.StorageBackend(), err)
	}
	if legacy, err := cfg.LegacyJSONPath(); err == nil {
		seeded, err := store.SeedFromFile(ctx, backend, legacy)
		if err != nil {
			logger.Warn("legacy seed skipped", logging.F("path", legacy), logging.F("err", err))
		} else if seeded {
			logger.Info("seeded from legacy file", logging.F("path", legacy))
		}
	}
	st, err := store.Open(ctx, backend,
		store.WithIDGenerator(ids.New(cfg.IDStrategy())),
		store.WithLogger(logger.With(logging.F("component", "store"))),
	)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return &runtimeEnv{cfg: cfg, logger: logger, backend: backend, store: st}, nil
}

func openLogger(cfg config.CoreConfig) (logging.Logger, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	return logging.NewFile(logging.FileOptions{
		Path:       path,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, logging.ParseLevel(cfg.LogLevel()))
}

func (r *runtimeEnv) Close() error {
	if r == nil {
		return nil
	}
	_ = r.logger.Sync()
	return r.backend.Close()
}

// withRuntime opens the store for the duration of fn.
func withRuntime(ctx context.Context, opts *rootOptions, fn func(*runtimeEnv) error) (err error) {
	env, err := openRuntime(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, env.Close())
	}()
	return fn(env)
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified string
		for _, setting := range info.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value
			}
		}
		if revision != "" {
			if modified == "true" {
				return revision + "-dirty"
			}
			return revision
		}
		if info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return "dev"
}
