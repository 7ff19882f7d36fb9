package cmd

import (
	"context"
	"fmt"
	"time"

	"mtg-utils/core/cardlist"
	"mtg-utils/core/config"
	"mtg-utils/core/logger"
	"mtg-utils/core/moxfield"
	"mtg-utils/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// session bundles what every command needs.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	store  cardlist.Store
}

// newSession loads settings, builds the run-scoped logger and opens the list store.
func newSession(ctx context.Context, command string) (*session, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if debugFlag {
		cfg.Log.Level = "debug"
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString()).With(zap.String("command", command))

	store, err := openStore(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: l, store: store}, nil
}

// openStore selects the list backend named in the library settings.
func openStore(ctx context.Context, cfg *config.Config, l *zap.Logger) (cardlist.Store, error) {
	if !cfg.Library.IsValidBackend() {
		return nil, fmt.Errorf("invalid library backend %q (expected %s or %s)",
			cfg.Library.Backend, cardlist.BackendFile, cardlist.BackendObject)
	}

	if cfg.Library.Backend == cardlist.BackendFile {
		return cardlist.NewFileStore(""), nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		return nil, err
	}

	l.Debug("Using object storage", zap.String("endpoint", cfg.Storage.Endpoint), zap.String("bucket", cfg.Storage.Bucket))
	return cardlist.NewObjectStore(client, cfg.Storage.Bucket, cfg.Storage.Prefix), nil
}

// loadCollection reads the collection file, creating the default one if absent.
func (rt *session) loadCollection(path string) (*config.Collection, error) {
	col, created, err := config.LoadCollection(path)
	if err != nil {
		return nil, err
	}
	if created {
		rt.logger.Info("Created default config file", zap.String("file", path))
	}
	return col, nil
}

func (rt *session) remote() *moxfield.Client {
	return moxfield.NewClient(rt.cfg.Moxfield)
}
