package store

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	pkginfra "github.com/Raikerian/go-voice-auth/pkg/infrastructure"
)

// Module provides the configured TemplateStore.
var Module = fx.Module("store",
	fx.Provide(NewTemplateStore),
)

// NewTemplateStoreParams holds dependencies for NewTemplateStore.
type NewTemplateStoreParams struct {
	fx.In
	Cfg    *config.Config
	Logger *zap.Logger
	LC     fx.Lifecycle
}

// NewTemplateStore opens the backend named by store.backend and ties its
// shutdown to the Fx lifecycle.
func NewTemplateStore(params NewTemplateStoreParams) (enrollment.TemplateStore, error) {
	cfg := params.Cfg.Store
	logger := params.Logger.Named("store").With(zap.String("backend", cfg.Backend))

	var (
		s       enrollment.TemplateStore
		onStart func(context.Context) error
	)
	switch cfg.Backend {
	case config.BackendMemory, "":
		s = NewMemory()
	case config.BackendBadger:
		b, err := NewBadger(BadgerOptions{
			Dir:      cfg.Badger.Dir,
			InMemory: cfg.Badger.InMemory,
			Logger:   pkginfra.NewBadgerLogger(params.Logger),
		})
		if err != nil {
			return nil, err
		}
		s = b
	case config.BackendMongo:
		m, err := NewMongo(MongoOptions{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
			Timeout:    cfg.Mongo.Timeout,
		})
		if err != nil {
			return nil, err
		}
		onStart = func(ctx context.Context) error {
			if err := m.Ping(ctx); err != nil {
				return fmt.Errorf("store: ping mongo: %w", err)
			}
			return m.EnsureIndexes(ctx)
		}
		s = m
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}

	params.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if onStart != nil {
				if err := onStart(ctx); err != nil {
					logger.Error("Template store failed to start", zap.Error(err))
					return err
				}
			}
			logger.Info("Template store ready")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing template store")
			return s.Close()
		},
	})

	return s, nil
}
