// Package app provides the main application structure and lifecycle management.
package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/api"
)

// Application represents the main application with its lifecycle.
type Application struct {
	app *fx.App
}

// New creates a new Application with the provided modules and options.
func New(modules ...fx.Option) *Application {
	options := append(modules, fx.Invoke(registerLifecycleHooks))

	return &Application{
		app: fx.New(options...),
	}
}

// Err returns any error encountered while building the dependency graph.
func (a *Application) Err() error {
	return a.app.Err()
}

// Start starts the application without blocking.
func (a *Application) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

// Stop gracefully stops the application.
func (a *Application) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}

// registerLifecycleHooks ties the HTTP server to the application lifecycle.
// The store hooks are registered earlier by their constructor, so the server
// starts after the store is ready and stops before it closes.
func registerLifecycleHooks(lc fx.Lifecycle, server *api.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Starting application: starting HTTP server")

			if err := server.Start(ctx); err != nil {
				logger.Error("Failed to start HTTP server", zap.Error(err))

				return err
			}

			logger.Info("Application started successfully")

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping application: draining HTTP server")

			if err := server.Stop(ctx); err != nil {
				logger.Error("Failed to stop HTTP server", zap.Error(err))

				return err
			}

			logger.Info("Application stopped successfully")

			return nil
		},
	})
}
