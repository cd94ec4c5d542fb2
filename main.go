// Package main provides the entry point for the voice authentication service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/fx"

	"github.com/Raikerian/go-voice-auth/internal/api"
	"github.com/Raikerian/go-voice-auth/internal/app"
	"github.com/Raikerian/go-voice-auth/internal/auth"
	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	"github.com/Raikerian/go-voice-auth/internal/infrastructure"
	"github.com/Raikerian/go-voice-auth/internal/store"
	"github.com/Raikerian/go-voice-auth/internal/transcribe"
	pkginfra "github.com/Raikerian/go-voice-auth/pkg/infrastructure"
)

func main() {
	configPath := config.ResolvePath(os.LookupEnv)

	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External collaborators
		store.Module,
		transcribe.Module,
		auth.Module,

		// Application modules
		enrollment.Module,
		api.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)
	if err := application.Err(); err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	err := application.Start(startCtx)
	cancelStart()
	if err != nil {
		fmt.Printf("Failed to start application: %v\n", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	// Give the application 30 seconds to shut down gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = application.Stop(shutdownCtx)
	cancel()

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
