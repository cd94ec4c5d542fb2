// Package infrastructure provides core infrastructure components and their Fx modules.
package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Raikerian/go-voice-auth/internal/config"
)

// LoggerModule provides logging infrastructure.
var LoggerModule = fx.Module("logger",
	fx.Provide(NewZapLogger),
)

// NewZapLoggerParams holds dependencies for NewZapLogger.
type NewZapLoggerParams struct {
	fx.In
	Cfg *config.Config
	LC  fx.Lifecycle
}

// NewZapLogger builds a zap logger for the configured level. "debug" uses the
// development encoder; every other level uses the production JSON encoder.
func NewZapLogger(params NewZapLoggerParams) (*zap.Logger, error) {
	zapConfig, err := zapConfigFor(params.Cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	params.LC.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// Sync on a terminal stderr returns EINVAL/ENOTTY.
			if err := logger.Sync(); err != nil && !errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
				return err
			}
			return nil
		},
	})

	return logger, nil
}

func zapConfigFor(level string) (zap.Config, error) {
	if level == "debug" {
		return zap.NewDevelopmentConfig(), nil
	}

	zapConfig := zap.NewProductionConfig()
	if level == "" {
		return zapConfig, nil
	}

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zap.Config{}, fmt.Errorf("invalid log_level %q: %w", level, err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(parsed)

	return zapConfig, nil
}
