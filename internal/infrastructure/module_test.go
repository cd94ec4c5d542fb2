package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Raikerian/go-voice-auth/internal/config"
)

func TestZapConfigFor(t *testing.T) {
	tests := map[string]struct {
		level     string
		wantLevel zapcore.Level
		wantDev   bool
		wantErr   bool
	}{
		"debug uses development": {level: "debug", wantLevel: zapcore.DebugLevel, wantDev: true},
		"empty defaults to info":  {level: "", wantLevel: zapcore.InfoLevel},
		"info":                    {level: "info", wantLevel: zapcore.InfoLevel},
		"warn":                    {level: "warn", wantLevel: zapcore.WarnLevel},
		"error":                   {level: "error", wantLevel: zapcore.ErrorLevel},
		"unknown":                 {level: "loud", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := zapConfigFor(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, tt.wantDev, cfg.Development)
		})
	}
}

func TestLoggerModule(t *testing.T) {
	cfg := &config.Config{LogLevel: "warn"}

	var logger *zap.Logger
	app := fxtest.New(t,
		fx.Supply(cfg),
		LoggerModule,
		fx.Populate(&logger),
	)
	app.RequireStart()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	app.RequireStop()
}
