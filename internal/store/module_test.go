package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	"github.com/Raikerian/go-voice-auth/internal/store"
)

func TestModule(t *testing.T) {
	tests := map[string]struct {
		cfg  config.StoreConfig
		want any
	}{
		"memory": {
			cfg:  config.StoreConfig{Backend: config.BackendMemory},
			want: &store.Memory{},
		},
		"badger in memory": {
			cfg:  config.StoreConfig{Backend: config.BackendBadger, Badger: config.BadgerConfig{InMemory: true}},
			want: &store.Badger{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{Store: tt.cfg}

			var s enrollment.TemplateStore
			app := fxtest.New(t,
				fx.Supply(cfg, zaptest.NewLogger(t)),
				store.Module,
				fx.Populate(&s),
			)
			app.RequireStart()
			assert.IsType(t, tt.want, s)
			app.RequireStop()
		})
	}
}

func TestModule_UnknownBackend(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Backend: "redis"}}

	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg, zaptest.NewLogger(t)),
		store.Module,
		fx.Invoke(func(enrollment.TemplateStore) {}),
	)
	assert.Error(t, app.Err())
}
