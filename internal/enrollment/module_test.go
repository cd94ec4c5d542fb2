package enrollment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	"github.com/Raikerian/go-voice-auth/internal/store"
)

func TestModule(t *testing.T) {
	cfg := testConfig()

	var (
		svc   *enrollment.Service
		cache *enrollment.TemplateCache
	)
	app := fxtest.New(t,
		fx.Supply(cfg, zaptest.NewLogger(t)),
		fx.Provide(func() enrollment.TemplateStore { return store.NewMemory() }),
		enrollment.Module,
		fx.Populate(&svc, &cache),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, svc)
	require.NotNil(t, cache)
	assert.Equal(t, 0.75, svc.Threshold())
}

func TestNewTemplateCacheProvider(t *testing.T) {
	tests := map[string]struct {
		size    int
		wantNil bool
	}{
		"configured":   {size: 8},
		"zero default": {size: 0},
		"disabled":     {size: -1, wantNil: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := &config.Config{Verification: config.VerificationConfig{CacheSize: tt.size}}
			cache, err := enrollment.NewTemplateCacheProvider(cfg, zaptest.NewLogger(t))
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, cache)
				return
			}
			require.NotNil(t, cache)
			cache.Put(&enrollment.Template{UserID: "u"})
			_, ok := cache.Lookup("u")
			assert.True(t, ok)
			cache.Invalidate("u")
			_, ok = cache.Lookup("u")
			assert.False(t, ok)
		})
	}
}
