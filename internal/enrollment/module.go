// Package enrollment provides voice template enrollment and verification
// services and their Fx module.
package enrollment

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/config"
)

// Module provides enrollment dependencies.
var Module = fx.Module("enrollment",
	fx.Provide(
		NewTemplateCacheProvider,
		NewService,
	),
)

// NewTemplateCacheProvider creates a TemplateCache with config-derived size.
// A negative size disables caching and yields nil.
func NewTemplateCacheProvider(cfg *config.Config, logger *zap.Logger) (*TemplateCache, error) {
	size := cfg.Verification.CacheSize
	if size < 0 {
		logger.Info("Template cache disabled")
		return nil, nil
	}
	if size == 0 {
		logger.Warn("Template cache size is not configured, defaulting",
			zap.Int("size", config.DefaultCacheSize))
		size = config.DefaultCacheSize
	}
	logger.Info("Creating TemplateCache", zap.Int("size", size))

	return NewTemplateCache(size)
}
