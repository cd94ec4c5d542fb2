package auth

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/config"
)

// Module provides the login TokenIssuer.
var Module = fx.Module("auth",
	fx.Provide(NewTokenIssuerProvider),
)

// NewTokenIssuerProvider builds a TokenIssuer from config. It returns nil when
// no JWT secret is configured, in which case logins are not issued tokens.
func NewTokenIssuerProvider(cfg *config.Config, logger *zap.Logger) (*TokenIssuer, error) {
	if cfg.Auth.JWTSecret == "" {
		logger.Warn("auth.jwt_secret is not configured, login tokens are disabled")
		return nil, nil
	}

	issuer, err := NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}
	logger.Info("Login token issuer created", zap.Duration("ttl", cfg.Auth.TokenTTL))

	return issuer, nil
}
