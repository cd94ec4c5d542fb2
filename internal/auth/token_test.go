package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Raikerian/go-voice-auth/internal/config"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer, err := NewTokenIssuer("s3cret", "voice-test", 15*time.Minute)
	require.NoError(t, err)

	fixed := time.Now().UTC().Truncate(time.Second)
	issuer.now = func() time.Time { return fixed }

	token, expiresAt, err := issuer.Issue("user-1", 0.93)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(15*time.Minute), expiresAt)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "voice-test", claims.Issuer)
	assert.Equal(t, 0.93, claims.VoiceScore)
	assert.NotEmpty(t, claims.ID)
	assert.True(t, claims.ExpiresAt.Time.Equal(expiresAt))
}

func TestTokenIssuer_UniqueIDs(t *testing.T) {
	issuer, err := NewTokenIssuer("s3cret", "voice-test", time.Minute)
	require.NoError(t, err)

	a, _, err := issuer.Issue("user-1", 1)
	require.NoError(t, err)
	b, _, err := issuer.Issue("user-1", 1)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTokenIssuer_ParseRejects(t *testing.T) {
	issuer, err := NewTokenIssuer("s3cret", "voice-test", time.Minute)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		past, err := NewTokenIssuer("s3cret", "voice-test", time.Minute)
		require.NoError(t, err)
		past.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, _, err := past.Issue("user-1", 1)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenIssuer("other", "voice-test", time.Minute)
		require.NoError(t, err)
		token, _, err := other.Issue("user-1", 1)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		other, err := NewTokenIssuer("s3cret", "someone-else", time.Minute)
		require.NoError(t, err)
		token, _, err := other.Issue("user-1", 1)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := NewTokenIssuer("", "x", time.Minute)
	assert.Error(t, err)
	_, err = NewTokenIssuer("s", "x", 0)
	assert.Error(t, err)
}

func TestNewTokenIssuerProvider(t *testing.T) {
	logger := zaptest.NewLogger(t)

	disabled, err := NewTokenIssuerProvider(&config.Config{}, logger)
	require.NoError(t, err)
	assert.Nil(t, disabled)

	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: "s3cret", Issuer: "x", TokenTTL: time.Minute}}
	enabled, err := NewTokenIssuerProvider(cfg, logger)
	require.NoError(t, err)
	assert.NotNil(t, enabled)
}
