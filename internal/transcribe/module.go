package transcribe

import (
	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/internal/enrollment"
)

// Module provides the optional Transcriber.
var Module = fx.Module("transcribe",
	fx.Provide(NewTranscriber),
)

// NewClient creates an OpenAI client from config, honoring a custom base URL
// for OpenAI-compatible gateways.
func NewClient(cfg *config.Config) *openai.Client {
	clientConfig := openai.DefaultConfig(cfg.Transcription.APIKey)
	if cfg.Transcription.BaseURL != "" {
		clientConfig.BaseURL = cfg.Transcription.BaseURL
	}
	return openai.NewClientWithConfig(clientConfig)
}

// NewTranscriber returns a Whisper transcriber, or nil when no API key is
// configured and transcripts are left to the client.
func NewTranscriber(cfg *config.Config, logger *zap.Logger) enrollment.Transcriber {
	if cfg.Transcription.APIKey == "" {
		logger.Info("Transcription API key is not configured, server-side transcription disabled")
		return nil
	}

	logger.Info("OpenAI transcription enabled", zap.String("model", cfg.Transcription.Model))

	return NewWhisper(NewClient(cfg), cfg.Transcription.Model, cfg.Transcription.Language, logger)
}
