// Package transcribe provides speech-to-text for captured voice samples.
package transcribe

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Whisper transcribes samples with the OpenAI audio transcription API.
type Whisper struct {
	client   *openai.Client
	model    string
	language string
	logger   *zap.Logger
}

// NewWhisper creates a Whisper transcriber using client.
func NewWhisper(client *openai.Client, model, language string, logger *zap.Logger) *Whisper {
	return &Whisper{
		client:   client,
		model:    model,
		language: language,
		logger:   logger.Named("whisper"),
	}
}

// Transcribe uploads sample and returns the recognized text.
func (w *Whisper) Transcribe(ctx context.Context, sample []byte) (string, error) {
	name := fileName(sample)

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: name,
		Reader:   bytes.NewReader(sample),
		Language: w.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}

	w.logger.Debug("Transcribed sample",
		zap.String("file", name),
		zap.Int("sampleBytes", len(sample)),
		zap.Int("textLength", len(resp.Text)))

	return resp.Text, nil
}

// fileName picks an upload name whose extension matches the container, since
// the API infers the format from it. Browser recorders default to WebM.
func fileName(sample []byte) string {
	switch {
	case bytes.HasPrefix(sample, []byte("RIFF")) && len(sample) >= 12 && bytes.Equal(sample[8:12], []byte("WAVE")):
		return "sample.wav"
	case bytes.HasPrefix(sample, []byte("OggS")):
		return "sample.ogg"
	case bytes.HasPrefix(sample, []byte("fLaC")):
		return "sample.flac"
	case bytes.HasPrefix(sample, []byte("ID3")),
		len(sample) >= 2 && sample[0] == 0xFF && sample[1]&0xE0 == 0xE0:
		return "sample.mp3"
	case len(sample) >= 8 && bytes.Equal(sample[4:8], []byte("ftyp")):
		return "sample.m4a"
	default:
		return "sample.webm"
	}
}
