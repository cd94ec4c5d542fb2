package enrollment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/pkg/voiceprint"
)

// ServiceParams holds dependencies for NewService.
type ServiceParams struct {
	fx.In
	Cfg         *config.Config
	Logger      *zap.Logger
	Store       TemplateStore
	Cache       *TemplateCache `optional:"true"`
	Transcriber Transcriber    `optional:"true"`
}

// Service enrolls and verifies voice templates. It owns no state besides the
// template cache; consistency of templates is the store's responsibility.
type Service struct {
	store       TemplateStore
	cache       *TemplateCache
	transcriber Transcriber
	threshold   float64
	sttTimeout  time.Duration
	logger      *zap.Logger
	now         func() time.Time

	// writeMu serializes store writes. mu guards the cache and epoch; epoch
	// advances on every write so a read that raced a write does not cache
	// what it loaded.
	writeMu sync.Mutex
	mu      sync.Mutex
	epoch   uint64
}

// NewService creates a Service. Cache and Transcriber may be nil.
func NewService(params ServiceParams) *Service {
	return &Service{
		store:       params.Store,
		cache:       params.Cache,
		transcriber: params.Transcriber,
		threshold:   params.Cfg.Verification.Threshold,
		sttTimeout:  params.Cfg.Transcription.Timeout,
		logger:      params.Logger.Named("enrollment"),
		now:         time.Now,
	}
}

// Threshold returns the acceptance threshold used by Verify.
func (s *Service) Threshold() float64 {
	return s.threshold
}

// Enroll extracts features from sample and stores them as userID's template,
// replacing any previous one. When transcript is empty and a Transcriber is
// configured, the sample is transcribed; transcription failures are logged
// and do not fail enrollment.
func (s *Service) Enroll(ctx context.Context, userID string, sample []byte, transcript string) (*Template, error) {
	userID, err := NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	features := voiceprint.Extract(sample)
	if strings.TrimSpace(transcript) == "" {
		transcript = s.transcribe(ctx, userID, sample)
	}

	tpl := &Template{
		ID:         uuid.NewString(),
		UserID:     userID,
		Features:   features,
		Transcript: strings.TrimSpace(transcript),
		Mode:       ModeSetup,
		CreatedAt:  s.now().UTC().Truncate(time.Millisecond),
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.Save(ctx, tpl); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}
	s.afterWrite(userID, tpl)

	s.logger.Info("Enrolled voice template",
		zap.String("userID", userID),
		zap.String("templateID", tpl.ID),
		zap.Int("sampleBytes", len(sample)),
		zap.String("fingerprint", features.Fingerprint))

	return tpl, nil
}

// Verify scores sample against userID's template. A rejected attempt is not
// an error; ErrNotEnrolled is returned when the user has no template. Verify
// never calls the Transcriber; see Transcribe.
func (s *Service) Verify(ctx context.Context, userID string, sample []byte) (*VerificationResult, error) {
	userID, err := NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	tpl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	captured := voiceprint.Extract(sample)
	breakdown := voiceprint.Breakdown(tpl.Features, captured)

	result := &VerificationResult{
		UserID:    userID,
		Score:     breakdown.Total,
		Accepted:  breakdown.Accepted(s.threshold),
		Threshold: s.threshold,
		Breakdown: breakdown,
	}

	s.logger.Info("Verified voice sample",
		zap.String("userID", userID),
		zap.Float64("score", result.Score),
		zap.Float64("threshold", result.Threshold),
		zap.Bool("accepted", result.Accepted),
		zap.Bool("fingerprintMatch", breakdown.FingerprintMatch))

	return result, nil
}

// Transcribe returns the transcript of sample, or "" when no Transcriber is
// configured or transcription fails. Callers run it after a verdict so a slow
// transcription service cannot delay the decision.
func (s *Service) Transcribe(ctx context.Context, userID string, sample []byte) string {
	return s.transcribe(ctx, strings.TrimSpace(userID), sample)
}

// Template returns userID's current template.
func (s *Service) Template(ctx context.Context, userID string) (*Template, error) {
	userID, err := NormalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	return s.load(ctx, userID)
}

// Unenroll deletes userID's template.
func (s *Service) Unenroll(ctx context.Context, userID string) error {
	userID, err := NormalizeUserID(userID)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	err = s.store.Delete(ctx, userID)
	s.afterWrite(userID, nil)
	if errors.Is(err, ErrTemplateNotFound) {
		return ErrNotEnrolled
	}
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	s.logger.Info("Removed voice template", zap.String("userID", userID))

	return nil
}

func (s *Service) load(ctx context.Context, userID string) (*Template, error) {
	s.mu.Lock()
	epoch := s.epoch
	if s.cache != nil {
		if tpl, ok := s.cache.Lookup(userID); ok {
			s.mu.Unlock()
			return tpl, nil
		}
	}
	s.mu.Unlock()

	tpl, err := s.store.Get(ctx, userID)
	if errors.Is(err, ErrTemplateNotFound) {
		return nil, ErrNotEnrolled
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	if s.cache != nil {
		s.mu.Lock()
		if s.epoch == epoch {
			s.cache.Put(tpl)
		}
		s.mu.Unlock()
	}

	return tpl, nil
}

// afterWrite caches tpl, or drops userID's entry when tpl is nil.
func (s *Service) afterWrite(userID string, tpl *Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.cache == nil {
		return
	}
	if tpl == nil {
		s.cache.Invalidate(userID)
		return
	}
	s.cache.Put(tpl)
}

func (s *Service) transcribe(ctx context.Context, userID string, sample []byte) string {
	if s.transcriber == nil || len(sample) == 0 {
		return ""
	}

	if s.sttTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.sttTimeout)
		defer cancel()
	}

	text, err := s.transcriber.Transcribe(ctx, sample)
	if err != nil {
		s.logger.Warn("Transcription failed, continuing without transcript",
			zap.String("userID", userID), zap.Error(err))
		return ""
	}

	return strings.TrimSpace(text)
}

// NormalizeUserID trims userID and rejects it with ErrInvalidUserID when
// nothing is left.
func NormalizeUserID(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidUserID
	}
	return userID, nil
}
