package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/auth"
	"github.com/Raikerian/go-voice-auth/internal/config"
	"github.com/Raikerian/go-voice-auth/internal/enrollment"
	"github.com/Raikerian/go-voice-auth/pkg/voiceprint"
)

type enrollRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Audio      string `json:"audio" binding:"required"`
	Transcript string `json:"transcript"`
}

type verifyRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Audio      string `json:"audio" binding:"required"`
	Transcript string `json:"transcript"`
}

type authenticateRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	Audio      string `json:"audio" binding:"required"`
	Transcript string `json:"transcript"`
	Mode       string `json:"mode" binding:"required"`
}

// TemplateView is the public representation of an enrolled template.
type TemplateView struct {
	UserID     string              `json:"user_id"`
	TemplateID string              `json:"template_id"`
	Mode       enrollment.Mode     `json:"mode"`
	Transcript string              `json:"transcript"`
	Features   voiceprint.Features `json:"features"`
	CreatedAt  time.Time           `json:"created_at"`
}

// VerificationView is the public representation of a verification attempt.
type VerificationView struct {
	UserID             string                    `json:"user_id"`
	Score              float64                   `json:"score"`
	Accepted           bool                      `json:"accepted"`
	State              enrollment.CaptureState   `json:"state"`
	Threshold          float64                   `json:"threshold"`
	CapturedTranscript string                    `json:"captured_transcript,omitempty"`
	Breakdown          voiceprint.ScoreBreakdown `json:"breakdown"`
	Token              string                    `json:"token,omitempty"`
	TokenExpiresAt     *time.Time                `json:"token_expires_at,omitempty"`
}

func newTemplateView(tpl *enrollment.Template) TemplateView {
	return TemplateView{
		UserID:     tpl.UserID,
		TemplateID: tpl.ID,
		Mode:       tpl.Mode,
		Transcript: tpl.Transcript,
		Features:   tpl.Features,
		CreatedAt:  tpl.CreatedAt,
	}
}

// HandlerParams holds dependencies for NewHandler.
type HandlerParams struct {
	fx.In
	Cfg     *config.Config
	Logger  *zap.Logger
	Service *enrollment.Service
	Tokens  *auth.TokenIssuer `optional:"true"`
}

// Handler serves the voice endpoints.
type Handler struct {
	svc            *enrollment.Service
	tokens         *auth.TokenIssuer
	maxSampleBytes int
	logger         *zap.Logger
}

// NewHandler creates a Handler. Tokens may be nil, in which case successful
// logins carry no token.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		svc:            params.Service,
		tokens:         params.Tokens,
		maxSampleBytes: params.Cfg.Server.MaxSampleBytes,
		logger:         params.Logger.Named("api"),
	}
}

// Enroll handles POST /v1/voice/enroll.
func (h *Handler) Enroll(c *gin.Context) {
	var req enrollRequest
	if !h.bind(c, &req) {
		return
	}

	sample, ok := h.decode(c, req.Audio)
	if !ok {
		return
	}
	h.enroll(c, req.UserID, sample, req.Transcript)
}

// Verify handles POST /v1/voice/verify.
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if !h.bind(c, &req) {
		return
	}

	sample, ok := h.decode(c, req.Audio)
	if !ok {
		return
	}
	h.verify(c, req.UserID, sample, req.Transcript)
}

// Authenticate handles POST /v1/voice/authenticate, the single entry point
// used by capture widgets: mode "setup" enrolls and mode "login" verifies.
func (h *Handler) Authenticate(c *gin.Context) {
	var req authenticateRequest
	if !h.bind(c, &req) {
		return
	}

	mode, err := enrollment.ParseMode(req.Mode)
	if err != nil {
		h.fail(c, err)
		return
	}

	sample, ok := h.decode(c, req.Audio)
	if !ok {
		return
	}

	switch mode {
	case enrollment.ModeSetup:
		h.enroll(c, req.UserID, sample, req.Transcript)
	case enrollment.ModeLogin:
		h.verify(c, req.UserID, sample, req.Transcript)
	}
}

// GetTemplate handles GET /v1/voice/templates/:user_id.
func (h *Handler) GetTemplate(c *gin.Context) {
	tpl, err := h.svc.Template(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, newTemplateView(tpl))
}

// DeleteTemplate handles DELETE /v1/voice/templates/:user_id.
func (h *Handler) DeleteTemplate(c *gin.Context) {
	userID, err := enrollment.NormalizeUserID(c.Param("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.svc.Unenroll(c.Request.Context(), userID); err != nil {
		h.fail(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"user_id": userID, "deleted": true})
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) enroll(c *gin.Context, userID string, sample []byte, transcript string) {
	tpl, err := h.svc.Enroll(c.Request.Context(), userID, sample, transcript)
	if err != nil {
		h.fail(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, newTemplateView(tpl))
}

func (h *Handler) verify(c *gin.Context, userID string, sample []byte, transcript string) {
	res, err := h.svc.Verify(c.Request.Context(), userID, sample)
	if err != nil {
		h.fail(c, err)
		return
	}

	view := VerificationView{
		UserID:    res.UserID,
		Score:     res.Score,
		Accepted:  res.Accepted,
		State:     res.State(),
		Threshold: res.Threshold,
		Breakdown: res.Breakdown,
	}

	if res.Accepted && h.tokens != nil {
		token, expiresAt, err := h.tokens.Issue(res.UserID, res.Score)
		if err != nil {
			h.fail(c, err)
			return
		}
		view.Token = token
		view.TokenExpiresAt = &expiresAt
	}

	// The verdict is final at this point; transcription only annotates it.
	view.CapturedTranscript = strings.TrimSpace(transcript)
	if view.CapturedTranscript == "" {
		view.CapturedTranscript = h.svc.Transcribe(c.Request.Context(), res.UserID, sample)
	}

	SuccessResponse(c, http.StatusOK, view)
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ErrorResponse(c, http.StatusRequestEntityTooLarge, CodePayloadTooLarge,
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return false
	}
	ErrorResponse(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	return false
}

func (h *Handler) decode(c *gin.Context, audio string) ([]byte, bool) {
	sample, err := enrollment.DecodeSample(audio)
	if err != nil {
		h.fail(c, err)
		return nil, false
	}
	if h.maxSampleBytes > 0 && len(sample) > h.maxSampleBytes {
		ErrorResponse(c, http.StatusRequestEntityTooLarge, CodePayloadTooLarge,
			fmt.Sprintf("audio exceeds %d bytes", h.maxSampleBytes))
		return nil, false
	}
	return sample, true
}

// fail maps service errors to HTTP responses. Internal errors are logged
// and replaced with an opaque message.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, enrollment.ErrInvalidInput), errors.Is(err, enrollment.ErrInvalidUserID):
		ErrorResponse(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	case errors.Is(err, enrollment.ErrNotEnrolled):
		ErrorResponse(c, http.StatusNotFound, CodeNotEnrolled, err.Error())
	default:
		h.logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		ErrorResponse(c, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}
