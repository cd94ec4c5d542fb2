package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler, logger *zap.Logger, maxBodyBytes int64) *gin.Engine {
	logger = logger.Named("http")

	r := gin.New()
	r.Use(recovery(logger), requestLogger(logger), bodyLimit(maxBodyBytes))

	r.GET("/healthz", h.Health)

	v1 := r.Group("/v1/voice")
	v1.POST("/enroll", h.Enroll)
	v1.POST("/verify", h.Verify)
	v1.POST("/authenticate", h.Authenticate)
	v1.GET("/templates/:user_id", h.GetTemplate)
	v1.DELETE("/templates/:user_id", h.DeleteTemplate)

	r.NoRoute(func(c *gin.Context) {
		ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", "route not found")
	})

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			logger.Error("Request completed", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			logger.Warn("Request completed", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
	}
}

func recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, err any) {
		logger.Error("Panic while handling request",
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", err),
			zap.Stack("stack"))
		ErrorResponse(c, http.StatusInternalServerError, CodeInternal, "internal error")
	})
}

// bodyLimit caps request bodies so oversized uploads fail while reading
// rather than after being buffered.
func bodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
