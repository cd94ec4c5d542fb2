package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Raikerian/go-voice-auth/internal/config"
)

// ServerParams holds dependencies for NewServer.
type ServerParams struct {
	fx.In
	Cfg     *config.Config
	Logger  *zap.Logger
	Handler *Handler
}

// Server owns the HTTP listener.
type Server struct {
	httpServer      *http.Server
	listenAddr      string
	shutdownTimeout time.Duration
	logger          *zap.Logger

	mu   sync.Mutex
	addr net.Addr
	done chan struct{}
}

// NewServer creates a Server; it does not listen until Start.
func NewServer(params ServerParams) *Server {
	if params.Cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := params.Cfg.Server
	// base64 inflates by 4/3; leave room for the JSON envelope.
	maxBody := int64(cfg.MaxSampleBytes)/3*4 + 64<<10
	router := NewRouter(params.Handler, params.Logger, maxBody)

	return &Server{
		httpServer: &http.Server{
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
		},
		listenAddr:      cfg.ListenAddr,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          params.Logger.Named("server"),
	}
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listenAddr, err)
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.addr = ln.Addr()
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
	}()

	s.logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))

	return nil
}

// Stop drains in-flight requests, bounded by the configured shutdown timeout.
func (s *Server) Stop(ctx context.Context) error {
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.logger.Info("Shutting down HTTP server")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down HTTP server: %w", err)
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}

	return nil
}
