// Package server wires the HTTP surface: routing, middleware and the
// mapping from typed errors to HTTP responses.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/username/calendar-pdf-service/internal/auth"
	"github.com/username/calendar-pdf-service/internal/config"
	"github.com/username/calendar-pdf-service/internal/drive"
	"github.com/username/calendar-pdf-service/internal/pdf"
)

// Server is the HTTP server for the calendar PDF service
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New creates a fully wired Server. All collaborators arrive as interfaces
// so tests can substitute stubs.
func New(cfg *config.Config, verifier auth.TokenVerifier, renderer pdf.Renderer, uploader drive.Uploader, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestID(),
		RequestLogger(logger),
		CORS(cfg.Server.AllowedOrigins),
		BodyLimit(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/pdf")
	api.Use(auth.Middleware(verifier, cfg.Auth.AllowedDomains, logger))

	handler := NewHandler(renderer, uploader, cfg.Drive.DefaultFolderID, logger)
	handler.RegisterRoutes(api)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.GetReadTimeout(),
			WriteTimeout: cfg.Server.GetWriteTimeout(),
		},
		logger: logger,
	}
}

// Run starts the listener and blocks until the server is shut down
func (s *Server) Run() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}

// Router exposes the engine for handler tests
func (s *Server) Router() http.Handler {
	return s.router
}
