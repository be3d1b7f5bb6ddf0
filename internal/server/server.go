// Package server exposes a parameter bank over HTTP so values can be read
// and automated remotely while the sliders are in use.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alkime/paramctl/internal/config"
	"github.com/alkime/paramctl/internal/param"
	"github.com/gin-gonic/gin"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server represents the HTTP server
type Server struct {
	config *config.Config
	logger *slog.Logger
	router *gin.Engine
	bank   *param.Bank
}

// New creates a new Server instance serving bank.
func New(cfg *config.Config, logger *slog.Logger, bank *param.Bank) *Server {
	// Set Gin mode based on environment
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	server := &Server{
		config: cfg,
		logger: logger,
		router: router,
		bank:   bank,
	}

	// Setup middleware and routes
	setupSecurityMiddleware(router, cfg, logger)
	setupStaticMiddleware(router, cfg, logger)
	server.setupRoutes()

	return server
}

// Router returns the HTTP handler.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server and shuts it down when ctx is done.
func Run(ctx context.Context, s *Server) error {
	httpServer := &http.Server{
		Addr:              ":" + s.config.Port,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errC := make(chan error, 1)

	go func() {
		s.logger.Info("Server listening", "port", s.config.Port)
		errC <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	s.logger.Info("Server stopped")

	return nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/params", s.handleListParams)
		api.GET("/params/:id", s.handleGetParam)
		api.PUT("/params/:id", s.handlePutParam)
	}
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "paramctl",
		"params":  s.bank.Len(),
	})
}
