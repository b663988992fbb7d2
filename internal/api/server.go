// Package api provides the HTTP API server for Fleetwatch.
// It uses Echo framework to serve the report ingestion and fleet snapshot
// endpoints around the shared host registry.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/fleetwatch/fleetwatch/internal/config"
	"github.com/fleetwatch/fleetwatch/internal/registry"
	"github.com/fleetwatch/fleetwatch/internal/validation"
	"github.com/fleetwatch/fleetwatch/internal/version"
)

// Server represents the Fleetwatch API server.
type Server struct {
	echo      *echo.Echo
	registry  *registry.Registry
	config    *config.Config
	validator *validation.Validator
}

// debugLog logs a message only if debug mode is enabled in config
func (s *Server) debugLog(format string, args ...interface{}) {
	if s.config.Server.Debug {
		log.Printf(format, args...)
	}
}

// New creates a new API server instance around the given registry. The
// registry is injected rather than constructed here so tests can run
// independent instances side by side.
func New(cfg *config.Config, reg *registry.Registry) *Server {
	e := echo.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug

	// Set custom error handler
	e.HTTPErrorHandler = HTTPErrorHandler

	// Create server instance
	server := &Server{
		echo:      e,
		registry:  reg,
		config:    cfg,
		validator: validation.New(),
	}

	// Setup middleware
	server.setupMiddleware()

	// Setup routes
	server.setupRoutes()

	return server
}

// setupMiddleware configures Echo middleware.
func (s *Server) setupMiddleware() {
	// Logger middleware
	s.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${time_rfc3339}] ${status} ${method} ${uri} (${latency_human})\n",
	}))

	// Recover middleware
	s.echo.Use(middleware.Recover())

	// Security headers middleware
	s.echo.Use(SecurityHeaders)

	// CORS middleware
	if len(s.config.Security.AllowedOrigins) > 0 {
		s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.config.Security.AllowedOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		}))
	}

	// Request ID middleware
	s.echo.Use(middleware.RequestID())

	// Rate limiting
	if s.config.Security.RateLimit > 0 {
		s.echo.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(
			rate.Limit(s.config.Security.RateLimit),
		)))
	}

	// Content-Type validation middleware for write requests
	s.echo.Use(ValidateContentType)

	// Accept header validation middleware
	s.echo.Use(ValidateAcceptHeader)
}

// setupRoutes configures API routes.
//
// The registry contract is exactly two operations: a write path that
// decodes, validates, and upserts a report, and a read path that snapshots
// the fleet. Producers address /hosts verbatim, so no API version prefix.
func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", s.healthCheck)

	// Host report routes
	s.echo.GET("/hosts", s.listHosts)
	s.echo.POST("/hosts", s.updateHost)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	fmt.Printf("Starting Fleetwatch collector\n")
	fmt.Printf("   Address: http://%s\n", addr)
	fmt.Printf("   Debug: %v\n", s.config.Server.Debug)
	fmt.Println()

	// Configure server timeouts
	s.echo.Server.ReadTimeout = s.config.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.config.Server.WriteTimeout

	// Start server
	if s.config.Server.TLSEnabled {
		return s.echo.StartTLS(addr, s.config.Server.TLSCert, s.config.Server.TLSKey)
	}

	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server. Registered reports are held in
// memory only and are discarded with the process.
func (s *Server) Shutdown(ctx context.Context) error {
	fmt.Println("\nShutting down Fleetwatch collector...")

	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	fmt.Println("Server shutdown complete")
	return nil
}

// healthCheck handles health check requests.
func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "fleetwatch",
		"version": version.Version,
		"hosts":   len(s.registry.Snapshot()),
	})
}

// ServeHTTP allows Server to implement http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
