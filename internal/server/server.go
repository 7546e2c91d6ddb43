package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ridwanfathin/shop-admin-service/internal/config"
	"github.com/ridwanfathin/shop-admin-service/internal/handler"
	"github.com/ridwanfathin/shop-admin-service/internal/middleware"
	"github.com/ridwanfathin/shop-admin-service/internal/model"
)

const shutdownTimeout = 10 * time.Second

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// Server represents the HTTP server for the reporting service
type Server struct {
	router        *gin.Engine
	httpServer    *http.Server
	reportHandler *handler.ReportHandler
	healthCheck   HealthCheck
	config        *config.Config
	logger        *zap.Logger
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, logger *zap.Logger, reportHandler *handler.ReportHandler, healthCheck HealthCheck) *Server {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger(logger, middleware.LoggerConfig{
		LogResponseBody: cfg.LogLevel == "debug",
	}))

	// Create server
	server := &Server{
		router:        router,
		reportHandler: reportHandler,
		healthCheck:   healthCheck,
		config:        cfg,
		logger:        logger,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	// Configure routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	if s.config.MetricsEnabled {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	if s.reportHandler != nil {
		s.reportHandler.RegisterRoutes(s.router)
	}
}

// health answers 200 while the database responds and 503 otherwise
func (s *Server) health(c *gin.Context) {
	response := model.HealthResponse{
		Status:   "ok",
		Database: "up",
		Time:     time.Now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	if s.healthCheck != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.healthCheck(ctx); err != nil {
			s.logger.Warn("health check failed", zap.Error(err))
			response.Status = "degraded"
			response.Database = "down"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, response)
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.Int("port", s.config.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case sig := <-quit:
		s.logger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
