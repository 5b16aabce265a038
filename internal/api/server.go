package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/api/handlers"
	"github.com/marcverde/ansilog/internal/api/middleware"
	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/logsvc"
	"github.com/marcverde/ansilog/internal/storage"
	"github.com/marcverde/ansilog/pkg/config"
)

// Server orchestrates HTTP routing and dependencies for the query service.
type Server struct {
	config config.App
	logger logging.Logger
	router *gin.Engine
	store  *storage.SQLiteClient

	logService *logsvc.Service
}

// NewServer wires the query service dependencies together.
func NewServer() *Server {
	cfg := config.FromEnv()

	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	store := openStore(cfg, logger)

	server := &Server{
		config:     cfg,
		logger:     logger,
		store:      store,
		logService: logsvc.NewService(store),
	}

	server.setupRouter()
	return server
}

// setupRouter configures the Gin router with middleware and routes.
func (s *Server) setupRouter() {
	router := gin.New()

	zapLogger := s.getZapLogger()

	// Order matters: recovery first so it catches panics from the rest.
	router.Use(ginzap.RecoveryWithZap(zapLogger, true))
	router.Use(middleware.RequestID())
	router.Use(ginzap.Ginzap(zapLogger, time.RFC3339, true))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     s.config.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", handlers.NewHealthHandler(s.logger).Health)
	router.GET("/metrics", handlers.NewMetricsHandler(s.logService, s.logger).Metrics)

	// Swagger documentation; the root doubles as the browsing entry point.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})

	api := router.Group("/api")
	{
		api.GET("/playbooks", handlers.NewPlaybookHandler(s.logService, s.logger).ListPlaybooks)
		api.GET("/logs", handlers.NewLogsHandler(s.logService, s.logger).ListLogs)
	}

	s.router = router
}

// getZapLogger builds the *zap.Logger needed by the gin-contrib/zap
// middleware, which cannot take our Logger interface.
func (s *Server) getZapLogger() *zap.Logger {
	var zapLogger *zap.Logger
	if s.config.Environment == "production" {
		zapLogger, _ = zap.NewProduction()
	} else {
		zapLogger, _ = zap.NewDevelopment()
	}
	return zapLogger
}

// Serve starts the HTTP server with graceful shutdown support.
func (s *Server) Serve() error {
	addr := ":" + s.config.APIPort
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		s.logger.Info("starting query service",
			zap.String("address", addr),
			zap.String("db_path", s.config.DBPath),
			zap.String("environment", s.config.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-quit
	s.logger.Info("shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Error("failed to close store", zap.Error(err))
		}
	}

	if err := s.logger.Sync(); err != nil {
		// Syncing stdout/stderr is not supported everywhere.
		if err.Error() != "sync /dev/stdout: invalid argument" &&
			err.Error() != "sync /dev/stderr: invalid argument" {
			return err
		}
	}

	s.logger.Info("server stopped")
	return nil
}

// openStore opens the task log store and makes sure the schema exists,
// so a freshly provisioned host can serve before the first run is
// recorded. A store that cannot be reached at startup is not fatal;
// requests against it surface as 500s until it recovers.
func openStore(cfg config.App, logger logging.Logger) *storage.SQLiteClient {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open task log store",
			zap.String("path", cfg.DBPath),
			zap.Error(err),
		)
	}

	if err := store.InitSchema(context.Background()); err != nil {
		logger.Warn("could not initialize store schema",
			zap.String("path", cfg.DBPath),
			zap.Error(err),
		)
	}

	return store
}
