package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/biolearn/backend/docs"
	"github.com/biolearn/backend/internal/config"
	"github.com/biolearn/backend/internal/handlers"
	"github.com/biolearn/backend/internal/logger"
	"github.com/biolearn/backend/internal/middlewares"
	"github.com/biolearn/backend/internal/services"
	"github.com/biolearn/backend/internal/store"
)

// @title Biology Learning API
// @version 1.0
// @description Content delivery backend for biology chapters and quiz questions

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Biology Learning API")

	// Connect to the document store
	st, err := store.Connect(context.Background(), cfg.Database.URL, cfg.Database.Name, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to connect to store", zap.Error(err))
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logger.Logger.Error("Failed to disconnect from store", zap.Error(err))
		}
	}()

	// Run migrations (unique index on chapter.slug)
	if err := runMigrations(st); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize services
	chaptersService := services.NewChaptersService(st, logger.Logger)
	quizService := services.NewQuizService(st, logger.Logger)
	systemService := services.NewSystemService(st, logger.Logger)

	// Initialize handlers
	chaptersHandler := handlers.NewChaptersHandler(chaptersService, logger.Logger)
	quizHandler := handlers.NewQuizHandler(quizService, logger.Logger)
	systemHandler := handlers.NewSystemHandler(systemService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register routes
	systemHandler.RegisterRoutes(r)
	chaptersHandler.RegisterRoutes(r)
	quizHandler.RegisterRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// runMigrations applies store migrations
func runMigrations(st *store.Store) error {
	driver, err := mongodb.WithInstance(st.Client(), &mongodb.Config{
		DatabaseName:         st.Name(),
		MigrationsCollection: "schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Use migrations folder relative to the binary, falling back to parent
	// when running from cmd
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		migrationPath = "file://../../migrations"
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, st.Name(), driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
