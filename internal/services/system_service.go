package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/biolearn/backend/internal/models"
	"github.com/biolearn/backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// HealthStore adds connectivity probes to the generic document operations
type HealthStore interface {
	DocumentStore
	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
	// CollectionNames lists up to max collection names present in the store.
	CollectionNames(ctx context.Context, max int) ([]string, error)
	// Name returns the database name.
	Name() string
}

const maxHealthCollections = 10

type systemService struct {
	store  HealthStore
	logger *zap.Logger
}

// NewSystemService creates a new system service for seeding and health checks
func NewSystemService(store HealthStore, logger *zap.Logger) *systemService {
	return &systemService{
		store:  store,
		logger: logger,
	}
}

// Seed inserts the fixed sample content when the store holds no chapters.
// A second call finds the existing chapter and performs no writes.
func (s *systemService) Seed(ctx context.Context) (*models.SeedResult, error) {
	var existing models.Chapter
	err := s.store.FindOne(ctx, models.ChapterCollection, bson.M{}, &existing)
	if err == nil {
		return &models.SeedResult{Status: "ok", Message: "Already seeded"}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error("failed to check for existing chapters", zap.Error(err))
		return nil, fmt.Errorf("failed to check for existing chapters: %w", err)
	}

	if _, err := s.store.Insert(ctx, models.ChapterCollection, seedChapter); err != nil {
		s.logger.Error("failed to seed chapter", zap.Error(err))
		return nil, fmt.Errorf("failed to seed chapter: %w", err)
	}
	for _, q := range seedQuestions {
		if _, err := s.store.Insert(ctx, models.QuizQuestionCollection, q); err != nil {
			s.logger.Error("failed to seed quiz question", zap.Error(err))
			return nil, fmt.Errorf("failed to seed quiz question: %w", err)
		}
	}

	s.logger.Info("seeded sample content",
		zap.String("slug", seedChapter.Slug),
		zap.Int("questions", len(seedQuestions)))

	return &models.SeedResult{Status: "ok", Message: "Seeded"}, nil
}

// Health reports process liveness and store connectivity. It never
// returns an error: store failures are captured as descriptive text so
// the status endpoint itself cannot fail.
func (s *systemService) Health(ctx context.Context) models.StatusReport {
	report := models.StatusReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if os.Getenv("DATABASE_URL") != "" {
		report.DatabaseURL = "set"
	}

	if err := s.store.Ping(ctx); err != nil {
		report.Database = "error: " + truncate(err.Error(), 50)
		return report
	}

	report.Database = "connected"
	report.ConnectionStatus = "connected"
	report.DatabaseName = s.store.Name()

	names, err := s.store.CollectionNames(ctx, maxHealthCollections)
	if err != nil {
		report.Database = "connected but error: " + truncate(err.Error(), 50)
		return report
	}
	report.Collections = names

	return report
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
