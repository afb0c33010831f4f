package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/biolearn/backend/internal/models"
	"github.com/biolearn/backend/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DocumentStore is the interface that wraps the generic document
// operations the services need. The concrete implementation lives in
// the store package; tests substitute a mock.
type DocumentStore interface {
	// Insert stores a document in the named collection and returns the assigned id.
	Insert(ctx context.Context, collection string, doc any) (string, error)
	// FindAll retrieves every document in the named collection into results,
	// which must be a pointer to a slice.
	FindAll(ctx context.Context, collection string, results any) error
	// FindOne retrieves the first document matching an equality filter,
	// or store.ErrNotFound when none matches.
	FindOne(ctx context.Context, collection string, filter bson.M, result any) error
	// FindMany retrieves up to limit documents matching an equality filter.
	FindMany(ctx context.Context, collection string, filter bson.M, limit int64, results any) error
}

var (
	// ErrChapterNotFound is returned when no chapter matches the requested slug
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrSlugExists is returned when creating a chapter whose slug is taken
	ErrSlugExists = errors.New("slug already exists")
	// ErrInvalidInput wraps validation failures on request payloads
	ErrInvalidInput = errors.New("invalid input")
)

type chaptersService struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewChaptersService creates a new chapter service
func NewChaptersService(store DocumentStore, logger *zap.Logger) *chaptersService {
	return &chaptersService{
		store:  store,
		logger: logger,
	}
}

// List retrieves all chapters serialized as views
func (s *chaptersService) List(ctx context.Context) ([]models.ChapterView, error) {
	var chapters []models.Chapter
	if err := s.store.FindAll(ctx, models.ChapterCollection, &chapters); err != nil {
		s.logger.Error("failed to list chapters", zap.Error(err))
		return nil, fmt.Errorf("failed to list chapters: %w", err)
	}

	views := make([]models.ChapterView, 0, len(chapters))
	for _, c := range chapters {
		views = append(views, c.View())
	}
	return views, nil
}

// GetBySlug retrieves the unique chapter with the given slug.
// Returns ErrChapterNotFound when no chapter matches.
func (s *chaptersService) GetBySlug(ctx context.Context, slug string) (*models.ChapterView, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	var chapter models.Chapter
	err := s.store.FindOne(ctx, models.ChapterCollection, bson.M{"slug": slug}, &chapter)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrChapterNotFound
	}
	if err != nil {
		s.logger.Error("failed to get chapter", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to get chapter: %w", err)
	}

	view := chapter.View()
	return &view, nil
}

// Create validates and stores a new chapter. The slug must be unused;
// omitted objectives and sections default to empty sequences.
func (s *chaptersService) Create(ctx context.Context, req models.CreateChapterRequest) error {
	if req.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Summary == "" {
		return fmt.Errorf("%w: summary is required", ErrInvalidInput)
	}

	// Check-then-insert; the unique index installed by migrations closes
	// the race between concurrent creators with the same slug.
	var existing models.Chapter
	err := s.store.FindOne(ctx, models.ChapterCollection, bson.M{"slug": req.Slug}, &existing)
	if err == nil {
		return ErrSlugExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.logger.Error("failed to check slug", zap.String("slug", req.Slug), zap.Error(err))
		return fmt.Errorf("failed to check slug: %w", err)
	}

	chapter := models.Chapter{
		Slug:       req.Slug,
		Title:      req.Title,
		Summary:    req.Summary,
		Objectives: req.Objectives,
		Sections:   req.Sections,
	}
	if chapter.Objectives == nil {
		chapter.Objectives = []string{}
	}
	if chapter.Sections == nil {
		chapter.Sections = []models.Section{}
	}

	if _, err := s.store.Insert(ctx, models.ChapterCollection, chapter); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlugExists
		}
		s.logger.Error("failed to create chapter", zap.String("slug", req.Slug), zap.Error(err))
		return fmt.Errorf("failed to create chapter: %w", err)
	}

	return nil
}
