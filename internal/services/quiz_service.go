package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/biolearn/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrCorrectIndexOutOfRange is returned when correct_index does not
// point into the options sequence
var ErrCorrectIndexOutOfRange = errors.New("correct_index out of range")

const (
	defaultQuizLimit = 20
	minOptions       = 2
)

type quizService struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(store DocumentStore, logger *zap.Logger) *quizService {
	return &quizService{
		store:  store,
		logger: logger,
	}
}

// GetForChapter retrieves up to limit quiz questions for the given chapter
// slug. No existence check is performed on the chapter itself; an unknown
// slug yields an empty sequence. A non-positive limit falls back to 20.
func (s *quizService) GetForChapter(ctx context.Context, slug string, limit int) ([]models.QuizQuestionView, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultQuizLimit
	}

	var questions []models.QuizQuestion
	err := s.store.FindMany(ctx, models.QuizQuestionCollection, bson.M{"chapter_slug": slug}, int64(limit), &questions)
	if err != nil {
		s.logger.Error("failed to get quiz questions", zap.String("slug", slug), zap.Error(err))
		return nil, fmt.Errorf("failed to get quiz questions: %w", err)
	}

	views := make([]models.QuizQuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, q.View())
	}
	return views, nil
}

// Create validates and stores a new quiz question. correct_index must
// satisfy 0 <= i < len(options); difficulty defaults when omitted.
func (s *quizService) Create(ctx context.Context, req models.CreateQuizQuestionRequest) error {
	if req.ChapterSlug == "" {
		return fmt.Errorf("%w: chapter_slug is required", ErrInvalidInput)
	}
	if req.Question == "" {
		return fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if req.Explanation == "" {
		return fmt.Errorf("%w: explanation is required", ErrInvalidInput)
	}
	if len(req.Options) < minOptions {
		return fmt.Errorf("%w: at least %d options are required", ErrInvalidInput, minOptions)
	}
	if req.CorrectIndex < 0 || req.CorrectIndex >= len(req.Options) {
		return ErrCorrectIndexOutOfRange
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DefaultDifficulty
	}

	question := models.QuizQuestion{
		ChapterSlug:  req.ChapterSlug,
		Question:     req.Question,
		Options:      req.Options,
		CorrectIndex: req.CorrectIndex,
		Explanation:  req.Explanation,
		Difficulty:   difficulty,
	}

	if _, err := s.store.Insert(ctx, models.QuizQuestionCollection, question); err != nil {
		s.logger.Error("failed to create quiz question",
			zap.String("chapter_slug", req.ChapterSlug), zap.Error(err))
		return fmt.Errorf("failed to create quiz question: %w", err)
	}

	return nil
}
