package services

import (
	"context"
	"errors"
	"testing"

	"github.com/biolearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSystemService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	mock := &mockStore{}

	svc := NewSystemService(mock, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, mock, svc.store)
	assert.Equal(t, logger, svc.logger)
}

func TestSystemService_Seed(t *testing.T) {
	t.Run("empty store seeds one chapter and three questions", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{}
		svc := NewSystemService(mock, logger)

		result, err := svc.Seed(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "ok", result.Status)
		assert.Equal(t, "Seeded", result.Message)
		require.Len(t, mock.inserted, 4)

		chapter, ok := mock.inserted[0].(models.Chapter)
		require.True(t, ok)
		assert.Equal(t, "cell-structure", chapter.Slug)
		assert.NotEmpty(t, chapter.Title)
		assert.NotEmpty(t, chapter.Summary)
		assert.NotEmpty(t, chapter.Objectives)
		assert.NotEmpty(t, chapter.Sections)

		for _, doc := range mock.inserted[1:] {
			question, ok := doc.(models.QuizQuestion)
			require.True(t, ok)
			assert.Equal(t, "cell-structure", question.ChapterSlug)
			assert.GreaterOrEqual(t, len(question.Options), 2)
			assert.GreaterOrEqual(t, question.CorrectIndex, 0)
			assert.Less(t, question.CorrectIndex, len(question.Options))
			assert.NotEmpty(t, question.Explanation)
		}
	})

	t.Run("second call performs no writes", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{
			chapters: []models.Chapter{seedChapter},
		}
		svc := NewSystemService(mock, logger)

		result, err := svc.Seed(context.Background())
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, "ok", result.Status)
		assert.Equal(t, "Already seeded", result.Message)
		assert.Empty(t, mock.inserted)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{findOneErr: errors.New("store unavailable")}
		svc := NewSystemService(mock, logger)

		result, err := svc.Seed(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Empty(t, mock.inserted)
	})

	t.Run("insert error propagates", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{insertErr: errors.New("store unavailable")}
		svc := NewSystemService(mock, logger)

		result, err := svc.Seed(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestSystemService_Health(t *testing.T) {
	t.Run("connected store", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{
			collections: []string{"chapter", "quizquestion"},
			dbName:      "biolearn",
		}
		svc := NewSystemService(mock, logger)

		report := svc.Health(context.Background())

		assert.Equal(t, "running", report.Backend)
		assert.Equal(t, "connected", report.Database)
		assert.Equal(t, "connected", report.ConnectionStatus)
		assert.Equal(t, "biolearn", report.DatabaseName)
		assert.Equal(t, []string{"chapter", "quizquestion"}, report.Collections)
		assert.Equal(t, maxHealthCollections, mock.gotMax)
	})

	t.Run("ping failure reported as text, never an error", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{pingErr: errors.New("connection refused")}
		svc := NewSystemService(mock, logger)

		report := svc.Health(context.Background())

		assert.Equal(t, "running", report.Backend)
		assert.Equal(t, "error: connection refused", report.Database)
		assert.Equal(t, "not connected", report.ConnectionStatus)
		assert.Empty(t, report.Collections)
	})

	t.Run("collection listing failure reported as text", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		mock := &mockStore{
			collectionsErr: errors.New("timeout"),
			dbName:         "biolearn",
		}
		svc := NewSystemService(mock, logger)

		report := svc.Health(context.Background())

		assert.Equal(t, "connected but error: timeout", report.Database)
		assert.Equal(t, "connected", report.ConnectionStatus)
		assert.Empty(t, report.Collections)
	})

	t.Run("long error text truncated", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		long := "connection refused connection refused connection refused connection refused"
		mock := &mockStore{pingErr: errors.New(long)}
		svc := NewSystemService(mock, logger)

		report := svc.Health(context.Background())

		assert.Equal(t, "error: "+long[:50], report.Database)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcde", 5))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("", 5))
}
