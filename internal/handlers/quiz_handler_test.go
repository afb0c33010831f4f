package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/biolearn/backend/internal/models"
	"github.com/biolearn/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockQuizService is a mock implementation of QuizService
type mockQuizService struct {
	questions []models.QuizQuestionView
	getErr    error
	createErr error

	gotSlug  string
	gotLimit int
	gotReq   models.CreateQuizQuestionRequest
}

func (m *mockQuizService) GetForChapter(ctx context.Context, slug string, limit int) ([]models.QuizQuestionView, error) {
	m.gotSlug = slug
	m.gotLimit = limit
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.questions, nil
}

func (m *mockQuizService) Create(ctx context.Context, req models.CreateQuizQuestionRequest) error {
	m.gotReq = req
	return m.createErr
}

func newQuizRouter(svc QuizService) chi.Router {
	logger, _ := zap.NewDevelopment()
	r := chi.NewRouter()
	NewQuizHandler(svc, logger).RegisterRoutes(r)
	return r
}

func TestQuizHandler_GetForChapter(t *testing.T) {
	t.Run("returns questions for the chapter", func(t *testing.T) {
		mock := &mockQuizService{
			questions: []models.QuizQuestionView{
				{ID: "64f0c3e8a1b2c3d4e5f60718", ChapterSlug: "cell-structure", Question: "q1", Options: []string{"a", "b"}, CorrectIndex: 1, Explanation: "e1", Difficulty: "OSN-N"},
			},
		}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodGet, "/chapters/cell-structure/quiz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "cell-structure", mock.gotSlug)
		assert.Equal(t, 0, mock.gotLimit)

		var got []models.QuizQuestionView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "q1", got[0].Question)
	})

	t.Run("limit query parameter is forwarded", func(t *testing.T) {
		mock := &mockQuizService{questions: []models.QuizQuestionView{}}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodGet, "/chapters/cell-structure/quiz?limit=5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, mock.gotLimit)
	})

	t.Run("non numeric limit maps to 400", func(t *testing.T) {
		mock := &mockQuizService{}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodGet, "/chapters/cell-structure/quiz?limit=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid limit parameter", body["error"])
	})

	t.Run("unknown slug renders empty array", func(t *testing.T) {
		mock := &mockQuizService{questions: []models.QuizQuestionView{}}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodGet, "/chapters/does-not-exist/quiz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("service error maps to 500", func(t *testing.T) {
		mock := &mockQuizService{getErr: errors.New("store unavailable")}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodGet, "/chapters/cell-structure/quiz", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestQuizHandler_Create(t *testing.T) {
	validBody := `{"chapter_slug":"cell-structure","question":"Manakah organel penghasil ATP?","options":["Ribosom","Mitokondria"],"correct_index":1,"explanation":"Mitokondria menghasilkan ATP."}`

	t.Run("success responds with status ok", func(t *testing.T) {
		mock := &mockQuizService{}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodPost, "/quiz", bytes.NewBufferString(validBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.Equal(t, "cell-structure", mock.gotReq.ChapterSlug)
		assert.Equal(t, 1, mock.gotReq.CorrectIndex)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		mock := &mockQuizService{}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodPost, "/quiz", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("out of range index maps to 400", func(t *testing.T) {
		mock := &mockQuizService{createErr: services.ErrCorrectIndexOutOfRange}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodPost, "/quiz", bytes.NewBufferString(validBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "correct_index out of range", body["error"])
	})

	t.Run("validation error maps to 400", func(t *testing.T) {
		mock := &mockQuizService{createErr: services.ErrInvalidInput}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodPost, "/quiz", bytes.NewBufferString(`{"chapter_slug":"x"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store error maps to 500", func(t *testing.T) {
		mock := &mockQuizService{createErr: errors.New("store unavailable")}
		router := newQuizRouter(mock)

		req := httptest.NewRequest(http.MethodPost, "/quiz", bytes.NewBufferString(validBody))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
