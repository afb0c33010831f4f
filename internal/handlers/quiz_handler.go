package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/biolearn/backend/internal/models"
	"github.com/biolearn/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps methods for quiz business logic.
type QuizService interface {
	// GetForChapter retrieves up to limit quiz questions for the given
	// chapter slug; an unknown slug yields an empty sequence.
	GetForChapter(ctx context.Context, slug string, limit int) ([]models.QuizQuestionView, error)
	// Create validates and stores a new quiz question.
	Create(ctx context.Context, req models.CreateQuizQuestionRequest) error
}

// QuizHandler handles HTTP requests for quiz questions
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all quiz handler routes
func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chapters/{slug}/quiz", h.GetForChapter)
	r.Post("/quiz", h.Create)
}

// GetForChapter handles GET /chapters/{slug}/quiz
// @Summary Get quiz for chapter
// @Description Get up to limit quiz questions referencing the chapter slug
// @Tags quiz
// @Produce json
// @Param slug path string true "Chapter slug"
// @Param limit query int false "Maximum number of questions, default 20"
// @Success 200 {array} models.QuizQuestionView
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chapters/{slug}/quiz [get]
func (h *QuizHandler) GetForChapter(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	limit := 0
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
		limit = parsed
	}

	questions, err := h.service.GetForChapter(r.Context(), slug, limit)
	if err != nil {
		h.logger.Error("failed to get quiz questions", zap.String("slug", slug), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, questions)
}

// Create handles POST /quiz
// @Summary Create quiz question
// @Description Create a multiple choice question tied to a chapter slug
// @Tags quiz
// @Accept json
// @Produce json
// @Param question body models.CreateQuizQuestionRequest true "Question to create"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /quiz [post]
func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, services.ErrCorrectIndexOutOfRange):
			h.respondError(w, http.StatusBadRequest, "correct_index out of range")
		case errors.Is(err, services.ErrInvalidInput):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create quiz question", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.respondJSON(w, http.StatusOK, statusOK)
}
