package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/biolearn/backend/internal/models"
	"github.com/biolearn/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChaptersService is the interface that wraps methods for chapter business logic.
type ChaptersService interface {
	// List retrieves all chapters serialized as views.
	List(ctx context.Context) ([]models.ChapterView, error)
	// GetBySlug retrieves the unique chapter with the given slug, or
	// services.ErrChapterNotFound when none matches.
	GetBySlug(ctx context.Context, slug string) (*models.ChapterView, error)
	// Create validates and stores a new chapter. services.ErrSlugExists is
	// returned when the slug is taken, services.ErrInvalidInput when
	// required fields are missing.
	Create(ctx context.Context, req models.CreateChapterRequest) error
}

// ChaptersHandler handles HTTP requests for chapters
type ChaptersHandler struct {
	BaseHandler
	service ChaptersService
}

// NewChaptersHandler creates a new chapter handler
func NewChaptersHandler(svc ChaptersService, logger *zap.Logger) *ChaptersHandler {
	return &ChaptersHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all chapter handler routes
func (h *ChaptersHandler) RegisterRoutes(r chi.Router) {
	r.Get("/chapters", h.List)
	r.Post("/chapters", h.Create)
	r.Get("/chapters/{slug}", h.GetBySlug)
}

// List handles GET /chapters
// @Summary List chapters
// @Description Get all chapters with their structured learning content
// @Tags chapters
// @Produce json
// @Success 200 {array} models.ChapterView
// @Failure 500 {object} map[string]string
// @Router /chapters [get]
func (h *ChaptersHandler) List(w http.ResponseWriter, r *http.Request) {
	chapters, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list chapters", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, chapters)
}

// GetBySlug handles GET /chapters/{slug}
// @Summary Get chapter by slug
// @Description Get a single chapter by its URL-safe slug
// @Tags chapters
// @Produce json
// @Param slug path string true "Chapter slug"
// @Success 200 {object} models.ChapterView
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chapters/{slug} [get]
func (h *ChaptersHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	chapter, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrChapterNotFound) {
			h.respondError(w, http.StatusNotFound, "Chapter not found")
			return
		}
		h.logger.Error("failed to get chapter", zap.String("slug", slug), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, chapter)
}

// Create handles POST /chapters
// @Summary Create chapter
// @Description Create a chapter with a unique slug
// @Tags chapters
// @Accept json
// @Produce json
// @Param chapter body models.CreateChapterRequest true "Chapter to create"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chapters [post]
func (h *ChaptersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Create(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, services.ErrSlugExists):
			h.respondError(w, http.StatusBadRequest, "Slug already exists")
		case errors.Is(err, services.ErrInvalidInput):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to create chapter", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	h.respondJSON(w, http.StatusOK, statusOK)
}
