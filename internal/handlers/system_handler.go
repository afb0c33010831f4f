package handlers

import (
	"context"
	"net/http"

	"github.com/biolearn/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SystemService is the interface that wraps seeding and health checks.
type SystemService interface {
	// Seed inserts fixed sample content when the store is empty; it is
	// idempotent and reports whether anything was written.
	Seed(ctx context.Context) (*models.SeedResult, error)
	// Health reports process and store status. It never fails; store
	// errors are carried as text inside the report.
	Health(ctx context.Context) models.StatusReport
}

// SystemHandler handles root, seed and health endpoints
type SystemHandler struct {
	BaseHandler
	service SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(svc SystemService, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers root, seed and health routes
func (h *SystemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Root)
	r.Post("/seed", h.Seed)
	r.Get("/test", h.Health)
}

// Root handles GET /
// @Summary API banner
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Biology Learning API running"})
}

// Seed handles POST /seed
// @Summary Seed sample content
// @Description Insert one sample chapter and three quiz questions if the store is empty
// @Tags system
// @Produce json
// @Success 200 {object} models.SeedResult
// @Failure 500 {object} map[string]string
// @Router /seed [post]
func (h *SystemHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Seed(r.Context())
	if err != nil {
		h.logger.Error("failed to seed", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Health handles GET /test
// @Summary Health check
// @Description Report backend and store status; always responds 200
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusReport
// @Router /test [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Health(r.Context()))
}
