package http

import (
	"net/http"
	"time"

	"github.com/ideaforge/ideaforge/server/internal/api/respond"
	"github.com/ideaforge/ideaforge/server/internal/storage"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	storage storage.Storage
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store storage.Storage) *HealthHandler {
	return &HealthHandler{storage: store}
}

// CheckHealth GET /api/health
// Always returns 200; the process answering is the signal.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// CheckStorageHealth GET /api/health/db
// Probes the storage backend; 503 when the probe fails.
func (h *HealthHandler) CheckStorageHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.HealthCheck(r.Context()); err != nil {
		respond.WriteJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
