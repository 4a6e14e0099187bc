package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/FACorreiaa/trip-attractions-api/internal/api"
	"github.com/FACorreiaa/trip-attractions-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service string
	version string
}

func NewHandler(service, version string, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		version: version,
	}
}

// Check handles GET /health.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	status := types.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   h.service,
		Version:   h.version,
	}
	api.WriteJSONResponse(w, r, http.StatusOK, status)
}
