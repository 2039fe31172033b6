package list_specialties

import (
	"net/http"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
)

type Handler struct {
	service SpecialtyService
	logger  Logger
}

func NewHandler(service SpecialtyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/specialties
// Query params: include_inactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	result, err := h.service.List(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /specialties - Failed to list specialties: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /specialties - Listed %d specialties", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
