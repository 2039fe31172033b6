package get_stylist_specialties

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/assignments"
)

const (
	msgInvalidStylistID = "некорректный ID мастера"
	msgStylistNotFound  = "мастер не найден"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stylists/{stylistId}/specialties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/specialties - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.ListStylistSpecialties(r.Context(), stylistID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrStylistNotFound):
			h.logger.Warn("GET /stylists/{id}/specialties - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/specialties - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStylistID)

		default:
			h.logger.Error("GET /stylists/{id}/specialties - Failed to list: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/specialties - Listed %d specialties for stylist_id=%d",
		len(result.Specialties), stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
