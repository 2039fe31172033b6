package unassign_specialty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/assignments"
)

const (
	msgInvalidStylistID   = "некорректный ID мастера"
	msgInvalidSpecialtyID = "некорректный ID специализации"
	msgNotAssigned        = "специализация не закреплена за мастером"
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

// Handle DELETE /api/v1/stylists/{stylistId}/specialties/{specialtyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stylists/{id}/specialties/{id} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}
	specialtyID, err := strconv.ParseInt(vars["specialtyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stylists/{id}/specialties/{id} - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	if err := h.service.Unassign(r.Context(), stylistID, specialtyID); err != nil {
		switch {
		case errors.Is(err, assignments.ErrAssignmentNotFound):
			h.logger.Warn("DELETE /stylists/{id}/specialties/{id} - Not assigned: stylist_id=%d, specialty_id=%d",
				stylistID, specialtyID)
			handlers.RespondNotFound(w, msgNotAssigned)

		default:
			h.logger.Error("DELETE /stylists/{id}/specialties/{id} - Failed to unassign: stylist_id=%d, specialty_id=%d, error=%v",
				stylistID, specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stylists/{id}/specialties/{id} - Unassigned: stylist_id=%d, specialty_id=%d",
		stylistID, specialtyID)
	handlers.RespondNoContent(w)
}
