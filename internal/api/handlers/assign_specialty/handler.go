package assign_specialty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/assignments"
)

const (
	msgInvalidStylistID    = "некорректный ID мастера"
	msgInvalidSpecialtyID  = "некорректный ID специализации"
	msgStylistNotFound     = "мастер не найден"
	msgSpecialtyNotFound   = "специализация не найдена"
	msgSpecialtyInactive   = "специализация удалена"
	msgDuplicateAssignment = "специализация уже закреплена за мастером"
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

// Handle POST /api/v1/stylists/{stylistId}/specialties/{specialtyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /stylists/{id}/specialties/{id} - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}
	specialtyID, err := strconv.ParseInt(vars["specialtyId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /stylists/{id}/specialties/{id} - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	result, err := h.service.Assign(r.Context(), stylistID, specialtyID)
	if err != nil {
		switch {
		case errors.Is(err, assignments.ErrStylistNotFound):
			h.logger.Warn("POST /stylists/{id}/specialties/{id} - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, assignments.ErrSpecialtyNotFound):
			h.logger.Warn("POST /stylists/{id}/specialties/{id} - Specialty not found: specialty_id=%d", specialtyID)
			handlers.RespondNotFound(w, msgSpecialtyNotFound)

		case errors.Is(err, assignments.ErrSpecialtyInactive):
			h.logger.Warn("POST /stylists/{id}/specialties/{id} - Specialty inactive: specialty_id=%d", specialtyID)
			handlers.RespondBadRequest(w, msgSpecialtyInactive)

		case errors.Is(err, assignments.ErrDuplicateAssignment):
			h.logger.Warn("POST /stylists/{id}/specialties/{id} - Already assigned: stylist_id=%d, specialty_id=%d",
				stylistID, specialtyID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateAssignment)

		case errors.Is(err, assignments.ErrInvalidInput):
			h.logger.Warn("POST /stylists/{id}/specialties/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStylistID)

		default:
			h.logger.Error("POST /stylists/{id}/specialties/{id} - Failed to assign: stylist_id=%d, specialty_id=%d, error=%v",
				stylistID, specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stylists/{id}/specialties/{id} - Assigned: stylist_id=%d, specialty_id=%d, assignment_id=%d",
		stylistID, specialtyID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
