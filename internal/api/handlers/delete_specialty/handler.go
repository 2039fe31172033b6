package delete_specialty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/specialties"
)

const (
	msgInvalidSpecialtyID = "некорректный ID специализации"
	msgNotFound           = "специализация не найдена"
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

// Handle DELETE /api/v1/specialties/{specialtyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialtyID, err := strconv.ParseInt(vars["specialtyId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /specialties/{id} - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	if err := h.service.Delete(r.Context(), specialtyID); err != nil {
		switch {
		case errors.Is(err, specialties.ErrSpecialtyNotFound):
			h.logger.Warn("DELETE /specialties/{id} - Specialty not found: specialty_id=%d", specialtyID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /specialties/{id} - Failed to delete specialty: specialty_id=%d, error=%v",
				specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /specialties/{id} - Specialty soft-deleted successfully: specialty_id=%d", specialtyID)
	handlers.RespondNoContent(w)
}
