package update_specialty

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/specialties"
	"github.com/m04kA/SMC-StylistService/internal/service/specialties/models"
)

const (
	msgInvalidSpecialtyID = "некорректный ID специализации"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "специализация не найдена"
	msgDuplicateName      = "специализация с таким именем уже существует"
	msgInvalidInput       = "некорректные данные специализации"
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

// Handle PUT /api/v1/specialties/{specialtyId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	specialtyID, err := strconv.ParseInt(vars["specialtyId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /specialties/{id} - Invalid specialty ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialtyID)
		return
	}

	var req models.UpdateSpecialtyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /specialties/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), specialtyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, specialties.ErrSpecialtyNotFound):
			h.logger.Warn("PUT /specialties/{id} - Specialty not found: specialty_id=%d", specialtyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, specialties.ErrDuplicateName):
			h.logger.Warn("PUT /specialties/{id} - Duplicate name: specialty_id=%d", specialtyID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, specialties.ErrInvalidInput):
			h.logger.Warn("PUT /specialties/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /specialties/{id} - Failed to update specialty: specialty_id=%d, error=%v",
				specialtyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /specialties/{id} - Specialty updated successfully: specialty_id=%d", specialtyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
