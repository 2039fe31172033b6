package create_specialty

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/specialties"
	"github.com/m04kA/SMC-StylistService/internal/service/specialties/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/specialties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSpecialtyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /specialties - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, specialties.ErrDuplicateName):
			h.logger.Warn("POST /specialties - Duplicate name: %q", req.Name)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateName)

		case errors.Is(err, specialties.ErrInvalidInput):
			h.logger.Warn("POST /specialties - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /specialties - Failed to create specialty: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /specialties - Specialty created successfully: id=%d, name=%q", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
