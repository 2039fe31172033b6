package sync_stylist_specialties

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	syncSpecialties "github.com/m04kA/SMC-StylistService/internal/usecase/sync_specialties"
)

const (
	msgInvalidStylistID   = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStylistNotFound    = "мастер не найден"
	msgSpecialtyNotFound  = "специализация из набора не найдена"
	msgSpecialtyInactive  = "специализация из набора удалена"
	msgInvalidInput       = "некорректный набор специализаций"
)

type Handler struct {
	useCase SyncSpecialtiesUseCase
	logger  Logger
}

func NewHandler(useCase SyncSpecialtiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/stylists/{stylistId}/specialties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /stylists/{id}/specialties - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	var req SyncSpecialtiesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /stylists/{id}/specialties - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(stylistID))
	if err != nil {
		switch {
		case errors.Is(err, syncSpecialties.ErrStylistNotFound):
			h.logger.Warn("PUT /stylists/{id}/specialties - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, syncSpecialties.ErrSpecialtyNotFound):
			h.logger.Warn("PUT /stylists/{id}/specialties - Specialty not found: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgSpecialtyNotFound)

		case errors.Is(err, syncSpecialties.ErrSpecialtyInactive):
			h.logger.Warn("PUT /stylists/{id}/specialties - Specialty inactive: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondBadRequest(w, msgSpecialtyInactive)

		case errors.Is(err, syncSpecialties.ErrInvalidInput):
			h.logger.Warn("PUT /stylists/{id}/specialties - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /stylists/{id}/specialties - Failed to synchronize: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /stylists/{id}/specialties - Synchronized: stylist_id=%d, added=%d, removed=%d",
		stylistID, len(result.AddedIDs), len(result.RemovedIDs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
