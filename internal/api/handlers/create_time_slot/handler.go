package create_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	createTimeSlot "github.com/m04kA/SMC-StylistService/internal/usecase/create_time_slot"
)

const (
	msgInvalidStylistID   = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStylistNotFound    = "мастер не найден"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgSlotOverlap        = "слот пересекается с существующим слотом"
	msgInvalidInput       = "некорректные данные слота"
)

type Handler struct {
	useCase CreateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase CreateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/stylists/{stylistId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /stylists/{id}/slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /stylists/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(stylistID))
	if err != nil {
		switch {
		case errors.Is(err, createTimeSlot.ErrStylistNotFound):
			h.logger.Warn("POST /stylists/{id}/slots - Stylist not found: stylist_id=%d", stylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, createTimeSlot.ErrInvalidTimeRange):
			h.logger.Warn("POST /stylists/{id}/slots - Invalid time range: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createTimeSlot.ErrSlotOverlap):
			h.logger.Warn("POST /stylists/{id}/slots - Slot overlap: stylist_id=%d, error=%v", stylistID, err)
			handlers.RespondError(w, http.StatusConflict, err.Error())

		case errors.Is(err, createTimeSlot.ErrInvalidInput):
			h.logger.Warn("POST /stylists/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /stylists/{id}/slots - Failed to create slot: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /stylists/{id}/slots - Slot created successfully: slot_id=%d, stylist_id=%d",
		result.ID, stylistID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
