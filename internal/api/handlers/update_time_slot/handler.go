package update_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	updateTimeSlot "github.com/m04kA/SMC-StylistService/internal/usecase/update_time_slot"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "слот не найден"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные слота"
)

type Handler struct {
	useCase UpdateTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase UpdateTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(slotID))
	if err != nil {
		switch {
		case errors.Is(err, updateTimeSlot.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateTimeSlot.ErrInvalidTimeRange):
			h.logger.Warn("PUT /slots/{id} - Invalid time range: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateTimeSlot.ErrSlotOverlap):
			h.logger.Warn("PUT /slots/{id} - Slot overlap: slot_id=%d, error=%v", slotID, err)
			handlers.RespondError(w, http.StatusConflict, err.Error())

		case errors.Is(err, updateTimeSlot.ErrInvalidInput):
			h.logger.Warn("PUT /slots/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /slots/{id} - Failed to update slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id} - Slot updated successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
