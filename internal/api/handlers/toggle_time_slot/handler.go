package toggle_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/schedule"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "слот не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/slots/{slotId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id}/active - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetActive(r.Context(), slotID, req.Active)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id}/active - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /slots/{id}/active - Failed to toggle slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id}/active - Slot toggled: slot_id=%d, active=%t", slotID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
