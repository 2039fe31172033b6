package delete_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/schedule"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgNotFound      = "слот не найден"
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

// Handle DELETE /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted successfully: slot_id=%d", slotID)
	handlers.RespondNoContent(w)
}
