package get_stylist_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
	"github.com/m04kA/SMC-StylistService/internal/service/schedule"
)

const (
	msgInvalidStylistID = "некорректный ID мастера"
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

// Handle GET /api/v1/stylists/{stylistId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stylistID, err := strconv.ParseInt(vars["stylistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stylists/{id}/slots - Invalid stylist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStylistID)
		return
	}

	result, err := h.service.ListSlots(r.Context(), stylistID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /stylists/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStylistID)

		default:
			h.logger.Error("GET /stylists/{id}/slots - Failed to list slots: stylist_id=%d, error=%v",
				stylistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stylists/{id}/slots - Listed %d slots for stylist_id=%d", len(result.Slots), stylistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
