package get_stylist_slots

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListSlots(ctx context.Context, stylistID int64) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
