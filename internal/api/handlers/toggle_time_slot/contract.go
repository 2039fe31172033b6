package toggle_time_slot

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetActive(ctx context.Context, slotID int64, active bool) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
