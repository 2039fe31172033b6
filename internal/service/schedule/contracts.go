package schedule

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов расписания
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByStylist(ctx context.Context, stylistID int64) ([]*domain.TimeSlot, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
