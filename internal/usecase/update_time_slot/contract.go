package update_time_slot

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов расписания
type TimeSlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error)
	GetByStylistAndDay(ctx context.Context, stylistID int64, day domain.Weekday) ([]*domain.TimeSlot, error)
	Update(ctx context.Context, slot *domain.TimeSlot) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
