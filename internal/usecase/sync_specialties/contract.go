package sync_specialties

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
	GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Assignment, error)
	Delete(ctx context.Context, id int64) error
}

// SpecialtyRepository интерфейс репозитория специализаций
type SpecialtyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
	IncrementAssignedCount(ctx context.Context, id int64) error
	DecrementAssignedCount(ctx context.Context, id int64) error
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetStylist(ctx context.Context, stylistID int64) (*staffservice.Stylist, error)
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
