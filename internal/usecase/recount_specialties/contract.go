package recount_specialties

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	CountsBySpecialty(ctx context.Context) (map[int64]int, error)
}

// SpecialtyRepository интерфейс репозитория специализаций
type SpecialtyRepository interface {
	List(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error)
	SetAssignedCount(ctx context.Context, id int64, count int) error
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
