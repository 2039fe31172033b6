package specialties

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// SpecialtyRepository интерфейс репозитория специализаций
type SpecialtyRepository interface {
	Create(ctx context.Context, s *domain.Specialty) (*domain.Specialty, error)
	GetByID(ctx context.Context, id int64) (*domain.Specialty, error)
	GetActiveByName(ctx context.Context, name string) (*domain.Specialty, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error)
	Update(ctx context.Context, s *domain.Specialty) error
	SoftDelete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
