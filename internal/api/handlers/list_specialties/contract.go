package list_specialties

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/service/specialties/models"
)

type SpecialtyService interface {
	List(ctx context.Context, includeInactive bool) (*models.SpecialtyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
