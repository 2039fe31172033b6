package create_specialty

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/service/specialties/models"
)

type SpecialtyService interface {
	Create(ctx context.Context, req *models.CreateSpecialtyRequest) (*models.SpecialtyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
