package recount_specialties

import (
	"context"

	recountSpecialties "github.com/m04kA/SMC-StylistService/internal/usecase/recount_specialties"
)

type RecountSpecialtiesUseCase interface {
	Execute(ctx context.Context) (*recountSpecialties.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
