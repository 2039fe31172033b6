package sync_stylist_specialties

import (
	"context"

	syncSpecialties "github.com/m04kA/SMC-StylistService/internal/usecase/sync_specialties"
)

type SyncSpecialtiesUseCase interface {
	Execute(ctx context.Context, req *syncSpecialties.Request) (*syncSpecialties.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
