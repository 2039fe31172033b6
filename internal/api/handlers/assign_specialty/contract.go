package assign_specialty

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/service/assignments/models"
)

type AssignmentService interface {
	Assign(ctx context.Context, stylistID, specialtyID int64) (*models.AssignmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
