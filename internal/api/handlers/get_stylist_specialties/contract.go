package get_stylist_specialties

import (
	"context"

	"github.com/m04kA/SMC-StylistService/internal/service/assignments/models"
)

type AssignmentService interface {
	ListStylistSpecialties(ctx context.Context, stylistID int64) (*models.StylistSpecialtiesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
