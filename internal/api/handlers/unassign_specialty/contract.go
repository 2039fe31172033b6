package unassign_specialty

import "context"

type AssignmentService interface {
	Unassign(ctx context.Context, stylistID, specialtyID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
