package timeslot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrBuildQuery возвращается при ошибке сборки SQL-запроса
	ErrBuildQuery = errors.New("storage/timeslot: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL-запроса
	ErrExecQuery = errors.New("storage/timeslot: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("storage/timeslot: scan row")
)
