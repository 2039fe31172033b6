package assignment

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда запись назначения не найдена
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrBuildQuery возвращается при ошибке сборки SQL-запроса
	ErrBuildQuery = errors.New("storage/assignment: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL-запроса
	ErrExecQuery = errors.New("storage/assignment: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("storage/assignment: scan row")
)
