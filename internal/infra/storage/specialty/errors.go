package specialty

import "errors"

var (
	// ErrSpecialtyNotFound возвращается, когда специализация не найдена
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrBuildQuery возвращается при ошибке сборки SQL-запроса
	ErrBuildQuery = errors.New("storage/specialty: build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL-запроса
	ErrExecQuery = errors.New("storage/specialty: execute query")

	// ErrScanRow возвращается при ошибке чтения строки результата
	ErrScanRow = errors.New("storage/specialty: scan row")
)
