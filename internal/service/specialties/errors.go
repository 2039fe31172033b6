package specialties

import "errors"

var (
	// ErrSpecialtyNotFound возвращается, когда специализация не найдена
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrDuplicateName возвращается при попытке создать специализацию с именем,
	// уже занятым другой активной специализацией (без учета регистра)
	ErrDuplicateName = errors.New("specialty name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
