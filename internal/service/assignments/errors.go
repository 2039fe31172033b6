package assignments

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден в StaffService
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrSpecialtyNotFound возвращается, когда специализация не найдена
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrSpecialtyInactive возвращается при попытке закрепить мягко удаленную специализацию
	ErrSpecialtyInactive = errors.New("specialty is inactive")

	// ErrDuplicateAssignment возвращается, когда специализация уже закреплена за мастером
	ErrDuplicateAssignment = errors.New("specialty is already assigned to stylist")

	// ErrAssignmentNotFound возвращается при снятии незакрепленной специализации
	ErrAssignmentNotFound = errors.New("assignment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
