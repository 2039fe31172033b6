package sync_specialties

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден в StaffService
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrSpecialtyNotFound возвращается, когда желаемый набор ссылается
	// на несуществующую специализацию
	ErrSpecialtyNotFound = errors.New("specialty not found")

	// ErrSpecialtyInactive возвращается, когда желаемый набор ссылается
	// на мягко удаленную специализацию
	ErrSpecialtyInactive = errors.New("specialty is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
