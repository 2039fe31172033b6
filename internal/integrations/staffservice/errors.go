package staffservice

import "errors"

var (
	// ErrStylistNotFound возвращается, когда мастер не найден в StaffService
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrStylistInactive возвращается, когда учетная запись мастера деактивирована
	ErrStylistInactive = errors.New("stylist account is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)
