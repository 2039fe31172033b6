package update_time_slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда редактируемый слот не найден
	ErrSlotNotFound = errors.New("time slot not found")

	// ErrInvalidTimeRange возвращается, когда начало слота не раньше его конца
	ErrInvalidTimeRange = errors.New("start time must be before end time")

	// ErrSlotOverlap возвращается, когда измененный слот пересекается с другим
	// активным слотом того же дня
	ErrSlotOverlap = errors.New("time slot overlaps an existing slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
