package domain

// Ограничения валидации
const (
	MaxSpecialtyNameLength        = 100
	MaxSpecialtyDescriptionLength = 500
)

// Форматы времени
const (
	TimeFormat = "15:04" // HH:MM
)
