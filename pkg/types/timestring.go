package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString время в формате "HH:MM" (часы с ведущим нулём).
// Благодаря фиксированному формату лексикографическое сравнение строк
// совпадает с хронологическим, поэтому значения можно сравнивать и
// сортировать как обычные строки (в том числе в ORDER BY).
type TimeString string

const timeStringFormat = "15:04"

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString парсит и нормализует строку времени.
// Принимает "HH:MM", "H:MM", "HH", "H" — всё приводится к "HH:MM"
// ("9" -> "09:00", "9:30" -> "09:30").
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty time string")
	}

	var hourPart, minutePart string
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourPart = s[:idx]
		minutePart = s[idx+1:]
	} else {
		hourPart = s
		minutePart = "00"
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}

	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour value: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute value: %d", minute)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение имеет корректный формат "HH:MM"
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}
	normalized, err := NewTimeStringFromString(string(t))
	if err != nil {
		return err
	}
	if normalized != t {
		return fmt.Errorf("time string is not normalized: %q", string(t))
	}
	return nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// TotalMinutes возвращает время как количество минут с полуночи
func (t TimeString) TotalMinutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	hour, _ := strconv.Atoi(string(t)[:2])
	minute, _ := strconv.Atoi(string(t)[3:])
	return hour*60 + minute, nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Выход за границу суток считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes is out of day range", t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Sub возвращает разницу t-other в минутах
func (t TimeString) Sub(other TimeString) (int, error) {
	a, err := t.TotalMinutes()
	if err != nil {
		return 0, err
	}
	b, err := other.TotalMinutes()
	if err != nil {
		return 0, err
	}
	return a - b, nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Postgres может вернуть колонку типа time как "HH:MM:SS" - секунды отбрасываются.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
