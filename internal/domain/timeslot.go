package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-StylistService/pkg/types"
)

// Weekday день недели. Нумерация с понедельника, чтобы сортировка по
// числовому значению давала привычный порядок расписания (Пн..Вс).
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = map[Weekday]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// ParseWeekday парсит день недели из строки ("monday", "Monday", ...)
func ParseWeekday(s string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for day, name := range weekdayNames {
		if name == normalized {
			return day, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday: %q", s)
}

// String возвращает имя дня недели
func (d Weekday) String() string {
	if name, ok := weekdayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("weekday(%d)", int(d))
}

// Valid проверяет, что значение входит в диапазон Пн..Вс
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// TimeSlot окно доступности мастера: день недели + полуоткрытый интервал
// [StartTime, EndTime). Для пары (stylist_id, day_of_week) интервалы активных
// слотов не пересекаются; StartTime всегда строго меньше EndTime.
// Слот можно временно выключить (Active=false) без удаления - выключенные
// слоты не участвуют в проверке пересечений, но остаются в хранилище.
type TimeSlot struct {
	ID        int64
	StylistID int64
	DayOfWeek Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps проверяет пересечение с другим слотом.
// Полуоткрытые интервалы [s1,e1) и [s2,e2) пересекаются, когда s1 < e2 && e1 > s2.
// Слоты, граничащие друг с другом (конец одного равен началу другого),
// пересечением не считаются.
func (s *TimeSlot) Overlaps(other *TimeSlot) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	return s.StartTime.IsBefore(other.EndTime) && s.EndTime.IsAfter(other.StartTime)
}

// SortTimeSlots упорядочивает слоты для отображения расписания:
// сначала по дню недели (Пн..Вс), затем по времени начала.
// Строковое сравнение StartTime корректно, потому что значения
// нормализованы к "HH:MM" с ведущими нулями.
func SortTimeSlots(slots []*TimeSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}
