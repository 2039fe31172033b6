package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(day Weekday, start, end string) *TimeSlot {
	return &TimeSlot{DayOfWeek: day, StartTime: mustTime(start), EndTime: mustTime(end), Active: true}
}

func TestParseWeekday(t *testing.T) {
	day, err := ParseWeekday("monday")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = ParseWeekday("  Sunday ")
	require.NoError(t, err)
	assert.Equal(t, Sunday, day)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}

func TestWeekday_Ordering(t *testing.T) {
	// Порядок недели фиксированный: понедельник раньше воскресенья
	assert.True(t, Monday < Wednesday)
	assert.True(t, Friday < Sunday)
}

func TestTimeSlot_Overlaps(t *testing.T) {
	existing := slot(Monday, "09:00", "12:00")

	tests := []struct {
		name     string
		other    *TimeSlot
		overlaps bool
	}{
		{"вложенный интервал", slot(Monday, "10:00", "11:00"), true},
		{"пересекает начало", slot(Monday, "08:00", "09:30"), true},
		{"пересекает конец", slot(Monday, "11:30", "13:00"), true},
		{"накрывает целиком", slot(Monday, "08:00", "13:00"), true},
		{"граничит справа", slot(Monday, "12:00", "13:00"), false},
		{"граничит слева", slot(Monday, "08:00", "09:00"), false},
		{"другой день", slot(Tuesday, "10:00", "11:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, existing.Overlaps(tt.other))
			// Пересечение симметрично
			assert.Equal(t, tt.overlaps, tt.other.Overlaps(existing))
		})
	}
}

func TestSortTimeSlots(t *testing.T) {
	slots := []*TimeSlot{
		slot(Wednesday, "14:00", "15:00"),
		slot(Monday, "09:00", "10:00"),
		slot(Monday, "08:00", "09:00"),
		slot(Friday, "07:00", "08:00"),
	}

	SortTimeSlots(slots)

	require.Len(t, slots, 4)
	assert.Equal(t, Monday, slots[0].DayOfWeek)
	assert.Equal(t, "08:00", slots[0].StartTime.String())
	assert.Equal(t, Monday, slots[1].DayOfWeek)
	assert.Equal(t, "09:00", slots[1].StartTime.String())
	assert.Equal(t, Wednesday, slots[2].DayOfWeek)
	assert.Equal(t, Friday, slots[3].DayOfWeek)
}

func TestComputeAssignmentDiff(t *testing.T) {
	current := []*Assignment{
		{ID: 1, StylistID: 7, SpecialtyID: 10},
		{ID: 2, StylistID: 7, SpecialtyID: 20},
		{ID: 3, StylistID: 7, SpecialtyID: 30},
	}

	diff := ComputeAssignmentDiff(current, []int64{20, 30, 40})

	require.Len(t, diff.ToAdd, 1)
	assert.Equal(t, int64(40), diff.ToAdd[0])
	require.Len(t, diff.ToRemove, 1)
	assert.Equal(t, int64(1), diff.ToRemove[0].ID)
}

func TestComputeAssignmentDiff_NoChanges(t *testing.T) {
	current := []*Assignment{
		{ID: 1, StylistID: 7, SpecialtyID: 10},
	}

	diff := ComputeAssignmentDiff(current, []int64{10})

	assert.True(t, diff.IsEmpty())
}

func TestComputeAssignmentDiff_EmptyDesired(t *testing.T) {
	current := []*Assignment{
		{ID: 1, StylistID: 7, SpecialtyID: 10},
		{ID: 2, StylistID: 7, SpecialtyID: 20},
	}

	diff := ComputeAssignmentDiff(current, nil)

	assert.Empty(t, diff.ToAdd)
	assert.Len(t, diff.ToRemove, 2)
}
