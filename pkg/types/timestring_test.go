package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString_Normalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "09:00"},
		{"9:00", "09:00"},
		{"9", "09:00"},
		{"23", "23:00"},
		{"9:5", "09:05"},
		{" 10:30 ", "10:30"},
		{"0:00", "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	for _, in := range []string{"", "24:00", "12:60", "-1:00", "abc", "12:ab", "25"} {
		t.Run(in, func(t *testing.T) {
			_, err := NewTimeStringFromString(in)
			assert.Error(t, err)
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	// Лексикографическое сравнение совпадает с хронологическим
	// только благодаря ведущим нулям
	early, err := NewTimeStringFromString("9:00")
	require.NoError(t, err)
	late, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(early))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_AddMinutes(t *testing.T) {
	start, _ := NewTimeStringFromString("09:45")

	end, err := start.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", end.String())

	// Выход за границу суток
	_, err = start.AddMinutes(15 * 60)
	assert.Error(t, err)
}

func TestTimeString_Sub(t *testing.T) {
	a, _ := NewTimeStringFromString("10:30")
	b, _ := NewTimeStringFromString("09:00")

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, 90, diff)
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.Error(t, TimeString("9:00").Validate())
	assert.Error(t, TimeString("0900").Validate())
	assert.Error(t, TimeString("").Validate())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, "09:30", ts.String())

	require.NoError(t, ts.Scan([]byte("18:00")))
	assert.Equal(t, "18:00", ts.String())
}
