package create_time_slot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-StylistService/pkg/types"
)

// --- Моки ---

type mockTimeSlotRepo struct {
	createFn             func(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error)
	getByStylistAndDayFn func(ctx context.Context, stylistID int64, day domain.Weekday) ([]*domain.TimeSlot, error)
}

var _ TimeSlotRepository = (*mockTimeSlotRepo)(nil)

func (m *mockTimeSlotRepo) Create(ctx context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	return m.createFn(ctx, slot)
}

func (m *mockTimeSlotRepo) GetByStylistAndDay(ctx context.Context, stylistID int64, day domain.Weekday) ([]*domain.TimeSlot, error) {
	return m.getByStylistAndDayFn(ctx, stylistID, day)
}

type mockStaffClient struct {
	getStylistFn func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error)
}

var _ StaffServiceClient = (*mockStaffClient)(nil)

func (m *mockStaffClient) GetStylist(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
	return m.getStylistFn(ctx, stylistID)
}

type fakeTxManager struct{}

var _ TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

var _ Logger = (*noopLogger)(nil)

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

// --- Хелперы ---

func slot(id int64, day domain.Weekday, start, end string, active bool) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:        id,
		StylistID: 42,
		DayOfWeek: day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Active:    active,
	}
}

func newUseCaseWithSlots(existing []*domain.TimeSlot) (*UseCase, *[]*domain.TimeSlot) {
	created := &[]*domain.TimeSlot{}
	repo := &mockTimeSlotRepo{
		getByStylistAndDayFn: func(ctx context.Context, stylistID int64, day domain.Weekday) ([]*domain.TimeSlot, error) {
			var out []*domain.TimeSlot
			for _, s := range existing {
				if s.DayOfWeek == day {
					out = append(out, s)
				}
			}
			return out, nil
		},
		createFn: func(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
			stored := *s
			stored.ID = int64(len(*created)) + 100
			*created = append(*created, &stored)
			return &stored, nil
		},
	}
	staff := &mockStaffClient{
		getStylistFn: func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
			return &staffservice.Stylist{ID: stylistID, FullName: "Marie Dupont", Active: true}, nil
		},
	}
	return NewUseCase(repo, staff, &fakeTxManager{}, &noopLogger{}), created
}

// --- Тесты ---

func TestExecute_RejectsOverlaps(t *testing.T) {
	// Существующий активный слот: понедельник [09:00, 12:00)
	existing := []*domain.TimeSlot{slot(1, domain.Monday, "09:00", "12:00", true)}

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"вложенный интервал", "10:00", "11:00"},
		{"пересекает начало", "08:00", "09:30"},
		{"пересекает конец", "11:30", "13:00"},
		{"совпадает целиком", "09:00", "12:00"},
		{"накрывает целиком", "08:00", "13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, created := newUseCaseWithSlots(existing)
			_, err := uc.Execute(context.Background(), &Request{
				StylistID: 42,
				DayOfWeek: "monday",
				StartTime: tt.start,
				EndTime:   tt.end,
			})
			assert.ErrorIs(t, err, ErrSlotOverlap)
			assert.Contains(t, err.Error(), "id=1", "ошибка должна называть конфликтующий слот")
			assert.Empty(t, *created)
		})
	}
}

func TestExecute_AbuttingSlotAllowed(t *testing.T) {
	// [09:00, 12:00) и [12:00, 13:00) граничат, но не пересекаются
	existing := []*domain.TimeSlot{slot(1, domain.Monday, "09:00", "12:00", true)}
	uc, created := newUseCaseWithSlots(existing)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "monday",
		StartTime: "12:00",
		EndTime:   "13:00",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), resp.StartTime)
	assert.Len(t, *created, 1)
}

func TestExecute_OtherDayAllowed(t *testing.T) {
	existing := []*domain.TimeSlot{slot(1, domain.Monday, "09:00", "12:00", true)}
	uc, _ := newUseCaseWithSlots(existing)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "tuesday",
		StartTime: "09:00",
		EndTime:   "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "tuesday", resp.DayOfWeek)
}

func TestExecute_InactiveSlotIgnoredByOverlapCheck(t *testing.T) {
	existing := []*domain.TimeSlot{slot(1, domain.Monday, "09:00", "12:00", false)}
	uc, created := newUseCaseWithSlots(existing)

	_, err := uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "monday",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	assert.Len(t, *created, 1)
}

func TestExecute_NormalizesTimes(t *testing.T) {
	uc, created := newUseCaseWithSlots(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "Friday",
		StartTime: "9:00",
		EndTime:   "17:5",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("17:05"), resp.EndTime)
	assert.Equal(t, "friday", resp.DayOfWeek)
	assert.True(t, resp.Active, "новый слот активен по умолчанию")
	require.Len(t, *created, 1)
	assert.Equal(t, types.TimeString("09:00"), (*created)[0].StartTime)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	uc, _ := newUseCaseWithSlots(nil)

	_, err := uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "monday",
		StartTime: "12:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "monday",
		StartTime: "14:00",
		EndTime:   "12:00",
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newUseCaseWithSlots(nil)

	_, err := uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "someday",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		StylistID: 42,
		DayOfWeek: "monday",
		StartTime: "25:00",
		EndTime:   "26:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StylistNotFound(t *testing.T) {
	uc, created := newUseCaseWithSlots(nil)
	uc.staffClient = &mockStaffClient{
		getStylistFn: func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
			return nil, staffservice.ErrStylistNotFound
		},
	}

	_, err := uc.Execute(context.Background(), &Request{
		StylistID: 999,
		DayOfWeek: "monday",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrStylistNotFound)
	assert.Empty(t, *created)
}
