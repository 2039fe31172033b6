package create_time_slot

import (
	"fmt"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/types"
)

// validateRequest валидирует запрос и возвращает нормализованный слот:
// день недели разобран, времена приведены к "HH:MM" с ведущими нулями.
func validateRequest(req *Request) (*domain.TimeSlot, error) {
	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	day, err := domain.ParseWeekday(req.DayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, start, end)
	}

	return &domain.TimeSlot{
		StylistID: req.StylistID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}, nil
}

// findOverlap возвращает первый активный слот, пересекающийся с кандидатом.
// excludeID позволяет исключить сам редактируемый слот; для создания - 0.
func findOverlap(candidate *domain.TimeSlot, existing []*domain.TimeSlot, excludeID int64) *domain.TimeSlot {
	for _, slot := range existing {
		if slot.ID == excludeID {
			continue
		}
		if !slot.Active {
			continue
		}
		if candidate.Overlaps(slot) {
			return slot
		}
	}
	return nil
}
