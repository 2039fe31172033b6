package update_time_slot

import (
	"fmt"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/types"
)

func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}
	if req.DayOfWeek == nil && req.StartTime == nil && req.EndTime == nil {
		return fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	return nil
}

// applyChanges накладывает запрошенные изменения на копию текущего слота
// и валидирует результат. Времена нормализуются к "HH:MM".
func applyChanges(current *domain.TimeSlot, req *Request) (*domain.TimeSlot, error) {
	updated := *current

	if req.DayOfWeek != nil {
		day, err := domain.ParseWeekday(*req.DayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		updated.DayOfWeek = day
	}

	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		updated.StartTime = start
	}

	if req.EndTime != nil {
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
		}
		updated.EndTime = end
	}

	if !updated.StartTime.IsBefore(updated.EndTime) {
		return nil, fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, updated.StartTime, updated.EndTime)
	}

	return &updated, nil
}

// findOverlap возвращает первый активный слот того же дня, пересекающийся
// с кандидатом, исключая сам редактируемый слот.
func findOverlap(candidate *domain.TimeSlot, existing []*domain.TimeSlot) *domain.TimeSlot {
	for _, slot := range existing {
		if slot.ID == candidate.ID {
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
