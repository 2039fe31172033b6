package sync_specialties

import "fmt"

// validateRequest валидирует входные данные запроса.
// Дубликаты в желаемом наборе схлопываются: набор есть набор.
func validateRequest(req *Request) ([]int64, error) {
	if req.StylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.SpecialtyIDs))
	deduped := make([]int64, 0, len(req.SpecialtyIDs))
	for _, id := range req.SpecialtyIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: specialty id must be positive, got %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	return deduped, nil
}
