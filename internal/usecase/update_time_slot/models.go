package update_time_slot

import (
	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/types"
)

// Request модель запроса на изменение слота. Поля-указатели опциональны:
// nil означает "оставить как есть". Непереданная часть интервала берется
// из текущего слота, после чего пара start/end валидируется заново.
type Request struct {
	SlotID    int64
	DayOfWeek *string
	StartTime *string
	EndTime   *string
}

// Response измененный слот
type Response struct {
	ID        int64            `json:"id"`
	StylistID int64            `json:"stylistId"`
	DayOfWeek string           `json:"dayOfWeek"`
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Active    bool             `json:"active"`
}

func toResponse(slot *domain.TimeSlot) *Response {
	return &Response{
		ID:        slot.ID,
		StylistID: slot.StylistID,
		DayOfWeek: slot.DayOfWeek.String(),
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Active:    slot.Active,
	}
}
