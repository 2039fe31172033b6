package create_time_slot

import (
	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/types"
)

// Request модель запроса на создание слота расписания.
// DayOfWeek принимает название дня ("monday", регистр не важен),
// времена - в формате HH:MM (допускается незаполненный нулями ввод, "9:5").
type Request struct {
	StylistID int64
	DayOfWeek string
	StartTime string
	EndTime   string
}

// Response созданный слот
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
