package create_time_slot

import (
	createTimeSlot "github.com/m04kA/SMC-StylistService/internal/usecase/create_time_slot"
)

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	DayOfWeek string `json:"dayOfWeek"` // "monday" .. "sunday"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSlotRequest) ToUseCaseRequest(stylistID int64) *createTimeSlot.Request {
	return &createTimeSlot.Request{
		StylistID: stylistID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
