package update_time_slot

import (
	updateTimeSlot "github.com/m04kA/SMC-StylistService/internal/usecase/update_time_slot"
)

// UpdateSlotRequest HTTP request model. nil-поля не меняются.
type UpdateSlotRequest struct {
	DayOfWeek *string `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateSlotRequest) ToUseCaseRequest(slotID int64) *updateTimeSlot.Request {
	return &updateTimeSlot.Request{
		SlotID:    slotID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
