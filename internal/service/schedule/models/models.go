package models

import (
	"time"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// SlotResponse ответ с данными одного слота расписания
type SlotResponse struct {
	ID        int64  `json:"id"`
	StylistID int64  `json:"stylistId"`
	DayOfWeek string `json:"dayOfWeek"` // "monday" .. "sunday"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов мастера
// в порядке день недели (Пн..Вс), затем время начала
type SlotListResponse struct {
	StylistID int64          `json:"stylistId"`
	Slots     []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в response
func FromDomainSlot(s *domain.TimeSlot) *SlotResponse {
	return &SlotResponse{
		ID:        s.ID,
		StylistID: s.StylistID,
		DayOfWeek: s.DayOfWeek.String(),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSlotList конвертирует список domain моделей в response
func FromDomainSlotList(stylistID int64, slots []*domain.TimeSlot) *SlotListResponse {
	result := &SlotListResponse{
		StylistID: stylistID,
		Slots:     make([]SlotResponse, 0, len(slots)),
	}
	for _, s := range slots {
		result.Slots = append(result.Slots, *FromDomainSlot(s))
	}
	return result
}
