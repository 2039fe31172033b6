package models

import (
	"time"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// StylistSpecialtyResponse активная специализация с флагом закрепления за мастером
type StylistSpecialtyResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsAssigned  bool    `json:"isAssigned"`
}

// StylistSpecialtiesResponse обогащенный список специализаций для экрана назначения
type StylistSpecialtiesResponse struct {
	StylistID   int64                      `json:"stylistId"`
	Specialties []StylistSpecialtyResponse `json:"specialties"`
}

// AssignmentResponse ответ с данными одного назначения
type AssignmentResponse struct {
	ID          int64  `json:"id"`
	StylistID   int64  `json:"stylistId"`
	SpecialtyID int64  `json:"specialtyId"`
	AssignedAt  string `json:"assignedAt"`
}

// FromDomainStylistSpecialties конвертирует обогащенный список в response
func FromDomainStylistSpecialties(stylistID int64, specialties []*domain.StylistSpecialty) *StylistSpecialtiesResponse {
	result := &StylistSpecialtiesResponse{
		StylistID:   stylistID,
		Specialties: make([]StylistSpecialtyResponse, 0, len(specialties)),
	}
	for _, s := range specialties {
		result.Specialties = append(result.Specialties, StylistSpecialtyResponse{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			IsAssigned:  s.IsAssigned,
		})
	}
	return result
}

// FromDomainAssignment конвертирует domain модель в response
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          a.ID,
		StylistID:   a.StylistID,
		SpecialtyID: a.SpecialtyID,
		AssignedAt:  a.AssignedAt.Format(time.RFC3339),
	}
}
