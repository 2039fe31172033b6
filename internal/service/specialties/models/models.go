package models

import (
	"time"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

// Request модели

// CreateSpecialtyRequest запрос на создание специализации
type CreateSpecialtyRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// UpdateSpecialtyRequest запрос на обновление специализации.
// nil-поля не меняются.
type UpdateSpecialtyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// SpecialtyResponse ответ с данными специализации
type SpecialtyResponse struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Description          *string `json:"description,omitempty"`
	Active               bool    `json:"active"`
	AssignedStylistCount int     `json:"assignedStylistCount"`
	CreatedAt            string  `json:"createdAt"`
	UpdatedAt            string  `json:"updatedAt"`
}

// SpecialtyListResponse ответ со списком специализаций
type SpecialtyListResponse struct {
	Specialties []SpecialtyResponse `json:"specialties"`
	Total       int                 `json:"total"`
}

// FromDomainSpecialty конвертирует domain модель в response
func FromDomainSpecialty(s *domain.Specialty) *SpecialtyResponse {
	return &SpecialtyResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Description:          s.Description,
		Active:               s.Active,
		AssignedStylistCount: s.AssignedStylistCount,
		CreatedAt:            s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            s.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainSpecialtyList конвертирует список domain моделей в response
func FromDomainSpecialtyList(specialties []*domain.Specialty) *SpecialtyListResponse {
	result := &SpecialtyListResponse{
		Specialties: make([]SpecialtyResponse, 0, len(specialties)),
		Total:       len(specialties),
	}
	for _, s := range specialties {
		result.Specialties = append(result.Specialties, *FromDomainSpecialty(s))
	}
	return result
}
