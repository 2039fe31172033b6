package sync_stylist_specialties

import (
	syncSpecialties "github.com/m04kA/SMC-StylistService/internal/usecase/sync_specialties"
)

// SyncSpecialtiesRequest HTTP request model: желаемый набор целиком
type SyncSpecialtiesRequest struct {
	SpecialtyIDs []int64 `json:"specialtyIds"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SyncSpecialtiesRequest) ToUseCaseRequest(stylistID int64) *syncSpecialties.Request {
	return &syncSpecialties.Request{
		StylistID:    stylistID,
		SpecialtyIDs: r.SpecialtyIDs,
	}
}
