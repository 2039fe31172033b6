package recount_specialties

import (
	"context"
	"fmt"
)

// UseCase пересчет денормализованных счетчиков специализаций.
// Счетчики поддерживаются инкрементально синхронизатором назначений; этот
// usecase - ремонтная операция, которая сверяет счетчики с фактическим
// числом активных назначений и исправляет расхождения.
type UseCase struct {
	assignmentRepo AssignmentRepository
	specialtyRepo  SpecialtyRepository
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	specialtyRepo SpecialtyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		specialtyRepo:  specialtyRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute пересчитывает счетчики всех специализаций, включая мягко удаленные
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("RecountSpecialties: starting counter repair")

	resp := &Response{Corrections: []Correction{}}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		specialties, err := uc.specialtyRepo.List(txCtx, true)
		if err != nil {
			uc.logger.Error("RecountSpecialties: failed to list specialties: %v", err)
			return fmt.Errorf("%w: failed to list specialties: %v", ErrInternal, err)
		}

		counts, err := uc.assignmentRepo.CountsBySpecialty(txCtx)
		if err != nil {
			uc.logger.Error("RecountSpecialties: failed to count assignments: %v", err)
			return fmt.Errorf("%w: failed to count assignments: %v", ErrInternal, err)
		}

		resp.Checked = len(specialties)

		for _, s := range specialties {
			actual := counts[s.ID]
			if s.AssignedStylistCount == actual {
				continue
			}

			uc.logger.Warn("RecountSpecialties: drift detected for specialty=%d: stored=%d, actual=%d",
				s.ID, s.AssignedStylistCount, actual)

			if err := uc.specialtyRepo.SetAssignedCount(txCtx, s.ID, actual); err != nil {
				uc.logger.Error("RecountSpecialties: failed to set counter for specialty=%d: %v", s.ID, err)
				return fmt.Errorf("%w: failed to set counter: %v", ErrInternal, err)
			}

			resp.Corrections = append(resp.Corrections, Correction{
				SpecialtyID: s.ID,
				OldCount:    s.AssignedStylistCount,
				NewCount:    actual,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RecountSpecialties: checked=%d, corrected=%d", resp.Checked, len(resp.Corrections))
	return resp, nil
}
