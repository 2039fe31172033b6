package sync_specialties

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	specialtyRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/specialty"
	staffClient "github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
)

// UseCase синхронизатор назначений: приводит сохраненный набор специализаций
// мастера к желаемому минимальным числом изменений.
//
// Гарантии после успешного вызова:
//   - активные назначения мастера в точности равны желаемому набору;
//   - счетчик каждой затронутой специализации равен реальному числу
//     активных назначений на нее;
//   - назначения, присутствующие и в старом, и в новом наборе, не трогаются:
//     их строки и assigned_at сохраняются.
//
// Применение diff (строки + счетчики) выполняется в одной сериализуемой
// транзакции. Вызов идемпотентен: повтор с тем же набором не делает записей.
type UseCase struct {
	assignmentRepo AssignmentRepository
	specialtyRepo  SpecialtyRepository
	staffClient    StaffServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	assignmentRepo AssignmentRepository,
	specialtyRepo SpecialtyRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		specialtyRepo:  specialtyRepo,
		staffClient:    staffClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет синхронизацию набора специализаций мастера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SyncSpecialties: stylist=%d, desired=%v", req.StylistID, req.SpecialtyIDs)

	// 1. Валидация входных данных (дубликаты в наборе схлопываются)
	desired, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SyncSpecialties: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что мастер существует
	if _, err := uc.staffClient.GetStylist(ctx, req.StylistID); err != nil {
		if errors.Is(err, staffClient.ErrStylistNotFound) || errors.Is(err, staffClient.ErrStylistInactive) {
			uc.logger.Warn("SyncSpecialties: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("SyncSpecialties: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	var diff *domain.AssignmentDiff

	// 3. Применяем diff в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Желаемый набор должен ссылаться только на существующие
		// активные специализации. Нарушение - ошибка валидации до
		// какой-либо записи, а не молчаливый пропуск.
		if err := uc.validateDesiredSpecialties(txCtx, desired); err != nil {
			return err
		}

		// 3.2. Текущие активные назначения мастера
		current, err := uc.assignmentRepo.GetByStylist(txCtx, req.StylistID)
		if err != nil {
			uc.logger.Error("SyncSpecialties: failed to get current assignments: %v", err)
			return fmt.Errorf("%w: failed to get current assignments: %v", ErrInternal, err)
		}

		// 3.3. Минимальный diff: пересечение наборов не трогаем
		diff = domain.ComputeAssignmentDiff(current, desired)
		if diff.IsEmpty() {
			uc.logger.Info("SyncSpecialties: nothing to do for stylist=%d", req.StylistID)
			return nil
		}

		// 3.4. Снятия: удаление строки + декремент счетчика специализации
		for _, a := range diff.ToRemove {
			if err := uc.assignmentRepo.Delete(txCtx, a.ID); err != nil {
				uc.logger.Error("SyncSpecialties: failed to delete assignment id=%d: %v", a.ID, err)
				return fmt.Errorf("%w: failed to delete assignment: %v", ErrInternal, err)
			}
			if err := uc.specialtyRepo.DecrementAssignedCount(txCtx, a.SpecialtyID); err != nil {
				uc.logger.Error("SyncSpecialties: failed to decrement counter for specialty=%d: %v",
					a.SpecialtyID, err)
				return fmt.Errorf("%w: failed to decrement counter: %v", ErrInternal, err)
			}
		}

		// 3.5. Добавления: новая строка + инкремент счетчика специализации
		for _, specialtyID := range diff.ToAdd {
			_, err := uc.assignmentRepo.Create(txCtx, &domain.Assignment{
				StylistID:   req.StylistID,
				SpecialtyID: specialtyID,
				Active:      true,
			})
			if err != nil {
				uc.logger.Error("SyncSpecialties: failed to create assignment for specialty=%d: %v",
					specialtyID, err)
				return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
			}
			if err := uc.specialtyRepo.IncrementAssignedCount(txCtx, specialtyID); err != nil {
				uc.logger.Error("SyncSpecialties: failed to increment counter for specialty=%d: %v",
					specialtyID, err)
				return fmt.Errorf("%w: failed to increment counter: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	removedIDs := make([]int64, 0, len(diff.ToRemove))
	for _, a := range diff.ToRemove {
		removedIDs = append(removedIDs, a.SpecialtyID)
	}

	uc.logger.Info("SyncSpecialties: stylist=%d synchronized, added=%d, removed=%d, kept=%d",
		req.StylistID, len(diff.ToAdd), len(removedIDs), len(desired)-len(diff.ToAdd))

	return &Response{
		StylistID:  req.StylistID,
		Assigned:   desired,
		AddedIDs:   diff.ToAdd,
		RemovedIDs: removedIDs,
		KeptCount:  len(desired) - len(diff.ToAdd),
	}, nil
}

// validateDesiredSpecialties проверяет каждую специализацию желаемого набора.
// Несуществующий id - ErrSpecialtyNotFound; мягко удаленная специализация -
// ErrSpecialtyInactive (например, ее удалили, пока форма была открыта).
func (uc *UseCase) validateDesiredSpecialties(ctx context.Context, desired []int64) error {
	for _, id := range desired {
		specialty, err := uc.specialtyRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
				uc.logger.Warn("SyncSpecialties: desired specialty id=%d not found", id)
				return fmt.Errorf("%w: id=%d", ErrSpecialtyNotFound, id)
			}
			uc.logger.Error("SyncSpecialties: failed to get specialty id=%d: %v", id, err)
			return fmt.Errorf("%w: failed to get specialty: %v", ErrInternal, err)
		}
		if specialty.IsDeleted() {
			uc.logger.Warn("SyncSpecialties: desired specialty id=%d is soft-deleted", id)
			return fmt.Errorf("%w: id=%d", ErrSpecialtyInactive, id)
		}
	}
	return nil
}
