package update_time_slot

import (
	"context"
	"errors"
	"fmt"

	timeslotRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/timeslot"
)

// UseCase изменение слота расписания. Чтение текущего слота, проверка
// пересечений (без учета самого редактируемого слота) и запись выполняются
// в одной сериализуемой транзакции.
type UseCase struct {
	timeSlotRepo TimeSlotRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeSlotRepo TimeSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeSlotRepo: timeSlotRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case изменения слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateTimeSlot: slot=%d", req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateTimeSlot: validation failed: %v", err)
		return nil, err
	}

	var updated *Response

	// 2. Читаем, проверяем пересечения и пишем в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.timeSlotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				uc.logger.Warn("UpdateTimeSlot: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("UpdateTimeSlot: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		candidate, err := applyChanges(current, req)
		if err != nil {
			uc.logger.Warn("UpdateTimeSlot: invalid changes for slot id=%d: %v", req.SlotID, err)
			return err
		}

		existing, err := uc.timeSlotRepo.GetByStylistAndDay(txCtx, candidate.StylistID, candidate.DayOfWeek)
		if err != nil {
			uc.logger.Error("UpdateTimeSlot: failed to get slots for stylist=%d day=%s: %v",
				candidate.StylistID, candidate.DayOfWeek, err)
			return fmt.Errorf("%w: failed to get existing slots: %v", ErrInternal, err)
		}

		if conflict := findOverlap(candidate, existing); conflict != nil {
			uc.logger.Warn("UpdateTimeSlot: overlap with slot id=%d (%s %s-%s)",
				conflict.ID, conflict.DayOfWeek, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: conflicts with slot id=%d (%s %s-%s)",
				ErrSlotOverlap, conflict.ID, conflict.DayOfWeek, conflict.StartTime, conflict.EndTime)
		}

		if err := uc.timeSlotRepo.Update(txCtx, candidate); err != nil {
			if errors.Is(err, timeslotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			uc.logger.Error("UpdateTimeSlot: failed to update slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to update slot: %v", ErrInternal, err)
		}

		updated = toResponse(candidate)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateTimeSlot: slot id=%d updated to %s %s-%s",
		updated.ID, updated.DayOfWeek, updated.StartTime, updated.EndTime)
	return updated, nil
}
