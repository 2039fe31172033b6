package create_time_slot

import (
	"context"
	"errors"
	"fmt"

	staffClient "github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
)

// UseCase создание слота расписания мастера.
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции, чтобы два конкурентных запроса не создали пересекающиеся слоты.
type UseCase struct {
	timeSlotRepo TimeSlotRepository
	staffClient  StaffServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeSlotRepo TimeSlotRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		timeSlotRepo: timeSlotRepo,
		staffClient:  staffClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case создания слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTimeSlot: stylist=%d, day=%s, time=%s-%s",
		req.StylistID, req.DayOfWeek, req.StartTime, req.EndTime)

	// 1. Валидация и нормализация входных данных
	candidate, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что мастер существует
	if _, err := uc.staffClient.GetStylist(ctx, req.StylistID); err != nil {
		if errors.Is(err, staffClient.ErrStylistNotFound) || errors.Is(err, staffClient.ErrStylistInactive) {
			uc.logger.Warn("CreateTimeSlot: stylist id=%d not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
		uc.logger.Error("CreateTimeSlot: failed to get stylist id=%d: %v", req.StylistID, err)
		return nil, fmt.Errorf("%w: failed to get stylist: %v", ErrInternal, err)
	}

	var created *Response

	// 3. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.timeSlotRepo.GetByStylistAndDay(txCtx, candidate.StylistID, candidate.DayOfWeek)
		if err != nil {
			uc.logger.Error("CreateTimeSlot: failed to get slots for stylist=%d day=%s: %v",
				candidate.StylistID, candidate.DayOfWeek, err)
			return fmt.Errorf("%w: failed to get existing slots: %v", ErrInternal, err)
		}

		if conflict := findOverlap(candidate, existing, 0); conflict != nil {
			uc.logger.Warn("CreateTimeSlot: overlap with slot id=%d (%s %s-%s)",
				conflict.ID, conflict.DayOfWeek, conflict.StartTime, conflict.EndTime)
			return fmt.Errorf("%w: conflicts with slot id=%d (%s %s-%s)",
				ErrSlotOverlap, conflict.ID, conflict.DayOfWeek, conflict.StartTime, conflict.EndTime)
		}

		slot, err := uc.timeSlotRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateTimeSlot: failed to create slot: %v", err)
			return fmt.Errorf("%w: failed to create slot: %v", ErrInternal, err)
		}

		created = toResponse(slot)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTimeSlot: created slot id=%d for stylist=%d", created.ID, created.StylistID)
	return created, nil
}
