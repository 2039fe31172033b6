package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	slotRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/timeslot"
	"github.com/m04kA/SMC-StylistService/internal/service/schedule/models"
)

// Service сервис расписания: листинг, удаление и включение/выключение слотов.
// Создание и редактирование с проверкой пересечений живут в
// usecase/create_time_slot и usecase/update_time_slot.
type Service struct {
	slotRepo TimeSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(slotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// ListSlots возвращает все слоты мастера (включая выключенные) в порядке
// день недели (Пн..Вс), затем время начала. Каждый вызов - свежий снимок,
// а не живая подписка.
func (s *Service) ListSlots(ctx context.Context, stylistID int64) (*models.SlotListResponse, error) {
	s.logger.Info("ListSlots: fetching slots for stylist=%d", stylistID)

	if stylistID <= 0 {
		return nil, fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	slots, err := s.slotRepo.GetByStylist(ctx, stylistID)
	if err != nil {
		s.logger.Error("ListSlots: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	// Хранилище уже отдает слоты упорядоченными, но порядок - часть контракта
	// листинга, поэтому не полагаемся на это молча
	domain.SortTimeSlots(slots)

	s.logger.Info("ListSlots: fetched %d slots for stylist=%d", len(slots), stylistID)
	return models.FromDomainSlotList(stylistID, slots), nil
}

// Delete безусловно удаляет слот. Каскадных эффектов на другие слоты нет.
func (s *Service) Delete(ctx context.Context, slotID int64) error {
	s.logger.Info("Delete: deleting slot id=%d", slotID)

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", slotID)
	return nil
}

// SetActive включает или выключает слот. Выключенный слот перестает
// участвовать в проверке пересечений, но остается в хранилище и в листинге.
func (s *Service) SetActive(ctx context.Context, slotID int64, active bool) (*models.SlotResponse, error) {
	s.logger.Info("SetActive: setting slot id=%d active=%t", slotID, active)

	if err := s.slotRepo.SetActive(ctx, slotID, active); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("SetActive: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("SetActive: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		s.logger.Error("SetActive: failed to re-read slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: SetActive - failed to re-read slot: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: slot id=%d is now active=%t", slotID, slot.Active)
	return models.FromDomainSlot(slot), nil
}
