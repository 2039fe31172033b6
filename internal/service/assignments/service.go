package assignments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/assignment"
	specialtyRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/specialty"
	staffClient "github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-StylistService/internal/service/assignments/models"
)

// Service сервис одиночных операций с назначениями: обогащенный список
// специализаций мастера и закрепление/снятие одной специализации.
// Массовая синхронизация набора живет в usecase/sync_specialties.
type Service struct {
	assignmentRepo AssignmentRepository
	specialtyRepo  SpecialtyRepository
	staffClient    StaffServiceClient
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(
	assignmentRepo AssignmentRepository,
	specialtyRepo SpecialtyRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		specialtyRepo:  specialtyRepo,
		staffClient:    staffClient,
		txManager:      txManager,
		logger:         logger,
	}
}

// ListStylistSpecialties возвращает все активные специализации, каждая с флагом
// isAssigned относительно указанного мастера. Мягко удаленные специализации
// в список не попадают. Чтение без побочных эффектов.
func (s *Service) ListStylistSpecialties(ctx context.Context, stylistID int64) (*models.StylistSpecialtiesResponse, error) {
	s.logger.Info("ListStylistSpecialties: fetching specialties for stylist=%d", stylistID)

	if err := s.checkStylistExists(ctx, stylistID, "ListStylistSpecialties"); err != nil {
		return nil, err
	}

	specialties, err := s.specialtyRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("ListStylistSpecialties: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStylistSpecialties - repository error: %v", ErrInternal, err)
	}

	assignments, err := s.assignmentRepo.GetByStylist(ctx, stylistID)
	if err != nil {
		s.logger.Error("ListStylistSpecialties: repository error for stylist=%d: %v", stylistID, err)
		return nil, fmt.Errorf("%w: ListStylistSpecialties - repository error: %v", ErrInternal, err)
	}

	assigned := make(map[int64]struct{}, len(assignments))
	for _, a := range assignments {
		assigned[a.SpecialtyID] = struct{}{}
	}

	enriched := make([]*domain.StylistSpecialty, 0, len(specialties))
	for _, sp := range specialties {
		_, isAssigned := assigned[sp.ID]
		enriched = append(enriched, &domain.StylistSpecialty{
			Specialty:  *sp,
			IsAssigned: isAssigned,
		})
	}

	s.logger.Info("ListStylistSpecialties: %d specialties (%d assigned) for stylist=%d",
		len(enriched), len(assigned), stylistID)
	return models.FromDomainStylistSpecialties(stylistID, enriched), nil
}

// Assign закрепляет одну специализацию за мастером.
// Проверка дубликата, создание записи и инкремент счетчика выполняются
// в одной сериализуемой транзакции.
func (s *Service) Assign(ctx context.Context, stylistID, specialtyID int64) (*models.AssignmentResponse, error) {
	s.logger.Info("Assign: assigning specialty=%d to stylist=%d", specialtyID, stylistID)

	if err := s.checkStylistExists(ctx, stylistID, "Assign"); err != nil {
		return nil, err
	}

	var created *domain.Assignment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		specialty, err := s.specialtyRepo.GetByID(txCtx, specialtyID)
		if err != nil {
			if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
				s.logger.Warn("Assign: specialty id=%d not found", specialtyID)
				return ErrSpecialtyNotFound
			}
			s.logger.Error("Assign: repository error for specialty id=%d: %v", specialtyID, err)
			return fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
		}
		if specialty.IsDeleted() {
			s.logger.Warn("Assign: specialty id=%d is soft-deleted", specialtyID)
			return ErrSpecialtyInactive
		}

		// Не больше одной активной записи на пару (мастер, специализация)
		_, err = s.assignmentRepo.GetActivePair(txCtx, stylistID, specialtyID)
		if err == nil {
			s.logger.Warn("Assign: specialty=%d is already assigned to stylist=%d", specialtyID, stylistID)
			return ErrDuplicateAssignment
		}
		if !errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Error("Assign: repository error: %v", err)
			return fmt.Errorf("%w: Assign - repository error: %v", ErrInternal, err)
		}

		created, err = s.assignmentRepo.Create(txCtx, &domain.Assignment{
			StylistID:   stylistID,
			SpecialtyID: specialtyID,
			Active:      true,
		})
		if err != nil {
			s.logger.Error("Assign: failed to create assignment: %v", err)
			return fmt.Errorf("%w: Assign - failed to create assignment: %v", ErrInternal, err)
		}

		if err := s.specialtyRepo.IncrementAssignedCount(txCtx, specialtyID); err != nil {
			s.logger.Error("Assign: failed to increment counter for specialty=%d: %v", specialtyID, err)
			return fmt.Errorf("%w: Assign - failed to increment counter: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Assign: successfully assigned specialty=%d to stylist=%d (assignment id=%d)",
		specialtyID, stylistID, created.ID)
	return models.FromDomainAssignment(created), nil
}

// Unassign снимает одну специализацию с мастера: запись удаляется физически,
// счетчик специализации уменьшается в той же транзакции.
func (s *Service) Unassign(ctx context.Context, stylistID, specialtyID int64) error {
	s.logger.Info("Unassign: removing specialty=%d from stylist=%d", specialtyID, stylistID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		pair, err := s.assignmentRepo.GetActivePair(txCtx, stylistID, specialtyID)
		if err != nil {
			if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
				s.logger.Warn("Unassign: specialty=%d is not assigned to stylist=%d", specialtyID, stylistID)
				return ErrAssignmentNotFound
			}
			s.logger.Error("Unassign: repository error: %v", err)
			return fmt.Errorf("%w: Unassign - repository error: %v", ErrInternal, err)
		}

		if err := s.assignmentRepo.Delete(txCtx, pair.ID); err != nil {
			s.logger.Error("Unassign: failed to delete assignment id=%d: %v", pair.ID, err)
			return fmt.Errorf("%w: Unassign - failed to delete assignment: %v", ErrInternal, err)
		}

		if err := s.specialtyRepo.DecrementAssignedCount(txCtx, specialtyID); err != nil {
			s.logger.Error("Unassign: failed to decrement counter for specialty=%d: %v", specialtyID, err)
			return fmt.Errorf("%w: Unassign - failed to decrement counter: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Unassign: successfully removed specialty=%d from stylist=%d", specialtyID, stylistID)
	return nil
}

// Вспомогательные методы

func (s *Service) checkStylistExists(ctx context.Context, stylistID int64, method string) error {
	if stylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}

	_, err := s.staffClient.GetStylist(ctx, stylistID)
	if err != nil {
		if errors.Is(err, staffClient.ErrStylistNotFound) || errors.Is(err, staffClient.ErrStylistInactive) {
			s.logger.Warn("%s: stylist id=%d not found", method, stylistID)
			return ErrStylistNotFound
		}
		s.logger.Error("%s: failed to get stylist id=%d: %v", method, stylistID, err)
		return fmt.Errorf("%w: %s - failed to get stylist: %v", ErrInternal, method, err)
	}
	return nil
}
