package specialties

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	specialtyRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-StylistService/internal/service/specialties/models"
)

// Service сервис каталога специализаций.
// Отвечает за CRUD и за уникальность имен: имя должно быть уникально среди
// активных специализаций без учета регистра; мягко удаленные имена можно
// использовать повторно.
type Service struct {
	specialtyRepo SpecialtyRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса специализаций
func NewService(specialtyRepo SpecialtyRepository, logger Logger) *Service {
	return &Service{
		specialtyRepo: specialtyRepo,
		logger:        logger,
	}
}

// Create создает новую специализацию
func (s *Service) Create(ctx context.Context, req *models.CreateSpecialtyRequest) (*models.SpecialtyResponse, error) {
	s.logger.Info("Create: creating specialty name=%q", req.Name)

	name := strings.TrimSpace(req.Name)
	if err := validateName(name); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	if err := validateDescription(req.Description); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Проверка уникальности среди активных специализаций (без учета регистра)
	if err := s.checkNameIsFree(ctx, name, 0); err != nil {
		return nil, err
	}

	created, err := s.specialtyRepo.Create(ctx, &domain.Specialty{
		Name:        name,
		Description: req.Description,
		Active:      true,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created specialty id=%d name=%q", created.ID, created.Name)
	return models.FromDomainSpecialty(created), nil
}

// GetByID получает специализацию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpecialtyResponse, error) {
	specialty, err := s.getSpecialty(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainSpecialty(specialty), nil
}

// List возвращает специализации, по умолчанию только активные
func (s *Service) List(ctx context.Context, includeInactive bool) (*models.SpecialtyListResponse, error) {
	specialties, err := s.specialtyRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d specialties (includeInactive=%t)", len(specialties), includeInactive)
	return models.FromDomainSpecialtyList(specialties), nil
}

// Update обновляет имя и/или описание специализации.
// При смене имени выполняется та же проверка уникальности, что и при создании.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpecialtyRequest) (*models.SpecialtyResponse, error) {
	s.logger.Info("Update: updating specialty id=%d", id)

	specialty, err := s.getSpecialty(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err := validateName(name); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return nil, err
		}
		// Совпадение с собственным именем не считается конфликтом
		if domain.NormalizeSpecialtyName(name) != domain.NormalizeSpecialtyName(specialty.Name) {
			if err := s.checkNameIsFree(ctx, name, id); err != nil {
				return nil, err
			}
		}
		specialty.Name = name
	}

	if req.Description != nil {
		if err := validateDescription(req.Description); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return nil, err
		}
		specialty.Description = req.Description
	}

	if err := s.specialtyRepo.Update(ctx, specialty); err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		s.logger.Error("Update: repository error for specialty id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated specialty id=%d", id)
	return models.FromDomainSpecialty(specialty), nil
}

// Delete мягко удаляет специализацию: строка остается, active=false.
// После удаления имя снова становится доступным для новых специализаций.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: soft-deleting specialty id=%d", id)

	if _, err := s.getSpecialty(ctx, id, "Delete"); err != nil {
		return err
	}

	if err := s.specialtyRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			return ErrSpecialtyNotFound
		}
		s.logger.Error("Delete: repository error for specialty id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully soft-deleted specialty id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) getSpecialty(ctx context.Context, id int64, method string) (*domain.Specialty, error) {
	specialty, err := s.specialtyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			s.logger.Warn("%s: specialty id=%d not found", method, id)
			return nil, ErrSpecialtyNotFound
		}
		s.logger.Error("%s: repository error for specialty id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return specialty, nil
}

// checkNameIsFree проверяет, что имя не занято другой активной специализацией.
// excludeID исключает из проверки саму редактируемую специализацию.
func (s *Service) checkNameIsFree(ctx context.Context, name string, excludeID int64) error {
	existing, err := s.specialtyRepo.GetActiveByName(ctx, name)
	if err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			return nil
		}
		s.logger.Error("checkNameIsFree: repository error for name=%q: %v", name, err)
		return fmt.Errorf("%w: checkNameIsFree - repository error: %v", ErrInternal, err)
	}
	if existing.ID == excludeID {
		return nil
	}

	s.logger.Warn("checkNameIsFree: name=%q is already taken by specialty id=%d", name, existing.ID)
	return ErrDuplicateName
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxSpecialtyNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxSpecialtyNameLength)
	}
	return nil
}

func validateDescription(description *string) error {
	if description != nil && len(*description) > domain.MaxSpecialtyDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxSpecialtyDescriptionLength)
	}
	return nil
}
