package sync_specialties

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	specialtyRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
)

// --- Моки ---

type mockAssignmentRepo struct {
	createFn       func(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
	getByStylistFn func(ctx context.Context, stylistID int64) ([]*domain.Assignment, error)
	deleteFn       func(ctx context.Context, id int64) error
}

var _ AssignmentRepository = (*mockAssignmentRepo)(nil)

func (m *mockAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	return m.createFn(ctx, a)
}

func (m *mockAssignmentRepo) GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Assignment, error) {
	return m.getByStylistFn(ctx, stylistID)
}

func (m *mockAssignmentRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockSpecialtyRepo struct {
	getByIDFn   func(ctx context.Context, id int64) (*domain.Specialty, error)
	incrementFn func(ctx context.Context, id int64) error
	decrementFn func(ctx context.Context, id int64) error
}

var _ SpecialtyRepository = (*mockSpecialtyRepo)(nil)

func (m *mockSpecialtyRepo) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSpecialtyRepo) IncrementAssignedCount(ctx context.Context, id int64) error {
	return m.incrementFn(ctx, id)
}

func (m *mockSpecialtyRepo) DecrementAssignedCount(ctx context.Context, id int64) error {
	return m.decrementFn(ctx, id)
}

type mockStaffClient struct {
	getStylistFn func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error)
}

var _ StaffServiceClient = (*mockStaffClient)(nil)

func (m *mockStaffClient) GetStylist(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
	return m.getStylistFn(ctx, stylistID)
}

// fakeTxManager выполняет функцию напрямую, без реальной транзакции
type fakeTxManager struct{}

var _ TransactionManager = (*fakeTxManager)(nil)

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

var _ Logger = (*noopLogger)(nil)

func (l *noopLogger) Info(format string, v ...interface{})  {}
func (l *noopLogger) Warn(format string, v ...interface{})  {}
func (l *noopLogger) Error(format string, v ...interface{}) {}

// --- Хелперы ---

func activeSpecialty(id int64) *domain.Specialty {
	return &domain.Specialty{
		ID:     id,
		Name:   "specialty",
		Active: true,
	}
}

func existingStylist(id int64) *staffservice.Stylist {
	return &staffservice.Stylist{ID: id, FullName: "Marie Dupont", Role: "stylist", Active: true}
}

func assignment(id, stylistID, specialtyID int64) *domain.Assignment {
	return &domain.Assignment{
		ID:          id,
		StylistID:   stylistID,
		SpecialtyID: specialtyID,
		AssignedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
		Active:      true,
	}
}

type syncRecorder struct {
	created   []int64 // specialty_id новых назначений
	deleted   []int64 // id удаленных строк
	increment []int64
	decrement []int64
}

func newSyncEnv(current []*domain.Assignment, rec *syncRecorder) (*mockAssignmentRepo, *mockSpecialtyRepo) {
	nextID := int64(100)
	assignRepo := &mockAssignmentRepo{
		getByStylistFn: func(ctx context.Context, stylistID int64) ([]*domain.Assignment, error) {
			return current, nil
		},
		createFn: func(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
			rec.created = append(rec.created, a.SpecialtyID)
			nextID++
			created := *a
			created.ID = nextID
			created.AssignedAt = time.Now()
			return &created, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			rec.deleted = append(rec.deleted, id)
			return nil
		},
	}
	specRepo := &mockSpecialtyRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Specialty, error) {
			return activeSpecialty(id), nil
		},
		incrementFn: func(ctx context.Context, id int64) error {
			rec.increment = append(rec.increment, id)
			return nil
		},
		decrementFn: func(ctx context.Context, id int64) error {
			rec.decrement = append(rec.decrement, id)
			return nil
		},
	}
	return assignRepo, specRepo
}

func newStaffOK() *mockStaffClient {
	return &mockStaffClient{
		getStylistFn: func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
			return existingStylist(stylistID), nil
		},
	}
}

// --- Тесты ---

func TestExecute_AddAndRemove(t *testing.T) {
	// Текущий набор {1, 2}, желаемый {2, 3}: снимаем 1, добавляем 3, 2 не трогаем
	current := []*domain.Assignment{
		assignment(10, 42, 1),
		assignment(11, 42, 2),
	}
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(current, rec)

	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{2, 3}})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3}, resp.Assigned)
	assert.Equal(t, []int64{3}, resp.AddedIDs)
	assert.Equal(t, []int64{1}, resp.RemovedIDs)
	assert.Equal(t, 1, resp.KeptCount)

	assert.Equal(t, []int64{3}, rec.created)
	assert.Equal(t, []int64{10}, rec.deleted, "должна удалиться строка назначения специализации 1")
	assert.Equal(t, []int64{3}, rec.increment)
	assert.Equal(t, []int64{1}, rec.decrement)
}

func TestExecute_Idempotent(t *testing.T) {
	// Повтор с тем же набором не делает записей
	current := []*domain.Assignment{
		assignment(10, 42, 1),
		assignment(11, 42, 2),
	}
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(current, rec)

	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{1, 2}})
	require.NoError(t, err)

	assert.Empty(t, resp.AddedIDs)
	assert.Empty(t, resp.RemovedIDs)
	assert.Equal(t, 2, resp.KeptCount)

	assert.Empty(t, rec.created)
	assert.Empty(t, rec.deleted)
	assert.Empty(t, rec.increment)
	assert.Empty(t, rec.decrement)
}

func TestExecute_EmptySetRemovesAll(t *testing.T) {
	current := []*domain.Assignment{
		assignment(10, 42, 1),
		assignment(11, 42, 2),
	}
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(current, rec)

	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{}})
	require.NoError(t, err)

	assert.Empty(t, resp.Assigned)
	assert.ElementsMatch(t, []int64{1, 2}, resp.RemovedIDs)
	assert.Equal(t, 0, resp.KeptCount)
	assert.ElementsMatch(t, []int64{10, 11}, rec.deleted)
	assert.ElementsMatch(t, []int64{1, 2}, rec.decrement)
	assert.Empty(t, rec.created)
}

func TestExecute_DuplicatesInDesiredSet(t *testing.T) {
	// Дубликаты схлопываются: {3, 3, 3} эквивалентно {3}
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(nil, rec)

	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{3, 3, 3}})
	require.NoError(t, err)

	assert.Equal(t, []int64{3}, resp.Assigned)
	assert.Equal(t, []int64{3}, rec.created)
	assert.Equal(t, []int64{3}, rec.increment)
}

func TestExecute_StylistNotFound(t *testing.T) {
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(nil, rec)
	staff := &mockStaffClient{
		getStylistFn: func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
			return nil, staffservice.ErrStylistNotFound
		},
	}

	uc := NewUseCase(assignRepo, specRepo, staff, &fakeTxManager{}, &noopLogger{})
	_, err := uc.Execute(context.Background(), &Request{StylistID: 999, SpecialtyIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrStylistNotFound)
	assert.Empty(t, rec.created)
}

func TestExecute_UnknownSpecialty(t *testing.T) {
	// Несуществующая специализация в желаемом наборе - ошибка до записей
	current := []*domain.Assignment{assignment(10, 42, 1)}
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(current, rec)
	specRepo.getByIDFn = func(ctx context.Context, id int64) (*domain.Specialty, error) {
		if id == 777 {
			return nil, specialtyRepo.ErrSpecialtyNotFound
		}
		return activeSpecialty(id), nil
	}

	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})
	_, err := uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{1, 777}})
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
	assert.Empty(t, rec.created)
	assert.Empty(t, rec.deleted)
}

func TestExecute_SoftDeletedSpecialty(t *testing.T) {
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(nil, rec)
	specRepo.getByIDFn = func(ctx context.Context, id int64) (*domain.Specialty, error) {
		s := activeSpecialty(id)
		if id == 5 {
			s.Active = false
		}
		return s, nil
	}

	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})
	_, err := uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{5}})
	assert.ErrorIs(t, err, ErrSpecialtyInactive)
	assert.Empty(t, rec.created)
}

func TestExecute_InvalidInput(t *testing.T) {
	rec := &syncRecorder{}
	assignRepo, specRepo := newSyncEnv(nil, rec)
	uc := NewUseCase(assignRepo, specRepo, newStaffOK(), &fakeTxManager{}, &noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StylistID: 0, SpecialtyIDs: []int64{1}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{StylistID: 42, SpecialtyIDs: []int64{-1}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
