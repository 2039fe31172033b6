package assignments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	assignmentRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/assignment"
	specialtyRepo "github.com/m04kA/SMC-StylistService/internal/infra/storage/specialty"
	"github.com/m04kA/SMC-StylistService/internal/integrations/staffservice"
)

// --- Моки ---

type mockAssignmentRepo struct {
	createFn        func(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error)
	getByStylistFn  func(ctx context.Context, stylistID int64) ([]*domain.Assignment, error)
	getActivePairFn func(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error)
	deleteFn        func(ctx context.Context, id int64) error
}

var _ AssignmentRepository = (*mockAssignmentRepo)(nil)

func (m *mockAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	return m.createFn(ctx, a)
}

func (m *mockAssignmentRepo) GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Assignment, error) {
	return m.getByStylistFn(ctx, stylistID)
}

func (m *mockAssignmentRepo) GetActivePair(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error) {
	return m.getActivePairFn(ctx, stylistID, specialtyID)
}

func (m *mockAssignmentRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockSpecialtyRepo struct {
	getByIDFn   func(ctx context.Context, id int64) (*domain.Specialty, error)
	listFn      func(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error)
	incrementFn func(ctx context.Context, id int64) error
	decrementFn func(ctx context.Context, id int64) error
}

var _ SpecialtyRepository = (*mockSpecialtyRepo)(nil)

func (m *mockSpecialtyRepo) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSpecialtyRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
	return m.listFn(ctx, includeInactive)
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

func staffOK() *mockStaffClient {
	return &mockStaffClient{
		getStylistFn: func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
			return &staffservice.Stylist{ID: stylistID, FullName: "Marie Dupont", Active: true}, nil
		},
	}
}

// --- Тесты ---

func TestListStylistSpecialties_EnrichesWithIsAssigned(t *testing.T) {
	specRepo := &mockSpecialtyRepo{
		listFn: func(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
			assert.False(t, includeInactive, "в списке только активные специализации")
			return []*domain.Specialty{
				{ID: 1, Name: "Coloration", Active: true},
				{ID: 2, Name: "Coupe", Active: true},
				{ID: 3, Name: "Brushing", Active: true},
			}, nil
		},
	}
	assignRepo := &mockAssignmentRepo{
		getByStylistFn: func(ctx context.Context, stylistID int64) ([]*domain.Assignment, error) {
			return []*domain.Assignment{
				{ID: 10, StylistID: stylistID, SpecialtyID: 2, Active: true},
			}, nil
		},
	}

	svc := NewService(assignRepo, specRepo, staffOK(), &fakeTxManager{}, &noopLogger{})
	resp, err := svc.ListStylistSpecialties(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, resp.Specialties, 3)
	assert.False(t, resp.Specialties[0].IsAssigned)
	assert.True(t, resp.Specialties[1].IsAssigned)
	assert.False(t, resp.Specialties[2].IsAssigned)
	assert.Equal(t, int64(42), resp.StylistID)
}

func TestAssign_Success(t *testing.T) {
	incremented := []int64{}
	specRepo := &mockSpecialtyRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Specialty, error) {
			return &domain.Specialty{ID: id, Name: "Coloration", Active: true}, nil
		},
		incrementFn: func(ctx context.Context, id int64) error {
			incremented = append(incremented, id)
			return nil
		},
	}
	assignRepo := &mockAssignmentRepo{
		getActivePairFn: func(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error) {
			return nil, assignmentRepo.ErrAssignmentNotFound
		},
		createFn: func(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
			created := *a
			created.ID = 100
			created.AssignedAt = time.Now()
			return &created, nil
		},
	}

	svc := NewService(assignRepo, specRepo, staffOK(), &fakeTxManager{}, &noopLogger{})
	resp, err := svc.Assign(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, []int64{1}, incremented)
}

func TestAssign_Duplicate(t *testing.T) {
	specRepo := &mockSpecialtyRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Specialty, error) {
			return &domain.Specialty{ID: id, Name: "Coloration", Active: true}, nil
		},
	}
	assignRepo := &mockAssignmentRepo{
		getActivePairFn: func(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error) {
			return &domain.Assignment{ID: 10, StylistID: stylistID, SpecialtyID: specialtyID, Active: true}, nil
		},
		createFn: func(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
			t.Fatal("создание не должно вызываться для уже закрепленной специализации")
			return nil, nil
		},
	}

	svc := NewService(assignRepo, specRepo, staffOK(), &fakeTxManager{}, &noopLogger{})
	_, err := svc.Assign(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrDuplicateAssignment)
}

func TestAssign_SoftDeletedSpecialty(t *testing.T) {
	specRepo := &mockSpecialtyRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Specialty, error) {
			return &domain.Specialty{ID: id, Name: "Coloration", Active: false}, nil
		},
	}

	svc := NewService(&mockAssignmentRepo{}, specRepo, staffOK(), &fakeTxManager{}, &noopLogger{})
	_, err := svc.Assign(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrSpecialtyInactive)
}

func TestAssign_SpecialtyNotFound(t *testing.T) {
	specRepo := &mockSpecialtyRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Specialty, error) {
			return nil, specialtyRepo.ErrSpecialtyNotFound
		},
	}

	svc := NewService(&mockAssignmentRepo{}, specRepo, staffOK(), &fakeTxManager{}, &noopLogger{})
	_, err := svc.Assign(context.Background(), 42, 999)
	assert.ErrorIs(t, err, ErrSpecialtyNotFound)
}

func TestAssign_StylistNotFound(t *testing.T) {
	staff := &mockStaffClient{
		getStylistFn: func(ctx context.Context, stylistID int64) (*staffservice.Stylist, error) {
			return nil, staffservice.ErrStylistNotFound
		},
	}

	svc := NewService(&mockAssignmentRepo{}, &mockSpecialtyRepo{}, staff, &fakeTxManager{}, &noopLogger{})
	_, err := svc.Assign(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestUnassign_Success(t *testing.T) {
	deleted := []int64{}
	decremented := []int64{}
	assignRepo := &mockAssignmentRepo{
		getActivePairFn: func(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error) {
			return &domain.Assignment{ID: 10, StylistID: stylistID, SpecialtyID: specialtyID, Active: true}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleted = append(deleted, id)
			return nil
		},
	}
	specRepo := &mockSpecialtyRepo{
		decrementFn: func(ctx context.Context, id int64) error {
			decremented = append(decremented, id)
			return nil
		},
	}

	svc := NewService(assignRepo, specRepo, staffOK(), &fakeTxManager{}, &noopLogger{})
	err := svc.Unassign(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, deleted, "удаляется строка назначения")
	assert.Equal(t, []int64{1}, decremented, "счетчик специализации уменьшается")
}

func TestUnassign_NotAssigned(t *testing.T) {
	assignRepo := &mockAssignmentRepo{
		getActivePairFn: func(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error) {
			return nil, assignmentRepo.ErrAssignmentNotFound
		},
	}

	svc := NewService(assignRepo, &mockSpecialtyRepo{}, staffOK(), &fakeTxManager{}, &noopLogger{})
	err := svc.Unassign(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}
