package recount_specialties

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistService/internal/domain"
)

type mockAssignmentRepo struct {
	countsBySpecialtyFn func(ctx context.Context) (map[int64]int, error)
}

var _ AssignmentRepository = (*mockAssignmentRepo)(nil)

func (m *mockAssignmentRepo) CountsBySpecialty(ctx context.Context) (map[int64]int, error) {
	return m.countsBySpecialtyFn(ctx)
}

type mockSpecialtyRepo struct {
	listFn             func(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error)
	setAssignedCountFn func(ctx context.Context, id int64, count int) error
}

var _ SpecialtyRepository = (*mockSpecialtyRepo)(nil)

func (m *mockSpecialtyRepo) List(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
	return m.listFn(ctx, includeInactive)
}

func (m *mockSpecialtyRepo) SetAssignedCount(ctx context.Context, id int64, count int) error {
	return m.setAssignedCountFn(ctx, id, count)
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

func specialty(id int64, count int, active bool) *domain.Specialty {
	return &domain.Specialty{ID: id, Name: "specialty", Active: active, AssignedStylistCount: count}
}

func TestExecute_FixesDrift(t *testing.T) {
	specRepo := &mockSpecialtyRepo{
		listFn: func(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
			assert.True(t, includeInactive, "пересчет должен покрывать и мягко удаленные специализации")
			return []*domain.Specialty{
				specialty(1, 3, true),  // корректный счетчик
				specialty(2, 5, true),  // завышен: реально 2
				specialty(3, 0, false), // удаленная с дрейфом: реально 1
			}, nil
		},
	}
	assignRepo := &mockAssignmentRepo{
		countsBySpecialtyFn: func(ctx context.Context) (map[int64]int, error) {
			return map[int64]int{1: 3, 2: 2, 3: 1}, nil
		},
	}

	written := map[int64]int{}
	specRepo.setAssignedCountFn = func(ctx context.Context, id int64, count int) error {
		written[id] = count
		return nil
	}

	uc := NewUseCase(assignRepo, specRepo, &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Checked)
	assert.Len(t, resp.Corrections, 2)
	assert.Equal(t, map[int64]int{2: 2, 3: 1}, written)
	assert.Contains(t, resp.Corrections, Correction{SpecialtyID: 2, OldCount: 5, NewCount: 2})
	assert.Contains(t, resp.Corrections, Correction{SpecialtyID: 3, OldCount: 0, NewCount: 1})
}

func TestExecute_NoDrift(t *testing.T) {
	specRepo := &mockSpecialtyRepo{
		listFn: func(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
			return []*domain.Specialty{specialty(1, 2, true)}, nil
		},
		setAssignedCountFn: func(ctx context.Context, id int64, count int) error {
			t.Fatal("не должно быть записей при отсутствии расхождений")
			return nil
		},
	}
	assignRepo := &mockAssignmentRepo{
		countsBySpecialtyFn: func(ctx context.Context) (map[int64]int, error) {
			return map[int64]int{1: 2}, nil
		},
	}

	uc := NewUseCase(assignRepo, specRepo, &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Checked)
	assert.Empty(t, resp.Corrections)
}

func TestExecute_SpecialtyMissingFromCounts(t *testing.T) {
	// Специализация без единого назначения: в map ее нет, счетчик должен стать 0
	specRepo := &mockSpecialtyRepo{
		listFn: func(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
			return []*domain.Specialty{specialty(7, 4, true)}, nil
		},
	}
	assignRepo := &mockAssignmentRepo{
		countsBySpecialtyFn: func(ctx context.Context) (map[int64]int, error) {
			return map[int64]int{}, nil
		},
	}

	written := map[int64]int{}
	specRepo.setAssignedCountFn = func(ctx context.Context, id int64, count int) error {
		written[id] = count
		return nil
	}

	uc := NewUseCase(assignRepo, specRepo, &fakeTxManager{}, &noopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{7: 0}, written)
	assert.Equal(t, []Correction{{SpecialtyID: 7, OldCount: 4, NewCount: 0}}, resp.Corrections)
}
