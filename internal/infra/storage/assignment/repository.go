package assignment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistService/pkg/psqlbuilder"
)

// Таблица coiffeur_specialites: связи мастер-специализация.
// Частичный уникальный индекс по (stylist_id, specialty_id) WHERE active
// гарантирует не больше одной активной записи на пару.
const table = "coiffeur_specialites"

var columns = []string{
	"id",
	"stylist_id",
	"specialty_id",
	"assigned_at",
	"active",
}

// Repository репозиторий записей назначений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись назначения
func (r *Repository) Create(ctx context.Context, a *domain.Assignment) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("stylist_id", "specialty_id", "active").
		Values(a.StylistID, a.SpecialtyID, a.Active).
		Suffix("RETURNING id, assigned_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.AssignedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByStylist возвращает активные назначения мастера
func (r *Repository) GetByStylist(ctx context.Context, stylistID int64) ([]*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"stylist_id": stylistID, "active": true}).
		OrderBy("assigned_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAssignments(rows, "GetByStylist")
}

// GetActivePair ищет активное назначение для пары (мастер, специализация)
func (r *Repository) GetActivePair(ctx context.Context, stylistID, specialtyID int64) (*domain.Assignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"stylist_id":   stylistID,
			"specialty_id": specialtyID,
			"active":       true,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActivePair - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Assignment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.StylistID, &a.SpecialtyID, &a.AssignedAt, &a.Active,
	)
	if err == sql.ErrNoRows {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActivePair - scan assignment: %v", ErrScanRow, err)
	}

	return &a, nil
}

// Delete физически удаляет запись назначения.
// Снятие специализации с мастера удаляет строку, а не выставляет флаг.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// CountActiveBySpecialty возвращает реальное число активных назначений специализации
func (r *Repository) CountActiveBySpecialty(ctx context.Context, specialtyID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"specialty_id": specialtyID, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySpecialty - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveBySpecialty - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// CountsBySpecialty возвращает число активных назначений по каждой специализации.
// Специализации без назначений в результат не попадают.
func (r *Repository) CountsBySpecialty(ctx context.Context) (map[int64]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("specialty_id", "COUNT(*)").
		From(table).
		Where(squirrel.Eq{"active": true}).
		GroupBy("specialty_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountsBySpecialty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountsBySpecialty - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var specialtyID int64
		var count int
		if err := rows.Scan(&specialtyID, &count); err != nil {
			return nil, fmt.Errorf("%w: CountsBySpecialty - scan row: %v", ErrScanRow, err)
		}
		counts[specialtyID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountsBySpecialty - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

func scanAssignments(rows *sql.Rows, method string) ([]*domain.Assignment, error) {
	result := make([]*domain.Assignment, 0)
	for rows.Next() {
		var a domain.Assignment
		if err := rows.Scan(&a.ID, &a.StylistID, &a.SpecialtyID, &a.AssignedAt, &a.Active); err != nil {
			return nil, fmt.Errorf("%w: %s - scan assignment: %v", ErrScanRow, method, err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}
	return result, nil
}
