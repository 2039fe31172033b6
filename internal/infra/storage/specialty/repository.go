package specialty

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistService/pkg/psqlbuilder"
)

// Таблица specialites: каталог специализаций салона.
// Колонка assigned_stylist_count денормализована и меняется только
// одиночными атомарными UPDATE вместе с изменением строк назначений.
const table = "specialites"

var columns = []string{
	"id",
	"name",
	"description",
	"active",
	"assigned_stylist_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога специализаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория специализаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую специализацию
func (r *Repository) Create(ctx context.Context, s *domain.Specialty) (*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "description", "active", "assigned_stylist_count").
		Values(s.Name, s.Description, s.Active, s.AssignedStylistCount).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// GetByID получает специализацию по ID (включая мягко удаленные)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	return scanSpecialty(row, "GetByID")
}

// GetActiveByName ищет активную специализацию по имени без учета регистра.
// Используется для проверки уникальности имен: мягко удаленные специализации
// в проверке не участвуют.
func (r *Repository) GetActiveByName(ctx context.Context, name string) (*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"active": true}).
		Where("LOWER(name) = LOWER(?)", name).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByName - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	return scanSpecialty(row, "GetActiveByName")
}

// List возвращает специализации, отсортированные по имени.
// По умолчанию только активные; includeInactive=true добавляет мягко удаленные.
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]*domain.Specialty, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("LOWER(name)")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Specialty, 0)
	for rows.Next() {
		var s domain.Specialty
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.Active,
			&s.AssignedStylistCount, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan specialty: %v", ErrScanRow, err)
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет имя и описание специализации
func (r *Repository) Update(ctx context.Context, s *domain.Specialty) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", s.Name).
		Set("description", s.Description).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// SoftDelete мягко удаляет специализацию (active=false), строка сохраняется
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SoftDelete")
}

// IncrementAssignedCount увеличивает счетчик назначенных мастеров на единицу
func (r *Repository) IncrementAssignedCount(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("assigned_stylist_count", squirrel.Expr("assigned_stylist_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementAssignedCount - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "IncrementAssignedCount")
}

// DecrementAssignedCount уменьшает счетчик назначенных мастеров на единицу.
// GREATEST не дает счетчику уйти ниже нуля, даже если он уже разъехался
// с реальным числом назначений.
func (r *Repository) DecrementAssignedCount(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("assigned_stylist_count", squirrel.Expr("GREATEST(assigned_stylist_count - 1, 0)")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementAssignedCount - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DecrementAssignedCount")
}

// SetAssignedCount выставляет счетчик в точное значение (операция repair)
func (r *Repository) SetAssignedCount(ctx context.Context, id int64, count int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if count < 0 {
		count = 0
	}

	query, args, err := psqlbuilder.Update(table).
		Set("assigned_stylist_count", count).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAssignedCount - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetAssignedCount")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrSpecialtyNotFound
	}
	return nil
}

func scanSpecialty(row *sql.Row, method string) (*domain.Specialty, error) {
	var s domain.Specialty
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID, &s.Name, &s.Description, &s.Active,
		&s.AssignedStylistCount, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSpecialtyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan specialty: %v", ErrScanRow, method, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}
