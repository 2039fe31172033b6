package timeslot

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StylistService/internal/domain"
	"github.com/m04kA/SMC-StylistService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StylistService/pkg/psqlbuilder"
)

// Таблица creneaux: недельные окна доступности мастеров.
// start_time и end_time хранятся строками "HH:MM" с ведущими нулями,
// поэтому ORDER BY по ним совпадает с хронологическим порядком.
const table = "creneaux"

var columns = []string{
	"id",
	"stylist_id",
	"day_of_week",
	"start_time",
	"end_time",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий слотов расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот
func (r *Repository) Create(ctx context.Context, s *domain.TimeSlot) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("stylist_id", "day_of_week", "start_time", "end_time", "active").
		Values(s.StylistID, int(s.DayOfWeek), s.StartTime, s.EndTime, s.Active).
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

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.TimeSlot
	var day int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.StylistID, &day, &s.StartTime, &s.EndTime,
		&s.Active, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	s.DayOfWeek = domain.Weekday(day)
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// GetByStylist возвращает все слоты мастера (включая выключенные)
// в порядке день недели, затем время начала
func (r *Repository) GetByStylist(ctx context.Context, stylistID int64) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"stylist_id": stylistID}).
		OrderBy("day_of_week", "start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylist - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows, "GetByStylist")
}

// GetByStylistAndDay возвращает слоты мастера на конкретный день недели
func (r *Repository) GetByStylistAndDay(ctx context.Context, stylistID int64, day domain.Weekday) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"stylist_id": stylistID, "day_of_week": int(day)}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStylistAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows, "GetByStylistAndDay")
}

// Update обновляет день недели и границы интервала слота
func (r *Repository) Update(ctx context.Context, s *domain.TimeSlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("day_of_week", int(s.DayOfWeek)).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// SetActive включает или выключает слот без удаления
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetActive")
}

// Delete физически удаляет слот
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, method, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func scanSlots(rows *sql.Rows, method string) ([]*domain.TimeSlot, error) {
	result := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		var s domain.TimeSlot
		var day int
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&s.ID, &s.StylistID, &day, &s.StartTime, &s.EndTime,
			&s.Active, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
		}
		s.DayOfWeek = domain.Weekday(day)
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}
	return result, nil
}
