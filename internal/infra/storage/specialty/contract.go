package specialty

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс исполнителя запросов (подходит *sql.DB, *sql.Tx и обертка dbmetrics)
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
