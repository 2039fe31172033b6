package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-StylistService/pkg/metrics"
)

// Executor минимальный интерфейс исполнителя запросов.
// Ему удовлетворяют *sql.DB, *sql.Tx и *dbmetrics.DB.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// DB обертка над *sql.DB, записывающая метрики каждого запроса
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

const poolStatsInterval = 10 * time.Second

// Wrap оборачивает соединение с БД сбором метрик запросов
func Wrap(db *sql.DB, m *metrics.Metrics, name string) *DB {
	return &DB{db: db, metrics: m, name: name}
}

// WrapWithDefault оборачивает соединение и запускает периодический сбор
// статистики connection pool. Сбор останавливается закрытием stopCh.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, m, name)
	go wrapped.collectPoolStats(stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(stopCh <-chan struct{}) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.metrics.DBConnectionsOpen.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
			d.metrics.DBConnectionsIdle.WithLabelValues(d.name).Set(float64(stats.Idle))
			d.metrics.DBConnectionsInUse.WithLabelValues(d.name).Set(float64(stats.InUse))
		}
	}
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.ObserveDBQuery(operation, status, time.Since(start).Seconds())
}

// ExecContext выполняет запрос с записью метрик
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// QueryContext выполняет запрос с записью метрик
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// QueryRowContext выполняет запрос с записью метрик.
// Ошибка выполнения станет видна только при Scan, поэтому статус всегда ok.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// BeginTx открывает транзакцию на нижележащем соединении
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return d.db.BeginTx(ctx, opts)
}
