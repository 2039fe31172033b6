package dbmetrics

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTx кладет открытую транзакцию в контекст.
// Репозитории подхватывают её через GetExecutor, поэтому один и тот же
// код репозитория работает и в транзакции, и без неё.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext достает транзакцию из контекста, если она там есть
func TxFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}

// GetExecutor возвращает транзакцию из контекста, если она открыта,
// иначе переданный executor по умолчанию
func GetExecutor(ctx context.Context, fallback Executor) Executor {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return fallback
}
