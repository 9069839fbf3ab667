package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// WithTx выполняет fn в транзакции: commit, если fn вернула nil, иначе rollback.
// Ошибка fn возвращается без обёртки, чтобы типизированные ошибки сервиса доходили до контроллера
func WithTx(ctx context.Context, begin func(ctx context.Context) (*sqlx.Tx, error), fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := begin(ctx)
	if err != nil {
		return fmt.Errorf("error creating transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = errors.Join(err, fmt.Errorf("rollback failed: %w", rollbackErr))
			}
			return
		}
		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("commit failed: %w", commitErr)
		}
	}()
	return fn(tx)
}
