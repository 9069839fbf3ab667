package jobhistory

import (
	"context"
	"time"

	"hrm/inner/database"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewJobHistoryRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindByEmployeeId(ctx context.Context, employeeId int64) ([]Entity, error) {
	var history []Entity
	err := r.db.SelectContext(ctx, &history,
		"SELECT employee_id, start_date, end_date, job_id, department_id FROM job_history WHERE employee_id = $1 ORDER BY start_date",
		employeeId)
	return history, err
}

func (r *Repository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *Repository) ExistsTx(ctx context.Context, tx *sqlx.Tx, employeeId int64, startDate time.Time) (isExists bool, err error) {
	err = tx.GetContext(ctx, &isExists,
		"SELECT EXISTS(SELECT 1 FROM job_history WHERE employee_id = $1 AND start_date = $2)",
		employeeId, startDate)
	return isExists, err
}

func (r *Repository) SaveTx(ctx context.Context, tx *sqlx.Tx, record Entity) error {
	_, err := tx.NamedExecContext(ctx,
		`INSERT INTO job_history (employee_id, start_date, end_date, job_id, department_id)
		VALUES (:employee_id, :start_date, :end_date, :job_id, :department_id)`,
		record)
	return err
}

func (r *Repository) Delete(ctx context.Context, employeeId int64, startDate time.Time) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM job_history WHERE employee_id = $1 AND start_date = $2", employeeId, startDate)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}
