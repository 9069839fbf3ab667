package job

import (
	"context"

	"hrm/inner/database"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewJobRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindById(ctx context.Context, id int64) (job Entity, err error) {
	err = r.db.GetContext(ctx, &job, "SELECT id, title, min_salary, max_salary FROM jobs WHERE id = $1", id)
	return job, err
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var jobs []Entity
	err := r.db.SelectContext(ctx, &jobs, "SELECT id, title, min_salary, max_salary FROM jobs ORDER BY id")
	return jobs, err
}

func (r *Repository) Add(ctx context.Context, job *Entity) error {
	return r.db.QueryRowxContext(ctx,
		"INSERT INTO jobs (title, min_salary, max_salary) VALUES ($1, $2, $3) RETURNING id",
		job.Title, job.MinSalary, job.MaxSalary,
	).Scan(&job.Id)
}

func (r *Repository) Update(ctx context.Context, job Entity) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE jobs SET title = $1, min_salary = $2, max_salary = $3 WHERE id = $4",
		job.Title, job.MinSalary, job.MaxSalary, job.Id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) DeleteById(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}
