package department

import (
	"context"

	"hrm/inner/database"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewDepartmentRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindById(ctx context.Context, id int64) (department Entity, err error) {
	err = r.db.GetContext(ctx, &department,
		"SELECT id, name, manager_id, location_id FROM departments WHERE id = $1", id)
	return department, err
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var departments []Entity
	err := r.db.SelectContext(ctx, &departments, "SELECT id, name, manager_id, location_id FROM departments ORDER BY id")
	return departments, err
}

func (r *Repository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *Repository) FindByNameTx(ctx context.Context, tx *sqlx.Tx, name string) (isExists bool, err error) {
	err = tx.GetContext(ctx, &isExists, "SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1)", name)
	return isExists, err
}

func (r *Repository) SaveTx(ctx context.Context, tx *sqlx.Tx, department Entity) (departmentId int64, err error) {
	err = tx.GetContext(ctx, &departmentId,
		"INSERT INTO departments (name, manager_id, location_id) VALUES ($1, $2, $3) RETURNING id",
		department.Name, department.ManagerId, department.LocationId)
	return departmentId, err
}

func (r *Repository) Update(ctx context.Context, department Entity) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE departments SET name = $1, manager_id = $2, location_id = $3 WHERE id = $4",
		department.Name, department.ManagerId, department.LocationId, department.Id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) DeleteById(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM departments WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}
