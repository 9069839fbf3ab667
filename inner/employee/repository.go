package employee

import (
	"context"

	"hrm/inner/database"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const columns = "id, first_name, last_name, email, phone_number, hire_date, job_id, salary, commission_pct, manager_id, department_id"

type Repository struct {
	db *sqlx.DB
}

func NewEmployeeRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindById(ctx context.Context, id int64) (employee Entity, err error) {
	err = r.db.GetContext(ctx, &employee, "SELECT "+columns+" FROM employees WHERE id = $1", id)
	return employee, err
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var employees []Entity
	err := r.db.SelectContext(ctx, &employees, "SELECT "+columns+" FROM employees ORDER BY id")
	return employees, err
}

func (r *Repository) FindByIds(ctx context.Context, ids []int64) ([]Entity, error) {
	var employees []Entity
	if len(ids) == 0 {
		return employees, nil
	}
	err := r.db.SelectContext(ctx, &employees,
		"SELECT "+columns+" FROM employees WHERE id = ANY ($1) ORDER BY id", pq.Array(ids))
	return employees, err
}

// FindByManagerId прямые подчинённые сотрудника
func (r *Repository) FindByManagerId(ctx context.Context, managerId int64) ([]Entity, error) {
	var employees []Entity
	err := r.db.SelectContext(ctx, &employees,
		"SELECT "+columns+" FROM employees WHERE manager_id = $1 ORDER BY id", managerId)
	return employees, err
}

func (r *Repository) FindWithPagination(ctx context.Context, limit, offset int) ([]Entity, error) {
	var employees []Entity
	err := r.db.SelectContext(ctx, &employees,
		"SELECT "+columns+" FROM employees ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
	return employees, err
}

func (r *Repository) CountAll(ctx context.Context) (count int64, err error) {
	err = r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM employees")
	return count, err
}

func (r *Repository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *Repository) FindByEmailTx(ctx context.Context, tx *sqlx.Tx, email string) (isExists bool, err error) {
	err = tx.GetContext(ctx, &isExists, "SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)", email)
	return isExists, err
}

func (r *Repository) SaveTx(ctx context.Context, tx *sqlx.Tx, employee Entity) (employeeId int64, err error) {
	err = tx.GetContext(ctx, &employeeId,
		`INSERT INTO employees (first_name, last_name, email, phone_number, hire_date, job_id, salary, commission_pct, manager_id, department_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`,
		employee.FirstName, employee.LastName, employee.Email, employee.PhoneNumber, employee.HireDate,
		employee.JobId, employee.Salary, employee.CommissionPct, employee.ManagerId, employee.DepartmentId)
	return employeeId, err
}

// Update возвращает sql.ErrNoRows, если сотрудника нет
func (r *Repository) Update(ctx context.Context, employee Entity) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE employees SET first_name = $1, last_name = $2, email = $3, phone_number = $4, hire_date = $5,
		job_id = $6, salary = $7, commission_pct = $8, manager_id = $9, department_id = $10 WHERE id = $11`,
		employee.FirstName, employee.LastName, employee.Email, employee.PhoneNumber, employee.HireDate,
		employee.JobId, employee.Salary, employee.CommissionPct, employee.ManagerId, employee.DepartmentId,
		employee.Id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) DeleteById(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}

func (r *Repository) DeleteByIds(ctx context.Context, ids []int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM employees WHERE id = ANY ($1)", pq.Array(ids))
	return err
}
