package report

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const employeeColumns = "id, job_id, salary, commission_pct, manager_id, department_id"

// Repository читает срезы сущностей для отчётов
type Repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) EmployeesByDepartment(ctx context.Context, departmentId int64) ([]Employee, error) {
	var employees []Employee
	err := r.db.SelectContext(ctx, &employees,
		"SELECT "+employeeColumns+" FROM employees WHERE department_id = $1", departmentId)
	return employees, err
}

func (r *Repository) AllEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := r.db.SelectContext(ctx, &employees, "SELECT "+employeeColumns+" FROM employees")
	return employees, err
}

func (r *Repository) AllDepartments(ctx context.Context) ([]Department, error) {
	var departments []Department
	err := r.db.SelectContext(ctx, &departments, "SELECT id, name, manager_id, location_id FROM departments")
	return departments, err
}

func (r *Repository) DepartmentById(ctx context.Context, id int64) (department Department, err error) {
	err = r.db.GetContext(ctx, &department,
		"SELECT id, name, manager_id, location_id FROM departments WHERE id = $1", id)
	return department, err
}

func (r *Repository) JobById(ctx context.Context, id int64) (job Job, err error) {
	err = r.db.GetContext(ctx, &job, "SELECT id, title, min_salary, max_salary FROM jobs WHERE id = $1", id)
	return job, err
}

func (r *Repository) JobHistoryByEmployee(ctx context.Context, employeeId int64) ([]JobHistory, error) {
	var history []JobHistory
	err := r.db.SelectContext(ctx, &history,
		"SELECT employee_id, start_date, end_date, job_id, department_id FROM job_history WHERE employee_id = $1 ORDER BY start_date",
		employeeId)
	return history, err
}
