package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hrm/inner/common"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Source источник данных для отчётов, реализуется Repository
type Source interface {
	EmployeesByDepartment(ctx context.Context, departmentId int64) ([]Employee, error)
	AllEmployees(ctx context.Context) ([]Employee, error)
	AllDepartments(ctx context.Context) ([]Department, error)
	DepartmentById(ctx context.Context, id int64) (Department, error)
	JobById(ctx context.Context, id int64) (Job, error)
	JobHistoryByEmployee(ctx context.Context, employeeId int64) ([]JobHistory, error)
}

type Service struct {
	source Source
	logger *common.Logger
}

func NewService(source Source, logger *common.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
	}
}

// departmentSnapshot загружает отдел и его сотрудников
func (svc *Service) departmentSnapshot(ctx context.Context, departmentId int64) (Snapshot, error) {
	if err := validateId("department id", departmentId); err != nil {
		return Snapshot{}, err
	}
	department, err := svc.source.DepartmentById(ctx, departmentId)
	if errors.Is(err, sql.ErrNoRows) {
		svc.logger.Debug("Department not found", zap.Int64("department_id", departmentId))
		return Snapshot{}, common.NewNotFoundError(fmt.Sprintf("department with id %d not found", departmentId))
	}
	if err != nil {
		svc.logger.Error("Failed to find department",
			zap.Int64("department_id", departmentId),
			zap.Error(err))
		return Snapshot{}, fmt.Errorf("error finding department with id %d: %w", departmentId, err)
	}
	employees, err := svc.source.EmployeesByDepartment(ctx, departmentId)
	if err != nil {
		svc.logger.Error("Failed to find employees of department",
			zap.Int64("department_id", departmentId),
			zap.Error(err))
		return Snapshot{}, fmt.Errorf("error finding employees of department %d: %w", departmentId, err)
	}
	return Snapshot{Employees: employees, Departments: []Department{department}}, nil
}

func (svc *Service) MaxSalaryByDepartment(ctx context.Context, departmentId int64) (map[string]*decimal.Decimal, error) {
	snapshot, err := svc.departmentSnapshot(ctx, departmentId)
	if err != nil {
		return nil, err
	}
	return snapshot.MaxSalaryByDepartment(departmentId)
}

func (svc *Service) MinSalaryByDepartment(ctx context.Context, departmentId int64) (map[string]*decimal.Decimal, error) {
	snapshot, err := svc.departmentSnapshot(ctx, departmentId)
	if err != nil {
		return nil, err
	}
	return snapshot.MinSalaryByDepartment(departmentId)
}

func (svc *Service) EmployeeCountByDepartment(ctx context.Context, departmentId int64) (map[string]int64, error) {
	snapshot, err := svc.departmentSnapshot(ctx, departmentId)
	if err != nil {
		return nil, err
	}
	return snapshot.EmployeeCountByDepartment(departmentId)
}

// TotalCommissionByDepartment не проверяет существование отдела: без сотрудников сумма равна 0
func (svc *Service) TotalCommissionByDepartment(ctx context.Context, departmentId int64) (decimal.Decimal, error) {
	if err := validateId("department id", departmentId); err != nil {
		return decimal.Zero, err
	}
	employees, err := svc.source.EmployeesByDepartment(ctx, departmentId)
	if err != nil {
		svc.logger.Error("Failed to find employees of department",
			zap.Int64("department_id", departmentId),
			zap.Error(err))
		return decimal.Zero, fmt.Errorf("error finding employees of department %d: %w", departmentId, err)
	}
	total, err := Snapshot{Employees: employees}.TotalCommissionByDepartment(departmentId)
	if err != nil {
		svc.logger.Warn("Invalid commission data",
			zap.Int64("department_id", departmentId),
			zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (svc *Service) CountEmployeesByLocation(ctx context.Context) (map[int64]int64, error) {
	employees, err := svc.source.AllEmployees(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all employees", zap.Error(err))
		return nil, fmt.Errorf("error finding all employees: %w", err)
	}
	departments, err := svc.source.AllDepartments(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all departments", zap.Error(err))
		return nil, fmt.Errorf("error finding all departments: %w", err)
	}
	counts := Snapshot{Employees: employees, Departments: departments}.CountEmployeesByLocation()
	svc.logger.Debug("Counted employees by location", zap.Int("locations", len(counts)))
	return counts, nil
}

func (svc *Service) MaxSalaryForJobOfEmployee(ctx context.Context, employeeId int64) (JobSalary, error) {
	if err := validateId("employee id", employeeId); err != nil {
		return JobSalary{}, err
	}
	employees, err := svc.source.AllEmployees(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all employees", zap.Error(err))
		return JobSalary{}, fmt.Errorf("error finding all employees: %w", err)
	}
	var snapshot = Snapshot{Employees: employees}
	for _, employee := range employees {
		if employee.Id != employeeId {
			continue
		}
		job, err := svc.source.JobById(ctx, employee.JobId)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			svc.logger.Warn("Job of employee not found",
				zap.Int64("employee_id", employeeId),
				zap.Int64("job_id", employee.JobId))
		case err != nil:
			svc.logger.Error("Failed to find job",
				zap.Int64("job_id", employee.JobId),
				zap.Error(err))
			return JobSalary{}, fmt.Errorf("error finding job with id %d: %w", employee.JobId, err)
		default:
			snapshot.Jobs = []Job{job}
		}
		break
	}
	return snapshot.MaxSalaryForJobOfEmployee(employeeId)
}

func (svc *Service) TenureOfEmployee(ctx context.Context, employeeId int64) (Tenure, error) {
	if err := validateId("employee id", employeeId); err != nil {
		return Tenure{}, err
	}
	history, err := svc.source.JobHistoryByEmployee(ctx, employeeId)
	if err != nil {
		svc.logger.Error("Failed to find job history",
			zap.Int64("employee_id", employeeId),
			zap.Error(err))
		return Tenure{}, fmt.Errorf("error finding job history of employee %d: %w", employeeId, err)
	}
	return TenureFromHistory(employeeId, history)
}
