package report

import (
	"fmt"
	"time"

	"hrm/inner/common"

	"github.com/shopspring/decimal"
)

var (
	zeroCommission = decimal.Zero
	maxCommission  = decimal.NewFromInt(1)
)

func validateId(name string, id int64) error {
	if id <= 0 {
		return common.RequestValidationError{Message: fmt.Sprintf("%s must be a positive integer, got %d", name, id)}
	}
	return nil
}

func (s Snapshot) department(id int64) (Department, bool) {
	for _, department := range s.Departments {
		if department.Id == id {
			return department, true
		}
	}
	return Department{}, false
}

func (s Snapshot) inDepartment(departmentId int64) []Employee {
	var result []Employee
	for _, employee := range s.Employees {
		if employee.DepartmentId != nil && *employee.DepartmentId == departmentId {
			result = append(result, employee)
		}
	}
	return result
}

// groupByDepartmentName сворачивает сотрудников отдела в одно значение под именем отдела
func groupByDepartmentName[T any](s Snapshot, departmentId int64, fold func([]Employee) T) (map[string]T, error) {
	if err := validateId("department id", departmentId); err != nil {
		return nil, err
	}
	var result = make(map[string]T)
	employees := s.inDepartment(departmentId)
	if len(employees) == 0 {
		return result, nil
	}
	department, ok := s.department(departmentId)
	if !ok {
		return nil, common.NewNotFoundError(fmt.Sprintf("department with id %d not found", departmentId))
	}
	result[department.Name] = fold(employees)
	return result, nil
}

// extremeSalary возвращает nil, если ни у кого из сотрудников не указана зарплата
func extremeSalary(employees []Employee, better func(candidate, current decimal.Decimal) bool) *decimal.Decimal {
	var result *decimal.Decimal
	for _, employee := range employees {
		if !employee.Salary.Valid {
			continue
		}
		if result == nil || better(employee.Salary.Decimal, *result) {
			salary := employee.Salary.Decimal
			result = &salary
		}
	}
	return result
}

// MaxSalaryByDepartment максимальная зарплата в отделе, сгруппированная по имени отдела
func (s Snapshot) MaxSalaryByDepartment(departmentId int64) (map[string]*decimal.Decimal, error) {
	return groupByDepartmentName(s, departmentId, func(employees []Employee) *decimal.Decimal {
		return extremeSalary(employees, decimal.Decimal.GreaterThan)
	})
}

// MinSalaryByDepartment минимальная зарплата в отделе, сгруппированная по имени отдела
func (s Snapshot) MinSalaryByDepartment(departmentId int64) (map[string]*decimal.Decimal, error) {
	return groupByDepartmentName(s, departmentId, func(employees []Employee) *decimal.Decimal {
		return extremeSalary(employees, decimal.Decimal.LessThan)
	})
}

// EmployeeCountByDepartment количество сотрудников отдела под его именем
func (s Snapshot) EmployeeCountByDepartment(departmentId int64) (map[string]int64, error) {
	return groupByDepartmentName(s, departmentId, func(employees []Employee) int64 {
		return int64(len(employees))
	})
}

// TotalCommissionByDepartment сумма комиссий сотрудников отдела; 0, если комиссий нет
func (s Snapshot) TotalCommissionByDepartment(departmentId int64) (decimal.Decimal, error) {
	if err := validateId("department id", departmentId); err != nil {
		return decimal.Zero, err
	}
	var total = decimal.Zero
	for _, employee := range s.inDepartment(departmentId) {
		if !employee.Commission.Valid {
			continue
		}
		commission := employee.Commission.Decimal
		if commission.LessThan(zeroCommission) || commission.GreaterThan(maxCommission) {
			return decimal.Zero, common.RequestValidationError{
				Message: fmt.Sprintf("commission %s of employee %d is out of range [0, 1]", commission, employee.Id),
			}
		}
		total = total.Add(commission)
	}
	return total, nil
}

// CountEmployeesByLocation число сотрудников по локациям их отделов.
// Сотрудники без отдела не учитываются, отделы без локации попадают под NoLocation
func (s Snapshot) CountEmployeesByLocation() map[int64]int64 {
	var locations = make(map[int64]int64, len(s.Departments))
	for _, department := range s.Departments {
		locationId := NoLocation
		if department.LocationId != nil {
			locationId = *department.LocationId
		}
		locations[department.Id] = locationId
	}

	var result = make(map[int64]int64)
	for _, employee := range s.Employees {
		if employee.DepartmentId == nil {
			continue
		}
		locationId, ok := locations[*employee.DepartmentId]
		if !ok {
			continue
		}
		result[locationId]++
	}
	return result
}

// MaxSalaryForJobOfEmployee название должности сотрудника и максимальная зарплата на этой должности
func (s Snapshot) MaxSalaryForJobOfEmployee(employeeId int64) (JobSalary, error) {
	if err := validateId("employee id", employeeId); err != nil {
		return JobSalary{}, err
	}
	var jobId int64
	var found bool
	for _, employee := range s.Employees {
		if employee.Id == employeeId {
			jobId, found = employee.JobId, true
			break
		}
	}
	if !found {
		return JobSalary{}, common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", employeeId))
	}

	var title string
	found = false
	for _, job := range s.Jobs {
		if job.Id == jobId {
			title, found = job.Title, true
			break
		}
	}
	if !found {
		return JobSalary{}, common.NewNotFoundError(fmt.Sprintf("job with id %d not found", jobId))
	}

	var sameJob []Employee
	for _, employee := range s.Employees {
		if employee.JobId == jobId {
			sameJob = append(sameJob, employee)
		}
	}
	var result = JobSalary{JobTitle: title, MaxSalary: decimal.Zero}
	if highest := extremeSalary(sameJob, decimal.Decimal.GreaterThan); highest != nil {
		result.MaxSalary = *highest
	}
	return result, nil
}

// TenureFromHistory суммарный стаж сотрудника по записям истории должностей.
// Пустая история - это NotFoundError вместе с нулевым Tenure, а не нулевой стаж
func TenureFromHistory(employeeId int64, history []JobHistory) (Tenure, error) {
	if err := validateId("employee id", employeeId); err != nil {
		return Tenure{}, err
	}
	var totalDays int
	var rows int
	for _, record := range history {
		if record.EmployeeId != employeeId {
			continue
		}
		start, end := dateOf(record.StartDate), dateOf(record.EndDate)
		if end.Before(start) {
			return Tenure{}, common.RequestValidationError{
				Message: fmt.Sprintf("job history of employee %d starting %s ends before it starts",
					employeeId, start.Format(time.DateOnly)),
			}
		}
		totalDays += int((end.Unix() - start.Unix()) / secondsPerDay)
		rows++
	}
	if rows == 0 {
		return Tenure{}, common.NewNotFoundError(fmt.Sprintf("no job history for employee with id %d", employeeId))
	}

	remainder := totalDays % daysInYear
	return Tenure{
		Years:  totalDays / daysInYear,
		Months: remainder / daysInMonth,
		Days:   remainder % daysInMonth,
	}, nil
}

// dateOf отбрасывает время и часовой пояс, чтобы разница считалась в целых днях
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
