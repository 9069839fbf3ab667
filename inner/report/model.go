package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee срез данных сотрудника, нужный для отчётов.
// Руководитель хранится как id, а не как ссылка на другого сотрудника
type Employee struct {
	Id           int64               `db:"id"`
	JobId        int64               `db:"job_id"`
	Salary       decimal.NullDecimal `db:"salary"`
	Commission   decimal.NullDecimal `db:"commission_pct"`
	ManagerId    *int64              `db:"manager_id"`
	DepartmentId *int64              `db:"department_id"`
}

type Department struct {
	Id         int64  `db:"id"`
	Name       string `db:"name"`
	ManagerId  *int64 `db:"manager_id"`
	LocationId *int64 `db:"location_id"`
}

type Job struct {
	Id        int64               `db:"id"`
	Title     string              `db:"title"`
	MinSalary decimal.NullDecimal `db:"min_salary"`
	MaxSalary decimal.NullDecimal `db:"max_salary"`
}

type JobHistory struct {
	EmployeeId   int64     `db:"employee_id"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	JobId        int64     `db:"job_id"`
	DepartmentId *int64    `db:"department_id"`
}

// Snapshot неизменяемый набор сущностей, над которым считаются отчёты
type Snapshot struct {
	Employees   []Employee
	Departments []Department
	Jobs        []Job
}

// JobSalary максимальная зарплата среди сотрудников одной должности
type JobSalary struct {
	JobTitle  string          `json:"job_title"`
	MaxSalary decimal.Decimal `json:"max_salary"`
}

// Tenure суммарный стаж по истории должностей; год = 365 дней, месяц = 30 дней
type Tenure struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// NoLocation ключ для отделов без локации
const NoLocation int64 = 0

const (
	daysInYear  = 365
	daysInMonth = 30

	// разница считается по Unix-секундам: time.Duration ограничен ~292 годами
	secondsPerDay = 24 * 60 * 60
)
