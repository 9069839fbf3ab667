package jobhistory

import (
	"time"

	"hrm/inner/validator"
)

// Entity запись истории должностей; ключ - пара (employee_id, start_date)
type Entity struct {
	EmployeeId   int64     `db:"employee_id"`
	StartDate    time.Time `db:"start_date"`
	EndDate      time.Time `db:"end_date"`
	JobId        int64     `db:"job_id"`
	DepartmentId *int64    `db:"department_id"`
}

func (e Entity) toResponse() Response {
	return Response{
		EmployeeId:   e.EmployeeId,
		StartDate:    e.StartDate.Format(validator.DateLayout),
		EndDate:      e.EndDate.Format(validator.DateLayout),
		JobId:        e.JobId,
		DepartmentId: e.DepartmentId,
	}
}

type Response struct {
	EmployeeId   int64  `json:"employee_id"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	JobId        int64  `json:"job_id"`
	DepartmentId *int64 `json:"department_id,omitempty"`
}

type CreateRequest struct {
	EmployeeId   int64  `json:"employee_id" validate:"required,gt=0"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	JobId        int64  `json:"job_id" validate:"required,gt=0"`
	DepartmentId *int64 `json:"department_id" validate:"omitempty,gt=0"`
}

// ToEntity вызывается после валидации формата дат
func (req *CreateRequest) ToEntity() Entity {
	start, _ := time.Parse(validator.DateLayout, req.StartDate)
	end, _ := time.Parse(validator.DateLayout, req.EndDate)
	return Entity{
		EmployeeId:   req.EmployeeId,
		StartDate:    start,
		EndDate:      end,
		JobId:        req.JobId,
		DepartmentId: req.DepartmentId,
	}
}
