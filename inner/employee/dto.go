package employee

import (
	"time"

	"hrm/inner/validator"

	"github.com/shopspring/decimal"
)

type Entity struct {
	Id            int64               `db:"id"`
	FirstName     *string             `db:"first_name"`
	LastName      *string             `db:"last_name"`
	Email         string              `db:"email"`
	PhoneNumber   *string             `db:"phone_number"`
	HireDate      time.Time           `db:"hire_date"`
	JobId         int64               `db:"job_id"`
	Salary        decimal.NullDecimal `db:"salary"`
	CommissionPct decimal.NullDecimal `db:"commission_pct"`
	ManagerId     *int64              `db:"manager_id"`
	DepartmentId  *int64              `db:"department_id"`
}

func (e Entity) toResponse() Response {
	return Response{
		Id:            e.Id,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		HireDate:      e.HireDate.Format(validator.DateLayout),
		JobId:         e.JobId,
		Salary:        nullable(e.Salary),
		CommissionPct: nullable(e.CommissionPct),
		ManagerId:     e.ManagerId,
		DepartmentId:  e.DepartmentId,
	}
}

func nullable(value decimal.NullDecimal) *decimal.Decimal {
	if !value.Valid {
		return nil
	}
	return &value.Decimal
}

func notNull(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*value)
}

type Response struct {
	Id            int64            `json:"id"`
	FirstName     *string          `json:"first_name,omitempty"`
	LastName      *string          `json:"last_name,omitempty"`
	Email         string           `json:"email"`
	PhoneNumber   *string          `json:"phone_number,omitempty"`
	HireDate      string           `json:"hire_date"`
	JobId         int64            `json:"job_id"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	CommissionPct *decimal.Decimal `json:"commission_pct,omitempty"`
	ManagerId     *int64           `json:"manager_id,omitempty"`
	DepartmentId  *int64           `json:"department_id,omitempty"`
}

// CreateRequest запрос на создание сотрудника
type CreateRequest struct {
	FirstName     *string          `json:"first_name" validate:"omitempty,max=20"`
	LastName      *string          `json:"last_name" validate:"omitempty,max=25"`
	Email         string           `json:"email" validate:"required,email,max=100"`
	PhoneNumber   *string          `json:"phone_number" validate:"omitempty,max=20"`
	HireDate      string           `json:"hire_date" validate:"required,datetime=2006-01-02"`
	JobId         int64            `json:"job_id" validate:"required,gt=0"`
	Salary        *decimal.Decimal `json:"salary" validate:"omitempty,gte=0"`
	CommissionPct *decimal.Decimal `json:"commission_pct" validate:"omitempty,commission"`
	ManagerId     *int64           `json:"manager_id" validate:"omitempty,gt=0"`
	DepartmentId  *int64           `json:"department_id" validate:"omitempty,gt=0"`
}

// ToEntity вызывается после валидации, поэтому дата уже в правильном формате
func (req *CreateRequest) ToEntity() Entity {
	hireDate, _ := time.Parse(validator.DateLayout, req.HireDate)
	return Entity{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		HireDate:      hireDate,
		JobId:         req.JobId,
		Salary:        notNull(req.Salary),
		CommissionPct: notNull(req.CommissionPct),
		ManagerId:     req.ManagerId,
		DepartmentId:  req.DepartmentId,
	}
}

// UpdateRequest полностью заменяет данные сотрудника
type UpdateRequest struct {
	FirstName     *string          `json:"first_name" validate:"omitempty,max=20"`
	LastName      *string          `json:"last_name" validate:"omitempty,max=25"`
	Email         string           `json:"email" validate:"required,email,max=100"`
	PhoneNumber   *string          `json:"phone_number" validate:"omitempty,max=20"`
	HireDate      string           `json:"hire_date" validate:"required,datetime=2006-01-02"`
	JobId         int64            `json:"job_id" validate:"required,gt=0"`
	Salary        *decimal.Decimal `json:"salary" validate:"omitempty,gte=0"`
	CommissionPct *decimal.Decimal `json:"commission_pct" validate:"omitempty,commission"`
	ManagerId     *int64           `json:"manager_id" validate:"omitempty,gt=0"`
	DepartmentId  *int64           `json:"department_id" validate:"omitempty,gt=0"`
}

func (req *UpdateRequest) ToEntity(id int64) Entity {
	var entity = (*CreateRequest)(req).ToEntity()
	entity.Id = id
	return entity
}

type IdsRequest struct {
	Ids []int64 `json:"ids"`
}

// PageRequest параметры постраничной выборки
type PageRequest struct {
	PageNumber int `query:"pageNumber" validate:"min=1"`
	PageSize   int `query:"pageSize" validate:"min=1,max=100"`
}

type PageResponse struct {
	Data       []Response `json:"data"`
	PageNumber int        `json:"pageNumber"`
	PageSize   int        `json:"pageSize"`
	TotalCount int64      `json:"totalCount"`
	TotalPages int        `json:"totalPages"`
}
