package job

import "github.com/shopspring/decimal"

type Entity struct {
	Id        int64               `db:"id"`
	Title     string              `db:"title"`
	MinSalary decimal.NullDecimal `db:"min_salary"`
	MaxSalary decimal.NullDecimal `db:"max_salary"`
}

func (e Entity) toResponse() Response {
	var response = Response{Id: e.Id, Title: e.Title}
	if e.MinSalary.Valid {
		response.MinSalary = &e.MinSalary.Decimal
	}
	if e.MaxSalary.Valid {
		response.MaxSalary = &e.MaxSalary.Decimal
	}
	return response
}

type Response struct {
	Id        int64            `json:"id"`
	Title     string           `json:"title"`
	MinSalary *decimal.Decimal `json:"min_salary,omitempty"`
	MaxSalary *decimal.Decimal `json:"max_salary,omitempty"`
}

type CreateRequest struct {
	Title     string           `json:"title" validate:"required,max=35"`
	MinSalary *decimal.Decimal `json:"min_salary" validate:"omitempty,gte=0"`
	MaxSalary *decimal.Decimal `json:"max_salary" validate:"omitempty,gte=0"`
}

func (req *CreateRequest) ToEntity() Entity {
	return Entity{
		Title:     req.Title,
		MinSalary: nullDecimal(req.MinSalary),
		MaxSalary: nullDecimal(req.MaxSalary),
	}
}

// UpdateRequest диапазон зарплат при обновлении не сверяется
type UpdateRequest struct {
	Title     string           `json:"title" validate:"required,max=35"`
	MinSalary *decimal.Decimal `json:"min_salary" validate:"omitempty,gte=0"`
	MaxSalary *decimal.Decimal `json:"max_salary" validate:"omitempty,gte=0"`
}

func (req *UpdateRequest) ToEntity(id int64) Entity {
	return Entity{
		Id:        id,
		Title:     req.Title,
		MinSalary: nullDecimal(req.MinSalary),
		MaxSalary: nullDecimal(req.MaxSalary),
	}
}

func nullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*value)
}
