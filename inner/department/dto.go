package department

type Entity struct {
	Id         int64  `db:"id"`
	Name       string `db:"name"`
	ManagerId  *int64 `db:"manager_id"`
	LocationId *int64 `db:"location_id"`
}

func (e Entity) toResponse() Response {
	return Response{
		Id:         e.Id,
		Name:       e.Name,
		ManagerId:  e.ManagerId,
		LocationId: e.LocationId,
	}
}

type Response struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	ManagerId  *int64 `json:"manager_id,omitempty"`
	LocationId *int64 `json:"location_id,omitempty"`
}

type CreateRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=30"`
	ManagerId  *int64 `json:"manager_id" validate:"omitempty,gt=0"`
	LocationId *int64 `json:"location_id" validate:"omitempty,gt=0"`
}

func (req *CreateRequest) ToEntity() Entity {
	return Entity{
		Name:       req.Name,
		ManagerId:  req.ManagerId,
		LocationId: req.LocationId,
	}
}

type UpdateRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=30"`
	ManagerId  *int64 `json:"manager_id" validate:"omitempty,gt=0"`
	LocationId *int64 `json:"location_id" validate:"omitempty,gt=0"`
}

func (req *UpdateRequest) ToEntity(id int64) Entity {
	return Entity{
		Id:         id,
		Name:       req.Name,
		ManagerId:  req.ManagerId,
		LocationId: req.LocationId,
	}
}
