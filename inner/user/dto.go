package user

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type Entity struct {
	Id           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// toResponse хэш пароля наружу не отдаётся
func (e Entity) toResponse() Response {
	return Response{
		Id:        e.Id,
		Username:  e.Username,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}

type Response struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50,alphanum"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
	Role     string `json:"role" validate:"required,oneof=ADMIN USER"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
