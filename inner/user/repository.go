package user

import (
	"context"

	"hrm/inner/database"

	"github.com/jmoiron/sqlx"
)

const columns = "id, username, password_hash, role, created_at"

type Repository struct {
	db *sqlx.DB
}

func NewUserRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

func (r *Repository) FindById(ctx context.Context, id int64) (user Entity, err error) {
	err = r.db.GetContext(ctx, &user, "SELECT "+columns+" FROM users WHERE id = $1", id)
	return user, err
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (user Entity, err error) {
	err = r.db.GetContext(ctx, &user, "SELECT "+columns+" FROM users WHERE username = $1", username)
	return user, err
}

func (r *Repository) FindAll(ctx context.Context) ([]Entity, error) {
	var users []Entity
	err := r.db.SelectContext(ctx, &users, "SELECT "+columns+" FROM users ORDER BY id")
	return users, err
}

func (r *Repository) Add(ctx context.Context, user *Entity) error {
	return r.db.QueryRowxContext(ctx,
		"INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at",
		user.Username, user.PasswordHash, user.Role,
	).Scan(&user.Id, &user.CreatedAt)
}

func (r *Repository) DeleteById(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	return database.RequireAffected(result)
}
