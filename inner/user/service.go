package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hrm/inner/common"
	"hrm/inner/database"
	"hrm/inner/validator"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo      Repo
	validator Validator
	logger    *common.Logger
	cost      int
}

type Repo interface {
	FindById(ctx context.Context, id int64) (Entity, error)
	FindByUsername(ctx context.Context, username string) (Entity, error)
	FindAll(ctx context.Context) ([]Entity, error)
	Add(ctx context.Context, user *Entity) error
	DeleteById(ctx context.Context, id int64) error
}

type Validator interface {
	Validate(request any) error
}

func NewService(repo Repo, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		logger:    logger,
		cost:      bcrypt.DefaultCost,
	}
}

func (svc *Service) CreateUser(ctx context.Context, request CreateRequest) (Response, error) {
	svc.logger.Info("Creating new user", zap.String("username", request.Username))

	if err := svc.validator.Validate(request); err != nil {
		svc.logger.Warn("User creation request validation failed",
			zap.String("username", request.Username),
			zap.Error(err))
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), svc.cost)
	if err != nil {
		return Response{}, fmt.Errorf("error hashing password: %w", err)
	}
	user := Entity{
		Username:     request.Username,
		PasswordHash: string(hash),
		Role:         request.Role,
	}
	err = svc.repo.Add(ctx, &user)
	if database.IsUniqueViolation(err) {
		return Response{}, common.AlreadyExistsError{Message: fmt.Sprintf("user %s already exists", request.Username)}
	}
	if err != nil {
		svc.logger.Error("Failed to add user", zap.String("username", request.Username), zap.Error(err))
		return Response{}, fmt.Errorf("error adding user: %w", err)
	}

	svc.logger.Info("User created", zap.Int64("id", user.Id), zap.String("role", user.Role))
	return user.toResponse(), nil
}

// Login проверяет пароль; отсутствие пользователя и неверный пароль неразличимы для клиента
func (svc *Service) Login(ctx context.Context, request LoginRequest) (Response, error) {
	if err := svc.validator.Validate(request); err != nil {
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}

	user, err := svc.repo.FindByUsername(ctx, request.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.UnauthorizedError{Message: "invalid username or password"}
	}
	if err != nil {
		return Response{}, fmt.Errorf("error finding user %s: %w", request.Username, err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		svc.logger.Warn("Login failed", zap.String("username", request.Username), zap.Error(err))
		return Response{}, common.UnauthorizedError{Message: "invalid username or password"}
	}
	return user.toResponse(), nil
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	user, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	if err != nil {
		return Response{}, fmt.Errorf("error finding user with id %d: %w", id, err)
	}
	return user.toResponse(), nil
}

func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	users, err := svc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding all users: %w", err)
	}
	var responses = make([]Response, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.toResponse())
	}
	return responses, nil
}

func (svc *Service) DeleteById(ctx context.Context, id int64) error {
	err := svc.repo.DeleteById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return common.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
	}
	if err != nil {
		return fmt.Errorf("error deleting user with id %d: %w", id, err)
	}
	return nil
}
