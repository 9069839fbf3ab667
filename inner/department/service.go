package department

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hrm/inner/common"
	"hrm/inner/database"
	"hrm/inner/validator"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Service struct {
	repo      Repo
	validator Validator
	logger    *common.Logger
}

type Repo interface {
	FindById(ctx context.Context, id int64) (Entity, error)
	FindAll(ctx context.Context) ([]Entity, error)
	BeginTransaction(ctx context.Context) (*sqlx.Tx, error)
	FindByNameTx(ctx context.Context, tx *sqlx.Tx, name string) (bool, error)
	SaveTx(ctx context.Context, tx *sqlx.Tx, department Entity) (int64, error)
	Update(ctx context.Context, department Entity) error
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
	}
}

// CreateDepartment имя отдела уникально: отчёты группируют сотрудников по имени
func (svc *Service) CreateDepartment(ctx context.Context, request CreateRequest) (int64, error) {
	svc.logger.Info("Creating new department", zap.String("name", request.Name))

	if err := svc.validator.Validate(request); err != nil {
		svc.logger.Warn("Department creation request validation failed",
			zap.String("name", request.Name),
			zap.Error(err))
		return 0, validator.ToRequestError(err, "Data validation error")
	}

	var id int64
	err := database.WithTx(ctx, svc.repo.BeginTransaction, func(tx *sqlx.Tx) error {
		isExist, err := svc.repo.FindByNameTx(ctx, tx, request.Name)
		if err != nil {
			return fmt.Errorf("error finding department by name %s: %w", request.Name, err)
		}
		if isExist {
			return common.AlreadyExistsError{Message: fmt.Sprintf("department with name %s already exists", request.Name)}
		}
		id, err = svc.repo.SaveTx(ctx, tx, request.ToEntity())
		if err != nil {
			return svc.writeError(err, request.Name)
		}
		return nil
	})
	if err != nil {
		svc.logger.Error("Failed to create department",
			zap.String("name", request.Name),
			zap.Error(err))
		return 0, err
	}
	svc.logger.Info("Department created successfully",
		zap.String("name", request.Name),
		zap.Int64("id", id))
	return id, nil
}

func (svc *Service) writeError(err error, name string) error {
	switch {
	case database.IsUniqueViolation(err):
		return common.AlreadyExistsError{Message: fmt.Sprintf("department with name %s already exists", name)}
	case database.IsForeignKeyViolation(err):
		return common.RequestValidationError{Message: "location does not exist"}
	default:
		return fmt.Errorf("error saving department %s: %w", name, err)
	}
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	entity, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to find department by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding department with id %d: %w", id, err)
	}
	return entity.toResponse(), nil
}

func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	entities, err := svc.repo.FindAll(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all departments", zap.Error(err))
		return nil, fmt.Errorf("error finding all departments: %w", err)
	}
	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	return responses, nil
}

func (svc *Service) UpdateDepartment(ctx context.Context, id int64, request UpdateRequest) (Response, error) {
	if err := svc.validator.Validate(request); err != nil {
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}

	entity := request.ToEntity(id)
	err := svc.repo.Update(ctx, entity)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to update department",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, svc.writeError(err, request.Name)
	}
	svc.logger.Info("Department updated", zap.Int64("id", id))
	return entity.toResponse(), nil
}

func (svc *Service) DeleteById(ctx context.Context, id int64) error {
	err := svc.repo.DeleteById(ctx, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.NewNotFoundError(fmt.Sprintf("department with id %d not found", id))
	case database.IsForeignKeyViolation(err):
		return common.RequestValidationError{Message: fmt.Sprintf("department with id %d is still referenced by job history", id)}
	case err != nil:
		svc.logger.Error("Failed to delete department",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("error deleting department with id %d: %w", id, err)
	}
	svc.logger.Info("Department deleted", zap.Int64("id", id))
	return nil
}
