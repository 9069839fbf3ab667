package job

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hrm/inner/common"
	"hrm/inner/database"
	"hrm/inner/validator"

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
	Add(ctx context.Context, job *Entity) error
	Update(ctx context.Context, job Entity) error
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

func (svc *Service) CreateJob(ctx context.Context, request CreateRequest) (Response, error) {
	svc.logger.Info("Creating new job", zap.String("title", request.Title))

	if err := svc.validator.Validate(request); err != nil {
		svc.logger.Warn("Job creation request validation failed",
			zap.String("title", request.Title),
			zap.Error(err))
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}
	if request.MinSalary != nil && request.MaxSalary != nil && !request.MaxSalary.GreaterThan(*request.MinSalary) {
		return Response{}, common.RequestValidationError{
			Message: fmt.Sprintf("max salary %s must be greater than min salary %s", request.MaxSalary, request.MinSalary),
		}
	}

	entity := request.ToEntity()
	if err := svc.repo.Add(ctx, &entity); err != nil {
		svc.logger.Error("Failed to add job",
			zap.String("title", request.Title),
			zap.Error(err))
		return Response{}, fmt.Errorf("error adding job: %w", err)
	}
	svc.logger.Info("Job created", zap.Int64("id", entity.Id))
	return entity.toResponse(), nil
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	entity, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("job with id %d not found", id))
	}
	if err != nil {
		return Response{}, fmt.Errorf("error finding job with id %d: %w", id, err)
	}
	return entity.toResponse(), nil
}

func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	entities, err := svc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding all jobs: %w", err)
	}
	var responses = make([]Response, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, entity.toResponse())
	}
	return responses, nil
}

func (svc *Service) UpdateJob(ctx context.Context, id int64, request UpdateRequest) (Response, error) {
	if err := svc.validator.Validate(request); err != nil {
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}
	entity := request.ToEntity(id)
	err := svc.repo.Update(ctx, entity)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("job with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to update job", zap.Int64("id", id), zap.Error(err))
		return Response{}, fmt.Errorf("error updating job with id %d: %w", id, err)
	}
	return entity.toResponse(), nil
}

func (svc *Service) DeleteById(ctx context.Context, id int64) error {
	err := svc.repo.DeleteById(ctx, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.NewNotFoundError(fmt.Sprintf("job with id %d not found", id))
	case database.IsForeignKeyViolation(err):
		return common.RequestValidationError{Message: fmt.Sprintf("job with id %d is still held by employees", id)}
	case err != nil:
		svc.logger.Error("Failed to delete job", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("error deleting job with id %d: %w", id, err)
	}
	return nil
}
