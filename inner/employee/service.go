package employee

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
	FindByIds(ctx context.Context, ids []int64) ([]Entity, error)
	FindByManagerId(ctx context.Context, managerId int64) ([]Entity, error)
	FindWithPagination(ctx context.Context, limit, offset int) ([]Entity, error)
	CountAll(ctx context.Context) (int64, error)
	BeginTransaction(ctx context.Context) (*sqlx.Tx, error)
	FindByEmailTx(ctx context.Context, tx *sqlx.Tx, email string) (bool, error)
	SaveTx(ctx context.Context, tx *sqlx.Tx, employee Entity) (int64, error)
	Update(ctx context.Context, employee Entity) error
	DeleteById(ctx context.Context, id int64) error
	DeleteByIds(ctx context.Context, ids []int64) error
}

type Validator interface {
	Validate(request any) error
}

// функция-конструктор
func NewService(repo Repo, validator Validator, logger *common.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// Метод для создания нового сотрудника
// принимает на вход CreateRequest - структура запроса на создание сотрудника
func (svc *Service) CreateEmployee(ctx context.Context, request CreateRequest) (int64, error) {
	svc.logger.Info("Creating new employee", zap.String("email", request.Email))

	if err := svc.validator.Validate(request); err != nil {
		svc.logger.Warn("Employee creation request validation failed",
			zap.String("email", request.Email),
			zap.Error(err))
		return 0, validator.ToRequestError(err, "Data validation error")
	}

	var id int64
	err := database.WithTx(ctx, svc.repo.BeginTransaction, func(tx *sqlx.Tx) error {
		// в рамках транзакции проверяем, что email ещё не занят
		isExist, err := svc.repo.FindByEmailTx(ctx, tx, request.Email)
		if err != nil {
			return fmt.Errorf("error finding employee by email %s: %w", request.Email, err)
		}
		if isExist {
			return common.AlreadyExistsError{Message: fmt.Sprintf("employee with email %s already exists", request.Email)}
		}
		id, err = svc.repo.SaveTx(ctx, tx, request.ToEntity())
		if err != nil {
			return svc.writeError(err, request.Email)
		}
		return nil
	})
	if err != nil {
		if errors.As(err, &common.RequestValidationError{}) || errors.As(err, &common.AlreadyExistsError{}) {
			svc.logger.Warn("Employee rejected",
				zap.String("email", request.Email),
				zap.Error(err))
		} else {
			svc.logger.Error("Failed to create employee",
				zap.String("email", request.Email),
				zap.Error(err))
		}
		return 0, err
	}
	svc.logger.Info("Employee created successfully",
		zap.String("email", request.Email),
		zap.Int64("id", id))
	return id, nil
}

// writeError переводит нарушения ограничений БД в ошибки запроса
func (svc *Service) writeError(err error, email string) error {
	switch {
	case database.IsUniqueViolation(err):
		return common.AlreadyExistsError{Message: fmt.Sprintf("employee with email %s already exists", email)}
	case database.IsForeignKeyViolation(err):
		return common.RequestValidationError{Message: "job, department or manager does not exist"}
	default:
		return fmt.Errorf("error saving employee with email %s: %w", email, err)
	}
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	svc.logger.Debug("Finding employee by ID", zap.Int64("id", id))

	var entity, err = svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to find employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, fmt.Errorf("error finding employee with id %d: %w", id, err)
	}
	return entity.toResponse(), nil
}

func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	entities, err := svc.repo.FindAll(ctx)
	if err != nil {
		svc.logger.Error("Failed to find all employees", zap.Error(err))
		return nil, fmt.Errorf("error finding all employees: %w", err)
	}
	svc.logger.Debug("Found all employees", zap.Int("count", len(entities)))
	return toResponses(entities), nil
}

func (svc *Service) FindByIds(ctx context.Context, ids []int64) ([]Response, error) {
	svc.logger.Debug("Finding employees by IDs", zap.Int64s("ids", ids))

	entities, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		svc.logger.Error("Failed to find employees by IDs",
			zap.Int64s("ids", ids),
			zap.Error(err))
		return nil, fmt.Errorf("error finding employees by ids: %w", err)
	}
	return toResponses(entities), nil
}

// FindSubordinates прямые подчинённые; руководитель должен существовать
func (svc *Service) FindSubordinates(ctx context.Context, managerId int64) ([]Response, error) {
	if _, err := svc.FindById(ctx, managerId); err != nil {
		return nil, err
	}
	entities, err := svc.repo.FindByManagerId(ctx, managerId)
	if err != nil {
		svc.logger.Error("Failed to find subordinates",
			zap.Int64("manager_id", managerId),
			zap.Error(err))
		return nil, fmt.Errorf("error finding subordinates of employee %d: %w", managerId, err)
	}
	return toResponses(entities), nil
}

func (svc *Service) FindWithPagination(ctx context.Context, request PageRequest) (PageResponse, error) {
	svc.logger.Debug("Finding employees with pagination",
		zap.Int("pageNumber", request.PageNumber),
		zap.Int("pageSize", request.PageSize))

	if err := svc.validator.Validate(request); err != nil {
		svc.logger.Warn("Validation failed for pagination request",
			zap.Int("pageNumber", request.PageNumber),
			zap.Int("pageSize", request.PageSize),
			zap.Error(err))
		return PageResponse{}, validator.ToRequestError(err, "Invalid pagination request")
	}

	offset := (request.PageNumber - 1) * request.PageSize

	entities, err := svc.repo.FindWithPagination(ctx, request.PageSize, offset)
	if err != nil {
		svc.logger.Error("Failed to find employees with pagination",
			zap.Int("pageSize", request.PageSize),
			zap.Int("offset", offset),
			zap.Error(err))
		return PageResponse{}, fmt.Errorf("error finding employees with pagination: %w", err)
	}

	// Общее количество записей
	totalCount, err := svc.repo.CountAll(ctx)
	if err != nil {
		svc.logger.Error("Failed to count total employees", zap.Error(err))
		return PageResponse{}, fmt.Errorf("error counting total employees: %w", err)
	}

	totalPages := int((totalCount + int64(request.PageSize) - 1) / int64(request.PageSize))

	return PageResponse{
		Data:       toResponses(entities),
		PageNumber: request.PageNumber,
		PageSize:   request.PageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

func (svc *Service) UpdateEmployee(ctx context.Context, id int64, request UpdateRequest) (Response, error) {
	svc.logger.Info("Updating employee", zap.Int64("id", id))

	if err := svc.validator.Validate(request); err != nil {
		svc.logger.Warn("Employee update request validation failed",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}
	if request.ManagerId != nil && *request.ManagerId == id {
		return Response{}, common.RequestValidationError{Message: "employee cannot be their own manager"}
	}

	entity := request.ToEntity(id)
	err := svc.repo.Update(ctx, entity)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to update employee",
			zap.Int64("id", id),
			zap.Error(err))
		return Response{}, svc.writeError(err, request.Email)
	}
	svc.logger.Info("Employee updated successfully", zap.Int64("id", id))
	return entity.toResponse(), nil
}

func (svc *Service) DeleteById(ctx context.Context, id int64) error {
	svc.logger.Info("Deleting employee by ID", zap.Int64("id", id))

	err := svc.repo.DeleteById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return common.NewNotFoundError(fmt.Sprintf("employee with id %d not found", id))
	}
	if err != nil {
		svc.logger.Error("Failed to delete employee by ID",
			zap.Int64("id", id),
			zap.Error(err))
		return fmt.Errorf("error deleting employee with id %d: %w", id, err)
	}
	return nil
}

func (svc *Service) DeleteByIds(ctx context.Context, ids []int64) error {
	svc.logger.Info("Deleting employees by IDs", zap.Int64s("ids", ids))

	err := svc.repo.DeleteByIds(ctx, ids)
	if err != nil {
		svc.logger.Error("Failed to delete employees by IDs",
			zap.Int64s("ids", ids),
			zap.Error(err))
		return fmt.Errorf("error deleting employees with ids: %w", err)
	}
	return nil
}

func toResponses(entities []Entity) []Response {
	responses := make([]Response, len(entities))
	for i, entity := range entities {
		responses[i] = entity.toResponse()
	}
	return responses
}
