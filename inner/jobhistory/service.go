package jobhistory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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
	FindByEmployeeId(ctx context.Context, employeeId int64) ([]Entity, error)
	BeginTransaction(ctx context.Context) (*sqlx.Tx, error)
	ExistsTx(ctx context.Context, tx *sqlx.Tx, employeeId int64, startDate time.Time) (bool, error)
	SaveTx(ctx context.Context, tx *sqlx.Tx, record Entity) error
	Delete(ctx context.Context, employeeId int64, startDate time.Time) error
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

func (svc *Service) CreateRecord(ctx context.Context, request CreateRequest) (Response, error) {
	svc.logger.Info("Creating job history record",
		zap.Int64("employee_id", request.EmployeeId),
		zap.String("start_date", request.StartDate))

	if err := svc.validator.Validate(request); err != nil {
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}
	record := request.ToEntity()
	if record.EndDate.Before(record.StartDate) {
		return Response{}, common.RequestValidationError{
			Message: fmt.Sprintf("end date %s is before start date %s", request.EndDate, request.StartDate),
		}
	}

	err := database.WithTx(ctx, svc.repo.BeginTransaction, func(tx *sqlx.Tx) error {
		isExist, err := svc.repo.ExistsTx(ctx, tx, record.EmployeeId, record.StartDate)
		if err != nil {
			return fmt.Errorf("error checking job history of employee %d: %w", record.EmployeeId, err)
		}
		if isExist {
			return svc.alreadyExists(request)
		}
		err = svc.repo.SaveTx(ctx, tx, record)
		switch {
		case database.IsUniqueViolation(err):
			return svc.alreadyExists(request)
		case database.IsForeignKeyViolation(err):
			return common.RequestValidationError{Message: "employee, job or department does not exist"}
		case err != nil:
			return fmt.Errorf("error saving job history of employee %d: %w", record.EmployeeId, err)
		}
		return nil
	})
	if err != nil {
		svc.logger.Warn("Failed to create job history record",
			zap.Int64("employee_id", request.EmployeeId),
			zap.Error(err))
		return Response{}, err
	}
	return record.toResponse(), nil
}

func (svc *Service) alreadyExists(request CreateRequest) error {
	return common.AlreadyExistsError{
		Message: fmt.Sprintf("job history of employee %d starting %s already exists", request.EmployeeId, request.StartDate),
	}
}

func (svc *Service) FindByEmployeeId(ctx context.Context, employeeId int64) ([]Response, error) {
	history, err := svc.repo.FindByEmployeeId(ctx, employeeId)
	if err != nil {
		svc.logger.Error("Failed to find job history",
			zap.Int64("employee_id", employeeId),
			zap.Error(err))
		return nil, fmt.Errorf("error finding job history of employee %d: %w", employeeId, err)
	}
	responses := make([]Response, len(history))
	for i, record := range history {
		responses[i] = record.toResponse()
	}
	return responses, nil
}

func (svc *Service) DeleteRecord(ctx context.Context, employeeId int64, startDate string) error {
	start, err := time.Parse(validator.DateLayout, startDate)
	if err != nil {
		return common.RequestValidationError{Message: fmt.Sprintf("startDate must be a date in format %s", validator.DateLayout)}
	}
	err = svc.repo.Delete(ctx, employeeId, start)
	if errors.Is(err, sql.ErrNoRows) {
		return common.NewNotFoundError(fmt.Sprintf("job history of employee %d starting %s not found", employeeId, startDate))
	}
	if err != nil {
		return fmt.Errorf("error deleting job history of employee %d: %w", employeeId, err)
	}
	return nil
}
