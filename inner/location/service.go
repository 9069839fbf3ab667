package location

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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
	AddRegion(ctx context.Context, region *RegionEntity) error
	FindRegionById(ctx context.Context, id int64) (RegionEntity, error)
	FindAllRegions(ctx context.Context) ([]RegionEntity, error)
	DeleteRegion(ctx context.Context, id int64) error

	AddCountry(ctx context.Context, country CountryEntity) error
	FindCountryById(ctx context.Context, id string) (CountryEntity, error)
	FindAllCountries(ctx context.Context) ([]CountryEntity, error)
	DeleteCountry(ctx context.Context, id string) error

	Add(ctx context.Context, location *Entity) error
	FindById(ctx context.Context, id int64) (Entity, error)
	FindAll(ctx context.Context) ([]Entity, error)
	Update(ctx context.Context, location Entity) error
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

// deleteError одинаково разбирает ошибку удаления для всех справочников
func deleteError(err error, what string) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return common.NewNotFoundError(what + " not found")
	case database.IsForeignKeyViolation(err):
		return common.RequestValidationError{Message: what + " is still referenced"}
	case err != nil:
		return fmt.Errorf("error deleting %s: %w", what, err)
	}
	return nil
}

func (svc *Service) CreateRegion(ctx context.Context, request CreateRegionRequest) (RegionResponse, error) {
	if err := svc.validator.Validate(request); err != nil {
		return RegionResponse{}, validator.ToRequestError(err, "Data validation error")
	}
	region := RegionEntity{Name: request.Name}
	if err := svc.repo.AddRegion(ctx, &region); err != nil {
		svc.logger.Error("Failed to add region", zap.String("name", request.Name), zap.Error(err))
		return RegionResponse{}, fmt.Errorf("error adding region: %w", err)
	}
	svc.logger.Info("Region created", zap.Int64("id", region.Id))
	return region.toResponse(), nil
}

func (svc *Service) FindRegionById(ctx context.Context, id int64) (RegionResponse, error) {
	region, err := svc.repo.FindRegionById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return RegionResponse{}, common.NewNotFoundError(fmt.Sprintf("region with id %d not found", id))
	}
	if err != nil {
		return RegionResponse{}, fmt.Errorf("error finding region with id %d: %w", id, err)
	}
	return region.toResponse(), nil
}

func (svc *Service) FindAllRegions(ctx context.Context) ([]RegionResponse, error) {
	regions, err := svc.repo.FindAllRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding all regions: %w", err)
	}
	var responses = make([]RegionResponse, 0, len(regions))
	for _, region := range regions {
		responses = append(responses, region.toResponse())
	}
	return responses, nil
}

func (svc *Service) DeleteRegion(ctx context.Context, id int64) error {
	return deleteError(svc.repo.DeleteRegion(ctx, id), fmt.Sprintf("region with id %d", id))
}

func (svc *Service) CreateCountry(ctx context.Context, request CreateCountryRequest) (CountryResponse, error) {
	if err := svc.validator.Validate(request); err != nil {
		return CountryResponse{}, validator.ToRequestError(err, "Data validation error")
	}
	country := CountryEntity{
		Id:       strings.ToUpper(request.Id),
		Name:     request.Name,
		RegionId: request.RegionId,
	}
	err := svc.repo.AddCountry(ctx, country)
	switch {
	case database.IsUniqueViolation(err):
		return CountryResponse{}, common.AlreadyExistsError{Message: fmt.Sprintf("country with id %s already exists", country.Id)}
	case database.IsForeignKeyViolation(err):
		return CountryResponse{}, common.RequestValidationError{Message: fmt.Sprintf("region with id %d not found", *country.RegionId)}
	case err != nil:
		svc.logger.Error("Failed to add country", zap.String("id", country.Id), zap.Error(err))
		return CountryResponse{}, fmt.Errorf("error adding country: %w", err)
	}
	svc.logger.Info("Country created", zap.String("id", country.Id))
	return country.toResponse(), nil
}

func (svc *Service) FindCountryById(ctx context.Context, id string) (CountryResponse, error) {
	id = strings.ToUpper(id)
	country, err := svc.repo.FindCountryById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return CountryResponse{}, common.NewNotFoundError(fmt.Sprintf("country with id %s not found", id))
	}
	if err != nil {
		return CountryResponse{}, fmt.Errorf("error finding country with id %s: %w", id, err)
	}
	return country.toResponse(), nil
}

func (svc *Service) FindAllCountries(ctx context.Context) ([]CountryResponse, error) {
	countries, err := svc.repo.FindAllCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding all countries: %w", err)
	}
	var responses = make([]CountryResponse, 0, len(countries))
	for _, country := range countries {
		responses = append(responses, country.toResponse())
	}
	return responses, nil
}

func (svc *Service) DeleteCountry(ctx context.Context, id string) error {
	id = strings.ToUpper(id)
	return deleteError(svc.repo.DeleteCountry(ctx, id), fmt.Sprintf("country with id %s", id))
}

func (svc *Service) CreateLocation(ctx context.Context, request CreateRequest) (Response, error) {
	if err := svc.validator.Validate(request); err != nil {
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}
	location := request.ToEntity(0)
	err := svc.repo.Add(ctx, &location)
	if database.IsForeignKeyViolation(err) {
		return Response{}, common.RequestValidationError{Message: fmt.Sprintf("country with id %s not found", *location.CountryId)}
	}
	if err != nil {
		svc.logger.Error("Failed to add location", zap.String("city", location.City), zap.Error(err))
		return Response{}, fmt.Errorf("error adding location: %w", err)
	}
	svc.logger.Info("Location created", zap.Int64("id", location.Id))
	return location.toResponse(), nil
}

func (svc *Service) FindById(ctx context.Context, id int64) (Response, error) {
	location, err := svc.repo.FindById(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Response{}, common.NewNotFoundError(fmt.Sprintf("location with id %d not found", id))
	}
	if err != nil {
		return Response{}, fmt.Errorf("error finding location with id %d: %w", id, err)
	}
	return location.toResponse(), nil
}

func (svc *Service) FindAll(ctx context.Context) ([]Response, error) {
	locations, err := svc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding all locations: %w", err)
	}
	var responses = make([]Response, 0, len(locations))
	for _, location := range locations {
		responses = append(responses, location.toResponse())
	}
	return responses, nil
}

func (svc *Service) UpdateLocation(ctx context.Context, id int64, request CreateRequest) (Response, error) {
	if err := svc.validator.Validate(request); err != nil {
		return Response{}, validator.ToRequestError(err, "Data validation error")
	}
	location := request.ToEntity(id)
	err := svc.repo.Update(ctx, location)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Response{}, common.NewNotFoundError(fmt.Sprintf("location with id %d not found", id))
	case database.IsForeignKeyViolation(err):
		return Response{}, common.RequestValidationError{Message: fmt.Sprintf("country with id %s not found", *location.CountryId)}
	case err != nil:
		svc.logger.Error("Failed to update location", zap.Int64("id", id), zap.Error(err))
		return Response{}, fmt.Errorf("error updating location with id %d: %w", id, err)
	}
	return location.toResponse(), nil
}

func (svc *Service) DeleteById(ctx context.Context, id int64) error {
	return deleteError(svc.repo.DeleteById(ctx, id), fmt.Sprintf("location with id %d", id))
}
