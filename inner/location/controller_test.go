package location

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateRegion(ctx context.Context, request CreateRegionRequest) (RegionResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(RegionResponse), args.Error(1)
}

func (m *MockService) FindRegionById(ctx context.Context, id int64) (RegionResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(RegionResponse), args.Error(1)
}

func (m *MockService) FindAllRegions(ctx context.Context) ([]RegionResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]RegionResponse), args.Error(1)
}

func (m *MockService) DeleteRegion(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) CreateCountry(ctx context.Context, request CreateCountryRequest) (CountryResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(CountryResponse), args.Error(1)
}

func (m *MockService) FindCountryById(ctx context.Context, id string) (CountryResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(CountryResponse), args.Error(1)
}

func (m *MockService) FindAllCountries(ctx context.Context) ([]CountryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]CountryResponse), args.Error(1)
}

func (m *MockService) DeleteCountry(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockService) CreateLocation(ctx context.Context, request CreateRequest) (Response, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) FindById(ctx context.Context, id int64) (Response, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) FindAll(ctx context.Context) ([]Response, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Response), args.Error(1)
}

func (m *MockService) UpdateLocation(ctx context.Context, id int64, request CreateRequest) (Response, error) {
	args := m.Called(ctx, id, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) DeleteById(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupTestController(t *testing.T) (*MockService, *fiber.App) {
	app := fiber.New()
	server := &web.Server{App: app, GroupApiV1: app.Group("/api/v1")}
	mockService := &MockService{}
	NewController(server, mockService, &common.Logger{Logger: zaptest.NewLogger(t)}).RegisterRoutes()
	return mockService, app
}

func TestController_CreateLocation(t *testing.T) {
	mockService, app := setupTestController(t)
	mockService.On("CreateLocation", mock.Anything, mock.AnythingOfType("CreateRequest")).
		Return(Response{Id: 2500, City: "Oxford"}, nil)

	req := httptest.NewRequest("POST", "/api/v1/locations", bytes.NewBufferString(`{"city":"Oxford","country_id":"UK"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var response common.Response[Response]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, int64(2500), response.Data.Id)

	sent := mockService.Calls[0].Arguments.Get(1).(CreateRequest)
	assert.Equal(t, "UK", *sent.CountryId)
}

func TestController_Countries(t *testing.T) {
	mockService, app := setupTestController(t)
	mockService.On("FindCountryById", mock.Anything, "ca").Return(CountryResponse{Id: "CA", Name: "Canada"}, nil)
	mockService.On("DeleteCountry", mock.Anything, "zz").Return(common.NewNotFoundError("country with id ZZ not found"))
	mockService.On("CreateCountry", mock.Anything, mock.Anything).
		Return(CountryResponse{}, common.AlreadyExistsError{Message: "country with id CA already exists"})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/countries/ca", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/countries/zz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/v1/countries", bytes.NewBufferString(`{"id":"CA","name":"Canada"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestController_RegionsAndLocations(t *testing.T) {
	mockService, app := setupTestController(t)
	mockService.On("FindAllRegions", mock.Anything).Return([]RegionResponse{{Id: 1, Name: "Europe"}}, nil)
	mockService.On("DeleteRegion", mock.Anything, int64(1)).
		Return(common.RequestValidationError{Message: "region with id 1 is still referenced"})
	mockService.On("UpdateLocation", mock.Anything, int64(1400), mock.AnythingOfType("CreateRequest")).
		Return(Response{Id: 1400, City: "Southlake"}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/regions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/regions/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/regions/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest("PUT", "/api/v1/locations/1400", bytes.NewBufferString(`{"city":"Southlake"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
