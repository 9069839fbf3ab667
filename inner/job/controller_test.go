package job

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

func (m *MockService) CreateJob(ctx context.Context, request CreateRequest) (Response, error) {
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

func (m *MockService) UpdateJob(ctx context.Context, id int64, request UpdateRequest) (Response, error) {
	args := m.Called(ctx, id, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) DeleteById(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestController(t *testing.T) (*MockService, *fiber.App) {
	app := fiber.New()
	server := &web.Server{App: app, GroupApiV1: app.Group("/api/v1")}
	mockService := &MockService{}
	NewController(server, mockService, &common.Logger{Logger: zaptest.NewLogger(t)}).RegisterRoutes()
	return mockService, app
}

func TestController_CreateJob(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService, app := setupTestController(t)
		mockService.On("CreateJob", mock.Anything, mock.AnythingOfType("CreateRequest")).
			Return(Response{Id: 9, Title: "Programmer", MinSalary: salary(4000), MaxSalary: salary(10000)}, nil)

		req := httptest.NewRequest("POST", "/api/v1/jobs",
			bytes.NewBufferString(`{"title":"Programmer","min_salary":4000,"max_salary":"10000"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var response common.Response[Response]
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
		assert.Equal(t, "Programmer", response.Data.Title)
		assert.Equal(t, "10000", response.Data.MaxSalary.String())

		sent := mockService.Calls[0].Arguments.Get(1).(CreateRequest)
		assert.Equal(t, "4000", sent.MinSalary.String())
	})

	t.Run("Range rejected", func(t *testing.T) {
		mockService, app := setupTestController(t)
		mockService.On("CreateJob", mock.Anything, mock.Anything).
			Return(Response{}, common.RequestValidationError{Message: "max salary 100 must be greater than min salary 200"})

		req := httptest.NewRequest("POST", "/api/v1/jobs",
			bytes.NewBufferString(`{"title":"Clerk","min_salary":200,"max_salary":100}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestController_JobRoutes(t *testing.T) {
	mockService, app := setupTestController(t)
	mockService.On("FindAll", mock.Anything).Return([]Response{{Id: 1, Title: "President"}}, nil)
	mockService.On("FindById", mock.Anything, int64(2)).Return(Response{}, common.NewNotFoundError("job with id 2 not found"))
	mockService.On("DeleteById", mock.Anything, int64(1)).Return(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/jobs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/jobs/2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/v1/jobs/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("PUT", "/api/v1/jobs/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
