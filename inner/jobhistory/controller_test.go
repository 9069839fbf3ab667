package jobhistory

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

func (m *MockService) CreateRecord(ctx context.Context, request CreateRequest) (Response, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(Response), args.Error(1)
}

func (m *MockService) FindByEmployeeId(ctx context.Context, employeeId int64) ([]Response, error) {
	args := m.Called(ctx, employeeId)
	return args.Get(0).([]Response), args.Error(1)
}

func (m *MockService) DeleteRecord(ctx context.Context, employeeId int64, startDate string) error {
	args := m.Called(ctx, employeeId, startDate)
	return args.Error(0)
}

func setupTestController(t *testing.T) (*MockService, *fiber.App) {
	app := fiber.New()
	server := &web.Server{App: app, GroupApiV1: app.Group("/api/v1")}
	mockService := &MockService{}
	NewController(server, mockService, &common.Logger{Logger: zaptest.NewLogger(t)}).RegisterRoutes()
	return mockService, app
}

func TestController_CreateRecord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService, app := setupTestController(t)
		request := validRequest()
		mockService.On("CreateRecord", mock.Anything, request).
			Return(Response{EmployeeId: 101, StartDate: "2018-07-01", EndDate: "2019-07-01", JobId: 4}, nil)

		body, _ := json.Marshal(request)
		req := httptest.NewRequest("POST", "/api/v1/job-history", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockService, app := setupTestController(t)
		mockService.On("CreateRecord", mock.Anything, mock.Anything).
			Return(Response{}, common.AlreadyExistsError{Message: "job history of employee 101 starting 2018-07-01 already exists"})

		body, _ := json.Marshal(validRequest())
		req := httptest.NewRequest("POST", "/api/v1/job-history", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestController_FindByEmployee(t *testing.T) {
	mockService, app := setupTestController(t)
	mockService.On("FindByEmployeeId", mock.Anything, int64(101)).
		Return([]Response{{EmployeeId: 101, StartDate: "2018-07-01", EndDate: "2019-07-01", JobId: 4}}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/job-history/employees/101", nil))

	require.NoError(t, err)
	var response common.Response[[]Response]
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Len(t, response.Data, 1)
}

func TestController_DeleteRecord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService, app := setupTestController(t)
		mockService.On("DeleteRecord", mock.Anything, int64(101), "2018-07-01").Return(nil)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/job-history/employees/101?startDate=2018-07-01", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Missing start date", func(t *testing.T) {
		mockService, app := setupTestController(t)

		resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/job-history/employees/101", nil))

		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "DeleteRecord", mock.Anything, mock.Anything, mock.Anything)
	})
}
