package info

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"hrm/inner/common"
	"hrm/inner/web"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var testCfg = common.Config{
	DbDriverName: "postgres",
	Dsn:          "test-dsn",
	AppName:      "hrm",
	AppVersion:   "2.1.0",
}

func newTestApp(t *testing.T, db *sqlx.DB) *fiber.App {
	app := fiber.New()
	server := &web.Server{App: app, GroupInternal: app.Group("/internal")}
	NewController(server, testCfg, db, &common.Logger{Logger: zaptest.NewLogger(t)}).RegisterRoutes()
	return app
}

func TestController_GetInfo(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/internal/info", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var info InfoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, InfoResponse{Name: "hrm", Version: "2.1.0"}, info)
}

func TestController_GetHealth(t *testing.T) {
	tests := []struct {
		name       string
		connected  bool
		pingErr    error
		wantStatus int
		want       HealthResponse
	}{
		{"database reachable", true, nil, fiber.StatusOK, HealthResponse{Status: "OK", Database: "OK"}},
		{"ping fails", true, errors.New("database not available"), fiber.StatusServiceUnavailable,
			HealthResponse{Status: "ERROR", Database: "ERROR"}},
		{"no connection", false, nil, fiber.StatusServiceUnavailable,
			HealthResponse{Status: "ERROR", Database: "NOT_CONNECTED"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var db *sqlx.DB
			if tt.connected {
				conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
				require.NoError(t, err)
				t.Cleanup(func() {
					assert.NoError(t, mock.ExpectationsWereMet())
					_ = conn.Close()
				})
				mock.ExpectPing().WillReturnError(tt.pingErr)
				db = sqlx.NewDb(conn, "postgres")
			}
			app := newTestApp(t, db)

			resp, err := app.Test(httptest.NewRequest("GET", "/internal/health", nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var health HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
			assert.Equal(t, tt.want, health)
		})
	}
}
