package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"DB_DRIVER_NAME", "DB_DSN", "APP_NAME", "APP_VERSION", "LOG_LEVEL", "LOG_DEVELOP_MODE", "SERVER_ADDRESS", "APPLY_SCHEMA",
}

// очищает переменные окружения на время теста
func unsetConfigEnv(t *testing.T) {
	for _, key := range configEnvVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func Test_GetConfig_NoEnvFile(t *testing.T) {
	unsetConfigEnv(t)

	envFilePath := filepath.Join(t.TempDir(), ".env_not_exists")

	defer func() {
		r := recover()
		require.NotNil(t, r, "config without required fields must panic")
		panicMsg, ok := r.(string)
		require.True(t, ok)
		assert.Contains(t, panicMsg, "config validation error")
		assert.Contains(t, panicMsg, "DbDriverName")
	}()
	GetConfig(envFilePath)
}

func Test_GetConfig_FromDotEnv(t *testing.T) {
	unsetConfigEnv(t)

	envFilePath := filepath.Join(t.TempDir(), ".env")
	content := "DB_DRIVER_NAME=postgres\n" +
		"DB_DSN=host=localhost port=5432 user=hr dbname=hr sslmode=disable\n" +
		"APP_NAME=hrm\n" +
		"APP_VERSION=1.0.0\n" +
		"LOG_LEVEL=DEBUG\n" +
		"LOG_DEVELOP_MODE=true\n" +
		"APPLY_SCHEMA=true\n"
	require.NoError(t, os.WriteFile(envFilePath, []byte(content), 0644))

	cfg := GetConfig(envFilePath)

	assert.Equal(t, "postgres", cfg.DbDriverName)
	assert.Equal(t, "host=localhost port=5432 user=hr dbname=hr sslmode=disable", cfg.Dsn)
	assert.Equal(t, "hrm", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopMode)
	assert.True(t, cfg.ApplySchema)
	assert.Equal(t, ":8080", cfg.ServerAddress)
}

func Test_ConfigPrioritizesEnv_OverDotEnv(t *testing.T) {
	unsetConfigEnv(t)

	envFilePath := filepath.Join(t.TempDir(), ".env")
	content := "DB_DRIVER_NAME=postgres\nDB_DSN=dotenv-dsn\nAPP_NAME=dotenv\nAPP_VERSION=0.0.1\n"
	require.NoError(t, os.WriteFile(envFilePath, []byte(content), 0644))

	t.Setenv("DB_DSN", "env-dsn")
	t.Setenv("APP_NAME", "env")
	t.Setenv("SERVER_ADDRESS", ":9090")

	cfg := GetConfig(envFilePath)

	assert.Equal(t, "env-dsn", cfg.Dsn)
	assert.Equal(t, "env", cfg.AppName)
	assert.Equal(t, "0.0.1", cfg.AppVersion)
	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.False(t, cfg.LogDevelopMode)
}

func Test_ParseRequestBody(t *testing.T) {
	fields := ParseRequestBody([]byte(`{"first_name":"Steven","email":"sking@example.com","job_id":1,"password":"secret"}`))
	assert.Len(t, fields, 3)

	fields = ParseRequestBody([]byte("not json"))
	require.Len(t, fields, 1)
	assert.Equal(t, "body", fields[0].Key)
}
