package common

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const defaultServerAddress = ":8080"

// Общая конфигурация всего приложения
type Config struct {
	DbDriverName   string `validate:"required"`
	Dsn            string `validate:"required"`
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	LogLevel       string
	LogDevelopMode bool
	ServerAddress  string `validate:"required"`
	// создавать ли схему при старте приложения
	ApplySchema bool
}

// Получение конфигурации из .env файла или переменных окружения.
// Переменные окружения имеют приоритет над значениями из .env
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		DbDriverName:   os.Getenv("DB_DRIVER_NAME"),
		Dsn:            os.Getenv("DB_DSN"),
		AppName:        os.Getenv("APP_NAME"),
		AppVersion:     os.Getenv("APP_VERSION"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		LogDevelopMode: parseBool(os.Getenv("LOG_DEVELOP_MODE")),
		ServerAddress:  getEnv("SERVER_ADDRESS", defaultServerAddress),
		ApplySchema:    parseBool(os.Getenv("APPLY_SCHEMA")),
	}
	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Sprintf("config validation error: %v", err))
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseBool(value string) bool {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return parsed
}
