package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RequestValidationError некорректные входные данные: ошибки валидации, неверный id, значения вне диапазона
type RequestValidationError struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

type AlreadyExistsError struct {
	Message string `json:"message"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NotFoundError представляет ошибку, когда сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}

// UnauthorizedError неверные учётные данные
type UnauthorizedError struct {
	Message string `json:"message"`
}

func (err UnauthorizedError) Error() string {
	return err.Message
}

// ErrorStatus возвращает HTTP-код ответа для ошибки сервиса
func ErrorStatus(err error) int {
	switch {
	case errors.As(err, &RequestValidationError{}):
		return fiber.StatusBadRequest
	case errors.As(err, &NotFoundError{}):
		return fiber.StatusNotFound
	case errors.As(err, &AlreadyExistsError{}):
		return fiber.StatusConflict
	case errors.As(err, &UnauthorizedError{}):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
