package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"error"`
	Data    T      `json:"data,omitempty"`
} // @name Response

func ErrResponse(
	c *fiber.Ctx,
	code int,
	message string,
	data ...any,
) error {
	response := Response[any]{
		Success: false,
		Message: message,
	}
	if len(data) > 0 {
		response.Data = data[0]
	}
	return c.Status(code).JSON(response)
}

func OkResponse[T any](
	c *fiber.Ctx,
	data T,
) error {
	return c.JSON(&Response[T]{
		Success: true,
		Data:    data,
	})
}

// ServiceErrResponse формирует ответ по ошибке сервиса; для ошибок валидации добавляет детали
func ServiceErrResponse(c *fiber.Ctx, err error) error {
	var code = ErrorStatus(err)
	var validationErr RequestValidationError
	if errors.As(err, &validationErr) && validationErr.Data != nil {
		return ErrResponse(c, code, err.Error(), validationErr.Data)
	}
	return ErrResponse(c, code, err.Error())
}
