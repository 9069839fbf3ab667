package web

import (
	"time"

	"hrm/inner/common"

	_ "hrm/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

// структура веб-сервера
type Server struct {
	App *fiber.App
	// группа публичного API
	GroupApi fiber.Router
	// группа публичного API первой версии
	GroupApiV1 fiber.Router
	// группа непубличного API
	GroupInternal fiber.Router
}

// функция-конструктор
func NewServer(logger *common.Logger) *Server {
	app := fiber.New(fiber.Config{
		// ошибки, не обработанные контроллерами, отдаём в общем формате ответа
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fiberErr, ok := err.(*fiber.Error); ok {
				code = fiberErr.Code
			}
			logger.ErrorCtx(c, "unhandled request error",
				zap.Error(err),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()))
			return common.ErrResponse(c, code, err.Error())
		},
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(requestid.New())
	app.Use(RequestLogger(logger))

	groupInternal := app.Group("/internal")
	groupInternal.Use(func(c *fiber.Ctx) error {
		c.Set("X-Internal-API", "true")
		return c.Next()
	})

	groupApi := app.Group("/api")
	groupApiV1 := groupApi.Group("/v1")
	groupApiV1.Use(func(c *fiber.Ctx) error {
		c.Set("X-API-Version", "v1")
		return c.Next()
	})

	InitSwagger(app)

	return &Server{
		App:           app,
		GroupApi:      groupApi,
		GroupApiV1:    groupApiV1,
		GroupInternal: groupInternal,
	}
}

// RequestLogger логирует начало и завершение каждого запроса
func RequestLogger(logger *common.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		}
		if len(c.Body()) > 0 {
			fields = append(fields, common.ParseRequestBody(c.Body())...)
		}
		logger.DebugCtx(c, "Request started", fields...)

		err := c.Next()

		logger.InfoCtx(c, "Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)

		return err
	}
}
