package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// возвращает конфигурацию Swagger UI
func GetSwaggerConfig() swagger.Config {
	return swagger.Config{
		// URL для получения OpenAPI спецификации
		URL:          "/swagger/doc.json",
		DeepLinking:  true,
		DocExpansion: "none",

		DefaultModelsExpandDepth: 1,
		DefaultModelExpandDepth:  1,
		DefaultModelRendering:    "model",

		SupportedSubmitMethods: []string{
			"get", "post", "put", "delete",
		},
		Layout: "StandaloneLayout",
		Title:  "HR API Documentation",
	}
}

// инициализирует Swagger UI
func InitSwagger(app *fiber.App) {
	app.Get("/swagger/*", swagger.New(GetSwaggerConfig()))
}
