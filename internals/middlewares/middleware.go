package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registra los middlewares base de la app
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
}
