package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "eduadmin_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware global dalam urutan yang benar:
// recovery paling luar, lalu CORS, access log, dan rate limiter global.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
