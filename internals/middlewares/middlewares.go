package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "rumahjogja_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan yang benar:
// recovery paling luar supaya panic di middleware lain juga tertangkap.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
