package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/users/auth/controller"
	"rumahjogja_backend/internals/middlewares"
	authMw "rumahjogja_backend/internals/middlewares/auth"
)

// AuthRoutes: login/logout/profil admin.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	// 🔐 Login dibatasi limiter ketat (anti brute-force)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/logout", ctrl.Logout)
	api.Get("/me", authMw.AuthMiddleware(), ctrl.Me)
}
