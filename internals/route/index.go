package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	inquiryRoute "rumahjogja_backend/internals/features/properties/inquiries/route"
	propertyRoute "rumahjogja_backend/internals/features/properties/properties/route"
	imageRoute "rumahjogja_backend/internals/features/properties/property_images/route"
	authRoute "rumahjogja_backend/internals/features/users/auth/route"
	helper "rumahjogja_backend/internals/helpers"
	authMw "rumahjogja_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh endpoint aplikasi.
//
//	/api/public/*  — situs publik, tanpa auth
//	/api/auth/*    — login/logout/me
//	/api/*         — panel admin, JWT + role admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔹 Health check (dipakai Railway)
	app.Get("/health", func(c *fiber.Ctx) error {
		return helper.Success(c, fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// =========================
	// 🌐 Public
	// =========================
	public := api.Group("/public")
	propertyRoute.PropertyPublicRoutes(public, db)
	inquiryRoute.InquiryPublicRoutes(public, db)

	// =========================
	// 🔐 Auth
	// =========================
	auth := api.Group("/auth")
	authRoute.AuthRoutes(auth, db)

	// =========================
	// 🛠️ Admin (JWT + role)
	// =========================
	admin := api.Group("/",
		authMw.AuthMiddleware(),
		authMw.OnlyAdmin("panel admin"),
	)
	propertyRoute.PropertyAdminRoutes(admin, db)
	inquiryRoute.InquiryAdminRoutes(admin, db)
	imageRoute.UploadAdminRoutes(admin, db)
}
