package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/properties/controller"
)

func PropertyPublicRoutes(api fiber.Router, db *gorm.DB) {
	propertyCtrl := controller.NewPropertyPublicController(db)

	// === PUBLIC ROUTES ===
	property := api.Group("/properties")
	property.Get("/", propertyCtrl.ListProperties)              // 📄 Listing published + filter
	property.Get("/featured", propertyCtrl.GetFeaturedProperties) // ⭐ Unggulan halaman depan
	property.Get("/:slug", propertyCtrl.GetPropertyDetail)      // 🔍 Detail by slug (+ gambar)
	property.Get("/:id/similar", propertyCtrl.GetSimilarProperties) // 🏘️ Properti serupa

	api.Get("/property-counts", propertyCtrl.GetPropertyCounts) // 📊 Jumlah per tipe
}
