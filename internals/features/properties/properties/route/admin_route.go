package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/properties/controller"
)

func PropertyAdminRoutes(api fiber.Router, db *gorm.DB) {
	propertyCtrl := controller.NewPropertyAdminController(db)

	// === ADMIN ROUTES ===
	property := api.Group("/properties")
	property.Get("/", propertyCtrl.GetAllProperties)               // 📄 Semua listing non-archived
	property.Post("/", propertyCtrl.CreateProperty)                // ➕ Buat listing baru (draft)
	property.Get("/:id", propertyCtrl.GetPropertyByID)             // 🔍 Detail listing
	property.Put("/:id", propertyCtrl.UpdateProperty)              // 🔄 Partial update
	property.Delete("/:id", propertyCtrl.DeleteProperty)           // 🗑️ Soft delete → archived
	property.Post("/:id/publish", propertyCtrl.PublishProperty)    // 🚀 Publikasi
	property.Delete("/:id/publish", propertyCtrl.UnpublishProperty) // ↩️ Kembali ke draft
}
