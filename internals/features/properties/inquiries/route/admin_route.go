package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/inquiries/controller"
)

// InquiryAdminRoutes: triase inquiry dari panel admin.
func InquiryAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInquiryController(db)

	inquiries := api.Group("/inquiries")
	inquiries.Get("/", ctrl.GetAllInquiries)             // 📋 List (filter status)
	inquiries.Get("/stats", ctrl.GetInquiryCounts)       // 🔢 Hitungan per status (badge dashboard)
	inquiries.Get("/:id", ctrl.GetInquiryByID)           // 🔍 Detail
	inquiries.Patch("/:id", ctrl.UpdateInquiryStatus)    // ✏️ Ganti status + catatan
	inquiries.Post("/:id/read", ctrl.MarkInquiryAsRead)    // 👁️ Tandai dibaca
	inquiries.Post("/:id/reply", ctrl.MarkInquiryAsReplied) // 💬 Tandai dibalas
	inquiries.Post("/:id/close", ctrl.CloseInquiry)         // ✅ Tutup
}
