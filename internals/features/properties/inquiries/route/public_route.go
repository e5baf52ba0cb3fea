package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/inquiries/controller"
	"rumahjogja_backend/internals/middlewares"
)

// InquiryPublicRoutes: form kontak & pertanyaan properti dari situs publik.
func InquiryPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInquiryController(db)

	// 📨 Submit dibatasi rate limiter khusus (anti spam form)
	api.Post("/inquiries", middlewares.InquiryRateLimiter(), ctrl.SubmitInquiry)
}
