package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/property_images/controller"
	oss "rumahjogja_backend/internals/helpers/oss"
)

// UploadAdminRoutes mendaftarkan endpoint upload/hapus gambar properti.
func UploadAdminRoutes(api fiber.Router, db *gorm.DB) {
	var blob oss.BlobService
	if svc, err := oss.NewOSSBlobServiceFromEnv(""); err != nil {
		// Tanpa OSS endpoint upload tetap terpasang supaya panel admin
		// mendapat error yang jelas, bukan 404.
		log.Printf("[WARN] OSS tidak terkonfigurasi: %v", err)
	} else {
		blob = svc
	}

	ctrl := controller.NewUploadController(db, blob)

	upload := api.Group("/upload")
	upload.Post("/", ctrl.UploadImage)   // 📤 Upload gambar
	upload.Delete("/", ctrl.DeleteImage) // 🗑️ Hapus gambar
}
