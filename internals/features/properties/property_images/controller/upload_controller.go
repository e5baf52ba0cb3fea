package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/property_images/dto"
	"rumahjogja_backend/internals/features/properties/property_images/service"
	helper "rumahjogja_backend/internals/helpers"
	oss "rumahjogja_backend/internals/helpers/oss"
)

type UploadController struct {
	Service *service.ImageService
}

func NewUploadController(db *gorm.DB, blob oss.BlobService) *UploadController {
	return &UploadController{
		Service: service.NewImageService(service.NewGormImageRepository(db), blob),
	}
}

// =============================
// 📤 Upload gambar properti (multipart)
// =============================
// Field: file, property_id, alt_text?, sort_order?
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return helper.Error(c, fiber.StatusBadRequest, "File diperlukan")
	}

	propertyIDRaw := strings.TrimSpace(c.FormValue("property_id"))
	if propertyIDRaw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Property ID diperlukan")
	}
	propertyID, err := uuid.Parse(propertyIDRaw)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Property ID tidak valid")
	}

	// Guard boundary: tipe & ukuran dicek sebelum menyentuh storage.
	contentType := strings.ToLower(strings.TrimSpace(fh.Header.Get(fiber.HeaderContentType)))
	if !constants.InList(constants.AllowedImageMIMEs, contentType) {
		return helper.Error(c, fiber.StatusBadRequest, "Tipe file tidak didukung. Gunakan JPEG, PNG, WebP, atau GIF")
	}
	if fh.Size > constants.MaxUploadSize {
		return helper.Error(c, fiber.StatusBadRequest, "Ukuran file maksimal 5MB")
	}

	altText := c.FormValue("alt_text")
	sortOrder, _ := strconv.Atoi(strings.TrimSpace(c.FormValue("sort_order")))

	res := ctrl.Service.UploadAndAttach(c.UserContext(), propertyID, fh, altText, sortOrder)
	return helper.FromResultWithCode(c, fiber.StatusCreated, res)
}

// =============================
// 🗑️ Hapus gambar (record + blob)
// =============================
func (ctrl *UploadController) DeleteImage(c *fiber.Ctx) error {
	var body dto.DeleteImageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(body.ImageID) == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Image ID diperlukan")
	}
	imageID, err := uuid.Parse(body.ImageID)
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Gambar tidak ditemukan")
	}

	res := ctrl.Service.DeleteAttachmentCompletely(c.UserContext(), imageID)
	if res.IsErr() {
		return helper.Error(c, helper.HTTPStatusForCode(res.Code()), res.Message())
	}
	return helper.Success(c, fiber.Map{"message": "Gambar dihapus"})
}
