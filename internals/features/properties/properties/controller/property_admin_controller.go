package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/properties/dto"
	"rumahjogja_backend/internals/features/properties/properties/service"
	helper "rumahjogja_backend/internals/helpers"
)

type PropertyAdminController struct {
	Service *service.PropertyService
}

func NewPropertyAdminController(db *gorm.DB) *PropertyAdminController {
	return &PropertyAdminController{Service: service.NewPropertyServiceWithDB(db)}
}

// =============================
// ➕ Create Property
// =============================
func (ctrl *PropertyAdminController) CreateProperty(c *fiber.Ctx) error {
	var body dto.CreatePropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res := ctrl.Service.Create(c.UserContext(), &body)
	return helper.FromResultWithCode(c, fiber.StatusCreated, res)
}

// =============================
// 📄 Get All Properties (non-archived)
// =============================
func (ctrl *PropertyAdminController) GetAllProperties(c *fiber.Ctx) error {
	res := ctrl.Service.ListAll(c.UserContext())
	return helper.FromResult(c, res)
}

// =============================
// 🔍 Get Property By ID
// =============================
func (ctrl *PropertyAdminController) GetPropertyByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}
	res := ctrl.Service.GetByID(c.UserContext(), id)
	return helper.FromResult(c, res)
}

// =============================
// 🔄 Update Property (partial)
// =============================
func (ctrl *PropertyAdminController) UpdateProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}

	var body dto.UpdatePropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res := ctrl.Service.Update(c.UserContext(), id, &body)
	return helper.FromResult(c, res)
}

// =============================
// 🗑️ Delete Property (soft → archived)
// =============================
func (ctrl *PropertyAdminController) DeleteProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}
	res := ctrl.Service.Archive(c.UserContext(), id)
	if res.IsErr() {
		return helper.Error(c, helper.HTTPStatusForCode(res.Code()), res.Message())
	}
	return helper.Success(c, fiber.Map{"message": "Properti diarsipkan"})
}

// =============================
// 🚀 Publish / Unpublish
// =============================
func (ctrl *PropertyAdminController) PublishProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}
	res := ctrl.Service.Publish(c.UserContext(), id)
	return helper.FromResult(c, res)
}

func (ctrl *PropertyAdminController) UnpublishProperty(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}
	res := ctrl.Service.Unpublish(c.UserContext(), id)
	return helper.FromResult(c, res)
}
