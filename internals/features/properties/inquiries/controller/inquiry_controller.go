package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/inquiries/dto"
	"rumahjogja_backend/internals/features/properties/inquiries/service"
	helper "rumahjogja_backend/internals/helpers"
)

type InquiryController struct {
	Service *service.InquiryService
}

func NewInquiryController(db *gorm.DB) *InquiryController {
	return &InquiryController{Service: service.NewInquiryServiceWithDB(db)}
}

// =============================
// 📨 Submit inquiry (public)
// =============================
func (ctrl *InquiryController) SubmitInquiry(c *fiber.Ctx) error {
	var req dto.SubmitInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res := ctrl.Service.Submit(c.UserContext(), &req)
	return helper.FromResultWithCode(c, fiber.StatusCreated, res)
}

// =============================
// 📋 List inquiry (admin)
// =============================
// Query: status?, limit?, offset?
func (ctrl *InquiryController) GetAllInquiries(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)
	res := ctrl.Service.List(c.UserContext(), service.InquiryListParams{
		Status: c.Query("status"),
		Limit:  paging.Limit,
		Offset: paging.Offset,
	})
	return helper.FromResult(c, res)
}

func (ctrl *InquiryController) GetInquiryByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}
	res := ctrl.Service.GetByID(c.UserContext(), id)
	return helper.FromResult(c, res)
}

// =============================
// ✏️ Update status triase (admin)
// =============================
func (ctrl *InquiryController) UpdateInquiryStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}

	var req dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	res := ctrl.Service.UpdateStatus(c.UserContext(), id, &req)
	return helper.FromResult(c, res)
}

func (ctrl *InquiryController) MarkInquiryAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}
	return helper.FromResult(c, ctrl.Service.MarkAsRead(c.UserContext(), id))
}

func (ctrl *InquiryController) MarkInquiryAsReplied(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}
	return helper.FromResult(c, ctrl.Service.MarkAsReplied(c.UserContext(), id))
}

func (ctrl *InquiryController) CloseInquiry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Inquiry tidak ditemukan")
	}
	return helper.FromResult(c, ctrl.Service.Close(c.UserContext(), id))
}

// =============================
// 🔢 Hitungan per status (admin)
// =============================
func (ctrl *InquiryController) GetInquiryCounts(c *fiber.Ctx) error {
	return helper.FromResult(c, ctrl.Service.CountsByStatus(c.UserContext()))
}
