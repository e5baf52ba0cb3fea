package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/properties/service"
	helper "rumahjogja_backend/internals/helpers"
)

type PropertyPublicController struct {
	Service *service.PropertyService
}

func NewPropertyPublicController(db *gorm.DB) *PropertyPublicController {
	return &PropertyPublicController{Service: service.NewPropertyServiceWithDB(db)}
}

// =============================
// 📄 Listing publik (filter + sort + paging)
// =============================
func (ctrl *PropertyPublicController) ListProperties(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 12, 100)

	opts := service.PublicQueryOptions{
		TransactionType: strings.TrimSpace(c.Query("transaction_type")),
		PropertyType:    strings.TrimSpace(c.Query("property_type")),
		District:        strings.TrimSpace(c.Query("district")),
		MinPrice:        queryInt64(c, "min_price"),
		MaxPrice:        queryInt64(c, "max_price"),
		MinBedrooms:     queryInt(c, "bedrooms"),
		MinBathrooms:    queryInt(c, "bathrooms"),
		SortBy:          strings.TrimSpace(c.Query("sort_by")),
		Limit:           paging.Limit,
		Offset:          paging.Offset,
	}

	items := ctrl.Service.ListPublished(c.UserContext(), opts)
	return helper.Success(c, items)
}

// =============================
// ⭐ Listing unggulan untuk halaman depan
// =============================
func (ctrl *PropertyPublicController) GetFeaturedProperties(c *fiber.Ctx) error {
	items := ctrl.Service.Featured(c.UserContext(), queryInt(c, "limit"))
	return helper.Success(c, items)
}

// =============================
// 🔍 Detail publik by slug (+ gambar terurut)
// =============================
func (ctrl *PropertyPublicController) GetPropertyDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	detail, found := ctrl.Service.GetDetailBySlug(c.UserContext(), slug)
	if !found {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}
	return helper.Success(c, detail)
}

// =============================
// 🏘️ Properti serupa
// =============================
func (ctrl *PropertyPublicController) GetSimilarProperties(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Properti tidak ditemukan")
	}
	propertyType := strings.TrimSpace(c.Query("property_type"))
	limit := queryInt(c, "limit")

	items := ctrl.Service.Similar(c.UserContext(), id, propertyType, limit)
	return helper.Success(c, items)
}

// =============================
// 📊 Jumlah listing per tipe (navigasi kategori)
// =============================
func (ctrl *PropertyPublicController) GetPropertyCounts(c *fiber.Ctx) error {
	res := ctrl.Service.CountsByType(c.UserContext())
	// Halaman publik tidak boleh hard-fail: fallback ke nol semua.
	return helper.Success(c, res.DataOr(map[string]int64{}))
}

/* ============================
   Query param parsers
============================ */

func queryInt64(c *fiber.Ctx, key string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(c.Query(key)), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func queryInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
