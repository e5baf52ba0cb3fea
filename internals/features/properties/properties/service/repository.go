package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/properties/model"
)

// ListParams: filter AND-combined untuk query listing.
// Nilai zero berarti filter tidak dipakai.
type ListParams struct {
	Statuses        []string
	ExcludeArchived bool
	TransactionType string
	PropertyType    string
	District        string
	MinPrice        int64
	MaxPrice        int64
	MinBedrooms     int
	MinBathrooms    int
	SortBy          string // newest | price-asc | price-desc
	Limit           int
	Offset          int
}

const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// PropertyRepository: satu-satunya pintu service ke storage.
// Detail query builder GORM tersembunyi di belakang interface ini.
type PropertyRepository interface {
	Create(ctx context.Context, m *model.PropertyModel) error
	Save(ctx context.Context, m *model.PropertyModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PropertyModel, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.PropertyModel, error)
	List(ctx context.Context, p ListParams) ([]model.PropertyModel, error)
	ListSimilar(ctx context.Context, excludeID uuid.UUID, propertyType string, limit int) ([]model.PropertyModel, error)
	CountPublishedByType(ctx context.Context) (map[string]int64, error)
	ListImageURLs(ctx context.Context, propertyID uuid.UUID) ([]string, error)
}

/* ============================
   Implementasi GORM
============================ */

type gormPropertyRepository struct {
	db *gorm.DB
}

func NewGormPropertyRepository(db *gorm.DB) PropertyRepository {
	return &gormPropertyRepository{db: db}
}

func (r *gormPropertyRepository) Create(ctx context.Context, m *model.PropertyModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormPropertyRepository) Save(ctx context.Context, m *model.PropertyModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *gormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PropertyModel, error) {
	var m model.PropertyModel
	if err := r.db.WithContext(ctx).First(&m, "property_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormPropertyRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*model.PropertyModel, error) {
	q := r.db.WithContext(ctx).Where("property_slug = ?", slug)
	if publishedOnly {
		q = q.Where("property_status = ?", constants.PropertyStatusPublished)
	}
	var m model.PropertyModel
	if err := q.First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormPropertyRepository) List(ctx context.Context, p ListParams) ([]model.PropertyModel, error) {
	q := r.db.WithContext(ctx).Model(&model.PropertyModel{})

	if len(p.Statuses) > 0 {
		q = q.Where("property_status IN ?", p.Statuses)
	}
	if p.ExcludeArchived {
		q = q.Where("property_status <> ?", constants.PropertyStatusArchived)
	}
	if p.TransactionType != "" {
		q = q.Where("property_transaction_type = ?", p.TransactionType)
	}
	if p.PropertyType != "" {
		q = q.Where("property_type = ?", p.PropertyType)
	}
	if p.District != "" {
		q = q.Where("property_district = ?", p.District)
	}
	if p.MinPrice > 0 {
		q = q.Where("property_price >= ?", p.MinPrice)
	}
	if p.MaxPrice > 0 {
		q = q.Where("property_price <= ?", p.MaxPrice)
	}
	if p.MinBedrooms > 0 {
		q = q.Where("property_bedrooms >= ?", p.MinBedrooms)
	}
	if p.MinBathrooms > 0 {
		q = q.Where("property_bathrooms >= ?", p.MinBathrooms)
	}

	// Tie-break deterministik: created_at lalu id, supaya paging stabil.
	switch p.SortBy {
	case SortPriceAsc:
		q = q.Order("property_price ASC").Order("property_created_at DESC").Order("property_id ASC")
	case SortPriceDesc:
		q = q.Order("property_price DESC").Order("property_created_at DESC").Order("property_id ASC")
	default:
		q = q.Order("property_created_at DESC").Order("property_id ASC")
	}

	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}

	var rows []model.PropertyModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormPropertyRepository) ListSimilar(ctx context.Context, excludeID uuid.UUID, propertyType string, limit int) ([]model.PropertyModel, error) {
	var rows []model.PropertyModel
	err := r.db.WithContext(ctx).
		Where("property_status = ?", constants.PropertyStatusPublished).
		Where("property_type = ?", propertyType).
		Where("property_id <> ?", excludeID).
		Order("property_created_at DESC").Order("property_id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *gormPropertyRepository) CountPublishedByType(ctx context.Context) (map[string]int64, error) {
	type row struct {
		PropertyType string `gorm:"column:property_type"`
		Total        int64  `gorm:"column:total"`
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.PropertyModel{}).
		Select("property_type, COUNT(*) AS total").
		Where("property_status = ?", constants.PropertyStatusPublished).
		Group("property_type").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(constants.PropertyTypes))
	for _, t := range constants.PropertyTypes {
		counts[t] = 0
	}
	for _, r := range rows {
		counts[r.PropertyType] = r.Total
	}
	return counts, nil
}

func (r *gormPropertyRepository) ListImageURLs(ctx context.Context, propertyID uuid.UUID) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).Table("property_images").
		Select("property_image_url").
		Where("property_image_property_id = ?", propertyID).
		Order("property_image_sort_order ASC").Order("property_image_created_at ASC").
		Scan(&urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}
