package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyImageModel dimiliki oleh tepat satu properti (komposisi kuat,
// FK cascade di level DB).
type PropertyImageModel struct {
	PropertyImageID         uuid.UUID `gorm:"column:property_image_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"property_image_id"`
	PropertyImagePropertyID uuid.UUID `gorm:"column:property_image_property_id;type:uuid;not null;index" json:"property_image_property_id"`

	PropertyImageURL string `gorm:"column:property_image_url;type:text;not null" json:"property_image_url"`
	// Key internal di blob store; NULL kalau gambar di-host eksternal.
	PropertyImageStoragePath *string `gorm:"column:property_image_storage_path;type:text" json:"property_image_storage_path"`

	PropertyImageAltText   *string   `gorm:"column:property_image_alt_text;type:varchar(200)" json:"property_image_alt_text"`
	PropertyImageSortOrder int       `gorm:"column:property_image_sort_order;not null;default:0" json:"property_image_sort_order"`
	PropertyImageCreatedAt time.Time `gorm:"column:property_image_created_at;autoCreateTime" json:"property_image_created_at"`
}

func (PropertyImageModel) TableName() string {
	return "property_images"
}
