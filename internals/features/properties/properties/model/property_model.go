package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PropertyModel merepresentasikan satu listing properti.
// "Hapus" selalu soft: status pindah ke archived, row tidak pernah di-delete.
type PropertyModel struct {
	PropertyID   uuid.UUID `gorm:"column:property_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"property_id"`
	PropertySlug string    `gorm:"column:property_slug;type:varchar(200);uniqueIndex;not null" json:"property_slug"`

	PropertyTitle       string  `gorm:"column:property_title;type:varchar(200);not null" json:"property_title"`
	PropertyDescription *string `gorm:"column:property_description;type:text" json:"property_description"`

	PropertyTransactionType string `gorm:"column:property_transaction_type;type:varchar(10);not null" json:"property_transaction_type"`
	PropertyType            string `gorm:"column:property_type;type:varchar(20);not null" json:"property_type"`
	PropertyStatus          string `gorm:"column:property_status;type:varchar(12);not null;default:'draft';index" json:"property_status"`

	PropertyPrice      int64   `gorm:"column:property_price;not null" json:"property_price"`
	PropertyPriceLabel *string `gorm:"column:property_price_label;type:varchar(50)" json:"property_price_label"`

	PropertyAddress     string   `gorm:"column:property_address;type:varchar(500);not null" json:"property_address"`
	PropertySubDistrict *string  `gorm:"column:property_sub_district;type:varchar(100)" json:"property_sub_district"`
	PropertyDistrict    string   `gorm:"column:property_district;type:varchar(50);not null;index" json:"property_district"`
	PropertyProvince    string   `gorm:"column:property_province;type:varchar(50);not null;default:'DI Yogyakarta'" json:"property_province"`
	PropertyLatitude    *float64 `gorm:"column:property_latitude" json:"property_latitude"`
	PropertyLongitude   *float64 `gorm:"column:property_longitude" json:"property_longitude"`

	PropertyLandSize     *float64 `gorm:"column:property_land_size" json:"property_land_size"`
	PropertyBuildingSize *float64 `gorm:"column:property_building_size" json:"property_building_size"`
	PropertyBedrooms     *int     `gorm:"column:property_bedrooms" json:"property_bedrooms"`
	PropertyBathrooms    *int     `gorm:"column:property_bathrooms" json:"property_bathrooms"`
	PropertyFloors       *int     `gorm:"column:property_floors" json:"property_floors"`
	PropertyCertificate  *string  `gorm:"column:property_certificate;type:varchar(10)" json:"property_certificate"`
	PropertyElectricity  *int     `gorm:"column:property_electricity" json:"property_electricity"`
	PropertyFurnished    *string  `gorm:"column:property_furnished;type:varchar(20)" json:"property_furnished"`
	PropertyFacing       *string  `gorm:"column:property_facing;type:varchar(50)" json:"property_facing"`
	PropertyYearBuilt    *int     `gorm:"column:property_year_built" json:"property_year_built"`

	PropertyFeaturedImage *string        `gorm:"column:property_featured_image;type:text" json:"property_featured_image"`
	PropertyFeatures      datatypes.JSON `gorm:"column:property_features;type:jsonb;not null;default:'[]'" json:"property_features"`

	PropertyCreatedAt   time.Time  `gorm:"column:property_created_at;autoCreateTime;index" json:"property_created_at"`
	PropertyUpdatedAt   time.Time  `gorm:"column:property_updated_at;autoUpdateTime" json:"property_updated_at"`
	PropertyPublishedAt *time.Time `gorm:"column:property_published_at" json:"property_published_at"`
}

func (PropertyModel) TableName() string {
	return "properties"
}
