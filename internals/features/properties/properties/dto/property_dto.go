package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode"

	"gorm.io/datatypes"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/properties/model"
	helper "rumahjogja_backend/internals/helpers"
)

/* ============================
   Create & Update Request DTO
============================ */

type CreatePropertyRequest struct {
	Title           string   `json:"title" validate:"required,min=5,max=200"`
	Description     *string  `json:"description"`
	TransactionType string   `json:"transaction_type" validate:"required,oneof=dijual disewa"`
	PropertyType    string   `json:"property_type" validate:"required,oneof=rumah apartemen tanah villa ruko kos"`
	Price           int64    `json:"price" validate:"required,gt=0"`
	PriceLabel      *string  `json:"price_label"`
	Address         string   `json:"address" validate:"required,min=10,max=500"`
	SubDistrict     *string  `json:"sub_district"`
	District        string   `json:"district" validate:"required,oneof=Sleman Bantul 'Kota Yogyakarta' 'Gunung Kidul' 'Kulon Progo'"`
	Province        *string  `json:"province"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	LandSize        *float64 `json:"land_size"`
	BuildingSize    *float64 `json:"building_size"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	Floors          *int     `json:"floors"`
	Certificate     *string  `json:"certificate" validate:"omitempty,oneof=shm shgb shp girik ppjb lainnya"`
	Electricity     *int     `json:"electricity"`
	Furnished       *string  `json:"furnished" validate:"omitempty,oneof=furnished semi-furnished unfurnished"`
	Facing          *string  `json:"facing"`
	YearBuilt       *int     `json:"year_built"`
	FeaturedImage   *string  `json:"featured_image" validate:"omitempty,url"`
	Features        []string `json:"features"`
}

// UpdatePropertyRequest: partial update. Field yang absen (nil) tidak disentuh.
type UpdatePropertyRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=5,max=200"`
	Description     *string  `json:"description"`
	TransactionType *string  `json:"transaction_type" validate:"omitempty,oneof=dijual disewa"`
	PropertyType    *string  `json:"property_type" validate:"omitempty,oneof=rumah apartemen tanah villa ruko kos"`
	Status          *string  `json:"status" validate:"omitempty,oneof=draft published sold rented archived"`
	Price           *int64   `json:"price"`
	PriceLabel      *string  `json:"price_label"`
	Address         *string  `json:"address" validate:"omitempty,min=10,max=500"`
	SubDistrict     *string  `json:"sub_district"`
	District        *string  `json:"district" validate:"omitempty,oneof=Sleman Bantul 'Kota Yogyakarta' 'Gunung Kidul' 'Kulon Progo'"`
	Province        *string  `json:"province"`
	Latitude        *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	LandSize        *float64 `json:"land_size"`
	BuildingSize    *float64 `json:"building_size"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	Floors          *int     `json:"floors"`
	Certificate     *string  `json:"certificate" validate:"omitempty,oneof=shm shgb shp girik ppjb lainnya"`
	Electricity     *int     `json:"electricity"`
	Furnished       *string  `json:"furnished" validate:"omitempty,oneof=furnished semi-furnished unfurnished"`
	Facing          *string  `json:"facing"`
	YearBuilt       *int     `json:"year_built"`
	FeaturedImage   *string  `json:"featured_image" validate:"omitempty,url"`
	Features        []string `json:"features"`
}

/* ============================
   Pesan validasi (rule pertama yang dilanggar dikembalikan apa adanya)
============================ */

var propertyMessages = map[string]string{
	"Title.required":           "Judul minimal 5 karakter",
	"Title.min":                "Judul minimal 5 karakter",
	"Title.max":                "Judul maksimal 200 karakter",
	"TransactionType.required": "Tipe transaksi harus dijual atau disewa",
	"TransactionType.oneof":    "Tipe transaksi harus dijual atau disewa",
	"PropertyType.required":    "Tipe properti tidak valid",
	"PropertyType.oneof":       "Tipe properti tidak valid",
	"Price.required":           "Harga harus lebih dari 0",
	"Price.gt":                 "Harga harus lebih dari 0",
	"Address.required":         "Alamat minimal 10 karakter",
	"Address.min":              "Alamat minimal 10 karakter",
	"Address.max":              "Alamat maksimal 500 karakter",
	"District.required":        "Kabupaten/Kota tidak valid",
	"District.oneof":           "Kabupaten/Kota tidak valid",
	"Latitude":                 "Latitude tidak valid",
	"Longitude":                "Longitude tidak valid",
	"Certificate.oneof":        "Sertifikat tidak valid",
	"Furnished.oneof":          "Kondisi furnished tidak valid",
	"FeaturedImage.url":        "URL gambar tidak valid",
}

const (
	msgLandSize     = "Luas tanah harus positif"
	msgBuildingSize = "Luas bangunan harus positif"
	msgBedrooms     = "Jumlah kamar tidur tidak valid"
	msgBathrooms    = "Jumlah kamar mandi tidak valid"
	msgFloors       = "Jumlah lantai minimal 1"
	msgElectricity  = "Daya listrik harus positif"
	msgYearBuilt    = "Tahun bangun tidak valid"
	msgYearFuture   = "Tahun bangun tidak boleh di masa depan"
)

// validateNumericRanges: rule numerik yang tidak enak diekspresikan lewat
// tag (gt=0 pada pointer & batas tahun berjalan).
func validateNumericRanges(landSize, buildingSize *float64, bedrooms, bathrooms, floors, electricity, yearBuilt *int) error {
	if landSize != nil && *landSize <= 0 {
		return errors.New(msgLandSize)
	}
	if buildingSize != nil && *buildingSize <= 0 {
		return errors.New(msgBuildingSize)
	}
	if bedrooms != nil && *bedrooms < 0 {
		return errors.New(msgBedrooms)
	}
	if bathrooms != nil && *bathrooms < 0 {
		return errors.New(msgBathrooms)
	}
	if floors != nil && *floors < 1 {
		return errors.New(msgFloors)
	}
	if electricity != nil && *electricity <= 0 {
		return errors.New(msgElectricity)
	}
	if yearBuilt != nil {
		if *yearBuilt < constants.MinYearBuilt {
			return errors.New(msgYearBuilt)
		}
		if *yearBuilt > time.Now().Year() {
			return errors.New(msgYearFuture)
		}
	}
	return nil
}

func (r *CreatePropertyRequest) Validate() error {
	if err := helper.Validate.Struct(r); err != nil {
		return errors.New(helper.FirstMessage(err, propertyMessages))
	}
	return validateNumericRanges(r.LandSize, r.BuildingSize, r.Bedrooms, r.Bathrooms, r.Floors, r.Electricity, r.YearBuilt)
}

func (r *UpdatePropertyRequest) Validate() error {
	if err := helper.Validate.Struct(r); err != nil {
		return errors.New(helper.FirstMessage(err, propertyMessages))
	}
	if r.Price != nil && *r.Price <= 0 {
		return errors.New("Harga harus lebih dari 0")
	}
	return validateNumericRanges(r.LandSize, r.BuildingSize, r.Bedrooms, r.Bathrooms, r.Floors, r.Electricity, r.YearBuilt)
}

// ValidatePublish: syarat publish di level validasi — status literal
// "published" dan gambar utama berupa URL non-kosong.
func ValidatePublish(m *model.PropertyModel) error {
	if m.PropertyStatus != constants.PropertyStatusPublished {
		return errors.New("Status harus published")
	}
	if m.PropertyFeaturedImage == nil || strings.TrimSpace(*m.PropertyFeaturedImage) == "" {
		return errors.New("Gambar utama diperlukan untuk publikasi")
	}
	if err := helper.Validate.Var(*m.PropertyFeaturedImage, "url"); err != nil {
		return errors.New("Gambar utama diperlukan untuk publikasi")
	}
	return nil
}

/* ============================
   Converter request → model
============================ */

func (r *CreatePropertyRequest) ToModel(slug string) model.PropertyModel {
	province := constants.DefaultProvince
	if r.Province != nil && strings.TrimSpace(*r.Province) != "" {
		province = *r.Province
	}

	return model.PropertyModel{
		PropertySlug:            slug,
		PropertyTitle:           r.Title,
		PropertyDescription:     r.Description,
		PropertyTransactionType: r.TransactionType,
		PropertyType:            r.PropertyType,
		PropertyStatus:          constants.PropertyStatusDraft,
		PropertyPrice:           r.Price,
		PropertyPriceLabel:      r.PriceLabel,
		PropertyAddress:         r.Address,
		PropertySubDistrict:     r.SubDistrict,
		PropertyDistrict:        r.District,
		PropertyProvince:        province,
		PropertyLatitude:        r.Latitude,
		PropertyLongitude:       r.Longitude,
		PropertyLandSize:        r.LandSize,
		PropertyBuildingSize:    r.BuildingSize,
		PropertyBedrooms:        r.Bedrooms,
		PropertyBathrooms:       r.Bathrooms,
		PropertyFloors:          r.Floors,
		PropertyCertificate:     r.Certificate,
		PropertyElectricity:     r.Electricity,
		PropertyFurnished:       r.Furnished,
		PropertyFacing:          r.Facing,
		PropertyYearBuilt:       r.YearBuilt,
		PropertyFeaturedImage:   r.FeaturedImage,
		PropertyFeatures:        FeaturesToJSON(r.Features),
	}
}

// ApplyToModel menyalin hanya field yang dikirim (partial update).
func (r *UpdatePropertyRequest) ApplyToModel(m *model.PropertyModel) {
	if r.Title != nil {
		m.PropertyTitle = *r.Title
	}
	if r.Description != nil {
		m.PropertyDescription = r.Description
	}
	if r.TransactionType != nil {
		m.PropertyTransactionType = *r.TransactionType
	}
	if r.PropertyType != nil {
		m.PropertyType = *r.PropertyType
	}
	if r.Status != nil {
		m.PropertyStatus = *r.Status
	}
	if r.Price != nil {
		m.PropertyPrice = *r.Price
	}
	if r.PriceLabel != nil {
		m.PropertyPriceLabel = r.PriceLabel
	}
	if r.Address != nil {
		m.PropertyAddress = *r.Address
	}
	if r.SubDistrict != nil {
		m.PropertySubDistrict = r.SubDistrict
	}
	if r.District != nil {
		m.PropertyDistrict = *r.District
	}
	if r.Province != nil {
		m.PropertyProvince = *r.Province
	}
	if r.Latitude != nil {
		m.PropertyLatitude = r.Latitude
	}
	if r.Longitude != nil {
		m.PropertyLongitude = r.Longitude
	}
	if r.LandSize != nil {
		m.PropertyLandSize = r.LandSize
	}
	if r.BuildingSize != nil {
		m.PropertyBuildingSize = r.BuildingSize
	}
	if r.Bedrooms != nil {
		m.PropertyBedrooms = r.Bedrooms
	}
	if r.Bathrooms != nil {
		m.PropertyBathrooms = r.Bathrooms
	}
	if r.Floors != nil {
		m.PropertyFloors = r.Floors
	}
	if r.Certificate != nil {
		m.PropertyCertificate = r.Certificate
	}
	if r.Electricity != nil {
		m.PropertyElectricity = r.Electricity
	}
	if r.Furnished != nil {
		m.PropertyFurnished = r.Furnished
	}
	if r.Facing != nil {
		m.PropertyFacing = r.Facing
	}
	if r.YearBuilt != nil {
		m.PropertyYearBuilt = r.YearBuilt
	}
	if r.FeaturedImage != nil {
		m.PropertyFeaturedImage = r.FeaturedImage
	}
	if r.Features != nil {
		m.PropertyFeatures = FeaturesToJSON(r.Features)
	}
}

/* ============================
   Response DTO (view model)
============================ */

// PropertyListItemDTO: bentuk display untuk kartu listing.
// location = sub_district kalau ada, fallback district.
// image_url = featured_image, fallback placeholder.
type PropertyListItemDTO struct {
	ID              string   `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Price           int64    `json:"price"`
	PriceLabel      *string  `json:"price_label"`
	Location        string   `json:"location"`
	District        string   `json:"district"`
	ImageURL        string   `json:"image_url"`
	PropertyType    string   `json:"property_type"`
	TransactionType string   `json:"transaction_type"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	LandSize        *float64 `json:"land_size"`
	BuildingSize    *float64 `json:"building_size"`
}

type PropertyDetailDTO struct {
	PropertyListItemDTO

	Description *string   `json:"description"`
	Address     string    `json:"address"`
	Province    string    `json:"province"`
	Floors      *int      `json:"floors"`
	Certificate *string   `json:"certificate"`
	Electricity *int      `json:"electricity"`
	Furnished   *string   `json:"furnished"`
	Facing      *string   `json:"facing"`
	YearBuilt   *int      `json:"year_built"`
	Features    []string  `json:"features"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToPropertyListItemDTO(m model.PropertyModel) PropertyListItemDTO {
	location := m.PropertyDistrict
	if m.PropertySubDistrict != nil && *m.PropertySubDistrict != "" {
		location = *m.PropertySubDistrict
	}
	imageURL := constants.PlaceholderPropertyImage
	if m.PropertyFeaturedImage != nil && *m.PropertyFeaturedImage != "" {
		imageURL = *m.PropertyFeaturedImage
	}

	return PropertyListItemDTO{
		ID:              m.PropertyID.String(),
		Slug:            m.PropertySlug,
		Title:           m.PropertyTitle,
		Price:           m.PropertyPrice,
		PriceLabel:      m.PropertyPriceLabel,
		Location:        location,
		District:        m.PropertyDistrict,
		ImageURL:        imageURL,
		PropertyType:    capitalize(m.PropertyType),
		TransactionType: m.PropertyTransactionType,
		Bedrooms:        m.PropertyBedrooms,
		Bathrooms:       m.PropertyBathrooms,
		LandSize:        m.PropertyLandSize,
		BuildingSize:    m.PropertyBuildingSize,
	}
}

func ToPropertyDetailDTO(m model.PropertyModel, images []string) PropertyDetailDTO {
	item := ToPropertyListItemDTO(m)
	if item.ImageURL == constants.PlaceholderPropertyImage && len(images) > 0 {
		item.ImageURL = images[0]
	}
	if len(images) == 0 && m.PropertyFeaturedImage != nil && *m.PropertyFeaturedImage != "" {
		images = []string{*m.PropertyFeaturedImage}
	}

	var certificate *string
	if m.PropertyCertificate != nil {
		c := strings.ToUpper(*m.PropertyCertificate)
		certificate = &c
	}

	return PropertyDetailDTO{
		PropertyListItemDTO: item,

		Description: m.PropertyDescription,
		Address:     m.PropertyAddress,
		Province:    m.PropertyProvince,
		Floors:      m.PropertyFloors,
		Certificate: certificate,
		Electricity: m.PropertyElectricity,
		Furnished:   m.PropertyFurnished,
		Facing:      m.PropertyFacing,
		YearBuilt:   m.PropertyYearBuilt,
		Features:    FeaturesFromJSON(m.PropertyFeatures),
		Images:      images,
		CreatedAt:   m.PropertyCreatedAt,
	}
}

/* ============================
   Util kecil
============================ */

func capitalize(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// FeaturesToJSON: []string → JSONB; nil jadi [] supaya kolom konsisten.
func FeaturesToJSON(features []string) datatypes.JSON {
	if features == nil {
		features = []string{}
	}
	b, err := json.Marshal(features)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}

func FeaturesFromJSON(raw datatypes.JSON) []string {
	var out []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
