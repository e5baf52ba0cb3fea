package constants

// Nilai enum mengikuti constraint di tabel properties.

// Tipe transaksi
const (
	TransactionDijual = "dijual"
	TransactionDisewa = "disewa"
)

var TransactionTypes = []string{TransactionDijual, TransactionDisewa}

// Tipe properti
var PropertyTypes = []string{"rumah", "apartemen", "tanah", "villa", "ruko", "kos"}

// Status lifecycle properti
const (
	PropertyStatusDraft     = "draft"
	PropertyStatusPublished = "published"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
	PropertyStatusArchived  = "archived"
)

var PropertyStatuses = []string{
	PropertyStatusDraft,
	PropertyStatusPublished,
	PropertyStatusSold,
	PropertyStatusRented,
	PropertyStatusArchived,
}

// Kabupaten/Kota yang didukung (DI Yogyakarta)
var Districts = []string{"Sleman", "Bantul", "Kota Yogyakarta", "Gunung Kidul", "Kulon Progo"}

const DefaultProvince = "DI Yogyakarta"

var Certificates = []string{"shm", "shgb", "shp", "girik", "ppjb", "lainnya"}

var FurnishedOptions = []string{"furnished", "semi-furnished", "unfurnished"}

// Placeholder saat listing belum punya gambar utama
const PlaceholderPropertyImage = "/placeholder-property.jpg"

// Batas tahun bangun paling lama yang diterima
const MinYearBuilt = 1900

func InList(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
