package constants

// Batasan upload gambar properti
const MaxUploadSize = int64(5 * 1024 * 1024) // 5MB

// MIME yang diizinkan untuk gambar listing
var AllowedImageMIMEs = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// Ekstensi fallback per MIME kalau nama file tidak membawa ekstensi
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func ExtForMIME(mime string) string {
	if ext, ok := extByMIME[mime]; ok {
		return ext
	}
	return ""
}
