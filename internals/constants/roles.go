package constants

// Role user pada aplikasi
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Template pesan error role
const ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
