package helper

// Kode error machine-readable yang dipakai controller untuk memilih status HTTP.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeAuthError       = "AUTH_ERROR"
	CodeDBError         = "DB_ERROR"
	CodeStorageError    = "STORAGE_ERROR"
)

// Result membungkus sukses/gagal dari semua service.
// Service tidak pernah panic untuk failure yang expected (validasi,
// not-found, error kolaborator) — semuanya direpresentasikan di sini.
type Result[T any] struct {
	ok      bool
	data    T
	message string
	code    string
}

func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data}
}

func Err[T any](message, code string) Result[T] {
	return Result[T]{ok: false, message: message, code: code}
}

func (r Result[T]) IsOk() bool  { return r.ok }
func (r Result[T]) IsErr() bool { return !r.ok }

func (r Result[T]) Data() T {
	return r.data
}

// DataOr mengembalikan data kalau sukses, kalau tidak pakai fallback.
func (r Result[T]) DataOr(fallback T) T {
	if r.ok {
		return r.data
	}
	return fallback
}

func (r Result[T]) Message() string { return r.message }
func (r Result[T]) Code() string    { return r.code }
