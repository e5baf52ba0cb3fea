package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOk(t *testing.T) {
	r := Ok(42)
	assert.True(t, r.IsOk())
	assert.False(t, r.IsErr())
	assert.Equal(t, 42, r.Data())
	assert.Equal(t, 42, r.DataOr(0))
	assert.Empty(t, r.Message())
	assert.Empty(t, r.Code())
}

func TestResultErr(t *testing.T) {
	r := Err[int]("Properti tidak ditemukan", CodeNotFound)
	assert.True(t, r.IsErr())
	assert.Equal(t, "Properti tidak ditemukan", r.Message())
	assert.Equal(t, CodeNotFound, r.Code())
	assert.Equal(t, -1, r.DataOr(-1))
}

func TestHTTPStatusForCode(t *testing.T) {
	assert.Equal(t, 422, HTTPStatusForCode(CodeValidationError))
	assert.Equal(t, 404, HTTPStatusForCode(CodeNotFound))
	assert.Equal(t, 401, HTTPStatusForCode(CodeAuthError))
	assert.Equal(t, 400, HTTPStatusForCode(CodeDBError))
	assert.Equal(t, 400, HTTPStatusForCode(CodeStorageError))
	assert.Equal(t, 500, HTTPStatusForCode("kode-aneh"))
}
