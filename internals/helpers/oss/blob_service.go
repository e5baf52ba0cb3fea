package helper

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"rumahjogja_backend/internals/constants"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk service gambar.

Kontrak:
- UploadPropertyImage mengembalikan (publicURL, objectKey) supaya key bisa
  disimpan di DB dan dipakai untuk kompensasi/cleanup.
- DeleteByKey dipakai saat kompensasi upload dan hapus permanen.
*/

type BlobService interface {
	UploadPropertyImage(ctx context.Context, propertyID uuid.UUID, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	DeleteByKey(ctx context.Context, objectKey string) error
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "uploads/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadPropertyImage(ctx context.Context, propertyID uuid.UUID, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fmt.Errorf("nil file header")
	}
	if propertyID == uuid.Nil {
		return "", "", fmt.Errorf("property id kosong")
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ct, reader, err := DetectContentType(src, fh.Filename)
	if err != nil {
		return "", "", err
	}

	key := buildPropertyImageKey(b.svc.Prefix, propertyID, fh.Filename, ct)
	if err := b.svc.UploadStream(ctx, key, reader, ct); err != nil {
		return "", "", fmt.Errorf("put object: %w", err)
	}
	return b.svc.PublicURL(key), key, nil
}

func (b *OSSBlobService) DeleteByKey(ctx context.Context, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return fmt.Errorf("object key kosong")
	}
	return b.svc.DeleteObject(ctx, objectKey)
}

// buildPropertyImageKey menyusun key: [prefix/]properties/<propertyID>/<nano>.<ext>
// Ekstensi diambil ulang dari nama file asli (disanitasi), fallback dari MIME.
func buildPropertyImageKey(prefix string, propertyID uuid.UUID, filename, contentType string) string {
	ext := SafeExt(filename, contentType)
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	parts := []string{"properties", propertyID.String(), name}
	if prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return strings.Join(parts, "/")
}

// SafeExt menurunkan ekstensi aman dari nama file upload; nama file dari
// client tidak dipercaya selain ekstensinya.
func SafeExt(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp", ".gif":
		return ext
	}
	return constants.ExtForMIME(contentType)
}
