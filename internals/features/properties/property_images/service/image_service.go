package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/property_images/dto"
	"rumahjogja_backend/internals/features/properties/property_images/model"
	helper "rumahjogja_backend/internals/helpers"
	oss "rumahjogja_backend/internals/helpers/oss"
)

/*
ImageService: saga dua langkah lintas dua kolaborator (blob store + DB)
tanpa transaksi lintas keduanya.

  upload blob → insert metadata
               └─ gagal → kompensasi: hapus blob yang barusan diupload

Kompensasi best-effort dan tidak di-retry; kalau cleanup ikut gagal,
blob yatim dibiarkan (cukup dicatat di log).
*/

type ImageRepository interface {
	Insert(ctx context.Context, m *model.PropertyImageModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PropertyImageModel, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type gormImageRepository struct {
	db *gorm.DB
}

func NewGormImageRepository(db *gorm.DB) ImageRepository {
	return &gormImageRepository{db: db}
}

func (r *gormImageRepository) Insert(ctx context.Context, m *model.PropertyImageModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PropertyImageModel, error) {
	var m model.PropertyImageModel
	if err := r.db.WithContext(ctx).First(&m, "property_image_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormImageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.PropertyImageModel{}, "property_image_id = ?", id).Error
}

/* ============================
   Service
============================ */

type ImageService struct {
	repo ImageRepository
	blob oss.BlobService
}

func NewImageService(repo ImageRepository, blob oss.BlobService) *ImageService {
	return &ImageService{repo: repo, blob: blob}
}

// UploadAndAttach menjalankan saganya. altText/sortOrder opsional.
func (s *ImageService) UploadAndAttach(ctx context.Context, propertyID uuid.UUID, fh *multipart.FileHeader, altText string, sortOrder int) helper.Result[dto.UploadImageResult] {
	if s.blob == nil {
		return helper.Err[dto.UploadImageResult]("Storage belum terkonfigurasi", helper.CodeStorageError)
	}

	// Step 1: upload ke blob store (key di-namespace per properti,
	// ekstensi asli dipertahankan).
	publicURL, objectKey, err := s.blob.UploadPropertyImage(ctx, propertyID, fh)
	if err != nil {
		log.Printf("[ERROR] upload image for property %s: %v", propertyID, err)
		return helper.Err[dto.UploadImageResult]("Gagal mengupload gambar", helper.CodeStorageError)
	}

	// Step 2: insert record metadata.
	img := model.PropertyImageModel{
		PropertyImagePropertyID:  propertyID,
		PropertyImageURL:         publicURL,
		PropertyImageStoragePath: &objectKey,
		PropertyImageSortOrder:   sortOrder,
	}
	if trimmed := strings.TrimSpace(altText); trimmed != "" {
		img.PropertyImageAltText = &trimmed
	}

	if err := s.repo.Insert(ctx, &img); err != nil {
		log.Printf("[ERROR] insert image record for property %s: %v", propertyID, err)
		// Kompensasi: blob yang sudah terupload dihapus supaya storage
		// tidak menumpuk object yatim.
		if delErr := s.blob.DeleteByKey(ctx, objectKey); delErr != nil {
			log.Printf("[WARN] kompensasi gagal, blob yatim tertinggal: key=%s err=%v", objectKey, delErr)
		}
		return helper.Err[dto.UploadImageResult]("Gagal menyimpan data gambar", helper.CodeDBError)
	}

	return helper.Ok(dto.UploadImageResult{
		ID:  img.PropertyImageID.String(),
		URL: publicURL,
	})
}

// DeleteAttachmentCompletely: record dulu, lalu blob best-effort.
// Gagal hapus blob tidak menggagalkan operasi — hanya dicatat.
func (s *ImageService) DeleteAttachmentCompletely(ctx context.Context, imageID uuid.UUID) helper.Result[bool] {
	img, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[bool]("Gambar tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find image %s: %v", imageID, err)
		return helper.Err[bool]("Gagal mengambil data gambar", helper.CodeDBError)
	}

	if err := s.repo.DeleteByID(ctx, imageID); err != nil {
		log.Printf("[ERROR] delete image record %s: %v", imageID, err)
		return helper.Err[bool]("Gagal menghapus data gambar", helper.CodeDBError)
	}

	if s.blob != nil && img.PropertyImageStoragePath != nil && *img.PropertyImageStoragePath != "" {
		if err := s.blob.DeleteByKey(ctx, *img.PropertyImageStoragePath); err != nil {
			log.Printf("[WARN] hapus blob gagal (dibiarkan): key=%s err=%v", *img.PropertyImageStoragePath, err)
		}
	}

	return helper.Ok(true)
}
