package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/properties/dto"
	"rumahjogja_backend/internals/features/properties/properties/model"
	helper "rumahjogja_backend/internals/helpers"
)

// PropertyService mengurus lifecycle listing: create, update, archive,
// publish, unpublish. Semua operasi last-writer-wins (tanpa occ token).
type PropertyService struct {
	repo PropertyRepository
}

func NewPropertyService(repo PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func NewPropertyServiceWithDB(db *gorm.DB) *PropertyService {
	return NewPropertyService(NewGormPropertyRepository(db))
}

/* ============================
   Lifecycle
============================ */

func (s *PropertyService) Create(ctx context.Context, req *dto.CreatePropertyRequest) helper.Result[*model.PropertyModel] {
	if err := req.Validate(); err != nil {
		return helper.Err[*model.PropertyModel](err.Error(), helper.CodeValidationError)
	}

	m := req.ToModel(helper.GenerateListingSlug(req.Title))
	if err := s.repo.Create(ctx, &m); err != nil {
		log.Printf("[ERROR] create property: %v", err)
		return helper.Err[*model.PropertyModel]("Gagal membuat properti", helper.CodeDBError)
	}
	return helper.Ok(&m)
}

func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePropertyRequest) helper.Result[*model.PropertyModel] {
	if err := req.Validate(); err != nil {
		return helper.Err[*model.PropertyModel](err.Error(), helper.CodeValidationError)
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[*model.PropertyModel]("Properti tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mengambil data properti", helper.CodeDBError)
	}

	req.ApplyToModel(m)
	// Judul berubah → slug di-generate ulang dengan cara yang sama.
	if req.Title != nil {
		m.PropertySlug = helper.GenerateListingSlug(*req.Title)
	}

	if err := s.repo.Save(ctx, m); err != nil {
		log.Printf("[ERROR] update property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mengupdate properti", helper.CodeDBError)
	}
	return helper.Ok(m)
}

// Archive = soft delete. Idempotent: meng-archive ulang bukan error.
func (s *PropertyService) Archive(ctx context.Context, id uuid.UUID) helper.Result[*model.PropertyModel] {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[*model.PropertyModel]("Properti tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mengambil data properti", helper.CodeDBError)
	}

	m.PropertyStatus = constants.PropertyStatusArchived
	if err := s.repo.Save(ctx, m); err != nil {
		log.Printf("[ERROR] archive property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal menghapus properti", helper.CodeDBError)
	}
	return helper.Ok(m)
}

// Publish menegakkan publish invariant: tanpa gambar utama, listing tidak
// boleh tayang.
func (s *PropertyService) Publish(ctx context.Context, id uuid.UUID) helper.Result[*model.PropertyModel] {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[*model.PropertyModel]("Properti tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mengambil data properti", helper.CodeDBError)
	}

	if m.PropertyFeaturedImage == nil || strings.TrimSpace(*m.PropertyFeaturedImage) == "" {
		return helper.Err[*model.PropertyModel]("Properti harus memiliki gambar utama untuk dipublikasi", helper.CodeValidationError)
	}

	now := time.Now()
	m.PropertyStatus = constants.PropertyStatusPublished
	m.PropertyPublishedAt = &now
	if err := s.repo.Save(ctx, m); err != nil {
		log.Printf("[ERROR] publish property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mempublikasi properti", helper.CodeDBError)
	}
	return helper.Ok(m)
}

// Unpublish tanpa precondition: kembali ke draft, published_at dikosongkan.
func (s *PropertyService) Unpublish(ctx context.Context, id uuid.UUID) helper.Result[*model.PropertyModel] {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[*model.PropertyModel]("Properti tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mengambil data properti", helper.CodeDBError)
	}

	m.PropertyStatus = constants.PropertyStatusDraft
	m.PropertyPublishedAt = nil
	if err := s.repo.Save(ctx, m); err != nil {
		log.Printf("[ERROR] unpublish property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal membatalkan publikasi properti", helper.CodeDBError)
	}
	return helper.Ok(m)
}

/* ============================
   Admin reads (error dikembalikan eksplisit, tidak ditelan)
============================ */

func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) helper.Result[*model.PropertyModel] {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[*model.PropertyModel]("Properti tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find property %s: %v", id, err)
		return helper.Err[*model.PropertyModel]("Gagal mengambil data properti", helper.CodeDBError)
	}
	return helper.Ok(m)
}

// ListAll: semua properti non-archived untuk panel admin, terbaru dulu.
func (s *PropertyService) ListAll(ctx context.Context) helper.Result[[]model.PropertyModel] {
	rows, err := s.repo.List(ctx, ListParams{
		ExcludeArchived: true,
		SortBy:          SortNewest,
	})
	if err != nil {
		log.Printf("[ERROR] list properties (admin): %v", err)
		return helper.Err[[]model.PropertyModel]("Gagal mengambil data properti", helper.CodeDBError)
	}
	return helper.Ok(rows)
}
