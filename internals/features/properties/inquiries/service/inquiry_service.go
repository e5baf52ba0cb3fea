package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/inquiries/dto"
	"rumahjogja_backend/internals/features/properties/inquiries/model"
	helper "rumahjogja_backend/internals/helpers"
)

/* ============================
   Repository
============================ */

type InquiryListParams struct {
	Status string // kosong = semua status
	Limit  int
	Offset int
}

type InquiryRepository interface {
	Insert(ctx context.Context, m *model.InquiryModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InquiryModel, error)
	Save(ctx context.Context, m *model.InquiryModel) error
	List(ctx context.Context, p InquiryListParams) ([]model.InquiryModel, error)
	CountsByStatus(ctx context.Context) (map[string]int64, error)
}

type gormInquiryRepository struct {
	db *gorm.DB
}

func NewGormInquiryRepository(db *gorm.DB) InquiryRepository {
	return &gormInquiryRepository{db: db}
}

func (r *gormInquiryRepository) Insert(ctx context.Context, m *model.InquiryModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormInquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.InquiryModel, error) {
	var m model.InquiryModel
	if err := r.db.WithContext(ctx).First(&m, "inquiry_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormInquiryRepository) Save(ctx context.Context, m *model.InquiryModel) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *gormInquiryRepository) List(ctx context.Context, p InquiryListParams) ([]model.InquiryModel, error) {
	q := r.db.WithContext(ctx).Model(&model.InquiryModel{})
	if p.Status != "" {
		q = q.Where("inquiry_status = ?", p.Status)
	}
	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}
	if p.Offset > 0 {
		q = q.Offset(p.Offset)
	}

	var out []model.InquiryModel
	err := q.Order("inquiry_created_at DESC, inquiry_id ASC").Find(&out).Error
	return out, err
}

func (r *gormInquiryRepository) CountsByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.InquiryModel{}).
		Select("inquiry_status AS status, COUNT(*) AS total").
		Group("inquiry_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Semua status muncul di hasil, termasuk yang kosong
	counts := make(map[string]int64, len(constants.InquiryStatuses))
	for _, s := range constants.InquiryStatuses {
		counts[s] = 0
	}
	for _, rw := range rows {
		counts[rw.Status] = rw.Total
	}
	return counts, nil
}

/* ============================
   Service
============================ */

type InquiryService struct {
	repo InquiryRepository
}

func NewInquiryService(repo InquiryRepository) *InquiryService {
	return &InquiryService{repo: repo}
}

func NewInquiryServiceWithDB(db *gorm.DB) *InquiryService {
	return NewInquiryService(NewGormInquiryRepository(db))
}

// Submit menerima inquiry publik. Inquiry tipe 'property' boleh tanpa
// property_id (mis. pertanyaan umum dari halaman listing).
func (s *InquiryService) Submit(ctx context.Context, req *dto.SubmitInquiryRequest) helper.Result[dto.InquiryDTO] {
	if err := req.Validate(); err != nil {
		return helper.Err[dto.InquiryDTO](err.Error(), helper.CodeValidationError)
	}

	m := req.ToModel()
	if err := s.repo.Insert(ctx, &m); err != nil {
		log.Printf("[ERROR] insert inquiry: %v", err)
		return helper.Err[dto.InquiryDTO]("Gagal mengirim pesan", helper.CodeDBError)
	}

	return helper.Ok(dto.ToInquiryDTO(&m))
}

func (s *InquiryService) List(ctx context.Context, p InquiryListParams) helper.Result[[]dto.InquiryDTO] {
	if p.Status != "" && !constants.InList(constants.InquiryStatuses, p.Status) {
		return helper.Err[[]dto.InquiryDTO]("Status inquiry tidak valid", helper.CodeValidationError)
	}

	rows, err := s.repo.List(ctx, p)
	if err != nil {
		log.Printf("[ERROR] list inquiries: %v", err)
		return helper.Err[[]dto.InquiryDTO]("Gagal mengambil data inquiry", helper.CodeDBError)
	}
	return helper.Ok(dto.ToInquiryDTOs(rows))
}

func (s *InquiryService) GetByID(ctx context.Context, id uuid.UUID) helper.Result[dto.InquiryDTO] {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[dto.InquiryDTO]("Inquiry tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find inquiry %s: %v", id, err)
		return helper.Err[dto.InquiryDTO]("Gagal mengambil data inquiry", helper.CodeDBError)
	}
	return helper.Ok(dto.ToInquiryDTO(m))
}

// UpdateStatus mengganti status triase. read_at/replied_at selalu
// di-stamp ulang setiap kali status yang bersangkutan ditulis, supaya
// timestamp mencerminkan aksi admin terakhir.
func (s *InquiryService) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateInquiryStatusRequest) helper.Result[dto.InquiryDTO] {
	if err := req.Validate(); err != nil {
		return helper.Err[dto.InquiryDTO](err.Error(), helper.CodeValidationError)
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Err[dto.InquiryDTO]("Inquiry tidak ditemukan", helper.CodeNotFound)
		}
		log.Printf("[ERROR] find inquiry %s: %v", id, err)
		return helper.Err[dto.InquiryDTO]("Gagal mengambil data inquiry", helper.CodeDBError)
	}

	now := time.Now()
	m.InquiryStatus = req.Status
	switch req.Status {
	case constants.InquiryStatusRead:
		m.InquiryReadAt = &now
	case constants.InquiryStatusReplied:
		m.InquiryRepliedAt = &now
	}
	if req.Notes != "" {
		notes := req.Notes
		m.InquiryNotes = &notes
	}

	if err := s.repo.Save(ctx, m); err != nil {
		log.Printf("[ERROR] update inquiry %s: %v", id, err)
		return helper.Err[dto.InquiryDTO]("Gagal memperbarui inquiry", helper.CodeDBError)
	}
	return helper.Ok(dto.ToInquiryDTO(m))
}

func (s *InquiryService) MarkAsRead(ctx context.Context, id uuid.UUID) helper.Result[dto.InquiryDTO] {
	return s.UpdateStatus(ctx, id, &dto.UpdateInquiryStatusRequest{Status: constants.InquiryStatusRead})
}

func (s *InquiryService) MarkAsReplied(ctx context.Context, id uuid.UUID) helper.Result[dto.InquiryDTO] {
	return s.UpdateStatus(ctx, id, &dto.UpdateInquiryStatusRequest{Status: constants.InquiryStatusReplied})
}

func (s *InquiryService) Close(ctx context.Context, id uuid.UUID) helper.Result[dto.InquiryDTO] {
	return s.UpdateStatus(ctx, id, &dto.UpdateInquiryStatusRequest{Status: constants.InquiryStatusClosed})
}

// CountsByStatus untuk badge dashboard admin. Key 'total' ikut disertakan.
func (s *InquiryService) CountsByStatus(ctx context.Context) helper.Result[map[string]int64] {
	counts, err := s.repo.CountsByStatus(ctx)
	if err != nil {
		log.Printf("[ERROR] count inquiries: %v", err)
		return helper.Err[map[string]int64]("Gagal menghitung inquiry", helper.CodeDBError)
	}

	var total int64
	for _, v := range counts {
		total += v
	}
	counts["total"] = total
	return helper.Ok(counts)
}
