package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/properties/dto"
	helper "rumahjogja_backend/internals/helpers"
)

// Query engine untuk halaman publik. Path baca publik tidak boleh
// hard-fail: kalau storage bermasalah, pengunjung melihat hasil kosong
// dan errornya cukup masuk log.

const DefaultSimilarLimit = 3
const DefaultFeaturedLimit = 8

// PublicQueryOptions: semua filter opsional, AND-combined.
type PublicQueryOptions struct {
	TransactionType string
	PropertyType    string
	District        string
	MinPrice        int64
	MaxPrice        int64
	MinBedrooms     int
	MinBathrooms    int
	SortBy          string
	Limit           int
	Offset          int
}

// ListPublished: listing publik, hanya status published.
func (s *PropertyService) ListPublished(ctx context.Context, opts PublicQueryOptions) []dto.PropertyListItemDTO {
	rows, err := s.repo.List(ctx, ListParams{
		Statuses:        []string{constants.PropertyStatusPublished},
		TransactionType: opts.TransactionType,
		PropertyType:    strings.ToLower(opts.PropertyType),
		District:        opts.District,
		MinPrice:        opts.MinPrice,
		MaxPrice:        opts.MaxPrice,
		MinBedrooms:     opts.MinBedrooms,
		MinBathrooms:    opts.MinBathrooms,
		SortBy:          opts.SortBy,
		Limit:           opts.Limit,
		Offset:          opts.Offset,
	})
	if err != nil {
		log.Printf("[ERROR] list published properties: %v", err)
		return []dto.PropertyListItemDTO{}
	}

	items := make([]dto.PropertyListItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ToPropertyListItemDTO(row))
	}
	return items
}

// Featured: listing published terbaru untuk halaman depan.
func (s *PropertyService) Featured(ctx context.Context, limit int) []dto.PropertyListItemDTO {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.ListPublished(ctx, PublicQueryOptions{Limit: limit})
}

// GetDetailBySlug: detail publik + koleksi gambar terurut sort_order ASC.
// (nil, false) berarti tidak ditemukan / belum published.
func (s *PropertyService) GetDetailBySlug(ctx context.Context, slug string) (*dto.PropertyDetailDTO, bool) {
	m, err := s.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] find property by slug %q: %v", slug, err)
		}
		return nil, false
	}

	images, err := s.repo.ListImageURLs(ctx, m.PropertyID)
	if err != nil {
		// Detail tetap tampil walau koleksi gambar gagal diambil.
		log.Printf("[ERROR] list images for property %s: %v", m.PropertyID, err)
		images = nil
	}

	detail := dto.ToPropertyDetailDTO(*m, images)
	return &detail, true
}

// Similar: properti published lain dengan tipe sama, exclude id, limit N.
func (s *PropertyService) Similar(ctx context.Context, excludeID uuid.UUID, propertyType string, limit int) []dto.PropertyListItemDTO {
	if limit <= 0 {
		limit = DefaultSimilarLimit
	}
	rows, err := s.repo.ListSimilar(ctx, excludeID, strings.ToLower(propertyType), limit)
	if err != nil {
		log.Printf("[ERROR] list similar properties: %v", err)
		return []dto.PropertyListItemDTO{}
	}

	items := make([]dto.PropertyListItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ToPropertyListItemDTO(row))
	}
	return items
}

// CountsByType: jumlah listing published per tipe properti, untuk navigasi
// kategori. Setiap nilai enum selalu hadir (0 kalau kosong).
func (s *PropertyService) CountsByType(ctx context.Context) helper.Result[map[string]int64] {
	counts, err := s.repo.CountPublishedByType(ctx)
	if err != nil {
		log.Printf("[ERROR] count properties by type: %v", err)
		return helper.Err[map[string]int64]("Gagal mengambil data properti", helper.CodeDBError)
	}
	return helper.Ok(counts)
}
