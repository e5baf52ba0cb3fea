package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/properties/dto"
	"rumahjogja_backend/internals/features/properties/properties/model"
)

// seedPublished: tanam satu listing published langsung lewat repo.
func seedPublished(t *testing.T, repo *fakePropertyRepo, mutate func(*model.PropertyModel)) *model.PropertyModel {
	t.Helper()
	img := "https://cdn.example.com/seed.jpg"
	now := time.Now()
	m := &model.PropertyModel{
		PropertyID:              uuid.New(),
		PropertySlug:            "listing-" + uuid.NewString()[:8],
		PropertyTitle:           "Rumah Contoh Sleman",
		PropertyTransactionType: constants.TransactionDijual,
		PropertyType:            "rumah",
		PropertyStatus:          constants.PropertyStatusPublished,
		PropertyPrice:           500_000_000,
		PropertyAddress:         "Jl. Contoh No. 1, Sleman",
		PropertyDistrict:        "Sleman",
		PropertyProvince:        constants.DefaultProvince,
		PropertyFeaturedImage:   &img,
		PropertyCreatedAt:       now,
		PropertyPublishedAt:     &now,
	}
	if mutate != nil {
		mutate(m)
	}
	require.NoError(t, repo.Save(context.Background(), m))
	return m
}

func TestListPublishedExcludesDraftAndArchived(t *testing.T) {
	svc, repo := newServiceWithFake()
	seedPublished(t, repo, nil)
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyStatus = constants.PropertyStatusDraft })
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyStatus = constants.PropertyStatusArchived })

	items := svc.ListPublished(context.Background(), PublicQueryOptions{})
	assert.Len(t, items, 1)
}

func TestListPublishedPriceRangeInclusive(t *testing.T) {
	svc, repo := newServiceWithFake()
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyPrice = 100 })
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyPrice = 200 })
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyPrice = 300 })

	items := svc.ListPublished(context.Background(), PublicQueryOptions{MinPrice: 100, MaxPrice: 200})
	require.Len(t, items, 2)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Price, int64(100))
		assert.LessOrEqual(t, it.Price, int64(200))
	}
}

func TestListPublishedFiltersAreANDCombined(t *testing.T) {
	svc, repo := newServiceWithFake()
	three := 3
	seedPublished(t, repo, func(m *model.PropertyModel) {
		m.PropertyDistrict = "Bantul"
		m.PropertyBedrooms = &three
	})
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyDistrict = "Bantul" })
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyBedrooms = &three })

	items := svc.ListPublished(context.Background(), PublicQueryOptions{
		District:    "Bantul",
		MinBedrooms: 2,
	})
	assert.Len(t, items, 1)
}

func TestListPublishedPropertyTypeCaseInsensitive(t *testing.T) {
	svc, repo := newServiceWithFake()
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "villa" })

	items := svc.ListPublished(context.Background(), PublicQueryOptions{PropertyType: "Villa"})
	assert.Len(t, items, 1)
}

func TestListPublishedSortByPrice(t *testing.T) {
	svc, repo := newServiceWithFake()
	for _, price := range []int64{300, 100, 200} {
		p := price
		seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyPrice = p })
	}

	asc := svc.ListPublished(context.Background(), PublicQueryOptions{SortBy: SortPriceAsc})
	require.Len(t, asc, 3)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := svc.ListPublished(context.Background(), PublicQueryOptions{SortBy: SortPriceDesc})
	require.Len(t, desc, 3)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestListPublishedDegradesToEmptyOnFailure(t *testing.T) {
	svc, repo := newServiceWithFake()
	repo.failList = true

	items := svc.ListPublished(context.Background(), PublicQueryOptions{})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestFeaturedDefaultsToEight(t *testing.T) {
	svc, repo := newServiceWithFake()
	for i := 0; i < 10; i++ {
		seedPublished(t, repo, nil)
	}

	items := svc.Featured(context.Background(), 0)
	assert.Len(t, items, DefaultFeaturedLimit)
}

func TestGetDetailBySlug(t *testing.T) {
	svc, repo := newServiceWithFake()
	m := seedPublished(t, repo, nil)
	repo.images[m.PropertyID] = []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}

	detail, found := svc.GetDetailBySlug(context.Background(), m.PropertySlug)
	require.True(t, found)
	assert.Equal(t, m.PropertySlug, detail.Slug)
	assert.Len(t, detail.Images, 2)
}

func TestGetDetailBySlugHidesDraft(t *testing.T) {
	svc, repo := newServiceWithFake()
	m := seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyStatus = constants.PropertyStatusDraft })

	_, found := svc.GetDetailBySlug(context.Background(), m.PropertySlug)
	assert.False(t, found)
}

func TestSimilarExcludesSelfAndCapsAtThree(t *testing.T) {
	svc, repo := newServiceWithFake()
	anchor := seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "villa" })
	for i := 0; i < 5; i++ {
		seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "villa" })
	}
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "rumah" })

	items := svc.Similar(context.Background(), anchor.PropertyID, "villa", 0)
	assert.Len(t, items, DefaultSimilarLimit)
	for _, it := range items {
		assert.NotEqual(t, anchor.PropertyID.String(), it.ID)
		assert.Equal(t, "Villa", it.PropertyType)
	}
}

func TestCountsByTypeIncludesZeroes(t *testing.T) {
	svc, repo := newServiceWithFake()
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "rumah" })
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "rumah" })
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyType = "tanah" })
	// draft tidak dihitung
	seedPublished(t, repo, func(m *model.PropertyModel) {
		m.PropertyType = "rumah"
		m.PropertyStatus = constants.PropertyStatusDraft
	})

	res := svc.CountsByType(context.Background())
	require.True(t, res.IsOk())
	counts := res.Data()

	assert.Equal(t, int64(2), counts["rumah"])
	assert.Equal(t, int64(1), counts["tanah"])
	for _, typ := range constants.PropertyTypes {
		_, ok := counts[typ]
		assert.True(t, ok, "tipe %s harus selalu hadir", typ)
	}
	assert.Equal(t, int64(0), counts["kos"])
}

func TestListItemViewModelFromQuery(t *testing.T) {
	svc, repo := newServiceWithFake()
	seedPublished(t, repo, func(m *model.PropertyModel) { m.PropertyFeaturedImage = nil })

	items := svc.ListPublished(context.Background(), PublicQueryOptions{})
	require.Len(t, items, 1)
	assert.Equal(t, constants.PlaceholderPropertyImage, items[0].ImageURL)

	var _ dto.PropertyListItemDTO = items[0]
}
