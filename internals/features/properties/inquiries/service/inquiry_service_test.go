package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/constants"
	"rumahjogja_backend/internals/features/properties/inquiries/dto"
	"rumahjogja_backend/internals/features/properties/inquiries/model"
	helper "rumahjogja_backend/internals/helpers"
)

/* ============================
   Fake repository
============================ */

type fakeInquiryRepo struct {
	rows map[uuid.UUID]*model.InquiryModel
}

func newFakeInquiryRepo() *fakeInquiryRepo {
	return &fakeInquiryRepo{rows: map[uuid.UUID]*model.InquiryModel{}}
}

func (f *fakeInquiryRepo) Insert(_ context.Context, m *model.InquiryModel) error {
	if m.InquiryID == uuid.Nil {
		m.InquiryID = uuid.New()
	}
	if m.InquiryCreatedAt.IsZero() {
		m.InquiryCreatedAt = time.Now()
	}
	cp := *m
	f.rows[m.InquiryID] = &cp
	return nil
}

func (f *fakeInquiryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InquiryModel, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeInquiryRepo) Save(_ context.Context, m *model.InquiryModel) error {
	cp := *m
	f.rows[m.InquiryID] = &cp
	return nil
}

func (f *fakeInquiryRepo) List(_ context.Context, p InquiryListParams) ([]model.InquiryModel, error) {
	var out []model.InquiryModel
	for _, m := range f.rows {
		if p.Status != "" && m.InquiryStatus != p.Status {
			continue
		}
		out = append(out, *m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].InquiryCreatedAt.After(out[j].InquiryCreatedAt)
	})
	if p.Offset > 0 {
		if p.Offset >= len(out) {
			return nil, nil
		}
		out = out[p.Offset:]
	}
	if p.Limit > 0 && len(out) > p.Limit {
		out = out[:p.Limit]
	}
	return out, nil
}

func (f *fakeInquiryRepo) CountsByStatus(_ context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(constants.InquiryStatuses))
	for _, s := range constants.InquiryStatuses {
		counts[s] = 0
	}
	for _, m := range f.rows {
		counts[m.InquiryStatus]++
	}
	return counts, nil
}

/* ============================
   Setup
============================ */

func newInquiryServiceWithFake() (*InquiryService, *fakeInquiryRepo) {
	repo := newFakeInquiryRepo()
	return NewInquiryService(repo), repo
}

func validSubmitRequest() *dto.SubmitInquiryRequest {
	return &dto.SubmitInquiryRequest{
		Type:    "contact",
		Name:    "Budi Santoso",
		Email:   "budi@example.com",
		Message: "Saya tertarik dengan layanan Anda.",
	}
}

func submitInquiry(t *testing.T, svc *InquiryService, mutate func(*dto.SubmitInquiryRequest)) dto.InquiryDTO {
	t.Helper()
	req := validSubmitRequest()
	if mutate != nil {
		mutate(req)
	}
	res := svc.Submit(context.Background(), req)
	require.True(t, res.IsOk(), "submit gagal: %s", res.Message())
	return res.Data()
}

/* ============================
   Submit + validasi
============================ */

func TestSubmitStartsAsNew(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, nil)

	assert.Equal(t, constants.InquiryStatusNew, d.Status)
	assert.NotEmpty(t, d.ID)
	assert.Nil(t, d.ReadAt)
	assert.Nil(t, d.RepliedAt)
}

func TestSubmitPropertyInquiryWithoutPropertyID(t *testing.T) {
	// Pertanyaan bertipe property tanpa property_id tetap sah
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, func(r *dto.SubmitInquiryRequest) {
		r.Type = "property"
		r.Message = "Apakah unit tipe 45 masih tersedia?"
	})
	assert.Equal(t, "property", d.Type)
	assert.Empty(t, d.PropertyID)
}

func TestSubmitCarriesPropertyID(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	pid := uuid.NewString()
	d := submitInquiry(t, svc, func(r *dto.SubmitInquiryRequest) {
		r.Type = "property"
		r.PropertyID = pid
	})
	assert.Equal(t, pid, d.PropertyID)
}

func TestSubmitValidationMessages(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	cases := []struct {
		name   string
		mutate func(*dto.SubmitInquiryRequest)
		want   string
	}{
		{"tipe tidak dikenal", func(r *dto.SubmitInquiryRequest) { r.Type = "telepon" }, "Tipe inquiry tidak valid"},
		{"nama terlalu pendek", func(r *dto.SubmitInquiryRequest) { r.Name = "B" }, "Nama minimal 2 karakter"},
		{"email rusak", func(r *dto.SubmitInquiryRequest) { r.Email = "bukan-email" }, "Email tidak valid"},
		{"pesan 9 karakter", func(r *dto.SubmitInquiryRequest) { r.Message = "123456789" }, "Pesan minimal 10 karakter"},
		{"telepon rusak", func(r *dto.SubmitInquiryRequest) { r.Phone = "12345" }, "Nomor telepon tidak valid"},
		{"property id bukan uuid", func(r *dto.SubmitInquiryRequest) { r.PropertyID = "abc" }, "Property ID tidak valid"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmitRequest()
			tc.mutate(req)
			res := svc.Submit(context.Background(), req)
			require.True(t, res.IsErr())
			assert.Equal(t, helper.CodeValidationError, res.Code())
			assert.Equal(t, tc.want, res.Message())
		})
	}
}

func TestSubmitMessageBoundary(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	// tepat 10 karakter lolos
	d := submitInquiry(t, svc, func(r *dto.SubmitInquiryRequest) { r.Message = "1234567890" })
	assert.Equal(t, "1234567890", d.Message)
}

func TestSubmitPhoneOptional(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, func(r *dto.SubmitInquiryRequest) { r.Phone = "" })
	assert.Empty(t, d.Phone)

	d = submitInquiry(t, svc, func(r *dto.SubmitInquiryRequest) { r.Phone = "08123456789" })
	assert.Equal(t, "08123456789", d.Phone)
}

/* ============================
   Triase status
============================ */

func TestUpdateStatusStampsReadAt(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, nil)
	id := uuid.MustParse(d.ID)

	res := svc.MarkAsRead(context.Background(), id)
	require.True(t, res.IsOk(), res.Message())
	assert.Equal(t, constants.InquiryStatusRead, res.Data().Status)
	require.NotNil(t, res.Data().ReadAt)
}

func TestUpdateStatusRestampsReadAt(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, nil)
	id := uuid.MustParse(d.ID)

	first := svc.MarkAsRead(context.Background(), id)
	require.True(t, first.IsOk())
	firstReadAt := *first.Data().ReadAt

	time.Sleep(2 * time.Millisecond)

	// read ulang → timestamp ditimpa dengan waktu terbaru
	second := svc.MarkAsRead(context.Background(), id)
	require.True(t, second.IsOk())
	require.NotNil(t, second.Data().ReadAt)
	assert.True(t, second.Data().ReadAt.After(firstReadAt))
}

func TestMarkAsRepliedKeepsReadAt(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, nil)
	id := uuid.MustParse(d.ID)

	require.True(t, svc.MarkAsRead(context.Background(), id).IsOk())
	res := svc.MarkAsReplied(context.Background(), id)
	require.True(t, res.IsOk())

	assert.Equal(t, constants.InquiryStatusReplied, res.Data().Status)
	assert.NotNil(t, res.Data().ReadAt)
	assert.NotNil(t, res.Data().RepliedAt)
}

func TestUpdateStatusWithNotes(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, nil)
	id := uuid.MustParse(d.ID)

	res := svc.UpdateStatus(context.Background(), id, &dto.UpdateInquiryStatusRequest{
		Status: constants.InquiryStatusClosed,
		Notes:  "Sudah dijawab via telepon",
	})
	require.True(t, res.IsOk(), res.Message())
	assert.Equal(t, constants.InquiryStatusClosed, res.Data().Status)
	assert.Equal(t, "Sudah dijawab via telepon", res.Data().Notes)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	d := submitInquiry(t, svc, nil)
	id := uuid.MustParse(d.ID)

	res := svc.UpdateStatus(context.Background(), id, &dto.UpdateInquiryStatusRequest{Status: "selesai"})
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeValidationError, res.Code())
	assert.Equal(t, "Status inquiry tidak valid", res.Message())
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	res := svc.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateInquiryStatusRequest{Status: "read"})
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeNotFound, res.Code())
}

/* ============================
   List + counts
============================ */

func TestListNewestFirstWithStatusFilter(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	first := submitInquiry(t, svc, nil)
	time.Sleep(2 * time.Millisecond)
	second := submitInquiry(t, svc, nil)

	require.True(t, svc.MarkAsRead(context.Background(), uuid.MustParse(first.ID)).IsOk())

	all := svc.List(context.Background(), InquiryListParams{})
	require.True(t, all.IsOk())
	require.Len(t, all.Data(), 2)
	assert.Equal(t, second.ID, all.Data()[0].ID) // terbaru dulu

	onlyNew := svc.List(context.Background(), InquiryListParams{Status: constants.InquiryStatusNew})
	require.True(t, onlyNew.IsOk())
	require.Len(t, onlyNew.Data(), 1)
	assert.Equal(t, second.ID, onlyNew.Data()[0].ID)
}

func TestListRejectsUnknownStatusFilter(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	res := svc.List(context.Background(), InquiryListParams{Status: "aneh"})
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeValidationError, res.Code())
}

func TestCountsByStatusIncludesTotalAndZeroes(t *testing.T) {
	svc, _ := newInquiryServiceWithFake()
	submitInquiry(t, svc, nil)
	d := submitInquiry(t, svc, nil)
	require.True(t, svc.Close(context.Background(), uuid.MustParse(d.ID)).IsOk())

	res := svc.CountsByStatus(context.Background())
	require.True(t, res.IsOk())
	counts := res.Data()

	assert.Equal(t, int64(1), counts[constants.InquiryStatusNew])
	assert.Equal(t, int64(1), counts[constants.InquiryStatusClosed])
	assert.Equal(t, int64(0), counts[constants.InquiryStatusRead])
	assert.Equal(t, int64(0), counts[constants.InquiryStatusReplied])
	assert.Equal(t, int64(2), counts["total"])
}
