package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rumahjogja_backend/internals/features/properties/property_images/model"
	helper "rumahjogja_backend/internals/helpers"
)

/* ============================
   Fakes
============================ */

type fakeBlob struct {
	uploadErr error
	deleteErr error

	uploadedKeys []string
	deletedKeys  []string
}

func (f *fakeBlob) UploadPropertyImage(_ context.Context, propertyID uuid.UUID, fh *multipart.FileHeader) (string, string, error) {
	if f.uploadErr != nil {
		return "", "", f.uploadErr
	}
	key := "properties/" + propertyID.String() + "/" + fh.Filename
	f.uploadedKeys = append(f.uploadedKeys, key)
	return "https://cdn.example.com/" + key, key, nil
}

func (f *fakeBlob) DeleteByKey(_ context.Context, objectKey string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedKeys = append(f.deletedKeys, objectKey)
	return nil
}

type fakeImageRepo struct {
	rows      map[uuid.UUID]*model.PropertyImageModel
	insertErr error
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{rows: map[uuid.UUID]*model.PropertyImageModel{}}
}

func (f *fakeImageRepo) Insert(_ context.Context, m *model.PropertyImageModel) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if m.PropertyImageID == uuid.Nil {
		m.PropertyImageID = uuid.New()
	}
	cp := *m
	f.rows[m.PropertyImageID] = &cp
	return nil
}

func (f *fakeImageRepo) FindByID(_ context.Context, id uuid.UUID) (*model.PropertyImageModel, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeImageRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

/* ============================
   Tests
============================ */

func newImageServiceWithFakes() (*ImageService, *fakeImageRepo, *fakeBlob) {
	repo := newFakeImageRepo()
	blob := &fakeBlob{}
	return NewImageService(repo, blob), repo, blob
}

func fileHeader(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestUploadAndAttachHappyPath(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	propertyID := uuid.New()

	res := svc.UploadAndAttach(context.Background(), propertyID, fileHeader("kamar.jpg"), "Kamar utama", 2)
	require.True(t, res.IsOk(), res.Message())

	assert.NotEmpty(t, res.Data().ID)
	assert.Contains(t, res.Data().URL, propertyID.String())
	assert.Len(t, blob.uploadedKeys, 1)
	assert.Empty(t, blob.deletedKeys)
	assert.Len(t, repo.rows, 1)
}

func TestUploadFailureDoesNotTouchDB(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	blob.uploadErr = errors.New("bucket unreachable")

	res := svc.UploadAndAttach(context.Background(), uuid.New(), fileHeader("a.jpg"), "", 0)
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeStorageError, res.Code())
	assert.Empty(t, repo.rows)
}

func TestInsertFailureCompensatesUploadedBlob(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	repo.insertErr = errors.New("constraint violation")

	res := svc.UploadAndAttach(context.Background(), uuid.New(), fileHeader("a.jpg"), "", 0)
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeDBError, res.Code())

	// blob yang sempat terupload harus ikut dihapus
	require.Len(t, blob.uploadedKeys, 1)
	require.Len(t, blob.deletedKeys, 1)
	assert.Equal(t, blob.uploadedKeys[0], blob.deletedKeys[0])
	assert.Empty(t, repo.rows)
}

func TestInsertFailureWithFailingCompensationStillReturnsDBError(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	blob.deleteErr = errors.New("also down")
	repo.insertErr = errors.New("constraint violation")

	res := svc.UploadAndAttach(context.Background(), uuid.New(), fileHeader("a.jpg"), "", 0)
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeDBError, res.Code())
}

func TestDeleteAttachmentRemovesRecordThenBlob(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	propertyID := uuid.New()
	up := svc.UploadAndAttach(context.Background(), propertyID, fileHeader("a.jpg"), "", 0)
	require.True(t, up.IsOk())
	imageID := uuid.MustParse(up.Data().ID)

	res := svc.DeleteAttachmentCompletely(context.Background(), imageID)
	require.True(t, res.IsOk(), res.Message())
	assert.Empty(t, repo.rows)
	assert.Len(t, blob.deletedKeys, 1)
}

func TestDeleteAttachmentToleratesBlobFailure(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	up := svc.UploadAndAttach(context.Background(), uuid.New(), fileHeader("a.jpg"), "", 0)
	require.True(t, up.IsOk())
	imageID := uuid.MustParse(up.Data().ID)

	blob.deleteErr = errors.New("bucket unreachable")
	res := svc.DeleteAttachmentCompletely(context.Background(), imageID)

	// record tetap terhapus walau blob gagal dibersihkan
	require.True(t, res.IsOk(), res.Message())
	assert.Empty(t, repo.rows)
}

func TestDeleteAttachmentNotFound(t *testing.T) {
	svc, _, _ := newImageServiceWithFakes()
	res := svc.DeleteAttachmentCompletely(context.Background(), uuid.New())
	require.True(t, res.IsErr())
	assert.Equal(t, helper.CodeNotFound, res.Code())
}

func TestDeleteAttachmentSkipsBlobForExternalImage(t *testing.T) {
	svc, repo, blob := newImageServiceWithFakes()
	// gambar hosted eksternal: tanpa storage path
	id := uuid.New()
	repo.rows[id] = &model.PropertyImageModel{
		PropertyImageID:         id,
		PropertyImagePropertyID: uuid.New(),
		PropertyImageURL:        "https://lain.example.com/x.jpg",
	}

	res := svc.DeleteAttachmentCompletely(context.Background(), id)
	require.True(t, res.IsOk(), res.Message())
	assert.Empty(t, blob.deletedKeys)
}
