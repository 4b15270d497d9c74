package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

type mockResumeRepo struct {
	mock.Mock
}

func (m *mockResumeRepo) Create(ctx context.Context, obj *models.Resume) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockResumeRepo) GetByID(ctx context.Context, id any, dest *models.Resume) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Resume)
	}
	return args.Error(0)
}

func (m *mockResumeRepo) Update(ctx context.Context, obj *models.Resume) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockResumeRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResumeRepo) Active(ctx context.Context, dest *models.Resume) error {
	args := m.Called(ctx, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Resume)
	}
	return args.Error(0)
}

func (m *mockResumeRepo) ActivateExclusive(ctx context.Context, rec *models.Resume) error {
	args := m.Called(ctx, rec)
	if args.Error(0) == nil {
		rec.IsActive = true
	}
	return args.Error(0)
}

func (m *mockResumeRepo) IncrementDownloads(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockResumeRepo) AppendLog(ctx context.Context, entry *models.ResumeLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *mockResumeRepo) ActiveDownloadCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestUploadWritesFileAndActivates(t *testing.T) {
	dir := t.TempDir()
	repo := &mockResumeRepo{}
	repo.On("ActivateExclusive", mock.Anything, mock.Anything).Return(nil)

	svc := NewResumeService(repo, dir, zap.NewNop())
	rec, err := svc.Upload(context.Background(), "My Resume.pdf", "application/pdf", 0,
		strings.NewReader("pdf-bytes"), uuid.New())
	require.NoError(t, err)

	require.True(t, rec.IsActive)
	require.Equal(t, "My Resume.pdf", rec.FileName)
	require.Equal(t, "pdf", rec.Format)
	require.Equal(t, int64(len("pdf-bytes")), rec.Bytes)
	require.True(t, strings.HasSuffix(rec.StoragePath, "-My_Resume.pdf"))

	data, err := os.ReadFile(filepath.Join(dir, rec.StoragePath))
	require.NoError(t, err)
	require.Equal(t, "pdf-bytes", string(data))
	repo.AssertExpectations(t)
}

func TestDownloadMissingFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	repo := &mockResumeRepo{}
	active := &models.Resume{ID: uuid.New(), FileName: "cv.pdf", StoragePath: "gone.pdf", IsActive: true}
	repo.On("Active", mock.Anything, mock.Anything).Return(nil, active)
	repo.On("AppendLog", mock.Anything, mock.Anything).Return(nil)
	repo.On("IncrementDownloads", mock.Anything, active.ID).Return(nil)

	svc := NewResumeService(repo, dir, zap.NewNop())
	_, err := svc.Download(context.Background(), uuid.New(), "127.0.0.1", "go-test")
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeNotFound))
}

func TestDownloadStreamsActiveFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "123-cv.pdf"), []byte("content"), 0o644))

	repo := &mockResumeRepo{}
	active := &models.Resume{ID: uuid.New(), FileName: "cv.pdf", StoragePath: "123-cv.pdf", IsActive: true}
	repo.On("Active", mock.Anything, mock.Anything).Return(nil, active)
	repo.On("AppendLog", mock.Anything, mock.MatchedBy(func(e *models.ResumeLog) bool {
		return e.IP == "127.0.0.1" && e.UserAgent == "go-test"
	})).Return(nil)
	repo.On("IncrementDownloads", mock.Anything, active.ID).Return(nil)

	svc := NewResumeService(repo, dir, zap.NewNop())
	dl, err := svc.Download(context.Background(), uuid.New(), "127.0.0.1", "go-test")
	require.NoError(t, err)
	defer dl.File.Close()

	require.Equal(t, "cv.pdf", dl.Resume.FileName)
	repo.AssertExpectations(t)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	dir := t.TempDir()
	repo := &mockResumeRepo{}
	id := uuid.New()
	rec := &models.Resume{ID: id, StoragePath: "never-written.pdf"}
	repo.On("GetByID", mock.Anything, id, mock.Anything).Return(nil, rec)
	repo.On("Delete", mock.Anything, id).Return(nil)

	svc := NewResumeService(repo, dir, zap.NewNop())
	require.NoError(t, svc.Delete(context.Background(), id))
	repo.AssertExpectations(t)
}

func TestDeleteRemovesFileAndRecord(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "123-cv.pdf"), []byte("content"), 0o644))

	repo := &mockResumeRepo{}
	id := uuid.New()
	rec := &models.Resume{ID: id, StoragePath: "123-cv.pdf"}
	repo.On("GetByID", mock.Anything, id, mock.Anything).Return(nil, rec)
	repo.On("Delete", mock.Anything, id).Return(nil)

	svc := NewResumeService(repo, dir, zap.NewNop())
	require.NoError(t, svc.Delete(context.Background(), id))

	_, err := os.Stat(filepath.Join(dir, "123-cv.pdf"))
	require.True(t, os.IsNotExist(err))
	repo.AssertExpectations(t)
}
