package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/api/middleware"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/services"
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
	return m.Called(ctx, rec).Error(0)
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

func TestResumeDownloadStreamsAttachment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "123-cv.pdf"), []byte("%PDF-1.4 fake"), 0o644))

	active := &models.Resume{
		ID:          uuid.New(),
		FileName:    "cv.pdf",
		StoragePath: "123-cv.pdf",
		MimeType:    "application/pdf",
		Bytes:       13,
	}

	repo := &mockResumeRepo{}
	repo.On("Active", mock.Anything, mock.Anything).Return(nil, active)
	repo.On("AppendLog", mock.Anything, mock.MatchedBy(func(l *models.ResumeLog) bool {
		return l.UserAgent == "test-agent"
	})).Return(nil)
	repo.On("IncrementDownloads", mock.Anything, active.ID).Return(nil)

	h := NewResumeHandler(services.NewResumeService(repo, dir, zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/resume/download", nil)
	req.Header.Set("User-Agent", "test-agent")
	ctx := middleware.WithPrincipal(req.Context(), &middleware.Principal{
		UserID: uuid.NewString(), Role: models.RoleUser,
	})
	rr := httptest.NewRecorder()
	h.Download(rr, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, `attachment; filename="cv.pdf"`, rr.Header().Get("Content-Disposition"))
	require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	require.Equal(t, "%PDF-1.4 fake", rr.Body.String())
	repo.AssertExpectations(t)
}

func TestResumeDownloadUnauthenticated(t *testing.T) {
	h := NewResumeHandler(services.NewResumeService(&mockResumeRepo{}, t.TempDir(), zap.NewNop()))

	req := httptest.NewRequest(http.MethodPost, "/api/resume/download", nil)
	rr := httptest.NewRecorder()
	h.Download(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestResumeDeleteInvalidID(t *testing.T) {
	h := NewResumeHandler(services.NewResumeService(&mockResumeRepo{}, t.TempDir(), zap.NewNop()))

	req := httptest.NewRequest(http.MethodDelete, "/api/resume/not-a-uuid", nil)
	req = withURLParam(req, "id", "not-a-uuid")
	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
