package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-studio/backend/internal/models"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

type mockProjectRepo struct {
	mock.Mock
}

func (m *mockProjectRepo) Create(ctx context.Context, obj *models.Project) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id any, dest *models.Project) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Project)
	}
	return args.Error(0)
}

func (m *mockProjectRepo) Update(ctx context.Context, obj *models.Project) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockProjectRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProjectRepo) ListPublic(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) ListAll(ctx context.Context) ([]models.Project, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProjectRepo) GetBySlug(ctx context.Context, slug string, dest *models.Project) error {
	args := m.Called(ctx, slug, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Project)
	}
	return args.Error(0)
}

func (m *mockProjectRepo) SlugTaken(ctx context.Context, slug string, excludeID any) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProjectRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestProjectCreateDerivesSlug(t *testing.T) {
	repo := &mockProjectRepo{}
	repo.On("SlugTaken", mock.Anything, "my-first-app", nil).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
		return p.Slug == "my-first-app"
	})).Return(nil)

	h := NewProjectHandler(repo)

	body, _ := json.Marshal(map[string]any{"title": "My First App!", "description": "demo"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	repo.AssertExpectations(t)
}

func TestProjectCreateDuplicateTitleConflict(t *testing.T) {
	repo := &mockProjectRepo{}
	repo.On("SlugTaken", mock.Anything, "my-first-app", nil).Return(true, nil)

	h := NewProjectHandler(repo)

	body, _ := json.Marshal(map[string]any{"title": "My First App", "description": "demo"})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
	require.Contains(t, rr.Body.String(), "already exists")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjectUpdateKeepsSlugWhenTitleUnchanged(t *testing.T) {
	existing := &models.Project{ID: uuid.New(), Title: "Keep Me", Slug: "keep-me", Description: "old"}

	repo := &mockProjectRepo{}
	repo.On("GetByID", mock.Anything, existing.ID.String(), mock.Anything).Return(nil, existing)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *models.Project) bool {
		return p.Slug == "keep-me" && p.ID == existing.ID
	})).Return(nil)

	h := NewProjectHandler(repo)

	body, _ := json.Marshal(map[string]any{"title": "Keep Me", "description": "new"})
	req := httptest.NewRequest(http.MethodPut, "/api/projects/"+existing.ID.String(), bytes.NewReader(body))
	req = withURLParam(req, "id", existing.ID.String())
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	repo.AssertNotCalled(t, "SlugTaken", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestProjectUpdateTitleChangeChecksSlug(t *testing.T) {
	existing := &models.Project{ID: uuid.New(), Title: "Old Title", Slug: "old-title", Description: "x"}

	repo := &mockProjectRepo{}
	repo.On("GetByID", mock.Anything, existing.ID.String(), mock.Anything).Return(nil, existing)
	repo.On("SlugTaken", mock.Anything, "new-title", existing.ID).Return(true, nil)

	h := NewProjectHandler(repo)

	body, _ := json.Marshal(map[string]any{"title": "New Title", "description": "x"})
	req := httptest.NewRequest(http.MethodPut, "/api/projects/"+existing.ID.String(), bytes.NewReader(body))
	req = withURLParam(req, "id", existing.ID.String())
	rr := httptest.NewRecorder()
	h.Update(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProjectGetBySlugNotFound(t *testing.T) {
	repo := &mockProjectRepo{}
	repo.On("GetBySlug", mock.Anything, "ghost", mock.Anything).
		Return(appErr.New(appErr.CodeNotFound, "entity not found"), nil)

	h := NewProjectHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/projects/ghost", nil)
	req = withURLParam(req, "slug", "ghost")
	rr := httptest.NewRecorder()
	h.GetBySlug(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
