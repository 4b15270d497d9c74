package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
	"github.com/portfolio-studio/backend/pkg/utils"
)

type ProjectHandler struct {
	repo repository.ProjectRepository
}

func NewProjectHandler(repo repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

// List returns the public projects. Admins hit ListAll for drafts too.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListPublic(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *ProjectHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *ProjectHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := h.repo.GetBySlug(r.Context(), chi.URLParam(r, "slug"), &p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	slug := utils.Slugify(req.Title)
	taken, err := h.repo.SlugTaken(r.Context(), slug, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	if taken {
		writeError(w, appErr.New(appErr.CodeConflict, "project with this title already exists"))
		return
	}

	p := projectFromRequest(&req)
	p.Slug = slug
	if err := h.repo.Create(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var existing models.Project
	if err := h.repo.GetByID(r.Context(), id, &existing); err != nil {
		writeError(w, err)
		return
	}
	var req types.ProjectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	slug := existing.Slug
	if req.Title != existing.Title {
		slug = utils.Slugify(req.Title)
		taken, err := h.repo.SlugTaken(r.Context(), slug, existing.ID)
		if err != nil {
			writeError(w, err)
			return
		}
		if taken {
			writeError(w, appErr.New(appErr.CodeConflict, "project with this title already exists"))
			return
		}
	}

	p := projectFromRequest(&req)
	p.ID = existing.ID
	p.Slug = slug
	p.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "project removed"}})
}

func projectFromRequest(req *types.ProjectRequest) *models.Project {
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}
	return &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Features:    datatypes.NewJSONSlice(req.Features),
		Tech:        datatypes.NewJSONSlice(req.Tech),
		Images:      datatypes.NewJSONSlice(req.Images),
		DemoURL:     req.DemoURL,
		RepoURL:     req.RepoURL,
		IsPublic:    isPublic,
	}
}
