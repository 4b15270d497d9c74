package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
)

type SkillHandler struct {
	repo repository.SkillRepository
}

func NewSkillHandler(repo repository.SkillRepository) *SkillHandler {
	return &SkillHandler{repo: repo}
}

func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListOrdered(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.SkillRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s := skillFromRequest(&req)
	if err := h.repo.Create(r.Context(), s); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: s})
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	var existing models.Skill
	if err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"), &existing); err != nil {
		writeError(w, err)
		return
	}
	var req types.SkillRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	s := skillFromRequest(&req)
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(r.Context(), s); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: s})
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "skill removed"}})
}

func skillFromRequest(req *types.SkillRequest) *models.Skill {
	return &models.Skill{
		Name:        req.Name,
		Category:    req.Category,
		Level:       req.Level,
		Icon:        datatypes.NewJSONType(req.Icon),
		Description: req.Description,
		IsFeatured:  req.IsFeatured,
	}
}
