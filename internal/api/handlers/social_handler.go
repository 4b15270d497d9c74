package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
)

type SocialHandler struct {
	repo repository.SocialLinkRepository
}

func NewSocialHandler(repo repository.SocialLinkRepository) *SocialHandler {
	return &SocialHandler{repo: repo}
}

func (h *SocialHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListOrdered(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *SocialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.SocialLinkRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	link := socialFromRequest(&req)
	if err := h.repo.Create(r.Context(), link); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: link})
}

func (h *SocialHandler) Update(w http.ResponseWriter, r *http.Request) {
	var existing models.SocialLink
	if err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"), &existing); err != nil {
		writeError(w, err)
		return
	}
	var req types.SocialLinkRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	link := socialFromRequest(&req)
	link.ID = existing.ID
	link.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(r.Context(), link); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: link})
}

func (h *SocialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "social link removed"}})
}

func socialFromRequest(req *types.SocialLinkRequest) *models.SocialLink {
	return &models.SocialLink{
		Platform:  req.Platform,
		URL:       req.URL,
		Icon:      req.Icon,
		IsPrimary: req.IsPrimary,
		SortOrder: req.SortOrder,
	}
}
