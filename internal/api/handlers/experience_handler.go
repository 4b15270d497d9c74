package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/datatypes"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
)

type ExperienceHandler struct {
	repo repository.ExperienceRepository
}

func NewExperienceHandler(repo repository.ExperienceRepository) *ExperienceHandler {
	return &ExperienceHandler{repo: repo}
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListOrdered(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.ExperienceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e := experienceFromRequest(&req)
	if err := h.repo.Create(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: e})
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var existing models.Experience
	if err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"), &existing); err != nil {
		writeError(w, err)
		return
	}
	var req types.ExperienceRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e := experienceFromRequest(&req)
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: e})
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "experience removed"}})
}

// Dates are validated as ISO-8601 by the request type, so parse errors cannot
// reach this point.
func experienceFromRequest(req *types.ExperienceRequest) *models.Experience {
	start, _ := time.Parse("2006-01-02", req.StartDate)
	var end *time.Time
	if req.EndDate != "" {
		t, _ := time.Parse("2006-01-02", req.EndDate)
		end = &t
	}
	return &models.Experience{
		Company:          req.Company,
		Role:             req.Role,
		Location:         req.Location,
		StartDate:        start,
		EndDate:          end,
		DurationLabel:    req.DurationLabel,
		IsCurrent:        req.IsCurrent,
		Responsibilities: datatypes.NewJSONSlice(req.Responsibilities),
		Technologies:     datatypes.NewJSONSlice(req.Technologies),
		Highlights:       datatypes.NewJSONSlice(req.Highlights),
		Logo:             datatypes.NewJSONType(req.Logo),
	}
}
