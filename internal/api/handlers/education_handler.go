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

type EducationHandler struct {
	repo repository.EducationRepository
}

func NewEducationHandler(repo repository.EducationRepository) *EducationHandler {
	return &EducationHandler{repo: repo}
}

func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListOrdered(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.EducationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e := educationFromRequest(&req)
	if err := h.repo.Create(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: e})
}

func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var existing models.Education
	if err := h.repo.GetByID(r.Context(), chi.URLParam(r, "id"), &existing); err != nil {
		writeError(w, err)
		return
	}
	var req types.EducationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	e := educationFromRequest(&req)
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(r.Context(), e); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: e})
}

func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "education removed"}})
}

func educationFromRequest(req *types.EducationRequest) *models.Education {
	start, _ := time.Parse("2006-01-02", req.StartDate)
	var end *time.Time
	if req.EndDate != "" {
		t, _ := time.Parse("2006-01-02", req.EndDate)
		end = &t
	}
	return &models.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		StartDate:    start,
		EndDate:      end,
		Grade:        req.Grade,
		Description:  req.Description,
		Highlights:   datatypes.NewJSONSlice(req.Highlights),
		Logo:         datatypes.NewJSONType(req.Logo),
	}
}
