package handlers

import (
	"net/http"

	"gorm.io/datatypes"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

type ProfileHandler struct {
	repo repository.ProfileRepository
}

func NewProfileHandler(repo repository.ProfileRepository) *ProfileHandler {
	return &ProfileHandler{repo: repo}
}

// Get serves the public profile. An empty store yields an empty object, not
// an error, so the site renders before any content exists.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := h.repo.Latest(r.Context(), &p); err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]any{}})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}

func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	p := models.Profile{
		Name:         req.Name,
		Headline:     req.Headline,
		Bio:          req.Bio,
		Roles:        datatypes.NewJSONSlice(req.Roles),
		Location:     req.Location,
		Email:        req.Email,
		Phone:        req.Phone,
		Availability: req.Availability,
		HeroImage:    datatypes.NewJSONType(req.HeroImage),
		ResumeIntro:  req.ResumeIntro,
		CTALabel:     req.CTALabel,
	}
	if p.CTALabel == "" {
		p.CTALabel = "Download Resume"
	}
	if err := h.repo.Upsert(r.Context(), &p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: p})
}
