package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/portfolio-studio/backend/internal/api/middleware"
	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/services"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

const maxResumeBytes = 10 << 20

type ResumeHandler struct {
	svc *services.ResumeService
}

func NewResumeHandler(svc *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

// Upload stores a new resume file and makes it the active one.
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "authentication required"))
		return
	}
	uploadedBy, err := uuid.Parse(p.UserID)
	if err != nil {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "invalid session"))
		return
	}

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInvalid, "invalid multipart payload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, appErr.New(appErr.CodeInvalid, "file is required"))
		return
	}
	defer file.Close()

	rec, err := h.svc.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), header.Size, file, uploadedBy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: rec})
}

// Active returns the metadata of the currently served resume.
func (h *ResumeHandler) Active(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.ActiveMeta(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: rec})
}

// Download streams the active resume as an attachment and records the
// download against the caller.
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "authentication required"))
		return
	}
	userID, err := uuid.Parse(p.UserID)
	if err != nil {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "invalid session"))
		return
	}

	dl, err := h.svc.Download(r.Context(), userID, clientIP(r), r.UserAgent())
	if err != nil {
		writeError(w, err)
		return
	}
	defer dl.File.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.Resume.FileName))
	if dl.Resume.MimeType != "" {
		w.Header().Set("Content-Type", dl.Resume.MimeType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	if dl.Resume.Bytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(dl.Resume.Bytes, 10))
	}
	_, _ = io.Copy(w, dl.File)
}

func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, appErr.New(appErr.CodeInvalid, "invalid resume id"))
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "resume removed"}})
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return r.RemoteAddr
}
