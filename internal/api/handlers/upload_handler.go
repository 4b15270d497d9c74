package handlers

import (
	"net/http"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/storage"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

const maxUploadBytes = 25 << 20

// UploadHandler relays media files to object storage and hands back the
// public URL plus the storage key.
type UploadHandler struct {
	store storage.Uploader
}

func NewUploadHandler(store storage.Uploader) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInvalid, "invalid multipart payload"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, appErr.New(appErr.CodeInvalid, "file is required"))
		return
	}
	defer file.Close()

	url, key, err := h.store.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "upload failed"))
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: types.UploadResponse{URL: url, PublicID: key}})
}
