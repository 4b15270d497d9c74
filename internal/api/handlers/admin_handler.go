package handlers

import (
	"net/http"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/repository"
)

// AdminHandler serves the dashboard aggregates.
type AdminHandler struct {
	projects repository.ProjectRepository
	messages repository.MessageRepository
	resumes  repository.ResumeRepository
}

func NewAdminHandler(projects repository.ProjectRepository, messages repository.MessageRepository, resumes repository.ResumeRepository) *AdminHandler {
	return &AdminHandler{projects: projects, messages: messages, resumes: resumes}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectCount, err := h.projects.Count(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	total, err := h.messages.Count(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	unread, err := h.messages.CountUnread(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	downloads, err := h.resumes.ActiveDownloadCount(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.StatsResponse{
		ProjectCount:    projectCount,
		TotalMessages:   total,
		UnreadMessages:  unread,
		ResumeDownloads: downloads,
	}})
}
