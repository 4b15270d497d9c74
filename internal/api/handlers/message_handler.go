package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/api/middleware"
	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/mailer"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

// MessageHandler accepts contact-form submissions and the admin-side triage
// operations. Outbound mail failures are logged, never surfaced: a broken
// relay must not lose the stored message.
type MessageHandler struct {
	messages     repository.MessageRepository
	users        repository.UserRepository
	mail         mailer.Mailer
	contactEmail string
	log          *zap.Logger
}

func NewMessageHandler(messages repository.MessageRepository, users repository.UserRepository, mail mailer.Mailer, contactEmail string, log *zap.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, users: users, mail: mail, contactEmail: contactEmail, log: log}
}

// Create stores a contact message. Authenticated senders inherit name and
// email from their account; anonymous visitors must supply both.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.MessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	msg := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}

	if p := middleware.GetPrincipal(r.Context()); p != nil {
		uid, err := uuid.Parse(p.UserID)
		if err != nil {
			writeError(w, appErr.New(appErr.CodeUnauthorized, "invalid session"))
			return
		}
		var sender models.User
		if err := h.users.GetByID(r.Context(), uid, &sender); err != nil {
			writeError(w, err)
			return
		}
		msg.SenderID = &uid
		if msg.Name == "" {
			msg.Name = sender.Name
		}
		if msg.Email == "" {
			msg.Email = sender.Email
		}
	}

	if msg.Name == "" || msg.Email == "" {
		e := appErr.New(appErr.CodeInvalid, "validation failed")
		if msg.Name == "" {
			e = e.WithField("name", "name is required")
		}
		if msg.Email == "" {
			e = e.WithField("email", "email is required")
		}
		writeError(w, e)
		return
	}

	if err := h.messages.Create(r.Context(), &msg); err != nil {
		writeError(w, err)
		return
	}

	if h.contactEmail != "" {
		body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Body)
		if err := h.mail.Send(h.contactEmail, "New message: "+msg.Subject, body); err != nil {
			h.log.Warn("contact notification failed", zap.Error(err), zap.String("message_id", msg.ID.String()))
		}
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: msg})
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.messages.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if err := h.messages.GetByID(r.Context(), chi.URLParam(r, "id"), &msg); err != nil {
		writeError(w, err)
		return
	}
	msg.IsRead = true
	if err := h.messages.Update(r.Context(), &msg); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: msg})
}

// Reply appends an admin response, emails it to the original sender, and
// flags the message as replied.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	p := middleware.GetPrincipal(r.Context())
	if p == nil {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "authentication required"))
		return
	}
	adminID, err := uuid.Parse(p.UserID)
	if err != nil {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "invalid session"))
		return
	}

	var msg models.Message
	if err := h.messages.GetByID(r.Context(), chi.URLParam(r, "id"), &msg); err != nil {
		writeError(w, err)
		return
	}

	var req types.ReplyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	msg.Replies = append(msg.Replies, models.MessageReply{
		Body:   req.Response,
		SentAt: time.Now().UTC(),
		SentBy: adminID,
	})
	msg.Replied = true
	msg.IsRead = true
	if err := h.messages.Update(r.Context(), &msg); err != nil {
		writeError(w, err)
		return
	}

	if err := h.mail.Send(msg.Email, "Re: "+msg.Subject, req.Response); err != nil {
		h.log.Warn("reply notification failed", zap.Error(err), zap.String("message_id", msg.ID.String()))
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: msg})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.messages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"message": "message removed"}})
}
