package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/api/middleware"
	"github.com/portfolio-studio/backend/internal/models"
)

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, obj *models.Message) error {
	args := m.Called(ctx, obj)
	if args.Error(0) == nil && obj.ID == uuid.Nil {
		obj.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockMessageRepo) GetByID(ctx context.Context, id any, dest *models.Message) error {
	args := m.Called(ctx, id, dest)
	if args.Error(0) == nil && args.Get(1) != nil {
		*dest = *args.Get(1).(*models.Message)
	}
	return args.Error(0)
}

func (m *mockMessageRepo) Update(ctx context.Context, obj *models.Message) error {
	return m.Called(ctx, obj).Error(0)
}

func (m *mockMessageRepo) Delete(ctx context.Context, id any) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMessageRepo) ListAll(ctx context.Context) ([]models.Message, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMessageRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockMessageRepo) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(to, subject, body string) error {
	return m.Called(to, subject, body).Error(0)
}

func TestMessageCreateAnonymousRequiresNameAndEmail(t *testing.T) {
	msgs := &mockMessageRepo{}
	mail := &mockMailer{}
	h := NewMessageHandler(msgs, &mockUserRepo{}, mail, "owner@example.com", zap.NewNop())

	body, _ := json.Marshal(map[string]string{"subject": "Hi", "body": "Hello there"})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "name")
	require.Contains(t, rr.Body.String(), "email")
	msgs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestMessageCreateAnonymousStoresAndNotifies(t *testing.T) {
	msgs := &mockMessageRepo{}
	msgs.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.SenderID == nil && m.Name == "Visitor" && m.Email == "v@example.com"
	})).Return(nil)
	mail := &mockMailer{}
	mail.On("Send", "owner@example.com", mock.Anything, mock.Anything).Return(nil)

	h := NewMessageHandler(msgs, &mockUserRepo{}, mail, "owner@example.com", zap.NewNop())

	body, _ := json.Marshal(map[string]string{
		"name": "Visitor", "email": "v@example.com", "subject": "Hi", "body": "Hello",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	msgs.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestMessageCreateAuthenticatedInheritsIdentity(t *testing.T) {
	sender := &models.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com"}

	users := &mockUserRepo{}
	users.On("GetByID", mock.Anything, sender.ID, mock.Anything).Return(nil, sender)

	msgs := &mockMessageRepo{}
	msgs.On("Create", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.SenderID != nil && *m.SenderID == sender.ID &&
			m.Name == "Ada" && m.Email == "ada@example.com"
	})).Return(nil)
	mail := &mockMailer{}
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	h := NewMessageHandler(msgs, users, mail, "owner@example.com", zap.NewNop())

	body, _ := json.Marshal(map[string]string{"subject": "Hi", "body": "Hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	ctx := middleware.WithPrincipal(req.Context(), &middleware.Principal{
		UserID: sender.ID.String(), Role: models.RoleUser,
	})
	rr := httptest.NewRecorder()
	h.Create(rr, req.WithContext(ctx))

	require.Equal(t, http.StatusCreated, rr.Code)
	msgs.AssertExpectations(t)
}

func TestMessageCreateSurvivesMailFailure(t *testing.T) {
	msgs := &mockMessageRepo{}
	msgs.On("Create", mock.Anything, mock.Anything).Return(nil)
	mail := &mockMailer{}
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("relay down"))

	h := NewMessageHandler(msgs, &mockUserRepo{}, mail, "owner@example.com", zap.NewNop())

	body, _ := json.Marshal(map[string]string{
		"name": "Visitor", "email": "v@example.com", "subject": "Hi", "body": "Hello",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestMessageReplyAppendsAndFlags(t *testing.T) {
	admin := uuid.New()
	existing := &models.Message{ID: uuid.New(), Name: "Visitor", Email: "v@example.com", Subject: "Hi"}

	msgs := &mockMessageRepo{}
	msgs.On("GetByID", mock.Anything, existing.ID.String(), mock.Anything).Return(nil, existing)
	msgs.On("Update", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.Replied && m.IsRead && len(m.Replies) == 1 &&
			m.Replies[0].Body == "Thanks!" && m.Replies[0].SentBy == admin
	})).Return(nil)
	mail := &mockMailer{}
	mail.On("Send", "v@example.com", "Re: Hi", "Thanks!").Return(nil)

	h := NewMessageHandler(msgs, &mockUserRepo{}, mail, "owner@example.com", zap.NewNop())

	body, _ := json.Marshal(map[string]string{"response": "Thanks!"})
	req := httptest.NewRequest(http.MethodPost, "/api/messages/"+existing.ID.String()+"/reply", bytes.NewReader(body))
	req = withURLParam(req, "id", existing.ID.String())
	ctx := middleware.WithPrincipal(req.Context(), &middleware.Principal{
		UserID: admin.String(), Role: models.RoleAdmin,
	})
	rr := httptest.NewRecorder()
	h.Reply(rr, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rr.Code)
	msgs.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestMessageMarkRead(t *testing.T) {
	existing := &models.Message{ID: uuid.New(), Name: "V", Email: "v@example.com"}

	msgs := &mockMessageRepo{}
	msgs.On("GetByID", mock.Anything, existing.ID.String(), mock.Anything).Return(nil, existing)
	msgs.On("Update", mock.Anything, mock.MatchedBy(func(m *models.Message) bool {
		return m.IsRead
	})).Return(nil)

	h := NewMessageHandler(msgs, &mockUserRepo{}, &mockMailer{}, "", zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+existing.ID.String()+"/read", nil)
	req = withURLParam(req, "id", existing.ID.String())
	rr := httptest.NewRecorder()
	h.MarkRead(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	msgs.AssertExpectations(t)
}
