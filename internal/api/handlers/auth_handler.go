package handlers

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/portfolio-studio/backend/internal/api/types"
	"github.com/portfolio-studio/backend/internal/auth"
	"github.com/portfolio-studio/backend/internal/models"
	"github.com/portfolio-studio/backend/internal/repository"
	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

// refreshCookie is the HTTP-only cookie carrying the refresh token.
const refreshCookie = "jwt"

type AuthHandler struct {
	users        repository.UserRepository
	issuer       *auth.Issuer
	refreshTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(users repository.UserRepository, issuer *auth.Issuer, refreshTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, refreshTTL: refreshTTL, secureCookie: secureCookie}
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

// issueSession mints both tokens, persists the refresh token on the user row
// (rotating any previous session), and sets the cookie.
func (h *AuthHandler) issueSession(w http.ResponseWriter, r *http.Request, u *models.User) (string, error) {
	access, err := h.issuer.IssueAccessToken(u.ID.String(), u.Role)
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign access token failed")
	}
	refresh, err := h.issuer.IssueRefreshToken(u.ID.String())
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "sign refresh token failed")
	}
	if err := h.users.SetRefreshToken(r.Context(), u.ID, refresh); err != nil {
		return "", err
	}
	h.setRefreshCookie(w, refresh)
	return access, nil
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	ph, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "hash password failed"))
		return
	}

	u := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(ph),
		Role:         models.RoleUser,
	}
	if err := h.users.Create(r.Context(), &u); err != nil {
		if appErr.IsCode(err, appErr.CodeConflict) {
			writeError(w, appErr.New(appErr.CodeConflict, "email already registered"))
			return
		}
		writeError(w, err)
		return
	}

	access, err := h.issueSession(w, r, &u)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: types.AuthResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		AccessToken: access,
	}})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	// A generic failure for both unknown email and wrong password avoids
	// account enumeration.
	invalid := appErr.New(appErr.CodeUnauthorized, "invalid email or password")

	var u models.User
	if err := h.users.GetByEmail(r.Context(), req.Email, &u); err != nil {
		writeError(w, invalid)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		writeError(w, invalid)
		return
	}

	access, err := h.issueSession(w, r, &u)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.AuthResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		AccessToken: access,
	}})
}

// Refresh exchanges a valid refresh cookie for a new access token. The stored
// refresh token is not rotated here; rotation happens on register, login and
// logout only.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookie)
	if err != nil || cookie.Value == "" {
		writeError(w, appErr.New(appErr.CodeUnauthorized, "missing refresh token"))
		return
	}

	forbidden := appErr.New(appErr.CodeForbidden, "refresh token rejected")

	// Revocation check: the presented token must equal the stored value.
	var u models.User
	if err := h.users.GetByRefreshToken(r.Context(), cookie.Value, &u); err != nil {
		writeError(w, forbidden)
		return
	}

	claims, err := h.issuer.ParseRefreshToken(cookie.Value)
	if err != nil {
		writeError(w, forbidden)
		return
	}
	if claims.Subject != u.ID.String() {
		writeError(w, forbidden)
		return
	}

	access, err := h.issuer.IssueAccessToken(u.ID.String(), u.Role)
	if err != nil {
		writeError(w, appErr.Wrap(err, appErr.CodeInternal, "sign access token failed"))
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{
		"accessToken": access,
	}})
}

// Logout revokes the stored refresh token and clears the cookie. Calling it
// without a cookie is a no-op success.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookie)
	if err != nil || cookie.Value == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var u models.User
	if err := h.users.GetByRefreshToken(r.Context(), cookie.Value, &u); err == nil {
		if err := h.users.SetRefreshToken(r.Context(), u.ID, ""); err != nil {
			writeError(w, err)
			return
		}
	}

	h.clearRefreshCookie(w)
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{
		"message": "logged out",
	}})
}
