// Package auth mints and verifies the access/refresh JWT pair. Access tokens
// carry identity and role for a single request; refresh tokens carry only the
// subject and are additionally checked against the value stored on the user
// record.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

// AccessClaims are the signed claims of a short-lived access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// RefreshClaims are the signed claims of a refresh token.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// Issuer signs and parses both token kinds. It is pure: construction fails
// only at startup when a secret is missing, never at runtime.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewIssuer(accessSecret, refreshSecret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken mints a short-lived token carrying the user id and role.
func (i *Issuer) IssueAccessToken(userID, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.accessTTL)),
		},
		Role: role,
	})
	return token.SignedString(i.accessSecret)
}

// IssueRefreshToken mints a longer-lived token carrying only the user id.
// The jti claim makes every mint unique: timestamps alone truncate to whole
// seconds, and the stored-token rotation on login depends on each new token
// differing from the previous one.
func (i *Issuer) IssueRefreshToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.refreshTTL)),
		},
	})
	return token.SignedString(i.refreshSecret)
}

// ParseAccessToken verifies signature and expiry and returns the claims.
func (i *Issuer) ParseAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.accessSecret, nil
	})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeUnauthorized, "invalid access token")
	}
	if !token.Valid {
		return nil, appErr.New(appErr.CodeUnauthorized, "invalid access token")
	}
	return claims, nil
}

// ParseRefreshToken verifies signature and expiry and returns the claims.
func (i *Issuer) ParseRefreshToken(tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.refreshSecret, nil
	})
	if err != nil {
		return nil, appErr.Wrap(err, appErr.CodeForbidden, "invalid refresh token")
	}
	if !token.Valid {
		return nil, appErr.New(appErr.CodeForbidden, "invalid refresh token")
	}
	return claims, nil
}
