package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErr "github.com/portfolio-studio/backend/pkg/errors"
)

func newTestIssuer() *Issuer {
	return NewIssuer([]byte("access-secret"), []byte("refresh-secret"), 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	i := newTestIssuer()

	tok, err := i.IssueAccessToken("user-1", "admin")
	require.NoError(t, err)

	claims, err := i.ParseAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "admin", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	i := newTestIssuer()

	tok, err := i.IssueRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := i.ParseRefreshToken(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	i := newTestIssuer()

	access, err := i.IssueAccessToken("user-1", "user")
	require.NoError(t, err)
	refresh, err := i.IssueRefreshToken("user-1")
	require.NoError(t, err)

	_, err = i.ParseRefreshToken(access)
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeForbidden))

	_, err = i.ParseAccessToken(refresh)
	require.Error(t, err)
	require.True(t, appErr.IsCode(err, appErr.CodeUnauthorized))
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	i := NewIssuer([]byte("access-secret"), []byte("refresh-secret"), -time.Minute, time.Hour)

	tok, err := i.IssueAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = i.ParseAccessToken(tok)
	require.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	i := newTestIssuer()
	other := NewIssuer([]byte("different"), []byte("different"), time.Minute, time.Hour)

	tok, err := other.IssueAccessToken("user-1", "admin")
	require.NoError(t, err)

	_, err = i.ParseAccessToken(tok)
	require.Error(t, err)
}

func TestRefreshTokensAreUniquePerMint(t *testing.T) {
	i := newTestIssuer()

	// Back-to-back mints land inside the same wall-clock second, so the
	// timestamp claims alone cannot distinguish them. The jti must.
	t1, err := i.IssueRefreshToken("user-1")
	require.NoError(t, err)
	t2, err := i.IssueRefreshToken("user-1")
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)

	c1, err := i.ParseRefreshToken(t1)
	require.NoError(t, err)
	c2, err := i.ParseRefreshToken(t2)
	require.NoError(t, err)
	require.NotEmpty(t, c1.ID)
	require.NotEqual(t, c1.ID, c2.ID)
}
