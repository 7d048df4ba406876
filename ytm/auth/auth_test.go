package auth_test

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/ytmusic/config"
	"github.com/xeptore/ytmusic/log"
	"github.com/xeptore/ytmusic/ytm/auth"
)

func TestResolveEmptyBlob(t *testing.T) {
	t.Parallel()

	creds, err := auth.Resolve(nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, auth.KindUnauthenticated, creds.Kind())
	assert.False(t, creds.IsAuthenticated())

	creds, err = auth.Resolve([]byte(`{}`), nil, "")
	require.NoError(t, err)
	assert.Equal(t, auth.KindUnauthenticated, creds.Kind())
}

func TestResolveOAuthToken(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"access_token": "ya29.abcdef",
		"refresh_token": "1//xyz",
		"scope": "https://www.googleapis.com/auth/youtube",
		"token_type": "Bearer",
		"expires_at": 1893456000
	}`)

	creds, err := auth.Resolve(blob, &config.OAuthClient{ID: "id", Secret: "secret"}, "")
	require.NoError(t, err)
	assert.Equal(t, auth.KindOAuthManaged, creds.Kind())
	require.NotNil(t, creds.Token())

	_, err = auth.Resolve(blob, nil, "")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestResolveOpaqueBearer(t *testing.T) {
	t.Parallel()

	creds, err := auth.Resolve([]byte(`{"Authorization": "Bearer opaque-token"}`), nil, "")
	require.NoError(t, err)
	assert.Equal(t, auth.KindOAuthOpaque, creds.Kind())

	headers, err := creds.Headers(context.Background(), log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "Bearer opaque-token", headers.Get("Authorization"))
}

func TestResolveBrowserCookie(t *testing.T) {
	t.Parallel()

	creds, err := auth.Resolve([]byte(`{
		"Cookie": "VISITOR_INFO1_LIVE=x; __Secure-3PAPISID=abc123/def; PREF=f1",
		"X-Goog-AuthUser": "0"
	}`), nil, "")
	require.NoError(t, err)
	assert.Equal(t, auth.KindBrowserCookie, creds.Kind())
}

func TestResolveInvalidBlob(t *testing.T) {
	t.Parallel()

	_, err := auth.Resolve([]byte(`{"X-Whatever": "1"}`), nil, "")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = auth.Resolve([]byte(`not json`), nil, "")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestBrowserCookieMissingSAPISID(t *testing.T) {
	t.Parallel()

	_, err := auth.Resolve([]byte(`{"Authorization": "SAPISIDHASH 1_deadbeef", "Cookie": "PREF=f1"}`), nil, "")
	require.ErrorIs(t, err, auth.ErrMissingSAPISID)
}

func TestSAPISIDHashHeader(t *testing.T) {
	t.Parallel()

	const sapisid = "abc123/def"
	creds, err := auth.Resolve([]byte(`{"Cookie": "__Secure-3PAPISID=`+sapisid+`"}`), nil, "")
	require.NoError(t, err)

	before := time.Now().Unix()
	headers, err := creds.Headers(context.Background(), log.Discard())
	require.NoError(t, err)
	after := time.Now().Unix()

	authz := headers.Get("Authorization")
	require.True(t, strings.HasPrefix(authz, "SAPISIDHASH "), authz)

	ts, digest, found := strings.Cut(strings.TrimPrefix(authz, "SAPISIDHASH "), "_")
	require.True(t, found)

	tsInt, err := strconv.ParseInt(ts, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tsInt, before)
	assert.LessOrEqual(t, tsInt, after)

	sum := sha1.Sum([]byte(ts + " " + sapisid + " " + auth.Origin)) //nolint:gosec
	assert.Equal(t, hex.EncodeToString(sum[:]), digest)
}

func TestBrowserHeadersPassThrough(t *testing.T) {
	t.Parallel()

	creds, err := auth.Resolve([]byte(`{
		"Cookie": "__Secure-3PAPISID=abc",
		"X-Goog-AuthUser": "1",
		"Content-Length": "42"
	}`), nil, "")
	require.NoError(t, err)

	headers, err := creds.Headers(context.Background(), log.Discard())
	require.NoError(t, err)
	assert.Equal(t, "1", headers.Get("X-Goog-AuthUser"))
	assert.Empty(t, headers.Get("Content-Length"))
	assert.Equal(t, auth.Origin, headers.Get("X-Origin"))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
}

func TestTokenExpiryHorizon(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()

	fresh := auth.Token{AccessToken: "a", ExpiresAt: now + 3600}
	assert.False(t, fresh.IsExpiring())

	closeToExpiry := auth.Token{AccessToken: "a", ExpiresAt: now + 30}
	assert.True(t, closeToExpiry.IsExpiring())

	expired := auth.Token{AccessToken: "a", ExpiresAt: now}
	assert.True(t, expired.IsExpiring())
}
