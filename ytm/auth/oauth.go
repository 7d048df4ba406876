package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/xeptore/ytmusic/config"
	"github.com/xeptore/ytmusic/redact"
	"github.com/xeptore/ytmusic/ytm/fs"
)

const (
	oauthCodeURL  = "https://www.youtube.com/o/oauth2/device/code"
	oauthTokenURL = "https://oauth2.googleapis.com/token" //nolint:gosec
	oauthScope    = "https://www.googleapis.com/auth/youtube"

	deviceGrantType  = "http://oauth.net/grant_type/device/1.0"
	refreshGrantType = "refresh_token"

	// A token within this horizon of its absolute expiry is treated as
	// expiring and refreshed before use.
	expiryHorizon = 60 * time.Second
)

// Token is the OAuth credential as held in memory and on disk.
type Token struct {
	AccessToken  string
	RefreshToken string
	Scope        string
	TokenType    string
	ExpiresAt    int64
}

func (t Token) ExpiresIn() int64 {
	return t.ExpiresAt - time.Now().Unix()
}

func (t Token) IsExpiring() bool {
	return t.ExpiresIn() < int64(expiryHorizon/time.Second)
}

func (t Token) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("access_token", redact.String(t.AccessToken)).
		Str("refresh_token", redact.String(t.RefreshToken)).
		Str("token_type", t.TokenType).
		Int64("expires_at", t.ExpiresAt)
}

// FromFileContent builds a Token from the cache file layout. Files written
// by older versions may lack the absolute expiry; derive it from the
// relative one.
func FromFileContent(c *fs.TokenFileContent) Token {
	expiresAt := c.ExpiresAt
	if expiresAt == 0 {
		expiresAt = time.Now().Unix() + c.ExpiresIn
	}

	return Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		Scope:        c.Scope,
		TokenType:    c.TokenType,
		ExpiresAt:    expiresAt,
	}
}

func (t Token) toFileContent() fs.TokenFileContent {
	return fs.TokenFileContent{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		Scope:        t.Scope,
		TokenType:    t.TokenType,
		ExpiresAt:    t.ExpiresAt,
		ExpiresIn:    t.ExpiresIn(),
	}
}

// RefreshingToken wraps a Token with transparent refresh and write-through
// persistence. Every Access call observes a token outside the expiry horizon
// or fails. Concurrent callers share a single in-flight refresh.
type RefreshingToken struct {
	mu     sync.Mutex
	token  Token
	client config.OAuthClient
	file   fs.TokenFile
	flight singleflight.Group
}

func NewRefreshingToken(token Token, client config.OAuthClient, file fs.TokenFile) *RefreshingToken {
	return &RefreshingToken{
		mu:     sync.Mutex{},
		token:  token,
		client: client,
		file:   file,
		flight: singleflight.Group{},
	}
}

// LoadRefreshingToken reads the bound cache file and wraps its token.
func LoadRefreshingToken(client config.OAuthClient, file fs.TokenFile) (*RefreshingToken, error) {
	content, err := file.Read()
	if nil != err {
		return nil, fmt.Errorf("read token cache: %w", err)
	}

	return NewRefreshingToken(FromFileContent(content), client, file), nil
}

func (rt *RefreshingToken) Snapshot() Token {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	return rt.token
}

func (rt *RefreshingToken) TokenType() string {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.token.TokenType == "" {
		return "Bearer"
	}

	return rt.token.TokenType
}

// Access returns a valid access token, refreshing and persisting first when
// the held one is within the expiry horizon. The stored token is not mutated
// when the refresh fails.
func (rt *RefreshingToken) Access(ctx context.Context, logger zerolog.Logger) (string, error) {
	rt.mu.Lock()
	current := rt.token
	rt.mu.Unlock()

	if !current.IsExpiring() {
		return current.AccessToken, nil
	}

	refreshed, err, _ := rt.flight.Do("refresh", func() (any, error) {
		logger.Debug().Msg("Access token is expiring, refreshing")
		newToken, err := refreshAccessToken(ctx, rt.client, current)
		if nil != err {
			return nil, err
		}

		rt.mu.Lock()
		rt.token = *newToken
		rt.mu.Unlock()

		if rt.file != "" {
			if err := rt.file.Write(newToken.toFileContent()); nil != err {
				logger.Error().Err(err).Msg("Failed to write refreshed token to cache file")
				return nil, fmt.Errorf("write refreshed token to cache file: %v", err)
			}
		}

		return newToken, nil
	})
	if nil != err {
		return "", err
	}

	return refreshed.(*Token).AccessToken, nil
}
