// Package auth classifies caller-supplied credentials into one of the four
// auth modes and computes the per-request authorization headers for each.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/xeptore/ytmusic/config"
	"github.com/xeptore/ytmusic/ytm/fs"
)

const (
	Origin    = "https://music.youtube.com"
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0"
)

var (
	ErrInvalidCredentials = errors.New("invalid auth credentials")
	ErrMissingSAPISID     = errors.New("cookie is missing the required __Secure-3PAPISID value")
)

type Kind int

const (
	KindUnauthenticated Kind = iota
	KindBrowserCookie
	KindOAuthManaged
	KindOAuthOpaque
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindBrowserCookie:
		return "browser_cookie"
	case KindOAuthManaged:
		return "oauth_managed"
	case KindOAuthOpaque:
		return "oauth_opaque"
	default:
		panic("unexpected auth kind")
	}
}

// Credentials is the resolved auth state of one client. Exactly one variant
// is active per instance.
type Credentials struct {
	kind    Kind
	headers map[string]string
	token   *RefreshingToken
}

// Resolve classifies a raw credential blob. The blob is a JSON object that is
// either a stored OAuth token, a map of request headers copied from a
// logged-in browser, or a pre-built Bearer authorization header. An empty
// blob resolves to unauthenticated access.
func Resolve(blob []byte, oc *config.OAuthClient, cacheFile fs.TokenFile) (*Credentials, error) {
	if len(blob) == 0 {
		return &Credentials{kind: KindUnauthenticated, headers: nil, token: nil}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(blob, &raw); nil != err {
		return nil, fmt.Errorf("decode credentials blob: %w", ErrInvalidCredentials)
	}
	if len(raw) == 0 {
		return &Credentials{kind: KindUnauthenticated, headers: nil, token: nil}, nil
	}

	if isOAuthToken(raw) {
		var content fs.TokenFileContent
		if err := json.Unmarshal(blob, &content); nil != err {
			return nil, fmt.Errorf("decode oauth token blob: %w", ErrInvalidCredentials)
		}
		if nil == oc {
			return nil, fmt.Errorf("oauth token requires an oauth client: %w", ErrInvalidCredentials)
		}
		token := NewRefreshingToken(FromFileContent(&content), *oc, cacheFile)

		return &Credentials{kind: KindOAuthManaged, headers: nil, token: token}, nil
	}

	headers := lowercaseKeys(raw)

	if authz, ok := headers["authorization"]; ok && strings.HasPrefix(authz, "Bearer ") {
		return &Credentials{kind: KindOAuthOpaque, headers: headers, token: nil}, nil
	}

	if authz, ok := headers["authorization"]; ok && strings.Contains(authz, "SAPISIDHASH") {
		if _, err := sapisidFromCookie(headers["cookie"]); nil != err {
			return nil, err
		}

		return &Credentials{kind: KindBrowserCookie, headers: headers, token: nil}, nil
	}

	if cookie, ok := headers["cookie"]; ok && strings.Contains(cookie, "__Secure-3PAPISID") {
		return &Credentials{kind: KindBrowserCookie, headers: headers, token: nil}, nil
	}

	return nil, ErrInvalidCredentials
}

func (c *Credentials) Kind() Kind {
	return c.kind
}

func (c *Credentials) IsAuthenticated() bool {
	return c.kind != KindUnauthenticated
}

// Token exposes the managed token for lifecycle inspection. Nil unless the
// variant is OAuthManaged.
func (c *Credentials) Token() *RefreshingToken {
	return c.token
}

// Headers computes the full header set for one outgoing request. For browser
// cookies the SAPISIDHASH authorization is recomputed on every call since it
// embeds the current timestamp. For managed OAuth the access token read may
// trigger a transparent refresh.
func (c *Credentials) Headers(ctx context.Context, logger zerolog.Logger) (http.Header, error) {
	h := http.Header{}
	h.Set("User-Agent", UserAgent)
	h.Set("Accept", "*/*")
	h.Set("Content-Type", "application/json")
	h.Set("Origin", Origin)

	switch c.kind {
	case KindUnauthenticated:
	case KindBrowserCookie:
		for k, v := range c.headers {
			if skippedBrowserHeaders[k] {
				continue
			}
			h.Set(k, encodeHeaderValue(v))
		}
		sapisid, err := sapisidFromCookie(c.headers["cookie"])
		if nil != err {
			return nil, err
		}
		h.Set("Authorization", SAPISIDHash(sapisid, Origin))
		h.Set("X-Origin", Origin)
	case KindOAuthManaged:
		accessToken, err := c.token.Access(ctx, logger)
		if nil != err {
			return nil, fmt.Errorf("read access token: %w", err)
		}
		h.Set("Authorization", c.token.TokenType()+" "+accessToken)
		h.Set("X-Origin", Origin)
	case KindOAuthOpaque:
		h.Set("Authorization", c.headers["authorization"])
	default:
		panic("unexpected auth kind: " + c.kind.String())
	}

	return h, nil
}

// Hop-by-hop and length headers from the copied browser request must not be
// replayed.
var skippedBrowserHeaders = map[string]bool{
	"authorization":   true,
	"content-length":  true,
	"host":            true,
	"accept-encoding": true,
}

func isOAuthToken(raw map[string]any) bool {
	for _, k := range []string{"access_token", "refresh_token", "scope", "token_type"} {
		if _, ok := raw[k]; !ok {
			return false
		}
	}
	_, hasAt := raw["expires_at"]
	_, hasIn := raw["expires_in"]

	return hasAt || hasIn
}

func lowercaseKeys(raw map[string]any) map[string]string {
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[strings.ToLower(k)] = s
		}
	}

	return out
}
