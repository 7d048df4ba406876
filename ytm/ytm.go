// Package ytm is a typed client for the music service's internal browse API,
// the same surface the first-party web player drives. It supports anonymous
// catalog access, browser-cookie authentication, and managed OAuth tokens
// with transparent refresh.
package ytm

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/xeptore/ytmusic/cache"
	"github.com/xeptore/ytmusic/config"
	"github.com/xeptore/ytmusic/ytm/auth"
	"github.com/xeptore/ytmusic/ytm/fs"
)

const (
	domain  = "https://music.youtube.com"
	baseURL = domain + "/youtubei/v1/"

	clientName = "WEB_REMIX"
)

type Client struct {
	conf     config.Client
	creds    *auth.Credentials
	http     *http.Client
	cache    *cache.Cache
	envelope map[string]any
	base     string
}

// Options configures a client. Credentials come from AuthBlob or AuthFile
// (browser headers, a stored OAuth token, or a prebuilt Bearer header); both
// empty means anonymous browse/search access. OAuthClient and TokenCache
// apply only to managed OAuth tokens.
type Options struct {
	Config      config.Client
	AuthBlob    []byte
	AuthFile    string
	OAuthClient *config.OAuthClient
	TokenCache  string

	// BaseURL overrides the service endpoint, for proxies and tests.
	BaseURL string
}

func NewClient(logger zerolog.Logger, opts Options) (*Client, error) {
	conf := opts.Config
	conf.SetDefaults()
	if err := conf.Validate(); nil != err {
		return nil, &UserError{Msg: err.Error()}
	}

	blob := opts.AuthBlob
	if len(blob) == 0 && opts.AuthFile != "" {
		content, err := os.ReadFile(opts.AuthFile)
		if nil != err {
			return nil, fmt.Errorf("read auth file: %v", err)
		}
		blob = content
	}

	creds, err := auth.Resolve(blob, opts.OAuthClient, fs.TokenFileFrom(opts.TokenCache))
	if nil != err {
		return nil, &UserError{Msg: "invalid auth credentials: " + err.Error()}
	}

	logger.Debug().
		Dict("config", conf.ToDict()).
		Str("auth", creds.Kind().String()).
		Msg("Creating client")

	base := opts.BaseURL
	if base == "" {
		base = baseURL
	}

	return &Client{
		conf:     conf,
		creds:    creds,
		http:     newHTTPClient(conf),
		cache:    cache.New(),
		envelope: contextEnvelope(conf),
		base:     base,
	}, nil
}

func (c *Client) AuthKind() auth.Kind {
	return c.creds.Kind()
}

// Token exposes the managed OAuth token, nil for other auth modes.
func (c *Client) Token() *auth.RefreshingToken {
	return c.creds.Token()
}

// contextEnvelope builds the persistent request-context template. It is
// constructed once and never mutated; sendRequest copies it into each body.
func contextEnvelope(conf config.Client) map[string]any {
	client := map[string]any{
		"clientName":    clientName,
		"clientVersion": "1." + time.Now().UTC().AddDate(0, 0, -1).Format("20060102") + ".01.00",
		"hl":            conf.Language,
	}
	if conf.Location != "" {
		client["gl"] = conf.Location
	}

	user := map[string]any{}
	if conf.User != "" {
		user["onBehalfOfUser"] = conf.User
	}

	return map[string]any{
		"client": client,
		"user":   user,
	}
}

func newHTTPClient(conf config.Client) *http.Client {
	transport := http.DefaultTransport
	if len(conf.Proxies) > 0 {
		proxies := make(map[string]*url.URL, len(conf.Proxies))
		for scheme, raw := range conf.Proxies {
			if u, err := url.Parse(raw); nil == err {
				proxies[scheme] = u
			}
		}
		transport = &http.Transport{ //nolint:exhaustruct
			Proxy: func(req *http.Request) (*url.URL, error) {
				if u, ok := proxies[req.URL.Scheme]; ok {
					return u, nil
				}

				return nil, nil
			},
		}
	}

	return &http.Client{ //nolint:exhaustruct
		Timeout:   conf.Timeout,
		Transport: transport,
	}
}

// checkAuth gates auth-required operations before any network work.
func (c *Client) checkAuth() error {
	if !c.creds.IsAuthenticated() {
		return &UserError{Msg: "please provide authentication before using this function"}
	}

	return nil
}

func (c *Client) checkBrowserAuth() error {
	if c.creds.Kind() != auth.KindBrowserCookie {
		return &UserError{Msg: "this function is only supported with browser-cookie authentication"}
	}

	return nil
}
