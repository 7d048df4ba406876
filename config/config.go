package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTimeout = 30 * time.Second

	timeoutEnvKey           = "YTMUSIC_TIMEOUT"
	oauthClientIDEnvKey     = "YTMA_OAUTH_CLIENT_ID"
	oauthClientSecretEnvKey = "YTMA_OAUTH_CLIENT_SECRET" //nolint:gosec
)

// Client carries the per-client knobs: request locale, optional brand
// account, proxy selection, and the request timeout.
type Client struct {
	Language string            `yaml:"language"`
	Location string            `yaml:"location"`
	User     string            `yaml:"user"`
	Proxies  map[string]string `yaml:"proxies"`
	Timeout  time.Duration     `yaml:"timeout"`
}

func (c *Client) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("language", c.Language).
		Str("location", c.Location).
		Str("user", c.User).
		Int("proxies", len(c.Proxies)).
		Dur("timeout", c.Timeout)
}

func (c *Client) SetDefaults() {
	if c.Language == "" {
		c.Language = "en"
	}

	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
		if v, ok := os.LookupEnv(timeoutEnvKey); ok {
			secs, err := strconv.Atoi(v)
			if nil == err && secs > 0 {
				c.Timeout = time.Duration(secs) * time.Second
			}
		}
	}
}

func (c *Client) Validate() error {
	if !supportedLanguages[c.Language] {
		return fmt.Errorf("language %q is not supported", c.Language)
	}

	if c.Location != "" && !supportedLocations[c.Location] {
		return fmt.Errorf("location %q is not supported", c.Location)
	}

	return nil
}

// FromFile loads a client config from a YAML file, applying defaults and
// validation. Missing keys take defaults.
func FromFile(path string) (*Client, error) {
	content, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("read config file: %v", err)
	}

	var c Client
	if err := yaml.Unmarshal(content, &c); nil != err {
		return nil, fmt.Errorf("decode config file: %v", err)
	}

	c.SetDefaults()
	if err := c.Validate(); nil != err {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

// OAuthClient identifies the installed-application credentials used for the
// device flow and token refresh.
type OAuthClient struct {
	ID     string `yaml:"client_id"`
	Secret string `yaml:"client_secret"`

	// CodeURL and TokenURL override the Google endpoints, for proxies and
	// tests. Empty means the defaults.
	CodeURL  string `yaml:"code_url,omitempty"`
	TokenURL string `yaml:"token_url,omitempty"`
}

// OAuthClientFromEnv reads YTMA_OAUTH_CLIENT_ID and YTMA_OAUTH_CLIENT_SECRET,
// loading a .env file beforehand when one is present.
func OAuthClientFromEnv() (*OAuthClient, error) {
	if _, err := os.Stat(".env"); nil == err {
		if err := godotenv.Load(); nil != err {
			return nil, fmt.Errorf("load .env file: %v", err)
		}
	}

	id, ok := os.LookupEnv(oauthClientIDEnvKey)
	if !ok || id == "" {
		return nil, fmt.Errorf("make sure the %s environment variable is set", oauthClientIDEnvKey)
	}

	secret, ok := os.LookupEnv(oauthClientSecretEnvKey)
	if !ok || secret == "" {
		return nil, fmt.Errorf("make sure the %s environment variable is set", oauthClientSecretEnvKey)
	}

	return &OAuthClient{ID: id, Secret: secret}, nil
}
