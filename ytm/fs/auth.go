package fs

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// TokenFile is the on-disk OAuth token cache. The layout matches the token
// endpoint response plus the derived absolute expiry.
type TokenFile string

func TokenFileFrom(path string) TokenFile {
	return TokenFile(path)
}

type TokenFileContent struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

func (f TokenFile) Read() (c *TokenFileContent, err error) {
	file, err := os.OpenFile(f.path(), os.O_RDONLY, 0o0600)
	if nil != err {
		if errors.Is(err, os.ErrNotExist) {
			return nil, os.ErrNotExist
		}

		return nil, fmt.Errorf("open token file: %v", err)
	}
	defer func() {
		if closeErr := file.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close token file: %v", closeErr))
		}
	}()

	if err := json.NewDecoder(file).Decode(&c); nil != err {
		return nil, fmt.Errorf("decode token file contents: %v", err)
	}

	return c, nil
}

// Write truncates and rewrites the cache with O_SYNC so a concurrent reader
// never observes a torn file longer than one write.
func (f TokenFile) Write(c TokenFileContent) (err error) {
	file, err := os.OpenFile(f.path(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC|os.O_SYNC, 0o0600)
	if nil != err {
		return fmt.Errorf("open token file: %v", err)
	}
	defer func() {
		if closeErr := file.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close token file: %v", closeErr))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); nil != err {
		return fmt.Errorf("encode token file: %v", err)
	}

	return nil
}

func (f TokenFile) path() string {
	return string(f)
}
