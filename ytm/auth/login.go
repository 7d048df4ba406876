package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/xeptore/ytmusic/config"
	"github.com/xeptore/ytmusic/result"
	"github.com/xeptore/ytmusic/ytm/fs"
)

var (
	ErrLoginLinkExpired = errors.New("login link has expired")
	ErrLoginDenied      = errors.New("user denied the authorization request")
)

// LoginLink is what the user must act on to complete a device-flow login:
// open the URL (or scan its QR code) and confirm the user code.
type LoginLink struct {
	URL       string
	UserCode  string
	ExpiresIn time.Duration
}

// QR renders the login URL as a PNG for terminals and chat surfaces that can
// show images.
func (l *LoginLink) QR() ([]byte, error) {
	png, err := qrcode.Encode(l.URL, qrcode.Medium, 256)
	if nil != err {
		return nil, fmt.Errorf("encode login link QR code: %v", err)
	}

	return png, nil
}

// InitiateDeviceFlow requests a device code and starts polling the token
// endpoint in the background. The returned channel delivers exactly one
// result: the granted token (already persisted to file when one is bound) or
// the reason the flow ended.
func InitiateDeviceFlow(
	ctx context.Context,
	logger zerolog.Logger,
	oc config.OAuthClient,
	file fs.TokenFile,
) (*LoginLink, <-chan result.Of[Token], error) {
	res, err := issueDeviceCodeRequest(ctx, oc)
	if nil != err {
		return nil, nil, fmt.Errorf("issue device code request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, (time.Duration(res.ExpiresIn)+1)*time.Second)
	done := make(chan result.Of[Token])

	go func() {
		defer close(done)
		defer cancel()

		token, err := pollUntilGranted(ctx, oc, res)
		if nil != err {
			if errors.Is(err, context.DeadlineExceeded) {
				done <- result.Err[Token](ErrLoginLinkExpired)

				return
			}
			done <- result.Err[Token](err)

			return
		}

		if file != "" {
			if err := file.Write(token.toFileContent()); nil != err {
				logger.Error().Err(err).Msg("Failed to write granted token to cache file")
				done <- result.Err[Token](fmt.Errorf("write granted token to cache file: %v", err))

				return
			}
		}
		done <- result.Ok(token)
	}()

	return &LoginLink{
		URL:       res.VerificationURL + "?user_code=" + url.QueryEscape(res.UserCode),
		UserCode:  res.UserCode,
		ExpiresIn: time.Duration(res.ExpiresIn) * time.Second,
	}, done, nil
}

type deviceCodeResponse struct {
	DeviceCode      string
	UserCode        string
	VerificationURL string
	ExpiresIn       int
	Interval        int
}

func issueDeviceCodeRequest(ctx context.Context, oc config.OAuthClient) (out *deviceCodeResponse, err error) {
	reqURL := oc.CodeURL
	if reqURL == "" {
		reqURL = oauthCodeURL
	}

	reqParams := make(url.Values, 2)
	reqParams.Add("client_id", oc.ID)
	reqParams.Add("scope", oauthScope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(reqParams.Encode()))
	if nil != err {
		return nil, fmt.Errorf("create device code request: %w", err)
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("User-Agent", UserAgent)

	client := http.Client{Timeout: 10 * time.Second} //nolint:exhaustruct
	resp, err := client.Do(req)
	if nil != err {
		return nil, fmt.Errorf("issue device code request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close response body: %v", closeErr))
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if nil != err {
		return nil, fmt.Errorf("read device code response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected device code status %d with body: %s", resp.StatusCode, string(respBytes))
	}

	var respBody struct {
		DeviceCode      string `json:"device_code"`
		UserCode        string `json:"user_code"`
		VerificationURL string `json:"verification_url"`
		ExpiresIn       int    `json:"expires_in"`
		Interval        int    `json:"interval"`
	}
	if err := json.Unmarshal(respBytes, &respBody); nil != err {
		return nil, fmt.Errorf("decode device code response body: %v", err)
	}

	return &deviceCodeResponse{
		DeviceCode:      respBody.DeviceCode,
		UserCode:        respBody.UserCode,
		VerificationURL: respBody.VerificationURL,
		ExpiresIn:       respBody.ExpiresIn,
		Interval:        respBody.Interval,
	}, nil
}

var errAuthorizationPending = errors.New("authorization pending")

func pollUntilGranted(ctx context.Context, oc config.OAuthClient, res *deviceCodeResponse) (*Token, error) {
	interval := time.Duration(res.Interval) * time.Second
	if interval <= 0 {
		interval = 5 * time.Second
	}

	var token *Token
	op := func() error {
		t, err := pollToken(ctx, oc, res.DeviceCode)
		if nil != err {
			if errors.Is(err, errAuthorizationPending) {
				return err
			}

			return backoff.Permanent(err)
		}
		token = t

		return nil
	}

	bo := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)
	if err := backoff.Retry(op, bo); nil != err {
		if ctxErr := ctx.Err(); nil != ctxErr {
			return nil, ctxErr
		}

		return nil, err
	}

	return token, nil
}

func pollToken(ctx context.Context, oc config.OAuthClient, deviceCode string) (t *Token, err error) {
	reqURL := oc.TokenURL
	if reqURL == "" {
		reqURL = oauthTokenURL
	}

	reqParams := make(url.Values, 4)
	reqParams.Add("client_id", oc.ID)
	reqParams.Add("client_secret", oc.Secret)
	reqParams.Add("code", deviceCode)
	reqParams.Add("grant_type", deviceGrantType)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(reqParams.Encode()))
	if nil != err {
		return nil, fmt.Errorf("create token poll request: %w", err)
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("User-Agent", UserAgent)

	client := http.Client{Timeout: 10 * time.Second} //nolint:exhaustruct
	resp, err := client.Do(req)
	if nil != err {
		return nil, fmt.Errorf("issue token poll request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close response body: %v", closeErr))
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if nil != err {
		return nil, fmt.Errorf("read token poll response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var respBody struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		if err := json.Unmarshal(respBytes, &respBody); nil != err {
			return nil, fmt.Errorf("decode token poll %d response body: %v", resp.StatusCode, err)
		}
		switch respBody.Error {
		case "authorization_pending", "slow_down":
			return nil, errAuthorizationPending
		case "expired_token":
			return nil, ErrLoginLinkExpired
		case "access_denied":
			return nil, ErrLoginDenied
		default:
			return nil, &OAuthError{Code: respBody.Error, Description: respBody.ErrorDescription}
		}
	}

	var respBody struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		Scope        string `json:"scope"`
		TokenType    string `json:"token_type"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(respBytes, &respBody); nil != err {
		return nil, fmt.Errorf("decode token poll 200 response body: %v", err)
	}

	return &Token{
		AccessToken:  respBody.AccessToken,
		RefreshToken: respBody.RefreshToken,
		Scope:        respBody.Scope,
		TokenType:    respBody.TokenType,
		ExpiresAt:    time.Now().Unix() + respBody.ExpiresIn,
	}, nil
}
