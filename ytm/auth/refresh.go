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

	"github.com/goccy/go-json"

	"github.com/xeptore/ytmusic/config"
)

var (
	// ErrUnauthorizedClient: the refresh token does not belong to the oauth
	// client. Fatal; a new device-flow login is required.
	ErrUnauthorizedClient = errors.New("refresh token and oauth client mismatch")
	// ErrBadOAuthClient: the oauth client credentials are wrong or the API
	// is disabled for the project. Fatal.
	ErrBadOAuthClient = errors.New("oauth client credentials are invalid")
)

// OAuthError is the generic token-endpoint failure with the server-provided
// error code and description.
type OAuthError struct {
	Code        string
	Description string
}

func (e *OAuthError) Error() string {
	if e.Description == "" {
		return "oauth error: " + e.Code
	}

	return fmt.Sprintf("oauth error %s: %s", e.Code, e.Description)
}

func refreshAccessToken(ctx context.Context, oc config.OAuthClient, current Token) (t *Token, err error) {
	reqURL := oc.TokenURL
	if reqURL == "" {
		reqURL = oauthTokenURL
	}

	reqParams := make(url.Values, 4)
	reqParams.Add("client_id", oc.ID)
	reqParams.Add("client_secret", oc.Secret)
	reqParams.Add("grant_type", refreshGrantType)
	reqParams.Add("refresh_token", current.RefreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(reqParams.Encode()))
	if nil != err {
		return nil, fmt.Errorf("create refresh token request: %w", err)
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("User-Agent", UserAgent)

	client := http.Client{Timeout: 10 * time.Second} //nolint:exhaustruct
	resp, err := client.Do(req)
	if nil != err {
		return nil, fmt.Errorf("issue refresh token request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close response body: %v", closeErr))
		}
	}()

	respBytes, err := io.ReadAll(resp.Body)
	if nil != err {
		return nil, fmt.Errorf("read refresh token response body: %w", err)
	}

	switch code := resp.StatusCode; code {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusBadRequest, http.StatusForbidden:
		var respBody struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		if err := json.Unmarshal(respBytes, &respBody); nil != err {
			return nil, fmt.Errorf("decode %d refresh response body: %v", code, err)
		}
		switch respBody.Error {
		case "unauthorized_client":
			return nil, ErrUnauthorizedClient
		case "invalid_client":
			return nil, ErrBadOAuthClient
		default:
			return nil, &OAuthError{Code: respBody.Error, Description: respBody.ErrorDescription}
		}
	default:
		return nil, fmt.Errorf("unexpected refresh status code %d with body: %s", code, string(respBytes))
	}

	var respBody struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(respBytes, &respBody); nil != err {
		return nil, fmt.Errorf("decode 200 refresh response body: %v", err)
	}

	// The absolute expiry is anchored at receive time, after the network
	// round-trip.
	refreshed := current
	refreshed.AccessToken = respBody.AccessToken
	refreshed.ExpiresAt = time.Now().Unix() + respBody.ExpiresIn

	return &refreshed, nil
}
