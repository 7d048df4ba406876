package ytm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/httputil"
)

// sendRequest dispatches one call to an API endpoint: merges the persistent
// context envelope into body, computes auth headers (which may transparently
// refresh a managed OAuth token), POSTs, and decodes. A top-level `error`
// object in the document surfaces as a *ServerError even under a 2xx status.
func (c *Client) sendRequest(
	ctx context.Context,
	logger zerolog.Logger,
	endpoint string,
	body map[string]any,
	additionalParams string,
) (res gjson.Result, err error) {
	merged := make(map[string]any, len(body)+1)
	maps.Copy(merged, body)
	merged["context"] = c.envelope

	payload, err := json.Marshal(merged)
	if nil != err {
		return gjson.Result{}, fmt.Errorf("encode request body: %v", err)
	}

	headers, err := c.creds.Headers(ctx, logger)
	if nil != err {
		return gjson.Result{}, fmt.Errorf("compute request headers: %w", err)
	}

	reqURL := c.base + endpoint + "?alt=json&prettyPrint=false" + additionalParams
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if nil != err {
		return gjson.Result{}, fmt.Errorf("create %s request: %v", endpoint, err)
	}
	req.Header = headers

	logger.Debug().Str("endpoint", endpoint).Msg("Sending request")

	resp, err := c.http.Do(req)
	if nil != err {
		return gjson.Result{}, fmt.Errorf("send %s request: %w", endpoint, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close response body: %v", closeErr))
		}
	}()

	respBytes, err := httputil.ReadResponseBody(resp)
	if nil != err {
		return gjson.Result{}, fmt.Errorf("read %s response body: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if _, message, ok := httputil.ErrorMessage(respBytes); ok {
			return gjson.Result{}, &ServerError{Status: resp.StatusCode, Message: message}
		}

		return gjson.Result{}, &ServerError{Status: resp.StatusCode, Message: ""}
	}

	if !gjson.ValidBytes(respBytes) {
		return gjson.Result{}, fmt.Errorf("invalid json in %s response body", endpoint)
	}

	if status, message, ok := httputil.ErrorMessage(respBytes); ok {
		return gjson.Result{}, &ServerError{Status: int(status), Message: message}
	}

	return gjson.ParseBytes(respBytes), nil
}

// sendGet is the plain-GET companion used for non-API fetches (e.g. player
// pages). It carries the credential headers but no context envelope.
func (c *Client) sendGet(ctx context.Context, logger zerolog.Logger, rawURL string) (b []byte, err error) {
	headers, err := c.creds.Headers(ctx, logger)
	if nil != err {
		return nil, fmt.Errorf("compute request headers: %w", err)
	}
	headers.Del("Content-Type")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if nil != err {
		return nil, fmt.Errorf("create GET request: %v", err)
	}
	req.Header = headers

	resp, err := c.http.Do(req)
	if nil != err {
		return nil, fmt.Errorf("send GET request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); nil != closeErr {
			err = errors.Join(err, fmt.Errorf("close response body: %v", closeErr))
		}
	}()

	respBytes, err := httputil.ReadResponseBody(resp)
	if nil != err {
		return nil, fmt.Errorf("read GET response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ServerError{Status: resp.StatusCode, Message: ""}
	}

	return respBytes, nil
}
