package httputil

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

func ReadResponseBody(resp *http.Response) ([]byte, error) {
	respBody, err := io.ReadAll(resp.Body)
	if nil != err {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected empty response body")
		}

		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	return respBody, nil
}

// ErrorMessage extracts the status and message of an API-level `error`
// object, which the service embeds in response documents even under a 2xx
// status line. Returns ok=false when the body carries no such object.
func ErrorMessage(body []byte) (status int64, message string, ok bool) {
	if !gjson.ValidBytes(body) {
		return 0, "", false
	}

	errObj := gjson.GetBytes(body, "error")
	if !errObj.IsObject() {
		return 0, "", false
	}

	return errObj.Get("code").Int(), errObj.Get("message").String(), true
}
