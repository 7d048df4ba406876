package ytm

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/must"
	"github.com/xeptore/ytmusic/nav"
)

// Continuation key names the server uses per list kind. The mapping is fixed
// at design time; a wrong key silently yields zero pages.
const (
	musicShelfContinuation         = "musicShelfContinuation"
	musicPlaylistShelfContinuation = "musicPlaylistShelfContinuation"
	gridContinuation               = "gridContinuation"
	playlistPanelContinuation      = "playlistPanelContinuation"
	sectionListContinuation        = "sectionListContinuation"
)

type requestFunc func(ctx context.Context, additionalParams string) (gjson.Result, error)

// getContinuations drives paginated fetches through the opaque server
// cursors until limit items are accumulated or the list is exhausted.
// limit <= 0 means no limit. Items are appended in server order.
func getContinuations[T any](
	ctx context.Context,
	results gjson.Result,
	ctype string,
	limit int,
	request requestFunc,
	parse func(items []gjson.Result) []T,
	ctokenPath string,
) ([]T, error) {
	must.Be(ctype != "", "continuation type must be set")

	var out []T
	for nav.Optional(results, "continuations").Exists() && (limit <= 0 || len(out) < limit) {
		params := continuationParams(results, ctokenPath)
		if params == "" {
			break
		}

		response, err := request(ctx, params)
		if nil != err {
			return nil, err
		}

		contents := nav.Optional(response, "continuationContents", ctype)
		if !contents.Exists() {
			break
		}
		results = contents

		parsed := parseContinuationContents(contents, parse)
		if len(parsed) == 0 {
			break
		}
		out = append(out, parsed...)
	}

	return out, nil
}

// getValidatedContinuations additionally retries a page up to 3 times when
// the server returns fewer items than expected, keeping the longest parse
// among attempts. The library songs list is known to intermittently return
// short pages.
func getValidatedContinuations[T any](
	ctx context.Context,
	results gjson.Result,
	ctype string,
	limit int,
	perPage int,
	request requestFunc,
	parse func(items []gjson.Result) []T,
) ([]T, error) {
	var out []T
	for nav.Optional(results, "continuations").Exists() && (limit <= 0 || len(out) < limit) {
		params := continuationParams(results, "")
		if params == "" {
			break
		}

		expected := perPage
		if limit > 0 && limit-len(out) < expected {
			expected = limit - len(out)
		}

		var (
			best         []T
			bestContents gjson.Result
		)
		backoff := retry.WithMaxRetries(2, retry.NewConstant(5*time.Millisecond))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			response, err := request(ctx, params)
			if nil != err {
				return err
			}

			contents := nav.Optional(response, "continuationContents", ctype)
			if !contents.Exists() {
				return nil
			}

			parsed := parseContinuationContents(contents, parse)
			if len(parsed) > len(best) {
				best = parsed
				bestContents = contents
			}
			if len(parsed) < expected {
				return retry.RetryableError(errShortContinuationPage)
			}

			return nil
		})
		if nil != err && !errors.Is(err, errShortContinuationPage) {
			return nil, err
		}

		if !bestContents.Exists() || len(best) == 0 {
			break
		}
		results = bestContents
		out = append(out, best...)
	}

	return out, nil
}

var errShortContinuationPage = errors.New("continuation page returned fewer items than expected")

// continuationParams extracts the single-use cursor from continuations[0]
// and renders it as the query-string suffix of the next request. ctokenPath
// selects between the next and reload cursor variants ("" or "Reload").
func continuationParams(results gjson.Result, ctokenPath string) string {
	token := nav.OptionalString(results, "continuations", 0, "next"+ctokenPath+"ContinuationData", "continuation")
	if token == "" {
		return ""
	}

	escaped := url.QueryEscape(token)

	return "&ctoken=" + escaped + "&continuation=" + escaped
}

// reloadContinuationParams handles lists whose first page is addressed by a
// reload cursor (e.g. the liked songs playlist under some experiments).
func reloadContinuationParams(results gjson.Result) string {
	token := nav.OptionalString(results, "continuations", 0, "reloadContinuationData", "continuation")
	if token == "" {
		return ""
	}

	escaped := url.QueryEscape(token)

	return "&ctoken=" + escaped + "&continuation=" + escaped
}

func parseContinuationContents[T any](contents gjson.Result, parse func(items []gjson.Result) []T) []T {
	if items := nav.OptionalList(contents, "contents"); len(items) > 0 {
		return parse(items)
	}
	if items := nav.OptionalList(contents, "items"); len(items) > 0 {
		return parse(items)
	}

	return nil
}
