package ytm

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

const (
	ScopeLibrary = "library"
	ScopeUploads = "uploads"
)

// filterParams maps each allowed search filter to its request-params
// fragment. The fragments are opaque server constants.
var filterParams = map[string]string{
	"songs":               "II",
	"videos":              "IQ",
	"albums":              "IY",
	"artists":             "Ig",
	"playlists":           "Io",
	"community_playlists": "EA",
	"featured_playlists":  "Dg",
	"profiles":            "JY",
	"podcasts":            "JQ",
	"episodes":            "JI",
	"uploads":             "",
}

// filterResultType maps a filter to the row type it implies, so shelf rows
// under a filtered search need no per-row typing heuristics.
var filterResultTypes = map[string]types.ResultType{
	"songs":               types.ResultTypeSong,
	"videos":              types.ResultTypeVideo,
	"albums":              types.ResultTypeAlbum,
	"artists":             types.ResultTypeArtist,
	"playlists":           types.ResultTypePlaylist,
	"community_playlists": types.ResultTypePlaylist,
	"featured_playlists":  types.ResultTypePlaylist,
	"profiles":            types.ResultTypeProfile,
	"podcasts":            types.ResultTypePodcast,
	"episodes":            types.ResultTypeEpisode,
}

type SearchOptions struct {
	// Filter restricts results to one kind. Empty searches everything.
	Filter string
	// Scope is "library" or "uploads". Empty searches the public catalog.
	Scope string
	// Limit bounds the result count for filtered searches. Zero means 20.
	Limit int
	// IgnoreSpelling disables the server's did-you-mean correction.
	IgnoreSpelling bool
}

// Search queries the catalog, the account's library, or its uploads. The
// filter/scope matrix is validated before any network work.
func (c *Client) Search(ctx context.Context, logger zerolog.Logger, query string, opts SearchOptions) ([]types.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &UserError{Msg: "search query must not be empty"}
	}
	if err := validateSearchMatrix(opts.Filter, opts.Scope); nil != err {
		return nil, err
	}
	if opts.Scope != "" || opts.Filter == "uploads" {
		if err := c.checkAuth(); nil != err {
			return nil, err
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}

	body := map[string]any{"query": query}
	if params := searchParams(opts.Filter, opts.Scope, opts.IgnoreSpelling); params != "" {
		body["params"] = params
	}

	response, err := c.sendRequest(ctx, logger, "search", body, "")
	if nil != err {
		return nil, err
	}

	defaultType := filterResultTypes[opts.Filter]
	if opts.Scope == ScopeUploads {
		defaultType = ""
	}

	contents := nav.Optional(response, "contents", "tabbedSearchResultsRenderer",
		"tabs", 0, "tabRenderer", "content", "sectionListRenderer", "contents")
	if !contents.Exists() {
		contents = nav.Optional(response, "contents", "sectionListRenderer", "contents")
	}

	var results []types.SearchResult
	for _, section := range contents.Array() {
		if card := nav.Optional(section, parse.CardShelf); card.Exists() {
			if top := parse.TopResult(card); nil != top {
				results = append(results, *top)
			}
			results = append(results,
				parse.SearchResults(nav.OptionalList(card, "contents"), "Top result", "")...)

			continue
		}

		shelf := nav.Optional(section, parse.Shelf)
		if !shelf.Exists() {
			continue
		}
		category := nav.OptionalString(shelf, "title", "runs", 0, "text")
		shelfType := defaultType
		results = append(results,
			parse.SearchResults(nav.OptionalList(shelf, "contents"), category, shelfType)...)

		// Only single-kind shelves page; the mixed page has no cursor.
		if shelfType != "" && len(results) < limit {
			more, err := getContinuations(ctx, shelf, musicShelfContinuation, limit-len(results),
				func(ctx context.Context, additionalParams string) (gjson.Result, error) {
					return c.sendRequest(ctx, logger, "search", body, additionalParams)
				},
				func(items []gjson.Result) []types.SearchResult {
					return parse.SearchResults(items, category, shelfType)
				}, "")
			if nil != err {
				return nil, err
			}
			results = append(results, more...)
		}
	}

	return results, nil
}

func validateSearchMatrix(filter, scope string) error {
	if filter != "" {
		if _, ok := filterParams[filter]; !ok {
			return userErrorf("invalid filter %q; allowed filters: %s", filter, allowedFilters())
		}
	}
	switch scope {
	case "", ScopeLibrary, ScopeUploads:
	default:
		return userErrorf("invalid scope %q; allowed scopes: library, uploads", scope)
	}
	if scope == ScopeUploads && filter != "" {
		return &UserError{Msg: "no filter can be set when searching uploads; use the filter on the returned results instead"}
	}
	if scope == ScopeLibrary && (filter == "community_playlists" || filter == "featured_playlists") {
		return userErrorf("filter %q is not supported in the library scope", filter)
	}

	return nil
}

func allowedFilters() string {
	filters := lo.Keys(filterParams)
	sort.Strings(filters)

	return strings.Join(filters, ", ")
}

// searchParams renders the opaque params blob selecting filter, scope, and
// spelling behavior. The fragments are fixed server constants observed from
// the web player; they are concatenated, not encoded.
func searchParams(filter, scope string, ignoreSpelling bool) string {
	if filter == "" && scope == "" && !ignoreSpelling {
		return ""
	}

	const filteredPrefix = "EgWKAQ"

	// The uploads filter is its own scope on the wire.
	if filter == "uploads" {
		return "agIYAw%3D%3D"
	}

	switch scope {
	case ScopeUploads:
		return "agIYAw%3D%3D"
	case ScopeLibrary:
		if filter == "" {
			return "agIYBA%3D%3D"
		}

		return filteredPrefix + filterParams[filter] + "AWoKEAUQCRADEAoYBA%3D%3D"
	}

	switch filter {
	case "":
		// Spelling-only: no filter restriction, corrections suppressed.
		return "EhGKAQ4IARABGAEgASgAOAFAAUICCAE%3D"
	case "playlists":
		if ignoreSpelling {
			return "Eg-KAQwIABAAGAAgACgBMABCAggBagoQBBADEAkQBRAK"
		}

		return "Eg-KAQwIABAAGAAgACgBMABqChAEEAMQCRAFEAo%3D"
	case "community_playlists", "featured_playlists":
		if ignoreSpelling {
			return "EgeKAQQoA" + filterParams[filter] + "BQgIIAWoMEA4QChADEAQQCRAF"
		}

		return "EgeKAQQoA" + filterParams[filter] + "BagwQDhAKEAMQBBAJEAU%3D"
	}

	if ignoreSpelling {
		return filteredPrefix + filterParams[filter] + "AUICCAFqDBAOEAoQAxAEEAkQBQ%3D%3D"
	}

	return filteredPrefix + filterParams[filter] + "AWoMEA4QChADEAQQCRAF"
}

// SearchSuggestions returns typeahead completions for a partial query.
func (c *Client) SearchSuggestions(ctx context.Context, logger zerolog.Logger, query string) ([]types.SearchSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &UserError{Msg: "search query must not be empty"}
	}

	response, err := c.sendRequest(ctx, logger, "music/get_search_suggestions",
		map[string]any{"input": query}, "")
	if nil != err {
		return nil, err
	}

	return parse.SearchSuggestions(response), nil
}

// RemoveSearchSuggestions deletes entries from the account's search history.
// Tokens come from suggestions marked FromHistory.
func (c *Client) RemoveSearchSuggestions(ctx context.Context, logger zerolog.Logger, feedbackTokens []string) error {
	if err := c.checkAuth(); nil != err {
		return err
	}
	if len(feedbackTokens) == 0 {
		return &UserError{Msg: "no feedback tokens provided"}
	}

	_, err := c.sendRequest(ctx, logger, "feedback",
		map[string]any{"feedbackTokens": feedbackTokens}, "")

	return err
}
