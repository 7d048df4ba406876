package ytm_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/ytmusic/ytm"
	"github.com/xeptore/ytmusic/ytm/types"
)

const browserBlob = `{"cookie": "__Secure-3PAPISID=abc123; OTHER=x"}`

// guardServer fails the test if any request reaches it. Operations whose
// input validation must short-circuit point their client here.
func guardServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s %s", r.Method, r.URL.Path)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(t *testing.T, baseURL string, authBlob string) *ytm.Client {
	t.Helper()

	client, err := ytm.NewClient(zerolog.Nop(), ytm.Options{ //nolint:exhaustruct
		AuthBlob: []byte(authBlob),
		BaseURL:  baseURL + "/",
	})
	require.NoError(t, err)

	return client
}

func TestSearchRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)
	anonymous := newTestClient(t, srv.URL, "")
	authed := newTestClient(t, srv.URL, browserBlob)

	tests := []struct {
		name    string
		client  *ytm.Client
		query   string
		opts    ytm.SearchOptions
		wantMsg string
	}{
		{
			name:    "empty query",
			client:  anonymous,
			query:   "  ",
			opts:    ytm.SearchOptions{},
			wantMsg: "search query must not be empty",
		},
		{
			name:    "unknown filter",
			client:  anonymous,
			query:   "oasis",
			opts:    ytm.SearchOptions{Filter: "tracks"},
			wantMsg: `invalid filter "tracks"`,
		},
		{
			name:    "unknown scope",
			client:  anonymous,
			query:   "oasis",
			opts:    ytm.SearchOptions{Scope: "everywhere"},
			wantMsg: `invalid scope "everywhere"`,
		},
		{
			name:    "uploads scope with filter",
			client:  authed,
			query:   "oasis",
			opts:    ytm.SearchOptions{Scope: ytm.ScopeUploads, Filter: "songs"},
			wantMsg: "no filter can be set when searching uploads",
		},
		{
			name:    "library scope with community playlists",
			client:  authed,
			query:   "oasis",
			opts:    ytm.SearchOptions{Scope: ytm.ScopeLibrary, Filter: "community_playlists"},
			wantMsg: "not supported in the library scope",
		},
		{
			name:    "uploads scope without auth",
			client:  anonymous,
			query:   "oasis",
			opts:    ytm.SearchOptions{Scope: ytm.ScopeUploads},
			wantMsg: "please provide authentication",
		},
		{
			name:    "uploads filter without auth",
			client:  anonymous,
			query:   "oasis",
			opts:    ytm.SearchOptions{Filter: "uploads"},
			wantMsg: "please provide authentication",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.client.Search(context.Background(), zerolog.Nop(), tt.query, tt.opts)
			require.Error(t, err)
			assert.True(t, ytm.IsUserError(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func searchSongRow(videoID, title string) string {
	return fmt.Sprintf(`{
		"musicResponsiveListItemRenderer": {
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": %q, "navigationEndpoint": {"watchEndpoint": {"videoId": %q}}}
				]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": "Oasis", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCoasis"}}},
					{"text": " • "},
					{"text": "3:05"}
				]}}}
			]
		}
	}`, title, videoID)
}

func TestSearchFilteredFollowsContinuations(t *testing.T) {
	t.Parallel()

	firstPage := fmt.Sprintf(`{
		"contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content": {
			"sectionListRenderer": {"contents": [{
				"musicShelfRenderer": {
					"title": {"runs": [{"text": "Songs"}]},
					"contents": [%s, %s],
					"continuations": [{"nextContinuationData": {"continuation": "page-two"}}]
				}
			}]}
		}}}]}}
	}`, searchSongRow("vid1", "Wonderwall"), searchSongRow("vid2", "Supersonic"))
	secondPage := fmt.Sprintf(`{
		"continuationContents": {"musicShelfContinuation": {
			"contents": [%s]
		}}
	}`, searchSongRow("vid3", "Columbia"))

	var bodies []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		bodies = append(bodies, body)

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("ctoken") == "" {
			fmt.Fprint(w, firstPage)
		} else {
			require.Equal(t, "page-two", r.URL.Query().Get("ctoken"))
			fmt.Fprint(w, secondPage)
		}
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL, "")
	results, err := client.Search(context.Background(), zerolog.Nop(), "oasis",
		ytm.SearchOptions{Filter: "songs"}) //nolint:exhaustruct
	require.NoError(t, err)
	require.Len(t, results, 3)

	titles := make([]string, 0, len(results))
	for _, r := range results {
		assert.Equal(t, types.ResultTypeSong, r.ResultType)
		assert.Equal(t, "Songs", r.Category)
		titles = append(titles, r.Title)
	}
	assert.Equal(t, []string{"Wonderwall", "Supersonic", "Columbia"}, titles)

	assert.Equal(t, "vid1", results[0].VideoID)
	require.Len(t, results[0].Artists, 1)
	assert.Equal(t, "Oasis", results[0].Artists[0].Name)
	assert.Equal(t, 185, results[0].DurationSeconds)

	require.Len(t, bodies, 2)
	assert.Equal(t, "oasis", bodies[0]["query"])
	assert.Equal(t, "EgWKAQIIAWoMEA4QChADEAQQCRAF", bodies[0]["params"])
}

func TestRateSongRejectsUnknownRating(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)
	client := newTestClient(t, srv.URL, browserBlob)

	err := client.RateSong(context.Background(), zerolog.Nop(), "vid1", types.LikeStatus("LOVE"))
	require.Error(t, err)
	assert.True(t, ytm.IsUserError(err))
	assert.Contains(t, err.Error(), `invalid rating "LOVE"`)
}

func TestWatchPlaylistRejectsInvalidSeeds(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)
	client := newTestClient(t, srv.URL, "")

	_, err := client.WatchPlaylist(context.Background(), zerolog.Nop(), ytm.WatchOptions{}) //nolint:exhaustruct
	require.Error(t, err)
	assert.True(t, ytm.IsUserError(err))
	assert.Contains(t, err.Error(), "either a video id or a playlist id")

	_, err = client.WatchPlaylist(context.Background(), zerolog.Nop(),
		ytm.WatchOptions{VideoID: "vid1", Shuffle: true}) //nolint:exhaustruct
	require.Error(t, err)
	assert.True(t, ytm.IsUserError(err))
	assert.Contains(t, err.Error(), "shuffle requires a playlist id")
}

func TestRemovePlaylistItemsRequiresSetVideoID(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)
	client := newTestClient(t, srv.URL, browserBlob)

	_, err := client.RemovePlaylistItems(context.Background(), zerolog.Nop(), "PLxyz",
		[]types.PlaylistItem{{VideoID: "vid1", SetVideoID: ""}})
	require.Error(t, err)
	assert.True(t, ytm.IsUserError(err))
	assert.Contains(t, err.Error(), "setVideoId is missing")

	_, err = client.RemovePlaylistItems(context.Background(), zerolog.Nop(), "PLxyz", nil)
	require.Error(t, err)
	assert.True(t, ytm.IsUserError(err))
}

func TestAuthKindFromBlob(t *testing.T) {
	t.Parallel()

	srv := guardServer(t)

	anonymous := newTestClient(t, srv.URL, "")
	assert.Equal(t, "unauthenticated", anonymous.AuthKind().String())

	browser := newTestClient(t, srv.URL, browserBlob)
	assert.Equal(t, "browser_cookie", browser.AuthKind().String())

	bearer := newTestClient(t, srv.URL, `{"authorization": "Bearer ya29.token"}`)
	assert.Equal(t, "oauth_opaque", bearer.AuthKind().String())

	_, err := ytm.NewClient(zerolog.Nop(), ytm.Options{ //nolint:exhaustruct
		AuthBlob: []byte(`{"x-goog-foo": "bar"}`),
	})
	require.Error(t, err)
	assert.True(t, ytm.IsUserError(err))
	assert.Contains(t, err.Error(), "invalid auth credentials")
}
