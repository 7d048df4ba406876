package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

func TestSearchResultsVideoTypeBeatsSubtitleWord(t *testing.T) {
	t.Parallel()

	// The overlay says song even though the subtitle carries no type word.
	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"playlistItemData": {"videoId": "vid1"},
			"overlay": {"musicItemThumbnailOverlayRenderer": {"content": {"musicPlayButtonRenderer": {
				"playNavigationEndpoint": {"watchEndpoint": {
					"videoId": "vid1",
					"watchEndpointMusicSupportedConfigs": {"watchEndpointMusicConfig": {"musicVideoType": "MUSIC_VIDEO_TYPE_ATV"}}
				}}
			}}}},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Title"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": "Rick Astley", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCx"}}},
					{"text": " • "},
					{"text": "3:00"}
				]}}}
			]
		}
	}`)

	results := parse.SearchResults([]gjson.Result{row}, "Songs", "")
	require.Len(t, results, 1)
	assert.Equal(t, types.ResultTypeSong, results[0].ResultType)
	assert.Equal(t, "vid1", results[0].VideoID)
	assert.Equal(t, "MUSIC_VIDEO_TYPE_ATV", results[0].VideoType)
	assert.Equal(t, 180, results[0].DurationSeconds)
	require.Len(t, results[0].Artists, 1)
	assert.Equal(t, "UCx", results[0].Artists[0].ID)
}

func TestSearchResultsSubtitleTypeWord(t *testing.T) {
	t.Parallel()

	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"navigationEndpoint": {"browseEndpoint": {"browseId": "MPREb_abc"}},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Some Album"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": "Album"},
					{"text": " • "},
					{"text": "Some Artist", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCy"}}},
					{"text": " • "},
					{"text": "2020"}
				]}}}
			]
		}
	}`)

	results := parse.SearchResults([]gjson.Result{row}, "Albums", "")
	require.Len(t, results, 1)
	assert.Equal(t, types.ResultTypeAlbum, results[0].ResultType)
	assert.Equal(t, "MPREb_abc", results[0].BrowseID)
	assert.Equal(t, "2020", results[0].Year)
	require.Len(t, results[0].Artists, 1)
	assert.Equal(t, "UCy", results[0].Artists[0].ID)
}

func TestSearchResultsBrowseIDFallback(t *testing.T) {
	t.Parallel()

	// No overlay, no recognizable type word (localized page): the browse-id
	// prefix is the last signal.
	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"navigationEndpoint": {"browseEndpoint": {"browseId": "VLPLxyz"}},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Mix"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": "Liste"},
					{"text": " • "},
					{"text": "42 songs"}
				]}}}
			]
		}
	}`)

	results := parse.SearchResults([]gjson.Result{row}, "", "")
	require.Len(t, results, 1)
	assert.Equal(t, types.ResultTypePlaylist, results[0].ResultType)
	assert.Equal(t, "PLxyz", results[0].PlaylistID)
	assert.Equal(t, "42", results[0].ItemCount)
}

func TestSearchResultsRadioBrowseIDIsPlaylist(t *testing.T) {
	t.Parallel()

	// Autogenerated radio playlists carry an RD browse id and play like any
	// other playlist.
	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"navigationEndpoint": {"browseEndpoint": {"browseId": "RDAMVMabc"}},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "My Mix"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": "Liste"},
					{"text": " • "},
					{"text": "YouTube Music"}
				]}}}
			]
		}
	}`)

	results := parse.SearchResults([]gjson.Result{row}, "", "")
	require.Len(t, results, 1)
	assert.Equal(t, types.ResultTypePlaylist, results[0].ResultType)
	assert.Equal(t, "RDAMVMabc", results[0].PlaylistID)
}

func TestSearchResultsFilterTypeApplies(t *testing.T) {
	t.Parallel()

	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"navigationEndpoint": {"browseEndpoint": {"browseId": "UCartist"}},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "The Band"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "1.2M subscribers"}]}}}
			]
		}
	}`)

	results := parse.SearchResults([]gjson.Result{row}, "Artists", types.ResultTypeArtist)
	require.Len(t, results, 1)
	assert.Equal(t, types.ResultTypeArtist, results[0].ResultType)
	assert.Equal(t, "The Band", results[0].Artist)
	assert.Equal(t, "UCartist", results[0].BrowseID)
	assert.Equal(t, "1.2M", results[0].Subscribers)
}

func TestTopResultArtist(t *testing.T) {
	t.Parallel()

	card := gjson.Parse(`{
		"title": {"runs": [{"text": "Radiohead", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCr8"}}}]},
		"subtitle": {"runs": [{"text": "Artist"}]},
		"thumbnail": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [{"url": "u", "width": 60, "height": 60}]}}}
	}`)

	result := parse.TopResult(card)
	require.NotNil(t, result)
	assert.Equal(t, types.ResultTypeArtist, result.ResultType)
	assert.Equal(t, "Radiohead", result.Artist)
	assert.Equal(t, "UCr8", result.BrowseID)
	assert.Equal(t, "Top result", result.Category)
}

func TestSearchSuggestions(t *testing.T) {
	t.Parallel()

	response := gjson.Parse(`{
		"contents": [
			{"searchSuggestionsSectionRenderer": {"contents": [
				{"historySuggestionRenderer": {"suggestion": {"runs": [{"text": "oasis "}, {"text": "wonderwall"}]}}},
				{"searchSuggestionRenderer": {"suggestion": {"runs": [{"text": "oasis"}]}}}
			]}}
		]
	}`)

	suggestions := parse.SearchSuggestions(response)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "oasis wonderwall", suggestions[0].Text)
	assert.True(t, suggestions[0].FromHistory)
	assert.Equal(t, "oasis", suggestions[1].Text)
	assert.False(t, suggestions[1].FromHistory)
}
