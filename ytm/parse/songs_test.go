package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

const playlistRow = `{
	"musicResponsiveListItemRenderer": {
		"playlistItemData": {"videoId": "dQw4w9WgXcQ", "playlistSetVideoId": "set01"},
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "Never Gonna Give You Up", "navigationEndpoint": {"watchEndpoint": {"videoId": "dQw4w9WgXcQ"}}}
			]}}},
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "Rick Astley", "navigationEndpoint": {"browseEndpoint": {
					"browseId": "UCuAXFkgsw1L7xaCfnd5JJOw",
					"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ARTIST"}}
				}}}
			]}}},
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
				{"text": "Whenever You Need Somebody", "navigationEndpoint": {"browseEndpoint": {
					"browseId": "MPREb_whenever",
					"browseEndpointContextSupportedConfigs": {"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ALBUM"}}
				}}}
			]}}}
		],
		"fixedColumns": [
			{"musicResponsiveListItemFixedColumnRenderer": {"text": {"simpleText": "3:33"}}}
		],
		"menu": {"menuRenderer": {
			"topLevelButtons": [{"likeButtonRenderer": {"likeStatus": "LIKE"}}],
			"items": [
				{"toggleMenuServiceItemRenderer": {
					"defaultIcon": {"iconType": "LIBRARY_SAVED"},
					"defaultServiceEndpoint": {"feedbackEndpoint": {"feedbackToken": "remove-tok"}},
					"toggledServiceEndpoint": {"feedbackEndpoint": {"feedbackToken": "add-tok"}}
				}},
				{"menuNavigationItemRenderer": {"navigationEndpoint": {"watchEndpoint": {
					"videoId": "dQw4w9WgXcQ",
					"watchEndpointMusicSupportedConfigs": {"watchEndpointMusicConfig": {"musicVideoType": "MUSIC_VIDEO_TYPE_ATV"}}
				}}}}
			]
		}}
	}
}`

func TestPlaylistItemsClassifiedRow(t *testing.T) {
	t.Parallel()

	tracks := parse.PlaylistItems([]gjson.Result{gjson.Parse(playlistRow)})
	require.Len(t, tracks, 1)

	track := tracks[0]
	assert.Equal(t, "Never Gonna Give You Up", track.Title)
	assert.Equal(t, "dQw4w9WgXcQ", track.VideoID)
	assert.Equal(t, "set01", track.SetVideoID)
	assert.True(t, track.IsAvailable)
	require.Len(t, track.Artists, 1)
	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", track.Artists[0].ID)
	require.NotNil(t, track.Album)
	assert.Equal(t, "MPREb_whenever", track.Album.ID)
	assert.Equal(t, "3:33", track.Duration)
	assert.Equal(t, 213, track.DurationSeconds)
	assert.Equal(t, types.LikeStatusLike, track.LikeStatus)
	assert.Equal(t, "MUSIC_VIDEO_TYPE_ATV", track.VideoType)

	// LIBRARY_SAVED means the toggle roles are swapped.
	require.NotNil(t, track.FeedbackTokens)
	assert.Equal(t, "add-tok", track.FeedbackTokens.Add)
	assert.Equal(t, "remove-tok", track.FeedbackTokens.Remove)
	require.NotNil(t, track.InLibrary)
	assert.True(t, *track.InLibrary)
}

func TestPlaylistItemsSkipsDeletedAndUnknownRenderers(t *testing.T) {
	t.Parallel()

	deleted := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Song deleted"}]}}}
			]
		}
	}`)
	unknown := gjson.Parse(`{"continuationItemRenderer": {}}`)

	tracks := parse.PlaylistItems([]gjson.Result{deleted, unknown})
	assert.Empty(t, tracks)
}

func TestPlaylistItemsUnavailableRowUsesFixedLayout(t *testing.T) {
	t.Parallel()

	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"musicItemRendererDisplayPolicy": "MUSIC_ITEM_RENDERER_DISPLAY_POLICY_GREY_OUT",
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Gone"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Some Artist"}]}}}
			]
		}
	}`)

	tracks := parse.PlaylistItems([]gjson.Result{row})
	require.Len(t, tracks, 1)
	assert.False(t, tracks[0].IsAvailable)
	require.Len(t, tracks[0].Artists, 1)
	assert.Equal(t, "Some Artist", tracks[0].Artists[0].Name)
}

func TestAlbumTracksCarryTrackNumbers(t *testing.T) {
	t.Parallel()

	row := gjson.Parse(`{
		"musicResponsiveListItemRenderer": {
			"index": {"runs": [{"text": "7"}]},
			"playlistItemData": {"videoId": "vid7"},
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Track Seven"}]}}}
			],
			"fixedColumns": [
				{"musicResponsiveListItemFixedColumnRenderer": {"text": {"runs": [{"text": "2:01"}]}}}
			]
		}
	}`)

	tracks := parse.AlbumTracks([]gjson.Result{row})
	require.Len(t, tracks, 1)
	assert.Equal(t, 7, tracks[0].TrackNumber)
	assert.Equal(t, "vid7", tracks[0].VideoID)
	assert.Equal(t, 121, tracks[0].DurationSeconds)
}
