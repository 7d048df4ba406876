package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/ytm/parse"
)

func TestArtistPage(t *testing.T) {
	t.Parallel()

	response := gjson.Parse(`{
		"header": {"musicImmersiveHeaderRenderer": {
			"title": {"runs": [{"text": "Radiohead"}]},
			"subscriptionButton": {"subscribeButtonRenderer": {
				"channelId": "UCr8",
				"subscribed": true,
				"subscriberCountText": {"runs": [{"text": "6.21M"}]}
			}}
		}},
		"contents": {"singleColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
			{"musicShelfRenderer": {
				"title": {"runs": [{"text": "Songs", "navigationEndpoint": {"browseEndpoint": {"browseId": "VLPLsongs"}}}]},
				"contents": [
					{"musicResponsiveListItemRenderer": {
						"playlistItemData": {"videoId": "v1"},
						"flexColumns": [
							{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Creep"}]}}}
						]
					}}
				]
			}},
			{"musicCarouselShelfRenderer": {
				"header": {"musicCarouselShelfBasicHeaderRenderer": {
					"title": {"runs": [{"text": "Albums", "navigationEndpoint": {"browseEndpoint": {"browseId": "MPADalbums", "params": "ggMI"}}}]}
				}},
				"contents": [
					{"musicTwoRowItemRenderer": {
						"title": {"runs": [{"text": "OK Computer"}]},
						"subtitle": {"runs": [{"text": "Album"}, {"text": " • "}, {"text": "1997"}]},
						"navigationEndpoint": {"browseEndpoint": {"browseId": "MPREb_okc"}}
					}}
				]
			}},
			{"musicCarouselShelfRenderer": {
				"header": {"musicCarouselShelfBasicHeaderRenderer": {"title": {"runs": [{"text": "Fans might also like"}]}}},
				"contents": [
					{"musicTwoRowItemRenderer": {
						"title": {"runs": [{"text": "Thom Yorke"}]},
						"subtitle": {"runs": [{"text": "1.2M subscribers"}]},
						"navigationEndpoint": {"browseEndpoint": {"browseId": "UCthom"}}
					}}
				]
			}}
		]}}}}]}}
	}`)

	artist, err := parse.ArtistPage(response)
	require.NoError(t, err)

	assert.Equal(t, "Radiohead", artist.Name)
	assert.Equal(t, "UCr8", artist.ChannelID)
	assert.True(t, artist.Subscribed)
	assert.Equal(t, "6.21M", artist.Subscribers)

	require.NotNil(t, artist.Songs)
	assert.Equal(t, "VLPLsongs", artist.Songs.BrowseID)
	require.Len(t, artist.Songs.Results, 1)
	assert.Equal(t, "Creep", artist.Songs.Results[0].Title)

	require.NotNil(t, artist.Albums)
	assert.Equal(t, "MPADalbums", artist.Albums.BrowseID)
	assert.Equal(t, "ggMI", artist.Albums.Params)
	require.Len(t, artist.Albums.Results, 1)
	assert.Equal(t, "MPREb_okc", artist.Albums.Results[0].BrowseID)
	assert.Equal(t, "1997", artist.Albums.Results[0].Year)

	require.NotNil(t, artist.Related)
	require.Len(t, artist.Related.Results, 1)
	assert.Equal(t, "UCthom", artist.Related.Results[0].BrowseID)
	assert.Equal(t, "1.2M subscribers", artist.Related.Results[0].Subscribers)

	assert.Nil(t, artist.Videos)
	assert.Nil(t, artist.Singles)
}

func TestArtistCarouselShapeFallback(t *testing.T) {
	t.Parallel()

	// Localized section title: the first card's watch endpoint decides.
	response := gjson.Parse(`{
		"contents": {"singleColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
			{"musicCarouselShelfRenderer": {
				"header": {"musicCarouselShelfBasicHeaderRenderer": {"title": {"runs": [{"text": "Videoclips"}]}}},
				"contents": [
					{"musicTwoRowItemRenderer": {
						"title": {"runs": [{"text": "Live at Glastonbury"}]},
						"subtitle": {"runs": [{"text": "2.3M views"}]},
						"navigationEndpoint": {"watchEndpoint": {"videoId": "vidX"}}
					}}
				]
			}}
		]}}}}]}}
	}`)

	artist, err := parse.ArtistPage(response)
	require.NoError(t, err)
	require.NotNil(t, artist.Videos)
	require.Len(t, artist.Videos.Results, 1)
	assert.Equal(t, "vidX", artist.Videos.Results[0].VideoID)
	assert.Equal(t, "2.3M", artist.Videos.Results[0].Views)
}
