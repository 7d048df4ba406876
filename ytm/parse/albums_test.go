package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/ytm/parse"
)

func TestAlbumHeaderDetailLayout(t *testing.T) {
	t.Parallel()

	response := gjson.Parse(`{
		"header": {"musicDetailHeaderRenderer": {
			"title": {"runs": [{"text": "OK Computer"}]},
			"subtitle": {"runs": [
				{"text": "Album"},
				{"text": " • "},
				{"text": "Radiohead", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCr8"}}},
				{"text": " • "},
				{"text": "1997"}
			]},
			"secondSubtitle": {"runs": [
				{"text": "12 songs"},
				{"text": " • "},
				{"text": "53:21"}
			]}
		}},
		"microformat": {"microformatDataRenderer": {"urlCanonical": "https://music.youtube.com/playlist?list=OLAK5uy_abc"}}
	}`)

	album, err := parse.AlbumHeader(response)
	require.NoError(t, err)
	assert.Equal(t, "OK Computer", album.Title)
	assert.Equal(t, "Album", album.Type)
	require.Len(t, album.Artists, 1)
	assert.Equal(t, "UCr8", album.Artists[0].ID)
	assert.Equal(t, "1997", album.Year)
	assert.Equal(t, 12, album.TrackCount)
	assert.Equal(t, "53:21", album.Duration)
	assert.Equal(t, "OLAK5uy_abc", album.AudioPlaylistID)
}

func TestAlbumHeaderResponsiveFallback(t *testing.T) {
	t.Parallel()

	response := gjson.Parse(`{
		"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
			{"musicResponsiveHeaderRenderer": {
				"title": {"runs": [{"text": "In Rainbows"}]},
				"subtitle": {"runs": [{"text": "Album"}, {"text": " • "}, {"text": "2007"}]},
				"straplineTextOne": {"runs": [
					{"text": "Radiohead", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCr8"}}}
				]},
				"secondSubtitle": {"runs": [
					{"text": "10 songs"},
					{"text": " • "},
					{"text": "42:34"}
				]}
			}}
		]}}}}]}}
	}`)

	album, err := parse.AlbumHeader(response)
	require.NoError(t, err)
	assert.Equal(t, "In Rainbows", album.Title)
	require.Len(t, album.Artists, 1)
	assert.Equal(t, "Radiohead", album.Artists[0].Name)
	assert.Equal(t, "2007", album.Year)
	assert.Equal(t, 10, album.TrackCount)
	assert.Equal(t, 2554, album.DurationSeconds)
}

func TestAlbumStubFromMTRIR(t *testing.T) {
	t.Parallel()

	item := gjson.Parse(`{
		"title": {"runs": [{"text": "Kid A"}]},
		"subtitle": {"runs": [{"text": "Album"}, {"text": " • "}, {"text": "2000"}]},
		"navigationEndpoint": {"browseEndpoint": {"browseId": "MPREb_kida"}},
		"thumbnailOverlay": {"musicItemThumbnailOverlayRenderer": {"content": {"musicPlayButtonRenderer": {
			"playNavigationEndpoint": {"watchPlaylistEndpoint": {"playlistId": "OLAK5uy_kida"}}
		}}}}
	}`)

	stub := parse.AlbumStubFromMTRIR(item)
	require.NotNil(t, stub)
	assert.Equal(t, "MPREb_kida", stub.BrowseID)
	assert.Equal(t, "2000", stub.Year)
	assert.Equal(t, "OLAK5uy_kida", stub.AudioPlaylistID)
	assert.Equal(t, "Album", stub.Type)
}
