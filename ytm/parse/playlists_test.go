package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/ytm/parse"
)

func TestPlaylistHeaderOwnedEditable(t *testing.T) {
	t.Parallel()

	response := gjson.Parse(`{
		"header": {"musicEditablePlaylistDetailHeaderRenderer": {
			"editHeader": {"musicPlaylistEditHeaderRenderer": {"privacy": "PRIVATE"}},
			"header": {"musicDetailHeaderRenderer": {
				"title": {"runs": [{"text": "My Mix"}]},
				"subtitle": {"runs": [
					{"text": "Playlist"},
					{"text": " • "},
					{"text": "Me", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCme"}}},
					{"text": " • "},
					{"text": "2024"}
				]},
				"secondSubtitle": {"runs": [
					{"text": "13 songs"},
					{"text": " • "},
					{"text": "44:03"}
				]}
			}}
		}}
	}`)

	playlist, err := parse.PlaylistHeader(response)
	require.NoError(t, err)
	assert.True(t, playlist.Owned)
	assert.Equal(t, "PRIVATE", playlist.Privacy)
	assert.Equal(t, "My Mix", playlist.Title)
	require.NotNil(t, playlist.Author)
	assert.Equal(t, "UCme", playlist.Author.ID)
	assert.Equal(t, "2024", playlist.Year)
	assert.Equal(t, 13, playlist.TrackCount)
	assert.Equal(t, "44:03", playlist.Duration)
	assert.Equal(t, 2643, playlist.DurationSeconds)
}

func TestPlaylistHeaderResponsiveWithFacepile(t *testing.T) {
	t.Parallel()

	response := gjson.Parse(`{
		"contents": {"twoColumnBrowseResultsRenderer": {"tabs": [{"tabRenderer": {"content": {"sectionListRenderer": {"contents": [
			{"musicResponsiveHeaderRenderer": {
				"title": {"runs": [{"text": "Indie Gold"}]},
				"subtitle": {"runs": [{"text": "Playlist"}, {"text": " • "}, {"text": "2023"}]},
				"secondSubtitle": {"runs": [
					{"text": "1,204 views"},
					{"text": " • "},
					{"text": "100 songs"},
					{"text": " • "},
					{"text": "6:12:40"}
				]},
				"facepile": {"avatarStackViewModel": {
					"text": {"content": "YouTube Music"},
					"rendererContext": {"commandContext": {"onTap": {"innertubeCommand": {"browseEndpoint": {"browseId": "UCyt"}}}}}
				}}
			}}
		]}}}}]}}
	}`)

	playlist, err := parse.PlaylistHeader(response)
	require.NoError(t, err)
	assert.False(t, playlist.Owned)
	assert.Equal(t, "PUBLIC", playlist.Privacy)
	assert.Equal(t, "Indie Gold", playlist.Title)
	require.NotNil(t, playlist.Author)
	assert.Equal(t, "YouTube Music", playlist.Author.Name)
	assert.Equal(t, "UCyt", playlist.Author.ID)
	assert.Equal(t, "2023", playlist.Year)
	assert.Equal(t, "1,204", playlist.Views)
	assert.Equal(t, 100, playlist.TrackCount)
	assert.Equal(t, 22360, playlist.DurationSeconds)
}

func TestPlaylistStubFromMTRIR(t *testing.T) {
	t.Parallel()

	item := gjson.Parse(`{
		"title": {"runs": [{"text": "Chill Hits"}]},
		"subtitle": {"runs": [
			{"text": "Playlist"},
			{"text": " • "},
			{"text": "52 songs"}
		]},
		"navigationEndpoint": {"browseEndpoint": {"browseId": "VLPLchill"}}
	}`)

	stub := parse.PlaylistStubFromMTRIR(item)
	require.NotNil(t, stub)
	assert.Equal(t, "Chill Hits", stub.Title)
	assert.Equal(t, "PLchill", stub.PlaylistID)
	assert.Equal(t, "52", stub.Count)
}
