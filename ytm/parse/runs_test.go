package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 185, parse.ParseDuration("3:05"))
	assert.Equal(t, 3723, parse.ParseDuration("1:02:03"))
	assert.Equal(t, 59, parse.ParseDuration("0:59"))
	assert.Equal(t, 0, parse.ParseDuration("n/a"))
}

func TestParseSongRunsClassification(t *testing.T) {
	t.Parallel()

	doc := gjson.Parse(`{
		"runs": [
			{"text": "Oasis", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCmMUZbaYdNH0bEd1PAlAqsA"}}},
			{"text": " • "},
			{"text": "(What's the Story) Morning Glory?", "navigationEndpoint": {"browseEndpoint": {"browseId": "MPREb_9nqEki4ZDpp"}}},
			{"text": " • "},
			{"text": "1995"},
			{"text": " • "},
			{"text": "4:19"}
		]
	}`)

	runs := parse.ParseSongRuns(nav.OptionalList(doc, "runs"))

	assert.Len(t, runs.Artists, 1)
	assert.Equal(t, "Oasis", runs.Artists[0].Name)
	assert.Equal(t, "UCmMUZbaYdNH0bEd1PAlAqsA", runs.Artists[0].ID)
	assert.NotNil(t, runs.Album)
	assert.Equal(t, "MPREb_9nqEki4ZDpp", runs.Album.ID)
	assert.Equal(t, "1995", runs.Year)
	assert.Equal(t, "4:19", runs.Duration)
	assert.Equal(t, 259, runs.DurationSeconds)
}

func TestParseSongRunsViewsAndPlainArtist(t *testing.T) {
	t.Parallel()

	doc := gjson.Parse(`{
		"runs": [
			{"text": "Some Uploader"},
			{"text": " • "},
			{"text": "1.5M views"}
		]
	}`)

	runs := parse.ParseSongRuns(nav.OptionalList(doc, "runs"))

	assert.Len(t, runs.Artists, 1)
	assert.Equal(t, "Some Uploader", runs.Artists[0].Name)
	assert.Empty(t, runs.Artists[0].ID)
	assert.Equal(t, "1.5M", runs.Views)
}

func TestParseArtistsRuns(t *testing.T) {
	t.Parallel()

	doc := gjson.Parse(`{
		"runs": [
			{"text": "A", "navigationEndpoint": {"browseEndpoint": {"browseId": "UCa"}}},
			{"text": " & "},
			{"text": "B"}
		]
	}`)

	artists := parse.ParseArtistsRuns(nav.OptionalList(doc, "runs"))

	assert.Len(t, artists, 2)
	assert.Equal(t, "UCa", artists[0].ID)
	assert.Equal(t, "B", artists[1].Name)
	assert.Empty(t, artists[1].ID)
}
