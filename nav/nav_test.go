package nav_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
)

const doc = `{
	"contents": {
		"sectionListRenderer": {
			"contents": [
				{"musicShelfRenderer": {"title": {"runs": [{"text": "Songs"}]}}},
				{"musicCarouselShelfRenderer": {"numItemsPerColumn": "4"}}
			]
		}
	}
}`

func TestGet(t *testing.T) {
	t.Parallel()

	root := gjson.Parse(doc)

	title, err := nav.String(root, "contents", "sectionListRenderer", "contents", 0, "musicShelfRenderer", "title", "runs", 0, "text")
	require.NoError(t, err)
	assert.Equal(t, "Songs", title)

	last, err := nav.Get(root, "contents", "sectionListRenderer", "contents", -1)
	require.NoError(t, err)
	assert.True(t, last.Get("musicCarouselShelfRenderer").Exists())
}

func TestGetMissingKeyCarriesPath(t *testing.T) {
	t.Parallel()

	root := gjson.Parse(doc)

	_, err := nav.Get(root, "contents", "sectionListRenderer", "header", "title")
	require.Error(t, err)

	var pathErr *nav.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, 2, pathErr.At)
	assert.Contains(t, pathErr.Error(), "contents.sectionListRenderer.header.title")
}

func TestGetIndexOutOfRange(t *testing.T) {
	t.Parallel()

	root := gjson.Parse(doc)

	_, err := nav.Get(root, "contents", "sectionListRenderer", "contents", 5)
	var pathErr *nav.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, 3, pathErr.At)
}

func TestOptional(t *testing.T) {
	t.Parallel()

	root := gjson.Parse(doc)

	assert.False(t, nav.Optional(root, "contents", "nope").Exists())
	assert.Empty(t, nav.OptionalString(root, "contents", "nope"))
	assert.Equal(t, "4", nav.OptionalString(root, "contents", "sectionListRenderer", "contents", 1, "musicCarouselShelfRenderer", "numItemsPerColumn"))
}

func TestFindByKey(t *testing.T) {
	t.Parallel()

	list := gjson.Parse(`[
		{"a": {"x": 1}},
		{"b": {"x": 2}},
		{"b": {"x": 3}}
	]`).Array()

	assert.Equal(t, int64(2), nav.FindValueByKey(list, "b").Get("x").Int())
	assert.False(t, nav.FindByKey(list, "c").Exists())

	all := nav.FindAllByKey(list, "b", "x")
	require.Len(t, all, 2)
	assert.Equal(t, int64(2), all[0].Int())
	assert.Equal(t, int64(3), all[1].Int())
}
