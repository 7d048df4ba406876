package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/ytmusic/cache"
	"github.com/xeptore/ytmusic/ytm/types"
)

func TestAlbumsFetchMemoizes(t *testing.T) {
	t.Parallel()

	c := cache.New()

	var calls int
	fetch := func() (*types.Album, error) {
		calls++
		return &types.Album{Title: "Definitely Maybe"}, nil //nolint:exhaustruct
	}

	first, err := c.Albums.Fetch("MPREdm", cache.DefaultAlbumTTL, fetch)
	require.NoError(t, err)
	second, err := c.Albums.Fetch("MPREdm", cache.DefaultAlbumTTL, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "Definitely Maybe", first.Value().Title)
	assert.Equal(t, "Definitely Maybe", second.Value().Title)
}

func TestLyricsFetchPropagatesError(t *testing.T) {
	t.Parallel()

	c := cache.New()

	wantErr := errors.New("lyrics unavailable")
	_, err := c.Lyrics.Fetch("MPLYt_x", cache.DefaultLyricsTTL, func() (*types.Lyrics, error) {
		return nil, wantErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}
