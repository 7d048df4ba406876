package ytm

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

const librarySongsPerPage = 25

// LibrarySongs lists the account's library songs. The endpoint is known to
// intermittently return short pages, so pagination runs through the
// validating variant of the continuation engine.
func (c *Client) LibrarySongs(ctx context.Context, logger zerolog.Logger, limit int) ([]types.Track, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	body := map[string]any{"browseId": "FEmusic_liked_videos"}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	shelf := parse.LibraryContents(response, parse.Shelf)
	if !shelf.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Shelf}, At: 1}
	}

	tracks := parse.PlaylistItems(nav.OptionalList(shelf, "contents"))
	if limit > 0 && len(tracks) >= limit {
		return tracks, nil
	}

	more, err := getValidatedContinuations(ctx, shelf, musicShelfContinuation,
		limit-len(tracks), librarySongsPerPage,
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.PlaylistItems)
	if nil != err {
		return nil, err
	}

	return append(tracks, more...), nil
}

// LibraryAlbums lists the albums the account has added to its library.
func (c *Client) LibraryAlbums(ctx context.Context, logger zerolog.Logger, limit int) ([]types.AlbumStub, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	return c.libraryGrid(ctx, logger, "FEmusic_liked_albums", limit)
}

// LibraryPlaylists lists the account's playlists, own and saved.
func (c *Client) LibraryPlaylists(ctx context.Context, logger zerolog.Logger, limit int) ([]types.PlaylistStub, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	body := map[string]any{"browseId": "FEmusic_liked_playlists"}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	grid := parse.LibraryContents(response, parse.Grid)
	if !grid.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Grid}, At: 1}
	}

	playlists := parse.LibraryPlaylists(nav.OptionalList(grid, "items"))
	if limit > 0 && len(playlists) >= limit {
		return playlists, nil
	}

	more, err := getContinuations(ctx, grid, gridContinuation, limit-len(playlists),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.LibraryPlaylists, "")
	if nil != err {
		return nil, err
	}

	return append(playlists, more...), nil
}

// LibraryArtists lists artists with tracks in the account's library.
func (c *Client) LibraryArtists(ctx context.Context, logger zerolog.Logger, limit int) ([]types.ArtistStub, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	return c.libraryArtistShelf(ctx, logger, "FEmusic_library_corpus_track_artists", limit)
}

// LibrarySubscriptions lists artists the account is subscribed to.
func (c *Client) LibrarySubscriptions(ctx context.Context, logger zerolog.Logger, limit int) ([]types.ArtistStub, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	return c.libraryArtistShelf(ctx, logger, "FEmusic_library_corpus_artists", limit)
}

// LikedSongs returns the auto playlist of liked songs. Limit follows
// PlaylistOptions.Limit: negative fetches everything, zero only the header
// with its track count.
func (c *Client) LikedSongs(ctx context.Context, logger zerolog.Logger, limit int) (*types.Playlist, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	return c.Playlist(ctx, logger, "LM", PlaylistOptions{Limit: limit}) //nolint:exhaustruct
}

// History returns the account's play history, most recent first. Rows carry
// remove feedback tokens usable with RemoveHistoryItems.
func (c *Client) History(ctx context.Context, logger zerolog.Logger) ([]types.Track, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	response, err := c.sendRequest(ctx, logger, "browse",
		map[string]any{"browseId": "FEmusic_history"}, "")
	if nil != err {
		return nil, err
	}

	contents, err := parse.SectionListContents(response)
	if nil != err {
		return nil, err
	}

	var tracks []types.Track
	for _, section := range contents {
		shelf := nav.Optional(section, parse.Shelf)
		if !shelf.Exists() {
			continue
		}
		tracks = append(tracks, parse.PlaylistItems(nav.OptionalList(shelf, "contents"))...)
	}

	return tracks, nil
}

// RemoveHistoryItems deletes history rows by their feedback tokens.
func (c *Client) RemoveHistoryItems(ctx context.Context, logger zerolog.Logger, feedbackTokens []string) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}
	if len(feedbackTokens) == 0 {
		return "", &UserError{Msg: "no feedback tokens provided"}
	}

	response, err := c.sendRequest(ctx, logger, "feedback",
		map[string]any{"feedbackTokens": feedbackTokens}, "")
	if nil != err {
		return "", err
	}

	return responseStatus(response), nil
}

// RateSong rates a song. INDIFFERENT removes an existing rating.
func (c *Client) RateSong(ctx context.Context, logger zerolog.Logger, videoID string, rating types.LikeStatus) error {
	if err := c.checkAuth(); nil != err {
		return err
	}
	endpoint, err := ratingEndpoint(rating)
	if nil != err {
		return err
	}

	_, err = c.sendRequest(ctx, logger, endpoint,
		map[string]any{"target": map[string]any{"videoId": videoID}}, "")

	return err
}

// RatePlaylist rates a playlist, adding it to (or removing it from) the
// library.
func (c *Client) RatePlaylist(ctx context.Context, logger zerolog.Logger, playlistID string, rating types.LikeStatus) error {
	if err := c.checkAuth(); nil != err {
		return err
	}
	endpoint, err := ratingEndpoint(rating)
	if nil != err {
		return err
	}

	_, err = c.sendRequest(ctx, logger, endpoint,
		map[string]any{"target": map[string]any{"playlistId": playlistID}}, "")

	return err
}

func ratingEndpoint(rating types.LikeStatus) (string, error) {
	switch rating {
	case types.LikeStatusLike:
		return "like/like", nil
	case types.LikeStatusDislike:
		return "like/dislike", nil
	case types.LikeStatusIndifferent:
		return "like/removelike", nil
	default:
		return "", userErrorf("invalid rating %q; allowed: LIKE, DISLIKE, INDIFFERENT", string(rating))
	}
}

// EditSongLibraryStatus adds or removes songs from the library by their
// feedback tokens (see Track.FeedbackTokens).
func (c *Client) EditSongLibraryStatus(ctx context.Context, logger zerolog.Logger, feedbackTokens []string) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}
	if len(feedbackTokens) == 0 {
		return "", &UserError{Msg: "no feedback tokens provided"}
	}

	response, err := c.sendRequest(ctx, logger, "feedback",
		map[string]any{"feedbackTokens": feedbackTokens}, "")
	if nil != err {
		return "", err
	}

	return responseStatus(response), nil
}

// SubscribeArtists subscribes the account to the given artist channels.
func (c *Client) SubscribeArtists(ctx context.Context, logger zerolog.Logger, channelIDs []string) error {
	return c.channelSubscription(ctx, logger, "subscription/subscribe", channelIDs)
}

// UnsubscribeArtists removes artist channel subscriptions.
func (c *Client) UnsubscribeArtists(ctx context.Context, logger zerolog.Logger, channelIDs []string) error {
	return c.channelSubscription(ctx, logger, "subscription/unsubscribe", channelIDs)
}

func (c *Client) channelSubscription(ctx context.Context, logger zerolog.Logger, endpoint string, channelIDs []string) error {
	if err := c.checkAuth(); nil != err {
		return err
	}
	if len(channelIDs) == 0 {
		return &UserError{Msg: "no channel ids provided"}
	}

	_, err := c.sendRequest(ctx, logger, endpoint,
		map[string]any{"channelIds": channelIDs}, "")

	return err
}

func (c *Client) libraryGrid(ctx context.Context, logger zerolog.Logger, browseID string, limit int) ([]types.AlbumStub, error) {
	body := map[string]any{"browseId": browseID}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	grid := parse.LibraryContents(response, parse.Grid)
	if !grid.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Grid}, At: 1}
	}

	albums := parse.LibraryAlbums(nav.OptionalList(grid, "items"))
	if limit > 0 && len(albums) >= limit {
		return albums, nil
	}

	more, err := getContinuations(ctx, grid, gridContinuation, limit-len(albums),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.LibraryAlbums, "")
	if nil != err {
		return nil, err
	}

	return append(albums, more...), nil
}

func (c *Client) libraryArtistShelf(ctx context.Context, logger zerolog.Logger, browseID string, limit int) ([]types.ArtistStub, error) {
	body := map[string]any{"browseId": browseID}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	shelf := parse.LibraryContents(response, parse.Shelf)
	if !shelf.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Shelf}, At: 1}
	}

	artists := parse.LibraryArtists(nav.OptionalList(shelf, "contents"))
	if limit > 0 && len(artists) >= limit {
		return artists, nil
	}

	more, err := getContinuations(ctx, shelf, musicShelfContinuation, limit-len(artists),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.LibraryArtists, "")
	if nil != err {
		return nil, err
	}

	return append(artists, more...), nil
}
