package ytm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/iterutil"
	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

// Playlist privacy levels accepted by CreatePlaylist and EditPlaylist.
const (
	PrivacyPublic   = "PUBLIC"
	PrivacyPrivate  = "PRIVATE"
	PrivacyUnlisted = "UNLISTED"
)

// DefaultTrackLimit is the track bound most playlist reads want.
const DefaultTrackLimit = 100

type PlaylistOptions struct {
	// Limit bounds the track count. Negative fetches every track; zero
	// fetches none, returning the header (and its track count) alone.
	Limit int
	// Related fetches the related-playlists carousel (one extra request).
	Related bool
	// SuggestionsLimit fetches up to that many suggested tracks. Only owned
	// playlists have suggestions.
	SuggestionsLimit int
}

// Playlist returns a playlist with its tracks. Ids are accepted with or
// without the VL prefix. Owned playlists additionally expose privacy,
// suggestions, and per-row set-video ids.
func (c *Client) Playlist(ctx context.Context, logger zerolog.Logger, playlistID string, opts PlaylistOptions) (*types.Playlist, error) {
	id := strings.TrimPrefix(playlistID, "VL")
	limit := opts.Limit

	body := map[string]any{"browseId": "VL" + id}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	playlist, err := parse.PlaylistHeader(response)
	if nil != err {
		return nil, err
	}
	playlist.ID = id

	if shelves := nav.FindDeep(response, parse.PlaylistShelf); limit != 0 && len(shelves) > 0 {
		shelf := shelves[0]
		playlist.Tracks = parse.PlaylistItems(nav.OptionalList(shelf, "contents"))
		if limit < 0 || len(playlist.Tracks) < limit {
			more, err := getContinuations(ctx, shelf, musicPlaylistShelfContinuation, limit-len(playlist.Tracks),
				func(ctx context.Context, additionalParams string) (gjson.Result, error) {
					return c.sendRequest(ctx, logger, "browse", body, additionalParams)
				}, parse.PlaylistItems, "")
			if nil != err {
				return nil, err
			}
			playlist.Tracks = append(playlist.Tracks, more...)
		}

		if playlist.TrackCount == 0 {
			playlist.TrackCount = len(playlist.Tracks)
		}
	}

	if opts.Related || (playlist.Owned && opts.SuggestionsLimit > 0) {
		if err := c.playlistExtras(ctx, logger, response, body, playlist, opts); nil != err {
			return nil, err
		}
	}

	return playlist, nil
}

// playlistExtras fetches the deferred tail of the playlist page, which
// carries the suggestions shelf (owned playlists) and the related carousel.
func (c *Client) playlistExtras(
	ctx context.Context,
	logger zerolog.Logger,
	response gjson.Result,
	body map[string]any,
	playlist *types.Playlist,
	opts PlaylistOptions,
) error {
	sectionList := nav.Optional(response,
		"contents", "twoColumnBrowseResultsRenderer", "secondaryContents", "sectionListRenderer")
	if !sectionList.Exists() {
		sectionList = nav.Optional(response,
			"contents", "singleColumnBrowseResultsRenderer", "tabs", 0,
			"tabRenderer", "content", "sectionListRenderer")
	}

	params := continuationParams(sectionList, "")
	if params == "" {
		return nil
	}

	continued, err := c.sendRequest(ctx, logger, "browse", body, params)
	if nil != err {
		return err
	}
	contents := nav.OptionalList(continued, "continuationContents", sectionListContinuation, "contents")

	for _, section := range contents {
		if shelf := nav.Optional(section, parse.Shelf); shelf.Exists() && playlist.Owned && opts.SuggestionsLimit > 0 {
			suggestions := parse.PlaylistItems(nav.OptionalList(shelf, "contents"))

			// The suggestions shelf pages through a reload cursor that
			// re-rolls a fresh batch each time.
			for len(suggestions) < opts.SuggestionsLimit {
				reloadParams := reloadContinuationParams(shelf)
				if reloadParams == "" {
					break
				}
				reloaded, rerr := c.sendRequest(ctx, logger, "browse", body, reloadParams)
				if nil != rerr {
					return rerr
				}
				shelf = nav.Optional(reloaded, "continuationContents", musicShelfContinuation)
				batch := parse.PlaylistItems(nav.OptionalList(shelf, "contents"))
				if len(batch) == 0 {
					break
				}
				suggestions = append(suggestions, batch...)
			}

			if len(suggestions) > opts.SuggestionsLimit {
				suggestions = suggestions[:opts.SuggestionsLimit]
			}
			playlist.Suggestions = suggestions
		}
		if carousel := nav.Optional(section, parse.CarouselShelf); carousel.Exists() && opts.Related {
			for _, item := range nav.OptionalList(carousel, "contents") {
				renderer := nav.Optional(item, parse.MTRIR)
				if !renderer.Exists() {
					continue
				}
				if stub := parse.PlaylistStubFromMTRIR(renderer); nil != stub {
					playlist.Related = append(playlist.Related, *stub)
				}
			}
		}
	}

	return nil
}

// CreatePlaylist creates a playlist and returns the new playlist id.
// videoIDs seeds it with tracks; sourcePlaylist copies another playlist's
// contents instead.
func (c *Client) CreatePlaylist(ctx context.Context, logger zerolog.Logger, title, description, privacy string, videoIDs []string, sourcePlaylist string) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}
	if strings.TrimSpace(title) == "" {
		return "", &UserError{Msg: "playlist title must not be empty"}
	}
	switch privacy {
	case PrivacyPublic, PrivacyPrivate, PrivacyUnlisted:
	default:
		return "", userErrorf("invalid privacy status %q; allowed: %s, %s, %s",
			privacy, PrivacyPublic, PrivacyPrivate, PrivacyUnlisted)
	}

	body := map[string]any{
		"title":         title,
		"description":   description,
		"privacyStatus": privacy,
	}
	if len(videoIDs) > 0 {
		body["videoIds"] = videoIDs
	}
	if sourcePlaylist != "" {
		body["sourcePlaylistId"] = strings.TrimPrefix(sourcePlaylist, "VL")
	}

	response, err := c.sendRequest(ctx, logger, "playlist/create", body, "")
	if nil != err {
		return "", err
	}

	id, err := nav.String(response, "playlistId")
	if nil != err {
		return "", err
	}

	return id, nil
}

// MoveItem names a row move for EditPlaylist: SetVideoID is moved to sit
// before SuccessorSetVideoID; an empty successor moves it to the end.
type MoveItem struct {
	SetVideoID          string
	SuccessorSetVideoID string
}

type EditPlaylistOptions struct {
	Title       string
	Description *string
	Privacy     string
	Move        *MoveItem
	// AddPlaylistID appends another playlist's contents.
	AddPlaylistID string
	// AddToTop, when set, switches whether new items land at the top.
	AddToTop *bool
}

// EditPlaylist applies metadata and ordering changes to an owned playlist
// and returns the server status.
func (c *Client) EditPlaylist(ctx context.Context, logger zerolog.Logger, playlistID string, opts EditPlaylistOptions) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}

	var actions []map[string]any
	if opts.Title != "" {
		actions = append(actions, map[string]any{
			"action": "ACTION_SET_PLAYLIST_NAME", "playlistName": opts.Title,
		})
	}
	if nil != opts.Description {
		actions = append(actions, map[string]any{
			"action": "ACTION_SET_PLAYLIST_DESCRIPTION", "playlistDescription": *opts.Description,
		})
	}
	if opts.Privacy != "" {
		switch opts.Privacy {
		case PrivacyPublic, PrivacyPrivate, PrivacyUnlisted:
		default:
			return "", userErrorf("invalid privacy status %q; allowed: %s, %s, %s",
				opts.Privacy, PrivacyPublic, PrivacyPrivate, PrivacyUnlisted)
		}
		actions = append(actions, map[string]any{
			"action": "ACTION_SET_PLAYLIST_PRIVACY", "playlistPrivacy": opts.Privacy,
		})
	}
	if nil != opts.Move {
		if opts.Move.SetVideoID == "" {
			return "", &UserError{Msg: "move requires the setVideoId of the row being moved"}
		}
		action := map[string]any{
			"action":     "ACTION_MOVE_VIDEO_BEFORE",
			"setVideoId": opts.Move.SetVideoID,
		}
		if opts.Move.SuccessorSetVideoID != "" {
			action["movedSetVideoIdSuccessor"] = opts.Move.SuccessorSetVideoID
		}
		actions = append(actions, action)
	}
	if opts.AddPlaylistID != "" {
		actions = append(actions, map[string]any{
			"action": "ACTION_ADD_PLAYLIST", "addedFullListId": strings.TrimPrefix(opts.AddPlaylistID, "VL"),
		})
	}
	if nil != opts.AddToTop {
		actions = append(actions, map[string]any{
			"action": "ACTION_SET_ADD_TO_TOP", "addToTop": *opts.AddToTop,
		})
	}
	if len(actions) == 0 {
		return "", &UserError{Msg: "edit requires at least one change"}
	}

	body := map[string]any{
		"playlistId": strings.TrimPrefix(playlistID, "VL"),
		"actions":    actions,
	}
	response, err := c.sendRequest(ctx, logger, "browse/edit_playlist", body, "")
	if nil != err {
		return "", err
	}

	return responseStatus(response), nil
}

// DeletePlaylist deletes an owned playlist and returns the server status.
func (c *Client) DeletePlaylist(ctx context.Context, logger zerolog.Logger, playlistID string) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}

	response, err := c.sendRequest(ctx, logger, "playlist/delete",
		map[string]any{"playlistId": strings.TrimPrefix(playlistID, "VL")}, "")
	if nil != err {
		return "", err
	}

	return responseStatus(response), nil
}

// AddPlaylistItems appends tracks (or another playlist's contents) to an
// owned playlist. duplicates allows rows already present; otherwise the
// server skips them.
func (c *Client) AddPlaylistItems(ctx context.Context, logger zerolog.Logger, playlistID string, videoIDs []string, sourcePlaylist string, duplicates bool) (*types.AddPlaylistItemsResult, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}
	videoIDs = iterutil.Compact(videoIDs, func(v string) bool { return v != "" })
	if len(videoIDs) == 0 && sourcePlaylist == "" {
		return nil, &UserError{Msg: "you must provide either video ids or a source playlist to add"}
	}

	var actions []map[string]any
	for _, videoID := range videoIDs {
		action := map[string]any{"action": "ACTION_ADD_VIDEO", "addedVideoId": videoID}
		if duplicates {
			action["dedupeOption"] = "DEDUPE_OPTION_SKIP"
		}
		actions = append(actions, action)
	}
	if sourcePlaylist != "" {
		actions = append(actions, map[string]any{
			"action": "ACTION_ADD_PLAYLIST", "addedFullListId": strings.TrimPrefix(sourcePlaylist, "VL"),
		})
		// A playlist add alone returns no playlistEditResults; a harmless
		// no-op action forces the server to echo the edit outcome.
		if len(videoIDs) == 0 {
			actions = append(actions, map[string]any{"action": "ACTION_ADD_VIDEO", "addedVideoId": nil})
		}
	}

	body := map[string]any{
		"playlistId": strings.TrimPrefix(playlistID, "VL"),
		"actions":    actions,
	}
	response, err := c.sendRequest(ctx, logger, "browse/edit_playlist", body, "")
	if nil != err {
		return nil, err
	}

	result := types.AddPlaylistItemsResult{ //nolint:exhaustruct
		Status: responseStatus(response),
	}
	for _, edit := range nav.OptionalList(response, "playlistEditResults") {
		result.PlaylistEdits = append(result.PlaylistEdits, types.PlaylistEditResult{
			VideoID:    nav.OptionalString(edit, "playlistEditVideoAddedResultData", "videoId"),
			SetVideoID: nav.OptionalString(edit, "playlistEditVideoAddedResultData", "setVideoId"),
		})
	}

	return &result, nil
}

// RemovePlaylistItems removes rows from an owned playlist. Every item needs
// the set-video id assigned by the playlist, not just the video id.
func (c *Client) RemovePlaylistItems(ctx context.Context, logger zerolog.Logger, playlistID string, items []types.PlaylistItem) (string, error) {
	if err := c.checkAuth(); nil != err {
		return "", err
	}
	if len(items) == 0 {
		return "", &UserError{Msg: "no playlist items provided"}
	}
	for _, item := range items {
		if item.SetVideoID == "" {
			return "", &UserError{Msg: "cannot remove songs, because setVideoId is missing"}
		}
	}

	actions := iterutil.Map(items, func(_ int, item types.PlaylistItem) map[string]any {
		return map[string]any{
			"action":         "ACTION_REMOVE_VIDEO",
			"removedVideoId": item.VideoID,
			"setVideoId":     item.SetVideoID,
		}
	})

	body := map[string]any{
		"playlistId": strings.TrimPrefix(playlistID, "VL"),
		"actions":    actions,
	}
	response, err := c.sendRequest(ctx, logger, "browse/edit_playlist", body, "")
	if nil != err {
		return "", err
	}

	return responseStatus(response), nil
}

func responseStatus(response gjson.Result) string {
	return nav.OptionalString(response, "status")
}
