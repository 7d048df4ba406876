package ytm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

type WatchOptions struct {
	// VideoID seeds the queue from a song or video. PlaylistID seeds it from
	// a playlist, album playlist or station. At least one must be set.
	VideoID    string
	PlaylistID string
	// Limit bounds the queue length. Zero means 25.
	Limit int
	// Radio requests the endless station for the seed.
	Radio bool
	// Shuffle requests the playlist in shuffled order; requires PlaylistID.
	Shuffle bool
}

// WatchPlaylist returns the play queue the player would build for a seed,
// plus browse ids for the lyrics and related tabs when offered.
func (c *Client) WatchPlaylist(ctx context.Context, logger zerolog.Logger, opts WatchOptions) (*types.WatchPlaylist, error) {
	if opts.VideoID == "" && opts.PlaylistID == "" {
		return nil, &UserError{Msg: "you must provide either a video id or a playlist id"}
	}
	if opts.Shuffle && opts.PlaylistID == "" {
		return nil, &UserError{Msg: "shuffle requires a playlist id"}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 25
	}

	body := map[string]any{
		"enablePersistentPlaylistPanel": true,
		"isAudioOnly":                   true,
		"tunerSettingValue":             "AUTOMIX_SETTING_NORMAL",
	}

	playlistID := strings.TrimPrefix(opts.PlaylistID, "VL")
	if opts.VideoID != "" {
		body["videoId"] = opts.VideoID
		if playlistID == "" {
			playlistID = "RDAMVM" + opts.VideoID
		}
		if !opts.Radio && !opts.Shuffle {
			body["watchEndpointMusicSupportedConfigs"] = map[string]any{
				"watchEndpointMusicConfig": map[string]any{
					"hasPersistentPlaylistPanel": true,
					"musicVideoType":             "MUSIC_VIDEO_TYPE_ATV",
				},
			}
		}
	}
	body["playlistId"] = playlistID

	switch {
	case opts.Shuffle:
		body["params"] = "wAEB8gECKAE%3D"
	case opts.Radio:
		body["params"] = "wAEB"
	}

	response, err := c.sendRequest(ctx, logger, "next", body, "")
	if nil != err {
		return nil, err
	}

	tabs := nav.Optional(response,
		"contents", "singleColumnMusicWatchNextResultsRenderer", "tabbedRenderer",
		"watchNextTabbedResultsRenderer", "tabs")

	panel, err := nav.Get(tabs, 0, "tabRenderer", "content", "musicQueueRenderer",
		"content", "playlistPanelRenderer")
	if nil != err {
		return nil, err
	}

	queue := types.WatchPlaylist{ //nolint:exhaustruct
		PlaylistID: watchQueuePlaylistID(panel, playlistID),
		Lyrics:     watchTabBrowseID(tabs, 1),
		Related:    watchTabBrowseID(tabs, 2),
	}

	queue.Tracks = parse.WatchPlaylistItems(nav.OptionalList(panel, "contents"))
	if len(queue.Tracks) < limit {
		more, err := getContinuations(ctx, panel, playlistPanelContinuation, limit-len(queue.Tracks),
			func(ctx context.Context, additionalParams string) (gjson.Result, error) {
				return c.sendRequest(ctx, logger, "next", body, additionalParams)
			}, parse.WatchPlaylistItems, "")
		if nil != err {
			return nil, err
		}
		queue.Tracks = append(queue.Tracks, more...)
	}

	return &queue, nil
}

// watchQueuePlaylistID recovers the queue's effective playlist id from the
// panel rows; for radio seeds the server may rewrite the requested id.
func watchQueuePlaylistID(panel gjson.Result, requested string) string {
	for _, item := range nav.OptionalList(panel, "contents") {
		id := nav.OptionalString(item, parse.PanelVideo,
			"navigationEndpoint", "watchEndpoint", "playlistId")
		if id != "" {
			return id
		}
	}

	return requested
}

func watchTabBrowseID(tabs gjson.Result, index int) string {
	tab := nav.Optional(tabs, index, "tabRenderer")
	if tab.Get("unselectable").Bool() {
		return ""
	}

	return nav.OptionalString(tab, "endpoint", "browseEndpoint", "browseId")
}
