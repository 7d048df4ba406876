package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// WatchPlaylistItems parses the playlistPanel queue of a next response. A
// wrapped item carries its song/video counterpart alongside the primary
// renderer.
func WatchPlaylistItems(contents []gjson.Result) []types.Track {
	var out []types.Track
	for _, content := range contents {
		renderer := content.Get(PanelVideo)
		var counterpart *types.Track
		if wrapper := content.Get(PanelVideoWrapper); wrapper.Exists() {
			renderer = nav.Optional(wrapper, "primaryRenderer", PanelVideo)
			counterpartRenderer := nav.Optional(wrapper,
				"counterpart", 0, "counterpartRenderer", PanelVideo)
			if counterpartRenderer.Exists() {
				counterpart = parsePanelVideo(counterpartRenderer)
			}
		}
		if !renderer.Exists() {
			continue
		}

		track := parsePanelVideo(renderer)
		if nil == track {
			continue
		}
		track.Counterpart = counterpart
		out = append(out, *track)
	}

	return out
}

func parsePanelVideo(renderer gjson.Result) *types.Track {
	videoID := renderer.Get("videoId").String()
	title := nav.OptionalString(renderer, "title", "runs", 0, "text")
	if title == "" {
		// Unavailable queue entries render without a title.
		return nil
	}

	byline := ParseSongRuns(nav.OptionalList(renderer, "longBylineText", "runs"))

	track := types.Track{ //nolint:exhaustruct
		VideoID:     videoID,
		Title:       title,
		Artists:     byline.Artists,
		Album:       byline.Album,
		Views:       byline.Views,
		Year:        byline.Year,
		LikeStatus:  types.ParseLikeStatus(nav.OptionalString(renderer, "likeStatus")),
		Thumbnails:  thumbnailList(nav.Optional(renderer, "thumbnail", "thumbnails")),
		IsAvailable: true,
		IsExplicit:  isExplicit(renderer, "badges"),
		VideoType: nav.OptionalString(renderer,
			"navigationEndpoint", "watchEndpoint",
			"watchEndpointMusicSupportedConfigs", "watchEndpointMusicConfig", "musicVideoType"),
	}

	if length := nav.OptionalString(renderer, "lengthText", "runs", 0, "text"); length != "" {
		track.Duration = length
		track.DurationSeconds = ParseDuration(length)
	}

	return &track
}
