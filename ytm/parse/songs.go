package parse

import (
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

const greyedOutPolicy = "MUSIC_ITEM_RENDERER_DISPLAY_POLICY_GREY_OUT"

// PlaylistItems parses the MRLIR rows of a playlist, library or history
// list. Rows whose renderer tag is unknown are skipped.
func PlaylistItems(contents []gjson.Result) []types.Track {
	var out []types.Track
	for _, content := range contents {
		data := content.Get(MRLIR)
		if !data.Exists() {
			continue
		}
		if track := parseTrackRow(data, false); nil != track {
			out = append(out, *track)
		}
	}

	return out
}

// AlbumTracks parses an album tracklisting, where columns are position-fixed
// and rows carry track numbers instead of thumbnails.
func AlbumTracks(contents []gjson.Result) []types.Track {
	var out []types.Track
	for _, content := range contents {
		data := content.Get(MRLIR)
		if !data.Exists() {
			continue
		}
		track := parseTrackRow(data, true)
		if nil == track {
			continue
		}

		if n := nav.OptionalString(data, "index", "runs", 0, "text"); n != "" {
			if parsed, err := strconv.Atoi(n); nil == err {
				track.TrackNumber = parsed
			}
		}
		out = append(out, *track)
	}

	return out
}

// parseTrackRow maps one MRLIR to a Track. fixedColumns forces the
// position-fixed 0=title 1=artist 2=album layout used by album listings;
// unavailable (greyed out) rows always use it.
func parseTrackRow(data gjson.Result, fixedColumns bool) *types.Track {
	title := FlexColumnText(data, 0, 0)
	if title == "" || title == "Song deleted" {
		return nil
	}

	isAvailable := nav.OptionalString(data, "musicItemRendererDisplayPolicy") != greyedOutPolicy

	roles := columnRoles{title: 0, artist: 1, album: 2}
	if !fixedColumns && isAvailable {
		roles = classifyColumns(data)
		if roles.title == -1 {
			roles.title = 0
		}
	}

	track := types.Track{ //nolint:exhaustruct
		Title:       FlexColumnText(data, roles.title, 0),
		VideoID:     nav.OptionalString(data, "playlistItemData", "videoId"),
		SetVideoID:  nav.OptionalString(data, "playlistItemData", "playlistSetVideoId"),
		IsAvailable: isAvailable,
		IsExplicit:  isExplicit(data, "badges"),
		Thumbnails:  Thumbnails(data),
		LikeStatus:  LikeStatus(data),
		VideoType:   MenuVideoType(data),
	}

	if track.VideoID == "" {
		track.VideoID = nav.OptionalString(data,
			"flexColumns", 0, "musicResponsiveListItemFlexColumnRenderer",
			"text", "runs", 0, "navigationEndpoint", "watchEndpoint", "videoId")
	}
	if track.SetVideoID == "" {
		track.SetVideoID = MenuPlaylistSetVideoID(data)
	}

	if roles.artist != -1 {
		if col := FlexColumn(data, roles.artist); col.Exists() {
			runs := ParseSongRuns(nav.OptionalList(col, "text", "runs"))
			track.Artists = runs.Artists
			if track.Duration == "" && runs.Duration != "" {
				track.Duration = runs.Duration
				track.DurationSeconds = runs.DurationSeconds
			}
			if runs.Year != "" {
				track.Year = runs.Year
			}
			if runs.Views != "" {
				track.Views = runs.Views
			}
		}
	}

	if roles.album != -1 {
		if col := FlexColumn(data, roles.album); col.Exists() {
			name := nav.OptionalString(col, "text", "runs", 0, "text")
			id := nav.OptionalString(col, "text", "runs", 0,
				"navigationEndpoint", "browseEndpoint", "browseId")
			if name != "" {
				track.Album = &types.AlbumRef{Name: name, ID: id}
			}
		}
	}

	if d := FixedColumnText(data, 0); d != "" {
		track.Duration = d
		track.DurationSeconds = ParseDuration(d)
	}

	tokens, inLibrary := SongMenuTokens(data)
	track.FeedbackTokens = tokens
	track.InLibrary = inLibrary

	return &track
}

// TwoColumnItems parses the mobile-format musicTwoColumnItemRenderer rows.
func TwoColumnItems(contents []gjson.Result) []types.Track {
	var out []types.Track
	for _, content := range contents {
		data := content.Get(TwoColumnItem)
		if !data.Exists() {
			continue
		}

		subtitle := ParseSongRuns(nav.OptionalList(data, "subtitle", "runs"))
		track := types.Track{ //nolint:exhaustruct
			Title:           nav.OptionalString(data, "title", "runs", 0, "text"),
			VideoID:         nav.OptionalString(data, "navigationEndpoint", "watchEndpoint", "videoId"),
			Artists:         subtitle.Artists,
			Album:           subtitle.Album,
			Duration:        subtitle.Duration,
			DurationSeconds: subtitle.DurationSeconds,
			Thumbnails:      Thumbnails(data),
			LikeStatus:      types.LikeStatusIndifferent,
			IsAvailable:     true,
		}
		if track.Title == "" {
			continue
		}
		out = append(out, track)
	}

	return out
}
