package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// PlaylistHeader parses a playlist page header. Detection order: editable
// header (owned playlist) wrapping an inner header, then the classic detail
// header, then the two-column responsive header.
func PlaylistHeader(response gjson.Result) (*types.Playlist, error) {
	var playlist types.Playlist //nolint:exhaustruct

	header := nav.Optional(response, "header", "musicEditablePlaylistDetailHeaderRenderer")
	if header.Exists() {
		playlist.Owned = true
		playlist.Privacy = nav.OptionalString(header,
			"editHeader", "musicPlaylistEditHeaderRenderer", "privacy")
		header = nav.Optional(header, "header", "musicDetailHeaderRenderer")
		if !header.Exists() {
			header = nav.Optional(response,
				"header", "musicEditablePlaylistDetailHeaderRenderer",
				"header", "musicResponsiveHeaderRenderer")
		}
	} else {
		playlist.Privacy = "PUBLIC"
		header = nav.Optional(response, "header", "musicDetailHeaderRenderer")
	}

	if header.Exists() {
		if err := parseDetailHeaderPlaylist(&playlist, header); nil != err {
			return nil, err
		}

		return &playlist, nil
	}

	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}
	responsive := nav.FindValueByKey(contents, "musicResponsiveHeaderRenderer")
	if !responsive.Exists() {
		return nil, &nav.PathError{Path: []any{"header", "musicResponsiveHeaderRenderer"}, At: 1}
	}
	if err := parseResponsiveHeaderPlaylist(&playlist, responsive); nil != err {
		return nil, err
	}

	return &playlist, nil
}

func parseDetailHeaderPlaylist(playlist *types.Playlist, header gjson.Result) error {
	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return err
	}
	playlist.Title = title
	playlist.Thumbnails = thumbnailList(nav.Optional(header,
		"thumbnail", "croppedSquareThumbnailRenderer", "thumbnail", "thumbnails"))
	playlist.Description = RunsText(nav.Optional(header, "description", "runs"))

	// Older shape: the author sits in the subtitle runs next to year.
	subtitle := nav.OptionalList(header, "subtitle", "runs")
	if len(subtitle) > 2 {
		runs := ParseSongRuns(subtitle[2:])
		playlist.Year = runs.Year
		if len(runs.Artists) > 0 {
			playlist.Author = &runs.Artists[0]
		}
	}

	applySecondSubtitlePlaylist(playlist, nav.OptionalList(header, "secondSubtitle", "runs"))

	return nil
}

func parseResponsiveHeaderPlaylist(playlist *types.Playlist, header gjson.Result) error {
	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return err
	}
	playlist.Title = title
	playlist.Thumbnails = Thumbnails(header)
	playlist.Description = nav.OptionalString(header,
		"description", "musicDescriptionShelfRenderer", "description", "runs", 0, "text")

	subtitle := ParseSongRuns(nav.OptionalList(header, "subtitle", "runs"))
	playlist.Year = subtitle.Year

	// Newer shape: the author moved from the subtitle into a facepile.
	if author := parseFacepileAuthor(header); nil != author {
		playlist.Author = author
	} else if strapline := ParseArtistsRuns(nav.OptionalList(header, "straplineTextOne", "runs")); len(strapline) > 0 {
		playlist.Author = &strapline[0]
	}

	applySecondSubtitlePlaylist(playlist, nav.OptionalList(header, "secondSubtitle", "runs"))

	return nil
}

func parseFacepileAuthor(header gjson.Result) *types.ArtistRef {
	facepile := nav.Optional(header, "facepile", "avatarStackViewModel")
	if !facepile.Exists() {
		return nil
	}

	name := nav.OptionalString(facepile, "text", "content")
	if name == "" {
		return nil
	}

	return &types.ArtistRef{
		Name: name,
		ID: nav.OptionalString(facepile,
			"rendererContext", "commandContext", "onTap", "innertubeCommand",
			"browseEndpoint", "browseId"),
	}
}

// The second subtitle carries "<views> • <n> songs • <duration>" with the
// views run absent on foreign playlists. Track count is recovered by digit
// extraction from the locale-formatted run.
func applySecondSubtitlePlaylist(playlist *types.Playlist, runs []gjson.Result) {
	for i, run := range runs {
		if i%2 != 0 {
			continue
		}
		text := run.Get("text").String()
		switch {
		case durationRe.MatchString(text):
			playlist.Duration = text
			playlist.DurationSeconds = ParseDuration(text)
		case viewsRe.MatchString(text) && playlist.Views == "":
			if playlist.TrackCount == 0 && containsSongWord(text) {
				playlist.TrackCount = extractDigits(text)
			} else {
				playlist.Views, _, _ = splitFirstSpace(text)
			}
		case playlist.TrackCount == 0:
			playlist.TrackCount = extractDigits(text)
		}
	}
}

func containsSongWord(text string) bool {
	for _, w := range []string{"song", "track", "episode"} {
		if containsFold(text, w) {
			return true
		}
	}

	return false
}

// PlaylistStubFromMTRIR maps a playlist card in a carousel or grid.
func PlaylistStubFromMTRIR(item gjson.Result) *types.PlaylistStub {
	title := nav.OptionalString(item, "title", "runs", 0, "text")
	browseID := nav.OptionalString(item, "navigationEndpoint", "browseEndpoint", "browseId")
	if title == "" || browseID == "" {
		return nil
	}

	stub := types.PlaylistStub{ //nolint:exhaustruct
		Title:      title,
		PlaylistID: stripVLPrefix(browseID),
		Thumbnails: Thumbnails(item),
	}

	subtitle := nav.OptionalList(item, "subtitle", "runs")
	if len(subtitle) == 3 {
		stub.Count = extractDigitsString(subtitle[2].Get("text").String())
	}
	for _, artist := range ParseSongRuns(subtitle).Artists {
		// Plain-text runs in card subtitles are usually the type word, not
		// an author; only a hyperlinked run is trustworthy here.
		if artist.ID != "" {
			a := artist
			stub.Author = &a

			break
		}
	}

	return &stub
}
