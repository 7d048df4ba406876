package parse

import (
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// AlbumHeader parses an album page header. The desktop layout carries a
// classic musicDetailHeaderRenderer; the two-column layout moved the same
// fields into a musicResponsiveHeaderRenderer. Fallbacks are ordered
// attempts, not version switches: the client has no version signal.
func AlbumHeader(response gjson.Result) (*types.Album, error) {
	if header := nav.Optional(response, "header", "musicDetailHeaderRenderer"); header.Exists() {
		return parseDetailHeaderAlbum(header, response)
	}

	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}
	header := nav.FindValueByKey(contents, "musicResponsiveHeaderRenderer")
	if !header.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", "musicResponsiveHeaderRenderer"}, At: 1}
	}

	return parseResponsiveHeaderAlbum(header, response)
}

func parseDetailHeaderAlbum(header, response gjson.Result) (*types.Album, error) {
	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return nil, err
	}

	album := types.Album{ //nolint:exhaustruct
		Title:      title,
		Thumbnails: thumbnailList(nav.Optional(header, "thumbnail", "croppedSquareThumbnailRenderer", "thumbnail", "thumbnails")),
		IsExplicit: isExplicit(header, "subtitleBadges"),
	}

	subtitle := nav.OptionalList(header, "subtitle", "runs")
	if len(subtitle) > 0 {
		album.Type = subtitle[0].Get("text").String()
	}
	if len(subtitle) > 2 {
		runs := ParseSongRuns(subtitle[2:])
		album.Artists = runs.Artists
		album.Year = runs.Year
	}

	applySecondSubtitle(&album, nav.OptionalList(header, "secondSubtitle", "runs"))
	album.AudioPlaylistID = audioPlaylistID(response)
	album.Description = RunsText(nav.Optional(header, "description", "runs"))

	return &album, nil
}

func parseResponsiveHeaderAlbum(header, response gjson.Result) (*types.Album, error) {
	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return nil, err
	}

	album := types.Album{ //nolint:exhaustruct
		Title:      title,
		Thumbnails: Thumbnails(header),
		IsExplicit: isExplicit(header, "subtitleBadges"),
		Artists:    ParseArtistsRuns(nav.OptionalList(header, "straplineTextOne", "runs")),
	}

	subtitle := ParseSongRuns(nav.OptionalList(header, "subtitle", "runs"))
	album.Year = subtitle.Year
	if first := nav.OptionalString(header, "subtitle", "runs", 0, "text"); !strings.ContainsAny(first, "0123456789") {
		album.Type = first
	}

	applySecondSubtitle(&album, nav.OptionalList(header, "secondSubtitle", "runs"))
	album.AudioPlaylistID = audioPlaylistID(response)
	album.Description = nav.OptionalString(header,
		"description", "musicDescriptionShelfRenderer", "description", "runs", 0, "text")

	return &album, nil
}

// The second subtitle is "<n> songs • <duration>", with an optional leading
// views run on some pages.
func applySecondSubtitle(album *types.Album, runs []gjson.Result) {
	for i, run := range runs {
		if i%2 != 0 {
			continue
		}
		text := run.Get("text").String()
		switch {
		case durationRe.MatchString(text):
			album.Duration = text
			album.DurationSeconds = ParseDuration(text)
		case strings.ContainsAny(text, "0123456789") && album.TrackCount == 0:
			album.TrackCount = extractDigits(text)
		}
	}
}

// extractDigits normalizes a locale-formatted count ("1,234 songs") by
// keeping digit characters only.
func extractDigits(s string) int {
	n := 0
	seen := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + int(r-'0')
			seen = true
		case r == ',' || r == '.' || r == ' ':
			continue
		case seen:
			return n
		}
	}

	return n
}

func audioPlaylistID(response gjson.Result) string {
	canonical := nav.OptionalString(response, "microformat", "microformatDataRenderer", "urlCanonical")
	if canonical == "" {
		return ""
	}
	u, err := url.Parse(canonical)
	if nil != err {
		return ""
	}

	return u.Query().Get("list")
}

// AlbumStubFromMTRIR maps an album card in a carousel or grid.
func AlbumStubFromMTRIR(item gjson.Result) *types.AlbumStub {
	title := nav.OptionalString(item, "title", "runs", 0, "text")
	browseID := nav.OptionalString(item, "navigationEndpoint", "browseEndpoint", "browseId")
	if title == "" || browseID == "" {
		return nil
	}

	stub := types.AlbumStub{ //nolint:exhaustruct
		Title:      title,
		BrowseID:   browseID,
		IsExplicit: isExplicit(item, "subtitleBadges"),
		Thumbnails: Thumbnails(item),
		AudioPlaylistID: nav.OptionalString(item,
			"thumbnailOverlay", "musicItemThumbnailOverlayRenderer", "content",
			"musicPlayButtonRenderer", "playNavigationEndpoint", "watchPlaylistEndpoint", "playlistId"),
	}

	// An unlinked, digit-free first run is the release type word, not an
	// artist. The remaining runs classify as usual.
	runs := nav.OptionalList(item, "subtitle", "runs")
	if len(runs) > 0 {
		first := runs[0].Get("text").String()
		if !runs[0].Get("navigationEndpoint").Exists() && !strings.ContainsAny(first, "0123456789") {
			stub.Type = first
			if len(runs) > 2 {
				runs = runs[2:]
			} else {
				runs = nil
			}
		}
	}
	subtitle := ParseSongRuns(runs)
	stub.Year = subtitle.Year
	stub.Artists = subtitle.Artists

	return &stub
}
