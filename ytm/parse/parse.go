// Package parse maps the server's union-typed renderer trees to normalized
// domain records. Each renderer kind the web player emits has a dedicated
// parser; unknown renderer tags are skipped in list contexts and surface as
// path errors in structural ones.
package parse

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// Renderer tags. The presence of the key discriminates the union.
const (
	MRLIR = "musicResponsiveListItemRenderer"
	MTRIR = "musicTwoRowItemRenderer"
	MMRIR = "musicMultiRowListItemRenderer"

	CardShelf        = "musicCardShelfRenderer"
	Shelf            = "musicShelfRenderer"
	CarouselShelf    = "musicCarouselShelfRenderer"
	DescriptionShelf = "musicDescriptionShelfRenderer"
	PlaylistShelf    = "musicPlaylistShelfRenderer"
	Grid             = "gridRenderer"
	ItemSection      = "itemSectionRenderer"

	PanelVideo        = "playlistPanelVideoRenderer"
	PanelVideoWrapper = "playlistPanelVideoWrapperRenderer"
	TwoColumnItem     = "musicTwoColumnItemRenderer"
)

// Browse page types carried by navigation endpoints.
const (
	pageTypeArtist      = "MUSIC_PAGE_TYPE_ARTIST"
	pageTypeAlbum       = "MUSIC_PAGE_TYPE_ALBUM"
	pageTypePlaylist    = "MUSIC_PAGE_TYPE_PLAYLIST"
	pageTypeUserChannel = "MUSIC_PAGE_TYPE_USER_CHANNEL"
	pageTypeUnknown     = "MUSIC_PAGE_TYPE_UNKNOWN"
)

const (
	videoTypeATV            = "MUSIC_VIDEO_TYPE_ATV"
	videoTypePodcastEpisode = "MUSIC_VIDEO_TYPE_PODCAST_EPISODE"

	explicitBadge = "MUSIC_EXPLICIT_BADGE"
)

// SectionListContents walks to the section list of a browse response,
// handling both the single-column and two-column page layouts.
func SectionListContents(response gjson.Result) ([]gjson.Result, error) {
	single := nav.Optional(response,
		"contents", "singleColumnBrowseResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")
	if single.Exists() {
		return single.Array(), nil
	}

	return nav.List(response,
		"contents", "twoColumnBrowseResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer", "contents")
}

// TwoColumnSecondaryContents is where the two-column layout keeps the track
// listing of album and playlist pages.
func TwoColumnSecondaryContents(response gjson.Result) (gjson.Result, error) {
	return nav.Get(response,
		"contents", "twoColumnBrowseResultsRenderer", "secondaryContents",
		"sectionListRenderer", "contents", 0)
}

// Thumbnails extracts the thumbnail set of a renderer, trying the plain,
// cropped-square, and standalone renderer wrappings in order.
func Thumbnails(item gjson.Result) []types.Thumbnail {
	paths := [][]any{
		{"thumbnail", "musicThumbnailRenderer", "thumbnail", "thumbnails"},
		{"thumbnailRenderer", "musicThumbnailRenderer", "thumbnail", "thumbnails"},
		{"thumbnail", "croppedSquareThumbnailRenderer", "thumbnail", "thumbnails"},
		{"thumbnails"},
	}
	for _, p := range paths {
		if list := nav.Optional(item, p...); list.Exists() {
			return thumbnailList(list)
		}
	}

	return nil
}

func thumbnailList(list gjson.Result) []types.Thumbnail {
	arr := list.Array()
	out := make([]types.Thumbnail, 0, len(arr))
	for _, t := range arr {
		out = append(out, types.Thumbnail{
			URL:    t.Get("url").String(),
			Width:  int(t.Get("width").Int()),
			Height: int(t.Get("height").Int()),
		})
	}

	return out
}

// RunsText joins the plain text of a runs list.
func RunsText(runs gjson.Result) string {
	var out string
	for _, run := range runs.Array() {
		out += run.Get("text").String()
	}

	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

func splitFirstSpace(s string) (head, tail string, found bool) {
	return strings.Cut(s, " ")
}

// Playlist browse IDs circulate both with and without the VL prefix; IDs are
// normalized to the bare form.
func stripVLPrefix(id string) string {
	return strings.TrimPrefix(id, "VL")
}

// extractDigitsString keeps the digits of the first digit group of a
// locale-formatted count ("1,235 songs" -> "1235").
func extractDigitsString(s string) string {
	var b strings.Builder
	seen := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seen = true
		case r == ',' || r == '.' || r == ' ':
			continue
		case seen:
			return b.String()
		}
	}

	return b.String()
}

func isExplicit(item gjson.Result, badgeKey string) bool {
	for _, badge := range nav.OptionalList(item, badgeKey) {
		if nav.OptionalString(badge, "musicInlineBadgeRenderer", "icon", "iconType") == explicitBadge {
			return true
		}
	}

	return false
}
