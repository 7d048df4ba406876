package parse

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// MixedContents parses one home-page carousel into a titled section of
// heterogeneous cards. Cards that resolve to no known kind are skipped.
func MixedContents(carousel gjson.Result) types.HomeSection {
	section := types.HomeSection{ //nolint:exhaustruct
		Title: nav.OptionalString(carousel,
			"header", "musicCarouselShelfBasicHeaderRenderer", "title", "runs", 0, "text"),
	}

	for _, item := range nav.OptionalList(carousel, "contents") {
		if data := nav.Optional(item, MRLIR); data.Exists() {
			if r := parseSearchRow(data, "", ""); nil != r {
				section.Contents = append(section.Contents, *r)
			}

			continue
		}
		if renderer := nav.Optional(item, MTRIR); renderer.Exists() {
			if r := parseMixedCard(renderer); nil != r {
				section.Contents = append(section.Contents, *r)
			}
		}
	}

	return section
}

// parseMixedCard types a two-row card by its navigation target: a watch
// endpoint is a song or video, a browse endpoint is typed by its page type
// with the browse-id prefix as fallback.
func parseMixedCard(renderer gjson.Result) *types.SearchResult {
	title := nav.OptionalString(renderer, "title", "runs", 0, "text")
	if title == "" {
		return nil
	}

	result := types.SearchResult{ //nolint:exhaustruct
		Title:      title,
		Thumbnails: Thumbnails(renderer),
		IsExplicit: isExplicit(renderer, "subtitleBadges"),
	}
	runs := ParseSongRuns(nav.OptionalList(renderer, "subtitle", "runs"))

	if watch := nav.Optional(renderer, "navigationEndpoint", "watchEndpoint"); watch.Exists() {
		result.VideoID = watch.Get("videoId").String()
		result.PlaylistID = stripVLPrefix(watch.Get("playlistId").String())
		switch vt := nav.OptionalString(watch,
			"watchEndpointMusicSupportedConfigs", "watchEndpointMusicConfig", "musicVideoType"); vt {
		case videoTypeATV:
			result.ResultType = types.ResultTypeSong
		case "":
			result.ResultType = types.ResultTypeVideo
		default:
			result.ResultType = types.ResultTypeVideo
			result.VideoType = vt
		}
		if result.VideoID == "" && strings.HasPrefix(result.PlaylistID, "RDAMPL") {
			result.ResultType = types.ResultTypeStation
		}
		result.Artists = runs.Artists
		result.Views = runs.Views

		return &result
	}

	browse := nav.Optional(renderer, "navigationEndpoint", "browseEndpoint")
	if !browse.Exists() {
		return nil
	}
	browseID := browse.Get("browseId").String()
	pageType := nav.OptionalString(browse,
		"browseEndpointContextSupportedConfigs", "browseEndpointContextMusicConfig", "pageType")

	switch pageType {
	case pageTypeArtist:
		result.ResultType = types.ResultTypeArtist
		result.BrowseID = browseID
		result.Artist = title
		result.Subscribers = runs.Views
	case pageTypeAlbum:
		result.ResultType = types.ResultTypeAlbum
		result.BrowseID = browseID
		result.Artists = runs.Artists
		result.Year = runs.Year
	case pageTypePlaylist:
		result.ResultType = types.ResultTypePlaylist
		result.BrowseID = browseID
		result.PlaylistID = stripVLPrefix(browseID)
		result.Artists = runs.Artists
	default:
		if result.ResultType = typeFromBrowseID(browseID); result.ResultType == "" {
			return nil
		}
		result.BrowseID = browseID
		result.Artists = runs.Artists
	}

	return &result
}

// HomeSections parses the carousels of the home page, skipping sections the
// account has dismissed, which arrive as empty carousels.
func HomeSections(contents []gjson.Result) []types.HomeSection {
	out := make([]types.HomeSection, 0, len(contents))
	for _, section := range contents {
		carousel := nav.Optional(section, CarouselShelf)
		if !carousel.Exists() {
			continue
		}
		if s := MixedContents(carousel); len(s.Contents) > 0 {
			out = append(out, s)
		}
	}

	return out
}

// MoodSections parses the moods-and-genres page into named groups of
// browse-params buttons.
func MoodSections(response gjson.Result) (map[string][]types.MoodCategory, error) {
	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}

	out := make(map[string][]types.MoodCategory, len(contents))
	for _, section := range contents {
		grid := nav.Optional(section, Grid)
		if !grid.Exists() {
			continue
		}
		title := nav.OptionalString(grid, "header", "gridHeaderRenderer", "title", "runs", 0, "text")
		for _, item := range nav.OptionalList(grid, "items") {
			button := nav.Optional(item, "musicNavigationButtonRenderer")
			if !button.Exists() {
				continue
			}
			out[title] = append(out[title], types.MoodCategory{
				Title:  nav.OptionalString(button, "buttonText", "runs", 0, "text"),
				Params: nav.OptionalString(button, "clickCommand", "browseEndpoint", "params"),
			})
		}
	}

	return out, nil
}

// TasteProfileArtists parses the taste-builder page into artist name to
// form-value pairs. Both values are needed to mark an artist selected.
func TasteProfileArtists(response gjson.Result) (map[string]types.TasteProfileArtist, error) {
	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}

	out := make(map[string]types.TasteProfileArtist)
	for _, section := range contents {
		for _, item := range nav.OptionalList(section, "musicTastebuilderShelfRenderer", "contents") {
			renderer := nav.Optional(item, "musicTastebuilderItemRenderer")
			if !renderer.Exists() {
				continue
			}
			name := nav.OptionalString(renderer, "text", "runs", 0, "text")
			if name == "" {
				continue
			}
			out[name] = types.TasteProfileArtist{
				SelectionValue:  nav.OptionalString(renderer, "selectionFormValue"),
				ImpressionValue: nav.OptionalString(renderer, "impressionFormValue"),
			}
		}
	}

	return out, nil
}
