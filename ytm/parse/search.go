package parse

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// Localized type words cannot be relied on, so the subtitle word is only one
// of four typing signals and the weakest of them.
var typeWords = map[string]types.ResultType{
	"song":     types.ResultTypeSong,
	"video":    types.ResultTypeVideo,
	"album":    types.ResultTypeAlbum,
	"single":   types.ResultTypeAlbum,
	"ep":       types.ResultTypeAlbum,
	"artist":   types.ResultTypeArtist,
	"playlist": types.ResultTypePlaylist,
	"station":  types.ResultTypeStation,
	"profile":  types.ResultTypeProfile,
	"podcast":  types.ResultTypePodcast,
	"episode":  types.ResultTypeEpisode,
}

// SearchResults parses one shelf of a search page. defaultType is the type
// implied by the request filter, empty for unfiltered searches.
func SearchResults(items []gjson.Result, category string, defaultType types.ResultType) []types.SearchResult {
	out := make([]types.SearchResult, 0, len(items))
	for _, item := range items {
		data := nav.Optional(item, MRLIR)
		if !data.Exists() {
			continue
		}
		if r := parseSearchRow(data, category, defaultType); nil != r {
			out = append(out, *r)
		}
	}

	return out
}

// TopResult parses the card shelf that leads an unfiltered search page.
func TopResult(card gjson.Result) *types.SearchResult {
	result := types.SearchResult{ //nolint:exhaustruct
		Category:   "Top result",
		Title:      nav.OptionalString(card, "title", "runs", 0, "text"),
		Thumbnails: Thumbnails(card),
	}

	subtitle := nav.OptionalList(card, "subtitle", "runs")
	if len(subtitle) > 0 {
		result.ResultType = typeWords[strings.ToLower(subtitle[0].Get("text").String())]
	}

	browseID := nav.OptionalString(card, "title", "runs", 0,
		"navigationEndpoint", "browseEndpoint", "browseId")
	if result.ResultType == "" {
		result.ResultType = typeFromBrowseID(browseID)
	}

	switch result.ResultType {
	case types.ResultTypeArtist, types.ResultTypeAlbum, types.ResultTypePlaylist, types.ResultTypePodcast:
		result.BrowseID = browseID
		if result.ResultType == types.ResultTypeArtist {
			result.Artist = result.Title
		}
		if len(subtitle) > 2 {
			runs := ParseSongRuns(subtitle[2:])
			result.Artists = runs.Artists
			result.Year = runs.Year
		}
	case types.ResultTypeSong, types.ResultTypeVideo, types.ResultTypeEpisode:
		result.VideoID = nav.OptionalString(card, "title", "runs", 0,
			"navigationEndpoint", "watchEndpoint", "videoId")
		result.VideoType = MenuVideoType(card)
		if len(subtitle) > 2 {
			runs := ParseSongRuns(subtitle[2:])
			result.Artists = runs.Artists
			result.Album = runs.Album
			result.Duration = runs.Duration
			result.DurationSeconds = runs.DurationSeconds
			result.Views = runs.Views
		}
	case types.ResultTypeStation, types.ResultTypeProfile:
		result.BrowseID = browseID
	}

	if result.ResultType == "" && result.Title == "" {
		return nil
	}

	return &result
}

func parseSearchRow(data gjson.Result, category string, defaultType types.ResultType) *types.SearchResult {
	result := types.SearchResult{ //nolint:exhaustruct
		Category:   category,
		ResultType: defaultType,
		Thumbnails: Thumbnails(data),
		IsExplicit: isExplicit(data, "badges"),
	}

	browseID := nav.OptionalString(data, "navigationEndpoint", "browseEndpoint", "browseId")
	videoType := rowVideoType(data)

	// Typing signals, strongest first: an explicit video type on the play
	// endpoint, then the request filter, then the subtitle word, then the
	// browse-id prefix.
	subtitle := nav.OptionalList(FlexColumn(data, 1), "text", "runs")
	switch {
	case videoType == videoTypeATV:
		result.ResultType = types.ResultTypeSong
	case videoType == videoTypePodcastEpisode:
		result.ResultType = types.ResultTypeEpisode
	case videoType != "":
		result.ResultType = types.ResultTypeVideo
	}
	if result.ResultType == "" && len(subtitle) > 0 {
		result.ResultType = typeWords[strings.ToLower(subtitle[0].Get("text").String())]
	}
	if result.ResultType == "" {
		result.ResultType = typeFromBrowseID(browseID)
	}
	if result.ResultType == "" {
		return nil
	}

	result.Title = FlexColumnText(data, 0, 0)
	result.VideoType = videoType

	// The leading type word run and its separator are metadata, not content.
	runsStart := 0
	if defaultType == "" && len(subtitle) > 2 {
		if _, isTypeWord := typeWords[strings.ToLower(subtitle[0].Get("text").String())]; isTypeWord {
			runsStart = 2
		}
	}

	switch result.ResultType {
	case types.ResultTypeArtist:
		result.Artist = result.Title
		result.BrowseID = browseID
		for i := runsStart; i < len(subtitle); i++ {
			text := subtitle[i].Get("text").String()
			if containsFold(text, "subscriber") {
				result.Subscribers, _, _ = splitFirstSpace(text)
			}
		}
	case types.ResultTypeAlbum:
		result.BrowseID = browseID
		runs := ParseSongRuns(subtitle[runsStart:])
		result.Artists = runs.Artists
		result.Year = runs.Year
		result.PlaylistID = nav.OptionalString(data,
			"overlay", "musicItemThumbnailOverlayRenderer", "content",
			"musicPlayButtonRenderer", "playNavigationEndpoint", "watchPlaylistEndpoint", "playlistId")
	case types.ResultTypePlaylist, types.ResultTypeStation:
		result.BrowseID = browseID
		result.PlaylistID = stripVLPrefix(browseID)
		runs := ParseSongRuns(subtitle[runsStart:])
		if len(runs.Artists) > 0 {
			result.Artist = runs.Artists[0].Name
		}
		for i := runsStart; i < len(subtitle); i++ {
			if text := subtitle[i].Get("text").String(); containsSongWord(text) {
				result.ItemCount = extractDigitsString(text)
			}
		}
	case types.ResultTypeProfile:
		result.BrowseID = browseID
	case types.ResultTypePodcast:
		result.BrowseID = browseID
		runs := ParseSongRuns(subtitle[runsStart:])
		result.Artists = runs.Artists
	case types.ResultTypeSong, types.ResultTypeVideo, types.ResultTypeEpisode:
		result.VideoID = nav.OptionalString(data, "playlistItemData", "videoId")
		if result.VideoID == "" {
			result.VideoID = nav.OptionalString(FlexColumn(data, 0),
				"text", "runs", 0, "navigationEndpoint", "watchEndpoint", "videoId")
		}
		runs := ParseSongRuns(subtitle[runsStart:])
		result.Artists = runs.Artists
		result.Album = runs.Album
		result.Duration = runs.Duration
		result.DurationSeconds = runs.DurationSeconds
		result.Views = runs.Views
		result.Year = runs.Year
		if tokens, _ := SongMenuTokens(data); nil != tokens {
			result.FeedbackTokens = tokens
		}
	}

	return &result
}

func rowVideoType(data gjson.Result) string {
	vt := nav.OptionalString(data,
		"overlay", "musicItemThumbnailOverlayRenderer", "content",
		"musicPlayButtonRenderer", "playNavigationEndpoint", "watchEndpoint",
		"watchEndpointMusicSupportedConfigs", "watchEndpointMusicConfig", "musicVideoType")
	if vt == "" {
		vt = MenuVideoType(data)
	}

	return vt
}

func typeFromBrowseID(browseID string) types.ResultType {
	switch {
	case strings.HasPrefix(browseID, "MPLA"), strings.HasPrefix(browseID, "UC"):
		return types.ResultTypeArtist
	case strings.HasPrefix(browseID, "MPRE"):
		return types.ResultTypeAlbum
	case strings.HasPrefix(browseID, "MPSP"):
		return types.ResultTypePodcast
	case strings.HasPrefix(browseID, "MPED"):
		return types.ResultTypeEpisode
	case strings.HasPrefix(browseID, "VM"), strings.HasPrefix(browseID, "VL"),
		strings.HasPrefix(browseID, "RD"):
		return types.ResultTypePlaylist
	}

	return ""
}

// SearchSuggestions parses the suggestion list of the typeahead endpoint.
// History entries carry a search-suggestion-history icon and a remove
// endpoint; plain suggestions carry neither.
func SearchSuggestions(response gjson.Result) []types.SearchSuggestion {
	var out []types.SearchSuggestion
	for _, section := range nav.OptionalList(response, "contents") {
		for _, item := range nav.OptionalList(section, "searchSuggestionsSectionRenderer", "contents") {
			if s := nav.Optional(item, "searchSuggestionRenderer"); s.Exists() {
				out = append(out, types.SearchSuggestion{
					Text:        RunsText(nav.Optional(s, "suggestion", "runs")),
					FromHistory: false,
				})

				continue
			}
			if s := nav.Optional(item, "historySuggestionRenderer"); s.Exists() {
				out = append(out, types.SearchSuggestion{
					Text:        RunsText(nav.Optional(s, "suggestion", "runs")),
					FromHistory: true,
				})
			}
		}
	}

	return out
}
