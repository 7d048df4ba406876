package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// PodcastPage parses a podcast channel page: the responsive header plus the
// episode shelf in the secondary column.
func PodcastPage(response gjson.Result) (*types.Podcast, error) {
	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}
	header := nav.FindValueByKey(contents, "musicResponsiveHeaderRenderer")
	if !header.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", "musicResponsiveHeaderRenderer"}, At: 1}
	}

	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return nil, err
	}
	podcast := types.Podcast{ //nolint:exhaustruct
		Title:      title,
		Thumbnails: Thumbnails(header),
		Description: nav.OptionalString(header,
			"description", "musicDescriptionShelfRenderer", "description", "runs", 0, "text"),
	}
	if authors := ParseArtistsRuns(nav.OptionalList(header, "straplineTextOne", "runs")); len(authors) > 0 {
		podcast.Author = &authors[0]
	}
	_, saved := PinTokens(header)
	if nil != saved {
		podcast.Saved = *saved
	}

	secondary, err := TwoColumnSecondaryContents(response)
	if nil != err {
		return nil, err
	}
	podcast.Episodes = Episodes(nav.OptionalList(secondary, Shelf, "contents"))

	return &podcast, nil
}

// Episodes maps a shelf of multi-row episode renderers.
func Episodes(contents []gjson.Result) []types.Episode {
	out := make([]types.Episode, 0, len(contents))
	for _, item := range contents {
		data := nav.Optional(item, MMRIR)
		if !data.Exists() {
			continue
		}
		if e := parseEpisodeRow(data); nil != e {
			out = append(out, *e)
		}
	}

	return out
}

func parseEpisodeRow(data gjson.Result) *types.Episode {
	title := nav.OptionalString(data, "title", "runs", 0, "text")
	if title == "" {
		return nil
	}

	episode := types.Episode{ //nolint:exhaustruct
		Title:       title,
		VideoID:     nav.OptionalString(data, "onTap", "watchEndpoint", "videoId"),
		BrowseID:    nav.OptionalString(data, "title", "runs", 0, "navigationEndpoint", "browseEndpoint", "browseId"),
		Description: RunsText(nav.Optional(data, "description", "runs")),
		Thumbnails:  Thumbnails(data),
	}

	// The subtitle is the release date for unplayed episodes and a progress
	// phrase ("<n> left") for partially played ones.
	subtitle := nav.OptionalList(data, "subtitle", "runs")
	if len(subtitle) > 0 {
		episode.Date = subtitle[len(subtitle)-1].Get("text").String()
	}

	if pct := nav.Optional(data, "playbackProgress", "musicPlaybackProgressRenderer",
		"playbackProgressPercentage"); pct.Exists() {
		episode.PlaybackPct = int(pct.Int())
	}

	if _, saved := PinTokens(data); nil != saved {
		episode.Saved = *saved
	}

	return &episode
}

// EpisodePage parses a single-episode page.
func EpisodePage(response gjson.Result) (*types.Episode, error) {
	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}
	header := nav.FindValueByKey(contents, "musicResponsiveHeaderRenderer")
	if !header.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", "musicResponsiveHeaderRenderer"}, At: 1}
	}

	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return nil, err
	}
	episode := types.Episode{ //nolint:exhaustruct
		Title:      title,
		Date:       nav.OptionalString(header, "subtitle", "runs", 0, "text"),
		Thumbnails: Thumbnails(header),
	}

	if authors := ParseArtistsRuns(nav.OptionalList(header, "straplineTextOne", "runs")); len(authors) > 0 {
		episode.Podcast = &authors[0]
	}
	_, saved := PinTokens(header)
	if nil != saved {
		episode.Saved = *saved
	}

	secondary, err := TwoColumnSecondaryContents(response)
	if nil == err {
		episode.Description = RunsText(nav.Optional(secondary,
			DescriptionShelf, "description", "runs"))
	}

	return &episode, nil
}

// PodcastStubs maps podcast cards in carousels and channel pages.
func PodcastStubs(items []gjson.Result) []types.PodcastStub {
	out := make([]types.PodcastStub, 0, len(items))
	for _, item := range items {
		renderer := nav.Optional(item, MTRIR)
		if !renderer.Exists() {
			continue
		}
		title := nav.OptionalString(renderer, "title", "runs", 0, "text")
		browseID := nav.OptionalString(renderer, "navigationEndpoint", "browseEndpoint", "browseId")
		if title == "" || browseID == "" {
			continue
		}
		stub := types.PodcastStub{ //nolint:exhaustruct
			Title:      title,
			BrowseID:   browseID,
			Thumbnails: Thumbnails(renderer),
		}
		if authors := ParseArtistsRuns(nav.OptionalList(renderer, "subtitle", "runs")); len(authors) > 0 {
			stub.Author = &authors[0]
		}
		out = append(out, stub)
	}

	return out
}
