package ytm

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/cache"
	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

// Artist discography sort orders accepted by ArtistAlbums.
const (
	OrderRecency      = "Recency"
	OrderPopularity   = "Popularity"
	OrderAlphabetical = "Alphabetical order"
)

// Home returns the personalized (or anonymous default) home feed, following
// section-list continuations until limit sections are collected.
func (c *Client) Home(ctx context.Context, logger zerolog.Logger, limit int) ([]types.HomeSection, error) {
	body := map[string]any{"browseId": "FEmusic_home"}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	contents, err := parse.SectionListContents(response)
	if nil != err {
		return nil, err
	}
	sections := parse.HomeSections(contents)

	if limit > 0 && len(sections) >= limit {
		return sections, nil
	}

	sectionList := nav.Optional(response,
		"contents", "singleColumnBrowseResultsRenderer", "tabs", 0,
		"tabRenderer", "content", "sectionListRenderer")
	more, err := getContinuations(ctx, sectionList, sectionListContinuation, limit-len(sections),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.HomeSections, "")
	if nil != err {
		return nil, err
	}

	return append(sections, more...), nil
}

// Artist returns an artist page by channel id. Ids scraped from album pages
// carry an MPLA prefix, which the browse endpoint does not accept.
func (c *Client) Artist(ctx context.Context, logger zerolog.Logger, channelID string) (*types.Artist, error) {
	id := strings.TrimPrefix(channelID, "MPLA")
	response, err := c.sendRequest(ctx, logger, "browse", map[string]any{"browseId": id}, "")
	if nil != err {
		return nil, err
	}

	artist, err := parse.ArtistPage(response)
	if nil != err {
		return nil, err
	}
	if artist.ChannelID == "" {
		artist.ChannelID = id
	}

	return artist, nil
}

// ArtistAlbums pages through an artist's full discography. browseID and
// params come from the artist page's albums or singles section. order, when
// set, re-requests the listing through the matching sort option.
func (c *Client) ArtistAlbums(ctx context.Context, logger zerolog.Logger, browseID, params string, limit int, order string) ([]types.AlbumStub, error) {
	// Order values compare case-insensitively; the sort-button labels the
	// server serves are capitalized, callers usually pass lowercase.
	switch {
	case order == "",
		strings.EqualFold(order, OrderRecency),
		strings.EqualFold(order, OrderPopularity),
		strings.EqualFold(order, OrderAlphabetical):
	default:
		return nil, userErrorf("invalid order %q; allowed orders: %s, %s, %s",
			order, OrderRecency, OrderPopularity, OrderAlphabetical)
	}

	body := map[string]any{"browseId": browseID, "params": params}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	var grid gjson.Result
	if order != "" {
		token := sortOptionContinuation(response, order)
		if token == "" {
			return nil, userErrorf("sort order %q is not offered for this listing", order)
		}
		escaped := url.QueryEscape(token)
		reloaded, err := c.sendRequest(ctx, logger, "browse", body,
			"&ctoken="+escaped+"&continuation="+escaped)
		if nil != err {
			return nil, err
		}
		grid = nav.Optional(reloaded,
			"continuationContents", sectionListContinuation, "contents", 0, parse.Grid)
	} else {
		contents, err := parse.SectionListContents(response)
		if nil != err {
			return nil, err
		}
		grid = nav.FindValueByKey(contents, parse.Grid)
	}
	if !grid.Exists() {
		return nil, &nav.PathError{Path: []any{"contents", parse.Grid}, At: 1}
	}

	albums := parse.LibraryAlbums(nav.OptionalList(grid, "items"))
	if limit > 0 && len(albums) >= limit {
		return albums, nil
	}

	more, err := getContinuations(ctx, grid, gridContinuation, limit-len(albums),
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.LibraryAlbums, "")
	if nil != err {
		return nil, err
	}

	return append(albums, more...), nil
}

// sortOptionContinuation digs the reload cursor of the multi-select sort
// option whose label matches order.
func sortOptionContinuation(response gjson.Result, order string) string {
	for _, button := range nav.FindDeep(response, "musicSortFilterButtonRenderer") {
		for _, option := range nav.OptionalList(button, "menu", "musicMultiSelectMenuRenderer", "options") {
			item := nav.Optional(option, "musicMultiSelectMenuItemRenderer")
			title := nav.OptionalString(item, "title", "runs", 0, "text")
			if !strings.EqualFold(title, order) {
				continue
			}

			return nav.OptionalString(item,
				"selectedCommand", "commandExecutorCommand", "commands", -1,
				"browseSectionListReloadEndpoint", "continuation", "reloadContinuationData", "continuation")
		}
	}

	return ""
}

// Album returns a full album page with its tracklist. Results are memoized
// per browse id for an hour; watch-queue enrichment hits the same albums
// repeatedly.
func (c *Client) Album(ctx context.Context, logger zerolog.Logger, browseID string) (*types.Album, error) {
	item, err := c.cache.Albums.Fetch(browseID, cache.DefaultAlbumTTL, func() (*types.Album, error) {
		return c.fetchAlbum(ctx, logger, browseID)
	})
	if nil != err {
		return nil, err
	}

	return item.Value(), nil
}

func (c *Client) fetchAlbum(ctx context.Context, logger zerolog.Logger, browseID string) (*types.Album, error) {
	body := map[string]any{"browseId": browseID}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	album, err := parse.AlbumHeader(response)
	if nil != err {
		return nil, err
	}

	var shelf gjson.Result
	if secondary, serr := parse.TwoColumnSecondaryContents(response); nil == serr {
		shelf = nav.Optional(secondary, parse.Shelf)
	}
	if !shelf.Exists() {
		contents, cerr := parse.SectionListContents(response)
		if nil != cerr {
			return nil, cerr
		}
		shelf = nav.FindValueByKey(contents, parse.Shelf)
	}

	album.Tracks = parse.AlbumTracks(nav.OptionalList(shelf, "contents"))
	more, err := getContinuations(ctx, shelf, musicShelfContinuation, 0,
		func(ctx context.Context, additionalParams string) (gjson.Result, error) {
			return c.sendRequest(ctx, logger, "browse", body, additionalParams)
		}, parse.AlbumTracks, "")
	if nil != err {
		return nil, err
	}
	album.Tracks = append(album.Tracks, more...)

	// Album rows omit the artist column when it matches the header.
	for i := range album.Tracks {
		if len(album.Tracks[i].Artists) == 0 {
			album.Tracks[i].Artists = album.Artists
		}
		if album.Tracks[i].Album == nil {
			album.Tracks[i].Album = &types.AlbumRef{Name: album.Title, ID: browseID}
		}
	}

	album.OtherVersions = otherVersions(response)

	return album, nil
}

func otherVersions(response gjson.Result) []types.AlbumStub {
	var out []types.AlbumStub
	for _, carousel := range nav.FindDeep(response, parse.CarouselShelf) {
		for _, item := range nav.OptionalList(carousel, "contents") {
			renderer := nav.Optional(item, parse.MTRIR)
			if !renderer.Exists() {
				continue
			}
			if stub := parse.AlbumStubFromMTRIR(renderer); nil != stub {
				out = append(out, *stub)
			}
		}
	}

	return out
}

var albumBrowseIDRe = regexp.MustCompile(`"MPRE[^"]*`)

// AlbumBrowseID resolves an audio playlist id (OLAK5uy_...) to the album's
// browse id by scraping the public playlist page.
func (c *Client) AlbumBrowseID(ctx context.Context, logger zerolog.Logger, audioPlaylistID string) (string, error) {
	page, err := c.sendGet(ctx, logger, domain+"/playlist?list="+audioPlaylistID)
	if nil != err {
		return "", fmt.Errorf("fetch album playlist page: %w", err)
	}

	match := albumBrowseIDRe.Find(page)
	if nil == match {
		return "", userErrorf("no album found for audio playlist %q", audioPlaylistID)
	}

	// The page embeds the id inside a JS string, with = escaped as \x3d.
	return strings.Trim(strings.ReplaceAll(string(match), `\x3d`, "="), `"`), nil
}

// Song returns playback metadata for one video id via the player endpoint.
// The streaming data block is passed through undecoded; its URLs expire
// server-side and signed clients need a current signature timestamp.
func (c *Client) Song(ctx context.Context, logger zerolog.Logger, videoID string, signatureTimestamp int) (*types.Song, error) {
	if signatureTimestamp == 0 {
		signatureTimestamp = defaultSignatureTimestamp()
	}

	body := map[string]any{
		"video_id": videoID,
		"playbackContext": map[string]any{
			"contentPlaybackContext": map[string]any{
				"signatureTimestamp": signatureTimestamp,
			},
		},
	}
	response, err := c.sendRequest(ctx, logger, "player", body, "")
	if nil != err {
		return nil, err
	}

	details := nav.Optional(response, "videoDetails")
	song := types.Song{ //nolint:exhaustruct
		VideoID:           nav.OptionalString(details, "videoId"),
		Title:             nav.OptionalString(details, "title"),
		Author:            nav.OptionalString(details, "author"),
		ChannelID:         nav.OptionalString(details, "channelId"),
		LengthSeconds:     int(details.Get("lengthSeconds").Int()),
		ViewCount:         nav.OptionalString(details, "viewCount"),
		PlayabilityStatus: nav.OptionalString(response, "playabilityStatus", "status"),
		StreamingData:     nav.Optional(response, "streamingData").Raw,
	}
	for _, t := range nav.OptionalList(details, "thumbnail", "thumbnails") {
		song.Thumbnails = append(song.Thumbnails, types.Thumbnail{
			URL:    t.Get("url").String(),
			Width:  int(t.Get("width").Int()),
			Height: int(t.Get("height").Int()),
		})
	}

	return &song, nil
}

// defaultSignatureTimestamp approximates the player deployment counter:
// days since the Unix epoch, which trails the real value closely enough for
// metadata requests.
func defaultSignatureTimestamp() int {
	return int(time.Now().UTC().Unix() / (24 * 60 * 60))
}

// Lyrics fetches the lyrics tab of a watch queue. browseID comes from
// WatchPlaylist. Results are memoized for an hour.
func (c *Client) Lyrics(ctx context.Context, logger zerolog.Logger, browseID string) (*types.Lyrics, error) {
	if browseID == "" {
		return nil, &UserError{Msg: "lyrics browse id must not be empty; this song may have no lyrics"}
	}

	item, err := c.cache.Lyrics.Fetch(browseID, cache.DefaultLyricsTTL, func() (*types.Lyrics, error) {
		response, err := c.sendRequest(ctx, logger, "browse", map[string]any{"browseId": browseID}, "")
		if nil != err {
			return nil, err
		}

		shelf, err := nav.Get(response,
			"contents", "sectionListRenderer", "contents", 0, parse.DescriptionShelf)
		if nil != err {
			return nil, err
		}

		return &types.Lyrics{
			Lyrics: parse.RunsText(nav.Optional(shelf, "description", "runs")),
			Source: parse.RunsText(nav.Optional(shelf, "footer", "runs")),
		}, nil
	})
	if nil != err {
		return nil, err
	}

	return item.Value(), nil
}

// MoodCategories returns the moods-and-genres directory grouped by section
// title.
func (c *Client) MoodCategories(ctx context.Context, logger zerolog.Logger) (map[string][]types.MoodCategory, error) {
	response, err := c.sendRequest(ctx, logger, "browse",
		map[string]any{"browseId": "FEmusic_moods_and_genres"}, "")
	if nil != err {
		return nil, err
	}

	return parse.MoodSections(response)
}

// MoodPlaylists lists the playlists of one mood category by its params
// blob.
func (c *Client) MoodPlaylists(ctx context.Context, logger zerolog.Logger, params string) ([]types.PlaylistStub, error) {
	response, err := c.sendRequest(ctx, logger, "browse",
		map[string]any{"browseId": "FEmusic_moods_and_genres_category", "params": params}, "")
	if nil != err {
		return nil, err
	}

	contents, err := parse.SectionListContents(response)
	if nil != err {
		return nil, err
	}

	var out []types.PlaylistStub
	for _, section := range contents {
		if grid := nav.Optional(section, parse.Grid); grid.Exists() {
			out = append(out, parse.LibraryPlaylists(nav.OptionalList(grid, "items"))...)

			continue
		}
		if carousel := nav.Optional(section, parse.CarouselShelf); carousel.Exists() {
			out = append(out, parse.LibraryPlaylists(nav.OptionalList(carousel, "contents"))...)
		}
	}

	return out, nil
}

// Charts returns the charts page for a country (ISO alpha-2, or "ZZ" for
// global). Smaller markets serve three shelves, larger ones add trending;
// the layout is detected by counting shelves.
func (c *Client) Charts(ctx context.Context, logger zerolog.Logger, country string) (*types.Charts, error) {
	body := map[string]any{"browseId": "FEmusic_charts"}
	if country != "" {
		body["formData"] = map[string]any{"selectedValues": []string{country}}
	}

	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	contents, err := parse.SectionListContents(response)
	if nil != err {
		return nil, err
	}

	var shelves []gjson.Result
	for _, section := range contents {
		if carousel := nav.Optional(section, parse.CarouselShelf); carousel.Exists() {
			shelves = append(shelves, carousel)
		}
	}
	if len(shelves) == 0 {
		return nil, &nav.PathError{Path: []any{"contents", parse.CarouselShelf}, At: 1}
	}

	charts := types.Charts{} //nolint:exhaustruct

	// Shelf order is fixed: [songs,] videos, artists [, trending]. The
	// leading songs shelf and the trailing trending shelf both only appear
	// in the four-shelf layout.
	idx := 0
	if len(shelves) >= 4 {
		charts.Songs = chartItems(shelves[idx])
		idx++
	}
	charts.Videos = chartItems(shelves[idx])
	idx++
	if idx < len(shelves) {
		charts.Artists = chartArtists(shelves[idx])
		idx++
	}
	if idx < len(shelves) {
		charts.Trending = chartItems(shelves[idx])
	}

	return &charts, nil
}

func chartItems(carousel gjson.Result) []types.SearchResult {
	return parse.MixedContents(carousel).Contents
}

func chartArtists(carousel gjson.Result) []types.ArtistStub {
	items := nav.OptionalList(carousel, "contents")
	out := make([]types.ArtistStub, 0, len(items))
	for _, item := range items {
		data := nav.Optional(item, parse.MRLIR)
		if !data.Exists() {
			continue
		}
		name := parse.FlexColumnText(data, 0, 0)
		browseID := nav.OptionalString(data, "navigationEndpoint", "browseEndpoint", "browseId")
		if name == "" || browseID == "" {
			continue
		}
		out = append(out, types.ArtistStub{ //nolint:exhaustruct
			Artist:      name,
			BrowseID:    browseID,
			Subscribers: parse.FlexColumnText(data, 1, 0),
			Thumbnails:  parse.Thumbnails(data),
		})
	}

	return out
}

// TasteProfile returns the taste-builder artists keyed by name, with the
// form values SetTasteProfile needs.
func (c *Client) TasteProfile(ctx context.Context, logger zerolog.Logger) (map[string]types.TasteProfileArtist, error) {
	if err := c.checkAuth(); nil != err {
		return nil, err
	}

	response, err := c.sendRequest(ctx, logger, "browse",
		map[string]any{"browseId": "FEmusic_tastebuilder"}, "")
	if nil != err {
		return nil, err
	}

	return parse.TasteProfileArtists(response)
}

// SetTasteProfile marks the named artists as favored. Names must come from
// TasteProfile; unknown names are a caller error.
func (c *Client) SetTasteProfile(ctx context.Context, logger zerolog.Logger, artists []string, profile map[string]types.TasteProfileArtist) error {
	if err := c.checkAuth(); nil != err {
		return err
	}

	impressions := make([]string, 0, len(profile))
	for _, p := range profile {
		impressions = append(impressions, p.ImpressionValue)
	}
	selections := make([]string, 0, len(artists))
	for _, name := range artists {
		p, ok := profile[name]
		if !ok {
			return userErrorf("unknown artist %q; use names returned by TasteProfile", name)
		}
		selections = append(selections, p.SelectionValue)
	}

	_, err := c.sendRequest(ctx, logger, "browse", map[string]any{
		"browseId": "FEmusic_home",
		"formData": map[string]any{
			"impressionValues": impressions,
			"selectedValues":   selections,
		},
	}, "")

	return err
}
