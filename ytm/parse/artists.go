package parse

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// ArtistPage parses an artist channel page: the immersive or visual header
// plus the category shelves beneath it.
func ArtistPage(response gjson.Result) (*types.Artist, error) {
	var artist types.Artist //nolint:exhaustruct

	header := nav.Optional(response, "header", "musicImmersiveHeaderRenderer")
	if !header.Exists() {
		header = nav.Optional(response, "header", "musicVisualHeaderRenderer")
	}
	if header.Exists() {
		name, err := nav.String(header, "title", "runs", 0, "text")
		if nil != err {
			return nil, err
		}
		artist.Name = name
		artist.Description = RunsText(nav.Optional(header, "description", "runs"))
		artist.Thumbnails = Thumbnails(header)

		subscribe := nav.Optional(header, "subscriptionButton", "subscribeButtonRenderer")
		if subscribe.Exists() {
			artist.ChannelID = nav.OptionalString(subscribe, "channelId")
			artist.Subscribed = nav.Optional(subscribe, "subscribed").Bool()
			artist.Subscribers = nav.OptionalString(subscribe, "subscriberCountText", "runs", 0, "text")
		}
	}

	contents, err := SectionListContents(response)
	if nil != err {
		return nil, err
	}
	for _, section := range contents {
		if shelf := nav.Optional(section, Shelf); shelf.Exists() {
			parseArtistSongShelf(&artist, shelf)
			continue
		}
		if carousel := nav.Optional(section, CarouselShelf); carousel.Exists() {
			parseArtistCarousel(&artist, carousel)
		}
		if desc := nav.Optional(section, DescriptionShelf); desc.Exists() && artist.Description == "" {
			artist.Description = RunsText(nav.Optional(desc, "description", "runs"))
			artist.Views = nav.OptionalString(desc, "subheader", "runs", 0, "text")
		}
	}

	return &artist, nil
}

// The songs shelf is the only plain musicShelfRenderer on the page. Its
// title endpoint leads to the full popular-songs playlist.
func parseArtistSongShelf(artist *types.Artist, shelf gjson.Result) {
	artist.Songs = &types.ArtistTrackSection{ //nolint:exhaustruct
		BrowseID: nav.OptionalString(shelf,
			"title", "runs", 0, "navigationEndpoint", "browseEndpoint", "browseId"),
		Results: PlaylistItems(nav.OptionalList(shelf, "contents")),
	}
}

func parseArtistCarousel(artist *types.Artist, carousel gjson.Result) {
	header := nav.Optional(carousel, "header", "musicCarouselShelfBasicHeaderRenderer")
	title := nav.OptionalString(header, "title", "runs", 0, "text")
	moreBrowse := nav.OptionalString(header,
		"title", "runs", 0, "navigationEndpoint", "browseEndpoint", "browseId")
	moreParams := nav.OptionalString(header,
		"title", "runs", 0, "navigationEndpoint", "browseEndpoint", "params")
	items := nav.OptionalList(carousel, "contents")

	switch classifyArtistCarousel(title, items) {
	case artistSectionAlbums:
		artist.Albums = &types.ArtistAlbumSection{BrowseID: moreBrowse, Params: moreParams, Results: albumStubs(items)}
	case artistSectionSingles:
		artist.Singles = &types.ArtistAlbumSection{BrowseID: moreBrowse, Params: moreParams, Results: albumStubs(items)}
	case artistSectionVideos:
		artist.Videos = &types.ArtistVideoSection{BrowseID: moreBrowse, Results: videoStubs(items)}
	case artistSectionPlaylists:
		artist.Playlists = &types.ArtistListSection{BrowseID: moreBrowse, Params: moreParams, Results: playlistStubs(items)}
	case artistSectionRelated:
		artist.Related = &types.ArtistRelated{Results: relatedArtists(items)}
	case artistSectionUnknown:
	}
}

type artistSection int

const (
	artistSectionUnknown artistSection = iota
	artistSectionAlbums
	artistSectionSingles
	artistSectionVideos
	artistSectionPlaylists
	artistSectionRelated
)

// Carousel kinds are recognized by their header title first, falling back to
// the shape of the first card when the page is served in another language.
func classifyArtistCarousel(title string, items []gjson.Result) artistSection {
	switch t := strings.ToLower(title); {
	case strings.Contains(t, "single"):
		return artistSectionSingles
	case strings.Contains(t, "album"):
		return artistSectionAlbums
	case strings.Contains(t, "video"):
		return artistSectionVideos
	case strings.Contains(t, "playlist"), strings.Contains(t, "featured on"):
		return artistSectionPlaylists
	case strings.Contains(t, "fans might also like"), strings.Contains(t, "similar"):
		return artistSectionRelated
	}

	if len(items) == 0 {
		return artistSectionUnknown
	}
	first := nav.Optional(items[0], MTRIR)
	if !first.Exists() {
		return artistSectionUnknown
	}
	if nav.Optional(first, "navigationEndpoint", "watchEndpoint").Exists() {
		return artistSectionVideos
	}
	browseID := nav.OptionalString(first, "navigationEndpoint", "browseEndpoint", "browseId")
	switch {
	case strings.HasPrefix(browseID, "MPRE"):
		return artistSectionAlbums
	case strings.HasPrefix(browseID, "VL"), strings.HasPrefix(browseID, "RD"):
		return artistSectionPlaylists
	case strings.HasPrefix(browseID, "UC"):
		return artistSectionRelated
	}

	return artistSectionUnknown
}

func albumStubs(items []gjson.Result) []types.AlbumStub {
	out := make([]types.AlbumStub, 0, len(items))
	for _, item := range items {
		renderer := nav.Optional(item, MTRIR)
		if !renderer.Exists() {
			continue
		}
		if stub := AlbumStubFromMTRIR(renderer); nil != stub {
			out = append(out, *stub)
		}
	}

	return out
}

func playlistStubs(items []gjson.Result) []types.PlaylistStub {
	out := make([]types.PlaylistStub, 0, len(items))
	for _, item := range items {
		renderer := nav.Optional(item, MTRIR)
		if !renderer.Exists() {
			continue
		}
		if stub := PlaylistStubFromMTRIR(renderer); nil != stub {
			out = append(out, *stub)
		}
	}

	return out
}

// videoStubs maps the video cards of an artist page to track records; the
// cards carry a watch endpoint and view count but no album.
func videoStubs(items []gjson.Result) []types.Track {
	out := make([]types.Track, 0, len(items))
	for _, item := range items {
		renderer := nav.Optional(item, MTRIR)
		if !renderer.Exists() {
			continue
		}
		title := nav.OptionalString(renderer, "title", "runs", 0, "text")
		videoID := nav.OptionalString(renderer, "navigationEndpoint", "watchEndpoint", "videoId")
		if title == "" || videoID == "" {
			continue
		}
		runs := ParseSongRuns(nav.OptionalList(renderer, "subtitle", "runs"))
		out = append(out, types.Track{ //nolint:exhaustruct
			Title:      title,
			VideoID:    videoID,
			Artists:    runs.Artists,
			Views:      runs.Views,
			Thumbnails: Thumbnails(renderer),
		})
	}

	return out
}

func relatedArtists(items []gjson.Result) []types.RelatedArtist {
	out := make([]types.RelatedArtist, 0, len(items))
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
		out = append(out, types.RelatedArtist{
			Title:       title,
			BrowseID:    browseID,
			Subscribers: nav.OptionalString(renderer, "subtitle", "runs", 0, "text"),
			Thumbnails:  Thumbnails(renderer),
		})
	}

	return out
}
