package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// UploadTracks maps the rows of an uploads listing. Upload rows always carry
// classified columns (title, artist, album) plus a fixed duration column,
// and identify themselves by the entity id of their delete menu entry.
func UploadTracks(contents []gjson.Result) []types.UploadTrack {
	out := make([]types.UploadTrack, 0, len(contents))
	for _, item := range contents {
		data := nav.Optional(item, MRLIR)
		if !data.Exists() {
			continue
		}
		if t := parseUploadTrackRow(data); nil != t {
			out = append(out, *t)
		}
	}

	return out
}

func parseUploadTrackRow(data gjson.Result) *types.UploadTrack {
	title := FlexColumnText(data, 0, 0)
	if title == "" {
		return nil
	}

	track := types.UploadTrack{ //nolint:exhaustruct
		EntityID:   MenuEntityID(data),
		Title:      title,
		VideoID:    nav.OptionalString(data, "playlistItemData", "videoId"),
		LikeStatus: LikeStatus(data),
		Thumbnails: Thumbnails(data),
	}

	track.Artists = ParseArtistsRuns(nav.OptionalList(FlexColumn(data, 1), "text", "runs"))
	if name := FlexColumnText(data, 2, 0); name != "" {
		track.Album = &types.AlbumRef{
			Name: name,
			ID: nav.OptionalString(FlexColumn(data, 2),
				"text", "runs", 0, "navigationEndpoint", "browseEndpoint", "browseId"),
		}
	}

	if d := FixedColumnText(data, 0); d != "" {
		track.Duration = d
		track.DurationSeconds = ParseDuration(d)
	}

	return &track
}

// UploadAlbums maps the cards of the upload albums grid.
func UploadAlbums(items []gjson.Result) []types.UploadAlbum {
	out := make([]types.UploadAlbum, 0, len(items))
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
		runs := ParseSongRuns(nav.OptionalList(renderer, "subtitle", "runs"))
		out = append(out, types.UploadAlbum{
			EntityID:   MenuEntityID(renderer),
			BrowseID:   browseID,
			Title:      title,
			Artists:    runs.Artists,
			Year:       runs.Year,
			Thumbnails: Thumbnails(renderer),
		})
	}

	return out
}

// UploadArtists maps the rows of the upload artists listing.
func UploadArtists(contents []gjson.Result) []types.UploadArtist {
	out := make([]types.UploadArtist, 0, len(contents))
	for _, item := range contents {
		data := nav.Optional(item, MRLIR)
		if !data.Exists() {
			continue
		}
		name := FlexColumnText(data, 0, 0)
		browseID := nav.OptionalString(data, "navigationEndpoint", "browseEndpoint", "browseId")
		if name == "" || browseID == "" {
			continue
		}
		artist := types.UploadArtist{ //nolint:exhaustruct
			BrowseID:   browseID,
			Artist:     name,
			Thumbnails: Thumbnails(data),
		}
		if second := FlexColumnText(data, 1, 0); containsSongWord(second) {
			artist.Songs = extractDigitsString(second)
		}
		out = append(out, artist)
	}

	return out
}

// UploadAlbumPage parses a single uploaded album page: header plus tracks.
func UploadAlbumPage(response gjson.Result) (*types.UploadAlbum, []types.UploadTrack, error) {
	header := nav.Optional(response, "header", "musicDetailHeaderRenderer")
	if !header.Exists() {
		contents, err := SectionListContents(response)
		if nil != err {
			return nil, nil, err
		}
		header = nav.FindValueByKey(contents, "musicResponsiveHeaderRenderer")
		if !header.Exists() {
			return nil, nil, &nav.PathError{Path: []any{"header", "musicDetailHeaderRenderer"}, At: 1}
		}
	}

	title, err := nav.String(header, "title", "runs", 0, "text")
	if nil != err {
		return nil, nil, err
	}
	album := types.UploadAlbum{ //nolint:exhaustruct
		EntityID:   MenuEntityID(header),
		Title:      title,
		Thumbnails: Thumbnails(header),
	}
	subtitle := nav.OptionalList(header, "subtitle", "runs")
	if len(subtitle) > 2 {
		runs := ParseSongRuns(subtitle[2:])
		album.Artists = runs.Artists
		album.Year = runs.Year
	}

	var tracks []types.UploadTrack
	if shelf := LibraryContents(response, PlaylistShelf); shelf.Exists() {
		tracks = UploadTracks(nav.OptionalList(shelf, "contents"))
	} else if secondary, err := TwoColumnSecondaryContents(response); nil == err {
		tracks = UploadTracks(nav.OptionalList(secondary, PlaylistShelf, "contents"))
	}

	return &album, tracks, nil
}
