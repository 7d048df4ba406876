package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

// LibraryContents finds the listing renderer of a library page, which the
// server serves either directly in the section list or behind an item
// section wrapper. key is the renderer tag of the wanted listing (Grid,
// Shelf or PlaylistShelf).
func LibraryContents(response gjson.Result, key string) gjson.Result {
	contents, err := SectionListContents(response)
	if nil != err {
		return gjson.Result{} //nolint:exhaustruct
	}
	for _, section := range contents {
		if direct := nav.Optional(section, key); direct.Exists() {
			return direct
		}
		if wrapped := nav.Optional(section, ItemSection, "contents", 0, key); wrapped.Exists() {
			return wrapped
		}
	}

	return gjson.Result{} //nolint:exhaustruct
}

// LibraryAlbums maps the cards of a library albums grid.
func LibraryAlbums(items []gjson.Result) []types.AlbumStub {
	return albumStubs(items)
}

// LibraryPlaylists maps the cards of the library playlists grid, skipping
// the synthetic "New playlist" card, which has no browse endpoint.
func LibraryPlaylists(items []gjson.Result) []types.PlaylistStub {
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

// LibraryArtists maps the rows of the library artists and subscriptions
// shelves. The second column is "<n> songs" on the artists page and a
// subscriber count on the subscriptions page.
func LibraryArtists(items []gjson.Result) []types.ArtistStub {
	out := make([]types.ArtistStub, 0, len(items))
	for _, item := range items {
		data := nav.Optional(item, MRLIR)
		if !data.Exists() {
			continue
		}
		name := FlexColumnText(data, 0, 0)
		browseID := nav.OptionalString(data, "navigationEndpoint", "browseEndpoint", "browseId")
		if name == "" || browseID == "" {
			continue
		}
		stub := types.ArtistStub{ //nolint:exhaustruct
			Artist:     name,
			BrowseID:   browseID,
			Thumbnails: Thumbnails(data),
		}
		if second := FlexColumnText(data, 1, 0); containsSongWord(second) {
			stub.Songs = extractDigitsString(second)
		} else if second != "" {
			stub.Subscribers, _, _ = splitFirstSpace(second)
		}
		out = append(out, stub)
	}

	return out
}
