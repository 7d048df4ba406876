package types

type Artist struct {
	Name        string      `json:"name"`
	ChannelID   string      `json:"channelId"`
	Subscribers string      `json:"subscribers,omitempty"`
	Subscribed  bool        `json:"subscribed"`
	Description string      `json:"description,omitempty"`
	Views       string      `json:"views,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`

	Songs     *ArtistTrackSection `json:"songs,omitempty"`
	Albums    *ArtistAlbumSection `json:"albums,omitempty"`
	Singles   *ArtistAlbumSection `json:"singles,omitempty"`
	Videos    *ArtistVideoSection `json:"videos,omitempty"`
	Playlists *ArtistListSection  `json:"playlists,omitempty"`
	Related   *ArtistRelated      `json:"related,omitempty"`
}

// Each category block carries the browse id and params needed to page into
// the full listing, when the artist has more than the shelf shows.
type ArtistTrackSection struct {
	BrowseID string  `json:"browseId,omitempty"`
	Results  []Track `json:"results"`
}

type ArtistAlbumSection struct {
	BrowseID string      `json:"browseId,omitempty"`
	Params   string      `json:"params,omitempty"`
	Results  []AlbumStub `json:"results"`
}

type ArtistVideoSection struct {
	BrowseID string  `json:"browseId,omitempty"`
	Results  []Track `json:"results"`
}

type ArtistListSection struct {
	BrowseID string         `json:"browseId,omitempty"`
	Params   string         `json:"params,omitempty"`
	Results  []PlaylistStub `json:"results"`
}

type ArtistRelated struct {
	Results []RelatedArtist `json:"results"`
}

// ArtistStub is an artist row in library or search listings.
type ArtistStub struct {
	Artist      string      `json:"artist"`
	BrowseID    string      `json:"browseId"`
	Subscribers string      `json:"subscribers,omitempty"`
	Songs       string      `json:"songs,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
}

type RelatedArtist struct {
	Title       string      `json:"title"`
	BrowseID    string      `json:"browseId"`
	Subscribers string      `json:"subscribers,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
}
