package types

type Album struct {
	Title           string      `json:"title"`
	Type            string      `json:"type"`
	Artists         []ArtistRef `json:"artists"`
	Description     string      `json:"description,omitempty"`
	TrackCount      int         `json:"trackCount,omitempty"`
	Duration        string      `json:"duration,omitempty"`
	DurationSeconds int         `json:"durationSeconds,omitempty"`
	Year            string      `json:"year,omitempty"`
	IsExplicit      bool        `json:"isExplicit"`
	Thumbnails      []Thumbnail `json:"thumbnails,omitempty"`
	AudioPlaylistID string      `json:"audioPlaylistId,omitempty"`
	LikeStatus      LikeStatus  `json:"likeStatus,omitempty"`
	Tracks          []Track     `json:"tracks"`
	OtherVersions   []AlbumStub `json:"otherVersions,omitempty"`
}

// AlbumStub is the card form of an album as it appears in carousels, grids
// and artist discographies.
type AlbumStub struct {
	Title           string      `json:"title"`
	Type            string      `json:"type,omitempty"`
	Artists         []ArtistRef `json:"artists,omitempty"`
	Year            string      `json:"year,omitempty"`
	BrowseID        string      `json:"browseId"`
	AudioPlaylistID string      `json:"audioPlaylistId,omitempty"`
	IsExplicit      bool        `json:"isExplicit"`
	Thumbnails      []Thumbnail `json:"thumbnails,omitempty"`
}
