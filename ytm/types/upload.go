package types

// Uploaded entities live in the user's private locker and are addressed by
// entity ids rather than catalog browse ids.
type UploadTrack struct {
	EntityID        string      `json:"entityId"`
	VideoID         string      `json:"videoId"`
	Title           string      `json:"title"`
	Artists         []ArtistRef `json:"artists,omitempty"`
	Album           *AlbumRef   `json:"album,omitempty"`
	Duration        string      `json:"duration,omitempty"`
	DurationSeconds int         `json:"durationSeconds,omitempty"`
	LikeStatus      LikeStatus  `json:"likeStatus,omitempty"`
	Thumbnails      []Thumbnail `json:"thumbnails,omitempty"`
}

type UploadAlbum struct {
	EntityID   string      `json:"entityId"`
	BrowseID   string      `json:"browseId"`
	Title      string      `json:"title"`
	Artists    []ArtistRef `json:"artists,omitempty"`
	Year       string      `json:"year,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}

type UploadArtist struct {
	BrowseID   string      `json:"browseId"`
	Artist     string      `json:"artist"`
	Songs      string      `json:"songs,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}
