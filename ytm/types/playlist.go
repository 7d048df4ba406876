package types

type Playlist struct {
	ID              string      `json:"id"`
	Privacy         string      `json:"privacy"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	Author          *ArtistRef  `json:"author,omitempty"`
	Year            string      `json:"year,omitempty"`
	Duration        string      `json:"duration,omitempty"`
	DurationSeconds int         `json:"durationSeconds,omitempty"`
	TrackCount      int         `json:"trackCount"`
	Views           string      `json:"views,omitempty"`
	Thumbnails      []Thumbnail `json:"thumbnails,omitempty"`
	Owned           bool        `json:"owned"`
	Tracks          []Track     `json:"tracks"`
	Suggestions     []Track     `json:"suggestions,omitempty"`
	Related         []PlaylistStub `json:"related,omitempty"`
}

// PlaylistStub is the card form of a playlist in carousels and library grids.
type PlaylistStub struct {
	Title       string      `json:"title"`
	PlaylistID  string      `json:"playlistId"`
	Description string      `json:"description,omitempty"`
	Author      *ArtistRef  `json:"author,omitempty"`
	Count       string      `json:"count,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
}

// PlaylistEditResult reports the server-assigned identity of one row added
// by an edit operation.
type PlaylistEditResult struct {
	VideoID    string `json:"videoId"`
	SetVideoID string `json:"setVideoId"`
}

type AddPlaylistItemsResult struct {
	Status        string               `json:"status"`
	PlaylistEdits []PlaylistEditResult `json:"playlistEditResults,omitempty"`
}
