package types

// ResultType classifies a search row. It is derived from up to four signals:
// the category title, the request filter, the localized type word in the
// subtitle, and the browse-id prefix.
type ResultType string

const (
	ResultTypeSong     ResultType = "song"
	ResultTypeVideo    ResultType = "video"
	ResultTypeAlbum    ResultType = "album"
	ResultTypeArtist   ResultType = "artist"
	ResultTypePlaylist ResultType = "playlist"
	ResultTypeStation  ResultType = "station"
	ResultTypeProfile  ResultType = "profile"
	ResultTypePodcast  ResultType = "podcast"
	ResultTypeEpisode  ResultType = "episode"
)

// SearchResult is the union row shape of a search page. Fields beyond
// Category/ResultType/Title are populated per type.
type SearchResult struct {
	Category   string     `json:"category,omitempty"`
	ResultType ResultType `json:"resultType"`
	Title      string     `json:"title,omitempty"`

	VideoID   string `json:"videoId,omitempty"`
	VideoType string `json:"videoType,omitempty"`

	BrowseID   string `json:"browseId,omitempty"`
	PlaylistID string `json:"playlistId,omitempty"`

	Artist  string      `json:"artist,omitempty"`
	Artists []ArtistRef `json:"artists,omitempty"`
	Album   *AlbumRef   `json:"album,omitempty"`

	Duration        string `json:"duration,omitempty"`
	DurationSeconds int    `json:"durationSeconds,omitempty"`
	Year            string `json:"year,omitempty"`
	Views           string `json:"views,omitempty"`
	Subscribers     string `json:"subscribers,omitempty"`
	ItemCount       string `json:"itemCount,omitempty"`
	Type            string `json:"type,omitempty"`

	IsExplicit bool        `json:"isExplicit"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`

	FeedbackTokens *FeedbackTokens `json:"feedbackTokens,omitempty"`
}

type SearchSuggestion struct {
	Text        string `json:"text"`
	FromHistory bool   `json:"fromHistory"`
}
