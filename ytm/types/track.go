package types

// LikeStatus is the account's rating of an item. Anything the server sends
// outside the three known values collapses to LikeStatusIndifferent.
type LikeStatus string

const (
	LikeStatusLike        LikeStatus = "LIKE"
	LikeStatusDislike     LikeStatus = "DISLIKE"
	LikeStatusIndifferent LikeStatus = "INDIFFERENT"
)

func ParseLikeStatus(s string) LikeStatus {
	switch v := LikeStatus(s); v {
	case LikeStatusLike, LikeStatusDislike, LikeStatusIndifferent:
		return v
	default:
		return LikeStatusIndifferent
	}
}

// ArtistRef is a lookup key into the catalog, not an embedded artist. ID is
// empty when the row carried the name as plain text.
type ArtistRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type AlbumRef struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// FeedbackTokens are the add/remove pair carried by a library toggle menu
// item. Which one applies depends on the current library state.
type FeedbackTokens struct {
	Add    string `json:"add"`
	Remove string `json:"remove"`
}

type Track struct {
	VideoID         string          `json:"videoId"`
	Title           string          `json:"title"`
	Artists         []ArtistRef     `json:"artists"`
	Album           *AlbumRef       `json:"album,omitempty"`
	Duration        string          `json:"duration,omitempty"`
	DurationSeconds int             `json:"durationSeconds,omitempty"`
	TrackNumber     int             `json:"trackNumber,omitempty"`
	Year            string          `json:"year,omitempty"`
	Views           string          `json:"views,omitempty"`
	LikeStatus      LikeStatus      `json:"likeStatus,omitempty"`
	Thumbnails      []Thumbnail     `json:"thumbnails,omitempty"`
	IsAvailable     bool            `json:"isAvailable"`
	IsExplicit      bool            `json:"isExplicit"`
	VideoType       string          `json:"videoType,omitempty"`
	SetVideoID      string          `json:"setVideoId,omitempty"`
	FeedbackTokens  *FeedbackTokens `json:"feedbackTokens,omitempty"`
	InLibrary       *bool           `json:"inLibrary,omitempty"`

	// Counterpart is the song/video alternate the watch queue offers for
	// this track, when the server provides one.
	Counterpart *Track `json:"counterpart,omitempty"`
}

// PlaylistItem identifies a row of an owned playlist for remove/move
// operations. SetVideoID is mandatory there.
type PlaylistItem struct {
	VideoID    string `json:"videoId"`
	SetVideoID string `json:"setVideoId"`
}
