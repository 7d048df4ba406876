package types

// WatchPlaylist is the queue served by the next endpoint: the tracks plus
// browse ids for the lyrics and related tabs when the server offers them.
type WatchPlaylist struct {
	Tracks     []Track `json:"tracks"`
	PlaylistID string  `json:"playlistId,omitempty"`
	Lyrics     string  `json:"lyrics,omitempty"`
	Related    string  `json:"related,omitempty"`
}

type Lyrics struct {
	Lyrics string `json:"lyrics"`
	Source string `json:"source,omitempty"`
}

// Song is the player response for a single video id: metadata plus the raw
// streaming data block, which is passed through undecoded.
type Song struct {
	VideoID         string      `json:"videoId"`
	Title           string      `json:"title"`
	Author          string      `json:"author"`
	ChannelID       string      `json:"channelId"`
	LengthSeconds   int         `json:"lengthSeconds"`
	ViewCount       string      `json:"viewCount,omitempty"`
	Thumbnails      []Thumbnail `json:"thumbnails,omitempty"`
	PlayabilityStatus string    `json:"playabilityStatus"`
	StreamingData   string      `json:"streamingData,omitempty"`
}

type HomeSection struct {
	Title    string `json:"title"`
	Contents []SearchResult `json:"contents"`
}

// Charts is the charts page for one country. Most countries serve three
// shelves (songs, videos, artists); a few larger markets add trending.
type Charts struct {
	Songs    []SearchResult `json:"songs,omitempty"`
	Videos   []SearchResult `json:"videos,omitempty"`
	Artists  []ArtistStub   `json:"artists,omitempty"`
	Trending []SearchResult `json:"trending,omitempty"`
}

type MoodCategory struct {
	Title  string `json:"title"`
	Params string `json:"params"`
}

type TasteProfileArtist struct {
	SelectionValue string `json:"selectionValue"`
	ImpressionValue string `json:"impressionValue"`
}
