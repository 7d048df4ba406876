package types

type Podcast struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Author      *ArtistRef  `json:"author,omitempty"`
	Saved       bool        `json:"saved"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
	Episodes    []Episode   `json:"episodes"`
}

type Episode struct {
	VideoID     string      `json:"videoId"`
	BrowseID    string      `json:"browseId,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	Date        string      `json:"date,omitempty"`
	Podcast     *ArtistRef  `json:"podcast,omitempty"`
	Saved       bool        `json:"saved"`
	PlaybackPct int         `json:"playbackPercentage,omitempty"`
	Thumbnails  []Thumbnail `json:"thumbnails,omitempty"`
}

type PodcastStub struct {
	Title      string      `json:"title"`
	BrowseID   string      `json:"browseId"`
	Author     *ArtistRef  `json:"author,omitempty"`
	Thumbnails []Thumbnail `json:"thumbnails,omitempty"`
}
