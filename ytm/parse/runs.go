package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

var (
	durationRe = regexp.MustCompile(`^(\d+:)*\d+:\d+$`)
	yearRe     = regexp.MustCompile(`^\d{4}$`)
	viewsRe    = regexp.MustCompile(`^\d[^ ]* \S+$`)
)

// SongRuns is the classified content of a subtitle or byline runs sequence.
type SongRuns struct {
	Artists         []types.ArtistRef
	Album           *types.AlbumRef
	Views           string
	Duration        string
	DurationSeconds int
	Year            string
}

// ParseSongRuns classifies a " • "-separated runs sequence. Odd-indexed runs
// are the separator dots and are skipped; each even-indexed run is
// classified independently by its shape.
func ParseSongRuns(runs []gjson.Result) SongRuns {
	var out SongRuns
	for i, run := range runs {
		if i%2 != 0 {
			continue
		}

		text := run.Get("text").String()
		if browse := nav.Optional(run, "navigationEndpoint", "browseEndpoint"); browse.Exists() {
			browseID := browse.Get("browseId").String()
			if strings.HasPrefix(browseID, "MPRE") || strings.Contains(browseID, "release_detail") {
				out.Album = &types.AlbumRef{Name: text, ID: browseID}
			} else {
				out.Artists = append(out.Artists, types.ArtistRef{Name: text, ID: browseID})
			}

			continue
		}

		switch {
		case durationRe.MatchString(text):
			out.Duration = text
			out.DurationSeconds = ParseDuration(text)
		case yearRe.MatchString(text):
			out.Year = text
		case viewsRe.MatchString(text):
			out.Views, _, _ = strings.Cut(text, " ")
		default:
			// A plain-text run in artist position: an artist the server did
			// not hyperlink.
			out.Artists = append(out.Artists, types.ArtistRef{Name: text, ID: ""})
		}
	}

	return out
}

// ParseDuration converts "h:m:s" or "m:s" to seconds, interpreting the
// colon-separated groups right to left.
func ParseDuration(d string) int {
	parts := strings.Split(d, ":")
	seconds := 0
	multiplier := 1
	for i := len(parts) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if nil != err {
			return 0
		}
		seconds += n * multiplier
		multiplier *= 60
	}

	return seconds
}

// ParseArtistsRuns reads an artists-only runs list (e.g. an artist flex
// column), where every even-indexed run is one artist.
func ParseArtistsRuns(runs []gjson.Result) []types.ArtistRef {
	var out []types.ArtistRef
	for i, run := range runs {
		if i%2 != 0 {
			continue
		}
		out = append(out, types.ArtistRef{
			Name: run.Get("text").String(),
			ID:   nav.OptionalString(run, "navigationEndpoint", "browseEndpoint", "browseId"),
		})
	}

	return out
}
