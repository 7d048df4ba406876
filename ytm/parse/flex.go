package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
)

// FlexColumn returns the index-th flex column renderer of a list row, or a
// non-existent result when the column is absent or empty.
func FlexColumn(item gjson.Result, index int) gjson.Result {
	cols := nav.OptionalList(item, "flexColumns")
	if index < 0 || index >= len(cols) {
		return gjson.Result{}
	}

	col := cols[index].Get("musicResponsiveListItemFlexColumnRenderer")
	if !nav.Optional(col, "text", "runs").Exists() {
		return gjson.Result{}
	}

	return col
}

// FlexColumnText is the plain text of one run of a flex column.
func FlexColumnText(item gjson.Result, index, runIndex int) string {
	col := FlexColumn(item, index)
	if !col.Exists() {
		return ""
	}

	return nav.OptionalString(col, "text", "runs", runIndex, "text")
}

func FixedColumnText(item gjson.Result, index int) string {
	cols := nav.OptionalList(item, "fixedColumns")
	if index < 0 || index >= len(cols) {
		return ""
	}

	col := cols[index].Get("musicResponsiveListItemFixedColumnRenderer")
	if text := nav.OptionalString(col, "text", "simpleText"); text != "" {
		return text
	}

	return nav.OptionalString(col, "text", "runs", 0, "text")
}

// columnRoles maps logical row attributes to flex column indices. -1 means
// the attribute has no column in this row.
type columnRoles struct {
	title  int
	artist int
	album  int
}

// classifyColumns identifies which flex column carries which attribute by
// inspecting each column's first run's navigation endpoint. Rows without
// hyperlinks fall back to the position-fixed layout handled by the caller.
func classifyColumns(item gjson.Result) columnRoles {
	roles := columnRoles{title: -1, artist: -1, album: -1}

	var (
		channelIndices   []int
		unclassifiedText = -1
	)

	cols := nav.OptionalList(item, "flexColumns")
	for i := range cols {
		col := FlexColumn(item, i)
		if !col.Exists() {
			continue
		}
		firstRun := nav.Optional(col, "text", "runs", 0)

		if nav.Optional(firstRun, "navigationEndpoint", "watchEndpoint").Exists() {
			if roles.title == -1 {
				roles.title = i
			}

			continue
		}

		browse := nav.Optional(firstRun, "navigationEndpoint", "browseEndpoint")
		if browse.Exists() {
			pageType := nav.OptionalString(browse,
				"browseEndpointContextSupportedConfigs", "browseEndpointContextMusicConfig", "pageType")
			switch pageType {
			case pageTypeArtist, pageTypeUnknown:
				if roles.artist == -1 {
					roles.artist = i
				}
			case pageTypeAlbum:
				if roles.album == -1 {
					roles.album = i
				}
			case pageTypeUserChannel:
				channelIndices = append(channelIndices, i)
			}

			continue
		}

		// Plain text only. Remember it: if no linked artist column shows up
		// this is the artist column (the server does not hyperlink artists
		// without a channel).
		if i > 0 && unclassifiedText == -1 && firstRun.Exists() {
			unclassifiedText = i
		}
	}

	if roles.artist == -1 && len(channelIndices) > 0 {
		roles.artist = channelIndices[len(channelIndices)-1]
	}
	if roles.artist == -1 {
		roles.artist = unclassifiedText
	}

	return roles
}
