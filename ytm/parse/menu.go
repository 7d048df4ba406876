package parse

import (
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/types"
)

const (
	iconLibraryAdd   = "LIBRARY_ADD"
	iconLibrarySaved = "LIBRARY_SAVED"
	iconKeep         = "KEEP"
	iconKeepOff      = "KEEP_OFF"
)

func MenuItems(item gjson.Result) []gjson.Result {
	return nav.OptionalList(item, "menu", "menuRenderer", "items")
}

// SongMenuTokens reads the library toggle of a row's menu. The icon type
// disambiguates which of the token pair is currently active: LIBRARY_ADD
// means the default endpoint adds, LIBRARY_SAVED means the roles are
// swapped and the item is already in the library.
func SongMenuTokens(item gjson.Result) (tokens *types.FeedbackTokens, inLibrary *bool) {
	for _, toggle := range nav.FindAllByKey(MenuItems(item), "toggleMenuServiceItemRenderer") {
		icon := nav.OptionalString(toggle, "defaultIcon", "iconType")
		defaultToken := nav.OptionalString(toggle, "defaultServiceEndpoint", "feedbackEndpoint", "feedbackToken")
		toggledToken := nav.OptionalString(toggle, "toggledServiceEndpoint", "feedbackEndpoint", "feedbackToken")

		switch icon {
		case iconLibraryAdd:
			saved := false

			return &types.FeedbackTokens{Add: defaultToken, Remove: toggledToken}, &saved
		case iconLibrarySaved:
			saved := true

			return &types.FeedbackTokens{Add: toggledToken, Remove: defaultToken}, &saved
		}
	}

	return nil, nil
}

// PinTokens is the KEEP/KEEP_OFF analogue of SongMenuTokens for the
// listen-again pin toggle.
func PinTokens(item gjson.Result) (tokens *types.FeedbackTokens, pinned *bool) {
	for _, toggle := range nav.FindAllByKey(MenuItems(item), "toggleMenuServiceItemRenderer") {
		icon := nav.OptionalString(toggle, "defaultIcon", "iconType")
		defaultToken := nav.OptionalString(toggle, "defaultServiceEndpoint", "feedbackEndpoint", "feedbackToken")
		toggledToken := nav.OptionalString(toggle, "toggledServiceEndpoint", "feedbackEndpoint", "feedbackToken")

		switch icon {
		case iconKeep:
			isPinned := false

			return &types.FeedbackTokens{Add: defaultToken, Remove: toggledToken}, &isPinned
		case iconKeepOff:
			isPinned := true

			return &types.FeedbackTokens{Add: toggledToken, Remove: defaultToken}, &isPinned
		}
	}

	return nil, nil
}

// LikeStatus reads the like button of a row's menu, collapsing anything
// unknown to indifferent.
func LikeStatus(item gjson.Result) types.LikeStatus {
	status := nav.OptionalString(item,
		"menu", "menuRenderer", "topLevelButtons", 0, "likeButtonRenderer", "likeStatus")

	return types.ParseLikeStatus(status)
}

// MenuVideoType digs the watch endpoint's music video type out of the first
// menu entry that plays the row.
func MenuVideoType(item gjson.Result) string {
	for _, entry := range MenuItems(item) {
		vt := nav.OptionalString(entry,
			"menuNavigationItemRenderer", "navigationEndpoint", "watchEndpoint",
			"watchEndpointMusicSupportedConfigs", "watchEndpointMusicConfig", "musicVideoType")
		if vt != "" {
			return vt
		}
	}

	return ""
}

// MenuEntityID finds the privately-owned entity id of an upload row, carried
// by its delete menu entry.
func MenuEntityID(item gjson.Result) string {
	for _, entry := range MenuItems(item) {
		id := nav.OptionalString(entry,
			"menuNavigationItemRenderer", "navigationEndpoint", "confirmDialogEndpoint",
			"content", "confirmDialogRenderer", "confirmButton", "buttonRenderer",
			"command", "musicDeletePrivatelyOwnedEntityCommand", "entityId")
		if id != "" {
			return id
		}
	}

	return ""
}

// MenuPlaylistSetVideoID recovers the row's set-video-id from its remove
// menu entry when playlistItemData is absent (foreign but editable lists).
func MenuPlaylistSetVideoID(item gjson.Result) string {
	for _, entry := range MenuItems(item) {
		actions := nav.OptionalList(entry,
			"menuServiceItemRenderer", "serviceEndpoint", "playlistEditEndpoint", "actions")
		for _, action := range actions {
			if id := action.Get("setVideoId").String(); id != "" {
				return id
			}
		}
	}

	return ""
}
