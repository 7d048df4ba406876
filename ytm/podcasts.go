package ytm

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/xeptore/ytmusic/nav"
	"github.com/xeptore/ytmusic/ytm/parse"
	"github.com/xeptore/ytmusic/ytm/types"
)

// Channel returns a podcast creator's channel page: their podcasts and the
// latest episodes shelf.
func (c *Client) Channel(ctx context.Context, logger zerolog.Logger, channelID string) ([]types.PodcastStub, []types.Episode, error) {
	response, err := c.sendRequest(ctx, logger, "browse", map[string]any{"browseId": channelID}, "")
	if nil != err {
		return nil, nil, err
	}

	contents, err := parse.SectionListContents(response)
	if nil != err {
		return nil, nil, err
	}

	var (
		podcasts []types.PodcastStub
		episodes []types.Episode
	)
	for _, section := range contents {
		carousel := nav.Optional(section, parse.CarouselShelf)
		if !carousel.Exists() {
			continue
		}
		items := nav.OptionalList(carousel, "contents")
		if len(items) == 0 {
			continue
		}
		if nav.Optional(items[0], parse.MMRIR).Exists() {
			episodes = append(episodes, parse.Episodes(items)...)

			continue
		}
		podcasts = append(podcasts, parse.PodcastStubs(items)...)
	}

	return podcasts, episodes, nil
}

// Podcast returns a podcast page with its episodes, following continuations
// until limit episodes are collected.
func (c *Client) Podcast(ctx context.Context, logger zerolog.Logger, browseID string, limit int) (*types.Podcast, error) {
	if !strings.HasPrefix(browseID, "MPSP") {
		return nil, userErrorf("invalid podcast browse id %q; expected an MPSP-prefixed id", browseID)
	}

	body := map[string]any{"browseId": browseID}
	response, err := c.sendRequest(ctx, logger, "browse", body, "")
	if nil != err {
		return nil, err
	}

	podcast, err := parse.PodcastPage(response)
	if nil != err {
		return nil, err
	}

	secondary, err := parse.TwoColumnSecondaryContents(response)
	if nil == err && (limit <= 0 || len(podcast.Episodes) < limit) {
		shelf := nav.Optional(secondary, parse.Shelf)
		more, cerr := getContinuations(ctx, shelf, musicShelfContinuation, limit-len(podcast.Episodes),
			func(ctx context.Context, additionalParams string) (gjson.Result, error) {
				return c.sendRequest(ctx, logger, "browse", body, additionalParams)
			}, parse.Episodes, "")
		if nil != cerr {
			return nil, cerr
		}
		podcast.Episodes = append(podcast.Episodes, more...)
	}

	return podcast, nil
}

// Episode returns a single podcast episode page.
func (c *Client) Episode(ctx context.Context, logger zerolog.Logger, browseID string) (*types.Episode, error) {
	if !strings.HasPrefix(browseID, "MPED") {
		return nil, userErrorf("invalid episode browse id %q; expected an MPED-prefixed id", browseID)
	}

	response, err := c.sendRequest(ctx, logger, "browse", map[string]any{"browseId": browseID}, "")
	if nil != err {
		return nil, err
	}

	episode, err := parse.EpisodePage(response)
	if nil != err {
		return nil, err
	}
	if episode.BrowseID == "" {
		episode.BrowseID = browseID
	}

	return episode, nil
}
