package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/karlseguin/ccache/v3"

	"github.com/xeptore/ytmusic/ytm/types"
)

var (
	DefaultAlbumTTL  = 1 * time.Hour
	DefaultLyricsTTL = 1 * time.Hour
)

// Cache memoizes album and lyrics lookups keyed by browse id. Watch-queue
// enrichment hits the same albums repeatedly; the TTLs keep staleness
// bounded without a persistent store.
type Cache struct {
	Albums AlbumsCache
	Lyrics LyricsCache
}

func New() *Cache {
	albumsCache := ccache.New(
		ccache.Configure[*types.Album]().
			MaxSize(1000).
			GetsPerPromote(3).
			PercentToPrune(1),
	)

	lyricsCache := ccache.New(
		ccache.Configure[*types.Lyrics]().
			MaxSize(10_000).
			GetsPerPromote(3).
			PercentToPrune(1),
	)

	return &Cache{
		Albums: AlbumsCache{
			c:   albumsCache,
			mux: sync.Mutex{},
		},
		Lyrics: LyricsCache{
			c:   lyricsCache,
			mux: sync.Mutex{},
		},
	}
}

type AlbumsCache struct {
	c   *ccache.Cache[*types.Album]
	mux sync.Mutex
}

func (c *AlbumsCache) Fetch(
	k string,
	ttl time.Duration,
	fetch func() (*types.Album, error),
) (*ccache.Item[*types.Album], error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	v, err := c.c.Fetch(k, ttl, fetch)
	if nil != err {
		return nil, fmt.Errorf("fetch album: %w", err)
	}

	return v, nil
}

type LyricsCache struct {
	c   *ccache.Cache[*types.Lyrics]
	mux sync.Mutex
}

func (c *LyricsCache) Fetch(
	k string,
	ttl time.Duration,
	fetch func() (*types.Lyrics, error),
) (*ccache.Item[*types.Lyrics], error) {
	c.mux.Lock()
	defer c.mux.Unlock()

	v, err := c.c.Fetch(k, ttl, fetch)
	if nil != err {
		return nil, fmt.Errorf("fetch lyrics: %w", err)
	}

	return v, nil
}
