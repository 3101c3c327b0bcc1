package feedcache

import (
	"context"
	"sync"
	"time"

	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
	"github.com/learnaura/feedgate/shared/logger"
)

// Lister defines the minimal Remote Feed Store operation the cache needs.
type Lister interface {
	ListFeedPage(ctx context.Context, cred domain.Credential, page, limit int) (api.FeedPageResponse, error)
}

type entry struct {
	page     domain.FeedPage
	loadedAt time.Time
}

// Cache holds the last-known feed page snapshots, keyed by page number.
// It exclusively owns the snapshots: callers request loads and
// invalidations, they never write entries directly. Snapshots are replaced
// wholesale on every successful fetch.
type Cache struct {
	store    Lister
	pageSize int
	maxPages int

	mu    sync.Mutex
	pages map[int]*entry
	// Latest initiated fetch generation per page key. A fetch result is
	// applied only if no newer fetch (or invalidation) for the same key
	// was initiated while it was in flight: last write wins, older
	// in-flight results are discarded on arrival.
	generation map[int]uint64
}

func New(store Lister, pageSize, maxPages int) *Cache {
	return &Cache{
		store:      store,
		pageSize:   pageSize,
		maxPages:   maxPages,
		pages:      make(map[int]*entry),
		generation: make(map[int]uint64),
	}
}

func (c *Cache) PageSize() int {
	return c.pageSize
}

// Load fetches the given page from the Remote Feed Store and caches the
// snapshot under the page key.
//
// On fetch failure the last good snapshot for the key, if any, is returned
// alongside the error (stale-but-available); with no snapshot the zero page
// is returned and the error surfaces as-is. A result superseded by a newer
// fetch for the same key is discarded and the caller gets the snapshot the
// newer fetch produced.
func (c *Cache) Load(ctx context.Context, cred domain.Credential, page int) (domain.FeedPage, error) {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	c.generation[page]++
	gen := c.generation[page]
	c.mu.Unlock()

	resp, err := c.store.ListFeedPage(ctx, cred, page, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation[page] {
		// A newer fetch for this key was initiated while we were in
		// flight; our result loses regardless of success.
		loadsTotal.WithLabelValues(outcomeDiscarded).Inc()
		if e, ok := c.pages[page]; ok {
			return e.page, nil
		}
		if err != nil {
			return domain.FeedPage{}, err
		}
		return snapshotFromResponse(resp, page, c.pageSize), nil
	}

	if err != nil {
		if e, ok := c.pages[page]; ok {
			loadsTotal.WithLabelValues(outcomeStale).Inc()
			logger.Log.Warn("feed page fetch failed, serving stale snapshot",
				"component", "feed_cache", "page", page, "error", err)
			return e.page, err
		}
		loadsTotal.WithLabelValues(outcomeError).Inc()
		return domain.FeedPage{}, err
	}

	snapshot := snapshotFromResponse(resp, page, c.pageSize)
	c.pages[page] = &entry{page: snapshot, loadedAt: time.Now()}
	c.evictLocked()
	loadsTotal.WithLabelValues(outcomeFresh).Inc()
	return snapshot, nil
}

// Snapshot returns the last good snapshot for a page without touching the
// network.
func (c *Cache) Snapshot(page int) (domain.FeedPage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.pages[page]; ok {
		return e.page, true
	}
	return domain.FeedPage{}, false
}

// Invalidate drops the snapshot for a page. In-flight fetches for the key
// initiated before the invalidation are discarded on arrival, so a
// mutation-triggered refetch can never be overwritten by an older result.
func (c *Cache) Invalidate(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(page)
}

// InvalidateAll drops every snapshot.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for page := range c.pages {
		c.invalidateLocked(page)
	}
}

func (c *Cache) invalidateLocked(page int) {
	if _, ok := c.pages[page]; !ok {
		return
	}
	delete(c.pages, page)
	c.generation[page]++
	invalidationsTotal.Inc()
}

// FindDiscussion scans the cached snapshots for a discussion.
func (c *Cache) FindDiscussion(id domain.DiscussionId) (domain.Discussion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.pages {
		if d, ok := e.page.FindDiscussion(id); ok {
			return d, true
		}
	}
	return domain.Discussion{}, false
}

// FindReply scans the cached snapshots for a surfaced reply and its parent.
func (c *Cache) FindReply(id domain.ReplyId) (domain.Reply, domain.Discussion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.pages {
		if r, d, ok := e.page.FindReply(id); ok {
			return r, d, true
		}
	}
	return domain.Reply{}, domain.Discussion{}, false
}

// evictLocked keeps at most maxPages snapshots, dropping the least recently
// loaded key first. The key just loaded is always fresh, so it never goes.
func (c *Cache) evictLocked() {
	if c.maxPages <= 0 {
		return
	}
	for len(c.pages) > c.maxPages {
		oldest := 0
		var oldestAt time.Time
		for page, e := range c.pages {
			if oldest == 0 || e.loadedAt.Before(oldestAt) {
				oldest = page
				oldestAt = e.loadedAt
			}
		}
		delete(c.pages, oldest)
	}
}

func snapshotFromResponse(resp api.FeedPageResponse, page, size int) domain.FeedPage {
	total := resp.TotalPages
	if total < 1 {
		total = 1
	}
	discussions := resp.Discussions
	if discussions == nil {
		discussions = []domain.Discussion{}
	}
	return domain.FeedPage{
		Number:      page,
		Size:        size,
		Discussions: discussions,
		TotalPages:  total,
	}
}
