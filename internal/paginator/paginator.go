package paginator

import (
	"context"
	"sync"

	"github.com/learnaura/feedgate/shared/domain"
	"github.com/learnaura/feedgate/shared/logger"
)

// Cache is the loading surface the controller drives.
type Cache interface {
	Load(ctx context.Context, cred domain.Credential, page int) (domain.FeedPage, error)
}

// Paginator tracks the viewed page and clamps navigation to
// [1, totalPages]. totalPages starts at 1 and is overwritten by every
// served page; other clients may delete items concurrently, so a fetch can
// report fewer pages than the one being viewed — the controller then clamps
// down and reloads automatically.
type Paginator struct {
	cache Cache

	mu          sync.Mutex
	currentPage int
	totalPages  int
}

func New(cache Cache) *Paginator {
	return &Paginator{cache: cache, currentPage: 1, totalPages: 1}
}

func (p *Paginator) CurrentPage() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentPage
}

func (p *Paginator) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPages
}

// Next moves one page forward and loads it. At the last known page it is a
// no-op and reports changed=false, mirroring a disabled control.
func (p *Paginator) Next(ctx context.Context, cred domain.Credential) (domain.FeedPage, bool, error) {
	p.mu.Lock()
	if p.currentPage >= p.totalPages {
		p.mu.Unlock()
		return domain.FeedPage{}, false, nil
	}
	p.currentPage++
	p.mu.Unlock()

	page, err := p.loadCurrent(ctx, cred)
	return page, true, err
}

// Previous moves one page back and loads it; no-op at page 1.
func (p *Paginator) Previous(ctx context.Context, cred domain.Credential) (domain.FeedPage, bool, error) {
	p.mu.Lock()
	if p.currentPage <= 1 {
		p.mu.Unlock()
		return domain.FeedPage{}, false, nil
	}
	p.currentPage--
	p.mu.Unlock()

	page, err := p.loadCurrent(ctx, cred)
	return page, true, err
}

// Goto jumps to an arbitrary page and loads it. The target is clamped below
// by 1 up front; overshooting past the server's current totalPages resolves
// through the reload rule once the fetch reports the real count.
func (p *Paginator) Goto(ctx context.Context, cred domain.Credential, page int) (domain.FeedPage, error) {
	if page < 1 {
		page = 1
	}
	p.mu.Lock()
	p.currentPage = page
	p.mu.Unlock()

	return p.loadCurrent(ctx, cred)
}

// Refresh reloads the viewed page.
func (p *Paginator) Refresh(ctx context.Context, cred domain.Credential) (domain.FeedPage, error) {
	return p.loadCurrent(ctx, cred)
}

// loadCurrent fetches the viewed page and applies the response's totalPages.
// If the overwrite leaves the viewed page out of range, it clamps down and
// reloads until the page is in range again.
func (p *Paginator) loadCurrent(ctx context.Context, cred domain.Credential) (domain.FeedPage, error) {
	for {
		p.mu.Lock()
		current := p.currentPage
		p.mu.Unlock()

		page, err := p.cache.Load(ctx, cred, current)
		if page.TotalPages < 1 {
			// nothing usable came back, keep the last known state
			return page, err
		}

		p.mu.Lock()
		p.totalPages = page.TotalPages
		clamped := p.currentPage > p.totalPages
		if clamped {
			logger.Log.Info("viewed page beyond total, clamping",
				"component", "paginator", "page", p.currentPage, "total", p.totalPages)
			p.currentPage = p.totalPages
		}
		p.mu.Unlock()

		if !clamped {
			return page, err
		}
	}
}
