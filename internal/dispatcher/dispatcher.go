package dispatcher

import (
	"context"

	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
	internal_errors "github.com/learnaura/feedgate/shared/errors"
	"github.com/learnaura/feedgate/shared/logger"
	"github.com/learnaura/feedgate/shared/validation"
)

// Store is the mutation surface of the Remote Feed Store.
type Store interface {
	CreateDiscussion(ctx context.Context, cred domain.Credential, data api.CreateDiscussionRequest) (domain.Discussion, error)
	UpdateDiscussion(ctx context.Context, cred domain.Credential, id domain.DiscussionId, data api.UpdateDiscussionRequest) (domain.Discussion, error)
	DeleteDiscussion(ctx context.Context, cred domain.Credential, id domain.DiscussionId) error
	CreateReply(ctx context.Context, cred domain.Credential, data api.CreateReplyRequest) (domain.Reply, error)
	UpdateReply(ctx context.Context, cred domain.Credential, id domain.ReplyId, data api.UpdateReplyRequest) (domain.Reply, error)
	DeleteReply(ctx context.Context, cred domain.Credential, id domain.ReplyId) error
}

// FeedCache is the slice of the feed cache the dispatcher drives. The
// dispatcher only requests loads and invalidations, it never writes
// snapshots itself.
type FeedCache interface {
	Load(ctx context.Context, cred domain.Credential, page int) (domain.FeedPage, error)
	Invalidate(page int)
	FindDiscussion(id domain.DiscussionId) (domain.Discussion, bool)
	FindReply(id domain.ReplyId) (domain.Reply, domain.Discussion, bool)
}

// Dispatcher executes create/update/delete operations against the Remote
// Feed Store. On success it invalidates the affected pages and refetches the
// page the caller is viewing; on failure the cache is left untouched. No
// optimistic local edits, no automatic retry.
type Dispatcher struct {
	store Store
	cache FeedCache
}

func New(store Store, cache FeedCache) *Dispatcher {
	return &Dispatcher{store: store, cache: cache}
}

func (d *Dispatcher) CreateDiscussion(ctx context.Context, cred domain.Credential, currentPage int, title string) (domain.Discussion, error) {
	if err := validation.Credential(cred); err != nil {
		return domain.Discussion{}, fail("create_discussion", err)
	}
	if err := validation.Title(title); err != nil {
		return domain.Discussion{}, fail("create_discussion", err)
	}

	created, err := d.store.CreateDiscussion(ctx, cred, api.CreateDiscussionRequest{Title: title})
	if err != nil {
		return domain.Discussion{}, fail("create_discussion", err)
	}

	// Ordering is newest-first, so a new discussion lands on page 1.
	d.refresh(ctx, cred, currentPage, 1)
	mutationsTotal.WithLabelValues("create_discussion", outcomeOk).Inc()
	return created, nil
}

func (d *Dispatcher) UpdateDiscussion(ctx context.Context, cred domain.Credential, currentPage int, id domain.DiscussionId, title string) (domain.Discussion, error) {
	if err := validation.Credential(cred); err != nil {
		return domain.Discussion{}, fail("update_discussion", err)
	}
	if err := validation.Title(title); err != nil {
		return domain.Discussion{}, fail("update_discussion", err)
	}

	// Ownership is enforced server-side; the client only disables the
	// controls for non-owners.
	updated, err := d.store.UpdateDiscussion(ctx, cred, id, api.UpdateDiscussionRequest{Title: title})
	if err != nil {
		return domain.Discussion{}, fail("update_discussion", err)
	}

	d.refresh(ctx, cred, currentPage)
	mutationsTotal.WithLabelValues("update_discussion", outcomeOk).Inc()
	return updated, nil
}

// DeleteDiscussion is idempotent from the client's perspective: a "not
// found" answer means the discussion is already gone, which still warrants a
// cache refresh.
func (d *Dispatcher) DeleteDiscussion(ctx context.Context, cred domain.Credential, currentPage int, id domain.DiscussionId) error {
	if err := validation.Credential(cred); err != nil {
		return fail("delete_discussion", err)
	}

	if err := d.store.DeleteDiscussion(ctx, cred, id); err != nil {
		if !internal_errors.IsNotFound(err) {
			return fail("delete_discussion", err)
		}
		logger.Log.Info("discussion already gone",
			"component", "dispatcher", "discussion", id)
	}

	d.refresh(ctx, cred, currentPage, 1)
	mutationsTotal.WithLabelValues("delete_discussion", outcomeOk).Inc()
	return nil
}

func (d *Dispatcher) CreateReply(ctx context.Context, cred domain.Credential, currentPage int, discussionId domain.DiscussionId, content string) (domain.Reply, error) {
	if err := validation.Credential(cred); err != nil {
		return domain.Reply{}, fail("create_reply", err)
	}
	if err := validation.Content(content); err != nil {
		return domain.Reply{}, fail("create_reply", err)
	}
	// Defense in depth: the target must be visible in some cached page.
	// The authoritative existence check stays server-side.
	if _, ok := d.cache.FindDiscussion(discussionId); !ok {
		return domain.Reply{}, fail("create_reply", &internal_errors.Validation{Message: "unknown discussion"})
	}

	created, err := d.store.CreateReply(ctx, cred, api.CreateReplyRequest{DiscussionId: discussionId, Content: content})
	if err != nil {
		return domain.Reply{}, fail("create_reply", err)
	}

	d.refresh(ctx, cred, currentPage)
	mutationsTotal.WithLabelValues("create_reply", outcomeOk).Inc()
	return created, nil
}

func (d *Dispatcher) UpdateReply(ctx context.Context, cred domain.Credential, currentPage int, id domain.ReplyId, content string) (domain.Reply, error) {
	if err := validation.Credential(cred); err != nil {
		return domain.Reply{}, fail("update_reply", err)
	}
	if err := validation.Content(content); err != nil {
		return domain.Reply{}, fail("update_reply", err)
	}
	if err := d.gateReplyOwnership(cred, id); err != nil {
		return domain.Reply{}, fail("update_reply", err)
	}

	updated, err := d.store.UpdateReply(ctx, cred, id, api.UpdateReplyRequest{Content: content})
	if err != nil {
		return domain.Reply{}, fail("update_reply", err)
	}

	d.refresh(ctx, cred, currentPage)
	mutationsTotal.WithLabelValues("update_reply", outcomeOk).Inc()
	return updated, nil
}

func (d *Dispatcher) DeleteReply(ctx context.Context, cred domain.Credential, currentPage int, id domain.ReplyId) error {
	if err := validation.Credential(cred); err != nil {
		return fail("delete_reply", err)
	}
	if err := d.gateReplyOwnership(cred, id); err != nil {
		return fail("delete_reply", err)
	}

	if err := d.store.DeleteReply(ctx, cred, id); err != nil {
		if !internal_errors.IsNotFound(err) {
			return fail("delete_reply", err)
		}
		logger.Log.Info("reply already gone",
			"component", "dispatcher", "reply", id)
	}

	d.refresh(ctx, cred, currentPage)
	mutationsTotal.WithLabelValues("delete_reply", outcomeOk).Inc()
	return nil
}

// gateReplyOwnership applies the dual-ownership rule against the cached
// snapshots. A reply the cache has never surfaced passes through; the Remote
// Feed Store is the sole source of truth for authorization either way.
func (d *Dispatcher) gateReplyOwnership(cred domain.Credential, id domain.ReplyId) error {
	reply, parent, ok := d.cache.FindReply(id)
	if !ok {
		return nil
	}
	if !reply.EditableBy(cred.User.Id, parent.Author.Id) {
		return &internal_errors.Authorization{Message: "only the reply author or the discussion author can modify a reply"}
	}
	return nil
}

// refresh invalidates the affected pages and refetches the page the caller
// is viewing. It runs strictly after the triggering mutation succeeded,
// never speculatively before it. A failed refetch does not undo the
// mutation; the next load simply starts from a cold key.
func (d *Dispatcher) refresh(ctx context.Context, cred domain.Credential, currentPage int, extra ...int) {
	if currentPage < 1 {
		currentPage = 1
	}
	d.cache.Invalidate(currentPage)
	for _, page := range extra {
		if page != currentPage {
			d.cache.Invalidate(page)
		}
	}
	if _, err := d.cache.Load(ctx, cred, currentPage); err != nil {
		logger.Log.Warn("post-mutation refetch failed",
			"component", "dispatcher", "page", currentPage, "error", err)
	}
}

func fail(op string, err error) error {
	mutationsTotal.WithLabelValues(op, outcomeFail).Inc()
	return err
}
