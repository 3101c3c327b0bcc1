package handler

import (
	"net/http"
	"strconv"

	mw "github.com/learnaura/feedgate/internal/middleware"
	"github.com/learnaura/feedgate/internal/paginator"
	"github.com/learnaura/feedgate/shared/domain"
)

// View models: the JSON the browser renders. Reply content additionally
// carries a sanitized HTML rendering.

type replyView struct {
	domain.Reply
	ContentHtml string `json:"contentHtml"`
}

type discussionView struct {
	domain.Discussion
	LatestReply *replyView `json:"latestReply,omitempty"`
}

type feedPageView struct {
	Page        int              `json:"page"`
	TotalPages  int              `json:"totalPages"`
	Discussions []discussionView `json:"discussions"`
	Stale       bool             `json:"stale,omitempty"`
}

// FeedGetHandler serves one feed page. The requested page runs through a
// pagination controller so out-of-range requests clamp to the server's
// current page count instead of answering emptily.
func (h *Handler) FeedGetHandler(w http.ResponseWriter, r *http.Request) {
	cred := mw.GetCredential(r)
	requested := pageParam(r)

	p := paginator.New(h.Cache)
	page, err := p.Goto(r.Context(), cred, requested)
	if err != nil && page.TotalPages < 1 {
		// no snapshot to fall back on
		writeError(w, err)
		return
	}

	view := feedPageView{
		Page:        page.Number,
		TotalPages:  page.TotalPages,
		Discussions: make([]discussionView, 0, len(page.Discussions)),
		Stale:       err != nil,
	}
	for _, d := range page.Discussions {
		dv := discussionView{Discussion: d}
		if d.LatestReply != nil {
			dv.LatestReply = &replyView{
				Reply:       *d.LatestReply,
				ContentHtml: h.TextProcessor.Render(d.LatestReply.Content),
			}
		}
		view.Discussions = append(view.Discussions, dv)
	}

	writeJSON(w, http.StatusOK, view)
}

// pageParam reads the viewed page from the query string, defaulting to 1.
func pageParam(r *http.Request) int {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		return 1
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
