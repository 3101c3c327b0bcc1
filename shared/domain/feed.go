package domain

// FeedPage is one paginated slice of the discussion list. The snapshot is
// replaced wholesale on every successful fetch, never patched field-by-field
// from mutation responses.
type FeedPage struct {
	Number      int          `json:"page"`
	Size        int          `json:"size"`
	Discussions []Discussion `json:"discussions"`
	TotalPages  int          `json:"totalPages"`
}

// FindDiscussion returns the discussion with the given id, if present.
func (p FeedPage) FindDiscussion(id DiscussionId) (Discussion, bool) {
	for _, d := range p.Discussions {
		if d.Id == id {
			return d, true
		}
	}
	return Discussion{}, false
}

// FindReply returns the latest reply with the given id together with its
// parent discussion, if some discussion on the page surfaces it.
func (p FeedPage) FindReply(id ReplyId) (Reply, Discussion, bool) {
	for _, d := range p.Discussions {
		if d.LatestReply != nil && d.LatestReply.Id == id {
			return *d.LatestReply, d, true
		}
	}
	return Reply{}, Discussion{}, false
}
