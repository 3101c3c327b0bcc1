package domain

import (
	"strings"
	"time"
)

type Reply struct {
	Id           ReplyId      `json:"id"`
	DiscussionId DiscussionId `json:"discussionId"`
	Content      ReplyContent `json:"content"`
	Author       UserRef      `json:"author"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// EditableBy implements the dual-ownership rule: a reply may be edited
// or deleted by its own author or by the author of the parent discussion.
// The Remote Feed Store re-validates; this only gates the client side.
func (r Reply) EditableBy(userId UserId, parentAuthorId UserId) bool {
	return userId != "" && (userId == r.Author.Id || userId == parentAuthorId)
}

// ValidContent reports whether reply content satisfies the length
// invariant after trimming.
func ValidContent(content string) bool {
	n := len(strings.TrimSpace(content))
	return n >= ContentMinLen && n <= ContentMaxLen
}
