package domain

import (
	"strings"
	"time"
)

type Discussion struct {
	Id          DiscussionId    `json:"id"`
	Title       DiscussionTitle `json:"title"`
	Author      UserRef         `json:"author"`
	CreatedAt   time.Time       `json:"createdAt"`
	LatestReply *Reply          `json:"latestReply,omitempty"`
}

// ValidTitle reports whether a title satisfies the length invariant
// after trimming.
func ValidTitle(title string) bool {
	n := len(strings.TrimSpace(title))
	return n >= TitleMinLen && n <= TitleMaxLen
}
