package domain

type (
	UserId       = string
	UserName     = string
	DiscussionId = string
	ReplyId      = string

	DiscussionTitle = string
	ReplyContent    = string
)

// Trim-length invariants, enforced locally before any network call.
const (
	TitleMinLen   = 3
	TitleMaxLen   = 200
	ContentMinLen = 3
	ContentMaxLen = 2000
)
