package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTitle(t *testing.T) {
	assert.True(t, ValidTitle("abc"))
	assert.True(t, ValidTitle("  abc  "))
	assert.False(t, ValidTitle("ab"))
	assert.False(t, ValidTitle("  ab  "))
	assert.False(t, ValidTitle("   "))
	assert.False(t, ValidTitle(""))
}

func TestValidContent(t *testing.T) {
	assert.True(t, ValidContent("yes"))
	assert.False(t, ValidContent(" a \n"))
}

func TestReplyEditableBy(t *testing.T) {
	reply := Reply{Id: "r1", DiscussionId: "d1", Author: UserRef{Id: "u2"}}

	assert.True(t, reply.EditableBy("u2", "u1"), "reply author")
	assert.True(t, reply.EditableBy("u1", "u1"), "discussion author")
	assert.False(t, reply.EditableBy("u3", "u1"), "unrelated user")
	assert.False(t, reply.EditableBy("", "u1"), "anonymous")
}

func TestFeedPageLookups(t *testing.T) {
	reply := &Reply{Id: "r1", DiscussionId: "d2"}
	page := FeedPage{
		Number:     1,
		TotalPages: 1,
		Discussions: []Discussion{
			{Id: "d1", Title: "first"},
			{Id: "d2", Title: "second", LatestReply: reply},
		},
	}

	d, ok := page.FindDiscussion("d2")
	assert.True(t, ok)
	assert.Equal(t, "second", d.Title)

	r, parent, ok := page.FindReply("r1")
	assert.True(t, ok)
	assert.Equal(t, "r1", r.Id)
	assert.Equal(t, "d2", parent.Id)

	_, _, ok = page.FindReply("r2")
	assert.False(t, ok)
}
