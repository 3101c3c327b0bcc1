package api

import "github.com/learnaura/feedgate/shared/domain"

// Request DTOs shared by the dispatcher and the gateway handlers

type CreateDiscussionRequest struct {
	Title string `json:"title" validate:"required"`
}

type UpdateDiscussionRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreateReplyRequest struct {
	DiscussionId domain.DiscussionId `json:"discussionId" validate:"required"`
	Content      string              `json:"content" validate:"required"`
}

type UpdateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

// Response DTOs

// FeedPageResponse is the list shape the Remote Feed Store returns.
type FeedPageResponse struct {
	Discussions []domain.Discussion `json:"discussions"`
	TotalPages  int                 `json:"totalPages"`
}

// ErrorResponse is the JSON body every error answer carries.
type ErrorResponse struct {
	Message string `json:"message"`
}
