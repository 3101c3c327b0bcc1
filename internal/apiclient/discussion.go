package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
)

// === Discussion methods ===

func (c *APIClient) ListFeedPage(ctx context.Context, cred domain.Credential, page, limit int) (api.FeedPageResponse, error) {
	var response api.FeedPageResponse
	path := fmt.Sprintf("/discussion?page=%d&limit=%d", page, limit)
	resp, err := c.do(ctx, cred, "GET", path, nil)
	if err != nil {
		return response, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, decodeError(resp)
	}
	if err := decode(resp, &response); err != nil {
		return response, err
	}
	return response, nil
}

func (c *APIClient) CreateDiscussion(ctx context.Context, cred domain.Credential, data api.CreateDiscussionRequest) (domain.Discussion, error) {
	var created domain.Discussion
	resp, err := c.do(ctx, cred, "POST", "/discussion", data)
	if err != nil {
		return created, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return created, decodeError(resp)
	}
	if err := decode(resp, &created); err != nil {
		return created, err
	}
	return created, nil
}

func (c *APIClient) UpdateDiscussion(ctx context.Context, cred domain.Credential, id domain.DiscussionId, data api.UpdateDiscussionRequest) (domain.Discussion, error) {
	var updated domain.Discussion
	resp, err := c.do(ctx, cred, "PUT", "/discussion/"+id, data)
	if err != nil {
		return updated, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return updated, decodeError(resp)
	}
	if err := decode(resp, &updated); err != nil {
		return updated, err
	}
	return updated, nil
}

func (c *APIClient) DeleteDiscussion(ctx context.Context, cred domain.Credential, id domain.DiscussionId) error {
	resp, err := c.do(ctx, cred, "DELETE", "/discussion/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	return nil
}
