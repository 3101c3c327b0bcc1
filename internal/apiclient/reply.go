package apiclient

import (
	"context"
	"net/http"

	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
)

// === Reply methods ===

func (c *APIClient) CreateReply(ctx context.Context, cred domain.Credential, data api.CreateReplyRequest) (domain.Reply, error) {
	var created domain.Reply
	resp, err := c.do(ctx, cred, "POST", "/discussion/reply", data)
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

func (c *APIClient) UpdateReply(ctx context.Context, cred domain.Credential, id domain.ReplyId, data api.UpdateReplyRequest) (domain.Reply, error) {
	var updated domain.Reply
	resp, err := c.do(ctx, cred, "PUT", "/discussion/reply/"+id, data)
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

func (c *APIClient) DeleteReply(ctx context.Context, cred domain.Credential, id domain.ReplyId) error {
	resp, err := c.do(ctx, cred, "DELETE", "/discussion/reply/"+id, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return decodeError(resp)
	}
	return nil
}
