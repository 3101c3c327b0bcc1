package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
	internal_errors "github.com/learnaura/feedgate/shared/errors"
)

const defaultTimeout = 15 * time.Second

// APIClient handles all communication with the Remote Feed Store.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a client for the Remote Feed Store at the given base URL.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// do is the single, unified helper for making store requests. The bearer
// credential is attached when present; every call carries a correlation id.
func (c *APIClient) do(ctx context.Context, cred domain.Credential, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create store request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if !cred.Empty() {
		req.Header.Set("Authorization", "Bearer "+cred.Token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, &internal_errors.Fetch{Message: "remote feed store unavailable: " + err.Error()}
	}
	return resp, nil
}

// decodeError turns a non-2xx response into a Remote error, picking the
// server's {message} body up when it parses.
func decodeError(resp *http.Response) error {
	var body api.ErrorResponse
	bodyBytes, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(bodyBytes, &body); err != nil || body.Message == "" {
		body.Message = fmt.Sprintf("remote store returned status %d", resp.StatusCode)
	}
	return &internal_errors.Remote{Status: resp.StatusCode, Message: body.Message}
}

func decode(resp *http.Response, out any) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &internal_errors.Fetch{Message: "cannot decode store response: " + err.Error()}
	}
	return nil
}
