package insurance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client notifies the insurance company about committed assignments over HTTP.
// The endpoint is treated as a fallible collaborator; callers own retries.
type Client struct {
	httpc   *http.Client
	baseURL string
}

// Config stores insurance endpoint settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates an insurance notification client. Returns nil when no
// endpoint is configured, which disables notification delivery.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		return nil
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpc:   &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
	}
}

type notifyPayload struct {
	RequestID int64 `json:"request_id"`
}

// Notify posts the dispatched request id to the insurance endpoint.
func (c *Client) Notify(ctx context.Context, requestID int64) error {
	body, err := json.Marshal(notifyPayload{RequestID: requestID})
	if err != nil {
		return fmt.Errorf("insurance gateway: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/notifications", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("insurance gateway: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("insurance gateway: request %d: %w", requestID, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("insurance gateway: request %d: unexpected status %d", requestID, resp.StatusCode)
	}
	return nil
}
