package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/myrjola/hexcoach/internal/ptr"
)

const (
	// AthleteHeader identifies the athlete a request acts on.
	AthleteHeader = "X-User-ID"
	// APIKeyHeader carries the shared API key.
	APIKeyHeader = "X-API-Key"
)

// Client is a JSON API client bound to one server.
type Client struct {
	client    *http.Client
	url       string
	athleteID string
	apiKey    string
}

// NewClient creates a JSON API client for the server at url.
func NewClient(url string) *Client {
	return &Client{
		client:    &http.Client{Timeout: 10 * time.Second}, //nolint:mnd // generous for slow CI.
		url:       url,
		athleteID: "",
		apiKey:    "",
	}
}

// AsAthlete returns a copy of c that sends athleteID in the AthleteHeader.
func (c *Client) AsAthlete(athleteID string) *Client {
	cp := *c
	cp.athleteID = athleteID
	return &cp
}

// WithAPIKey returns a copy of c that sends key in the APIKeyHeader.
func (c *Client) WithAPIKey(key string) *Client {
	cp := *c
	cp.apiKey = key
	return &cp
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	for {
		resp, err := c.Do(ctx, http.MethodGet, urlPath, nil)
		if err == nil {
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Do sends body encoded as JSON, or no body when nil, and returns the raw response.
func (c *Client) Do(ctx context.Context, method, urlPath string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url+urlPath, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.athleteID != "" {
		req.Header.Set(AthleteHeader, c.athleteID)
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// DoJSON sends body like Do and decodes the response into out unless out is nil. It returns the status code.
func (c *Client) DoJSON(ctx context.Context, method, urlPath string, body, out any) (int, error) {
	resp, err := c.Do(ctx, method, urlPath, body)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if out == nil {
		if _, err = io.Copy(io.Discard, resp.Body); err != nil {
			return resp.StatusCode, fmt.Errorf("drain response body: %w", err)
		}
		return resp.StatusCode, nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response body (status %d): %w", resp.StatusCode, err)
	}
	return resp.StatusCode, nil
}

// GetJSON fetches urlPath and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, urlPath string, out any) (int, error) {
	return c.DoJSON(ctx, http.MethodGet, urlPath, nil, out)
}

// PostJSON posts body to urlPath and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body, out any) (int, error) {
	return c.DoJSON(ctx, http.MethodPost, urlPath, body, out)
}

// CompleteSessionRequest is the body of the session completion endpoint. A nil DayOfWeek is rejected by the server.
type CompleteSessionRequest struct {
	DayOfWeek *int `json:"dayOfWeek"`
}

// CompleteSession completes sessionID for the routine of day and decodes the completion into out.
func (c *Client) CompleteSession(ctx context.Context, sessionID string, day time.Weekday, out any) (int, error) {
	body := CompleteSessionRequest{DayOfWeek: ptr.Ref(int(day))}
	return c.PostJSON(ctx, "/api/v1/sessions/"+url.PathEscape(sessionID)+"/complete", body, out)
}
