package review

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"legallens/internal/analysis"
)

// DefaultServerURL is where cmd/api listens by default.
const DefaultServerURL = "http://localhost:8080"

const failedMessage = "Analysis failed"

// Client calls the analysis endpoint of a running server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client for baseURL. A nil httpClient uses a client
// with the same timeout the server gives its provider calls.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 3 * time.Minute}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// Analyze posts content and returns the analysis. On a non-2xx response the
// error message is the server's error text.
func (c *Client) Analyze(ctx context.Context, content string) (analysis.Result, error) {
	payload, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return analysis.Result{}, fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(payload))
	if err != nil {
		return analysis.Result{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("analyze request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return analysis.Result{}, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && strings.TrimSpace(apiErr.Error) != "" {
			return analysis.Result{}, errors.New(apiErr.Error)
		}
		return analysis.Result{}, errors.New(failedMessage)
	}

	var out analysis.Result
	if err := json.Unmarshal(body, &out); err != nil {
		return analysis.Result{}, fmt.Errorf("analyze response parse: %w", err)
	}
	return out, nil
}
