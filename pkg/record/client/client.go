// Package client talks to a remote record source over HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cropcare/entities"
	"cropcare/pkg/record"
)

type Client struct {
	endpoint string
	httpc    *http.Client
}

func New(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{endpoint: endpoint, httpc: &http.Client{Timeout: timeout}}
}

var _ record.Source = (*Client)(nil)

// Fetch issues GET /fetch/crop-data[?crop=<id>]. Every failure wraps
// record.ErrFetchFailure; a cancelled ctx also matches context.Canceled.
func (c *Client) Fetch(ctx context.Context, cropID string) ([]entities.InspectionRecord, error) {
	u := strings.TrimRight(c.endpoint, "/") + "/fetch/crop-data"
	if cropID != "" {
		u += "?crop=" + url.QueryEscape(cropID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", record.ErrFetchFailure, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", record.ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", record.ErrFetchFailure, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out []entities.InspectionRecord
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", record.ErrFetchFailure, err)
	}
	return out, nil
}
