// Package gamedata fetches the static game-data document (character roster
// plus icon database) that seeds the planner.
package gamedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/lattice/pkg/domain"
)

// DefaultPath is where the document is served relative to the app origin.
const DefaultPath = "/gamedata.json"

// Client fetches the document over HTTP. It implements ports.RosterSource.
type Client struct {
	url    string
	client *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// NewClient creates a source reading from the given URL.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves and parses the document. Non-2xx responses and parse
// failures both surface as domain.ErrLoadFailed so callers can treat every
// load problem uniformly and keep prior state.
func (c *Client) Fetch(ctx context.Context) (domain.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Document{}, fmt.Errorf("%w: %v", domain.ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Document{}, fmt.Errorf("%w: unexpected status %s", domain.ErrLoadFailed, resp.Status)
	}

	var doc domain.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return domain.Document{}, fmt.Errorf("%w: parse document: %v", domain.ErrLoadFailed, err)
	}
	return doc, nil
}
