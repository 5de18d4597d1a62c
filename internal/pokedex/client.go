package pokedex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RosterSource loads the full roster. Implemented by *Client and FileSource.
type RosterSource interface {
	FetchRoster(ctx context.Context) ([]Creature, error)
}

// Ensure Client implements RosterSource at compile time.
var _ RosterSource = (*Client)(nil)

// Client fetches the roster document over HTTP.
type Client struct {
	url  *url.URL
	http *http.Client
}

const (
	// DefaultRosterURL is where the tutorial dev server publishes the roster.
	DefaultRosterURL = "http://localhost:3000/starting-react/pokemon.json"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the roster document at rawURL.
func NewClient(rawURL string) (*Client, error) {
	u, err := parseRosterURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		url: u,
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

// URL returns the resolved roster URL.
func (c *Client) URL() string {
	if c == nil || c.url == nil {
		return ""
	}
	return c.url.String()
}

// FetchRoster issues a single GET for the roster and decodes the JSON array.
func (c *Client) FetchRoster(ctx context.Context) ([]Creature, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("roster %s returned status %d", c.url.Path, resp.StatusCode)
	}

	var roster []Creature
	if err := json.NewDecoder(resp.Body).Decode(&roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return roster, nil
}

func parseRosterURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultRosterURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse roster url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse roster url %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
