// Package geo resolves the caller's country for pre-filling the contact
// form. It is deliberately thin: a failure of any kind yields an empty
// string and the wizard carries on.
package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultURL = "http://ip-api.com/json"
	// maxAttempts caps the retry loop; backoff grows linearly per attempt.
	maxAttempts = 3
	baseBackoff = 400 * time.Millisecond
)

type Client struct {
	HTTPClient  *http.Client
	URL         string
	MaxAttempts int
	Backoff     time.Duration
}

// NewClient builds a client against TWINFORGE_GEO_URL or the default
// endpoint.
func NewClient() *Client {
	url := strings.TrimSpace(os.Getenv("TWINFORGE_GEO_URL"))
	if url == "" {
		url = defaultURL
	}
	return &Client{
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
		URL:         url,
		MaxAttempts: maxAttempts,
		Backoff:     baseBackoff,
	}
}

// Country returns the resolved country name, or "" when the lookup
// fails. Errors are swallowed here; the caller never branches on them.
func (c *Client) Country(ctx context.Context) string {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	for attempt := 1; attempt <= attempts; attempt++ {
		if country, ok := c.lookup(ctx); ok {
			return country
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ""
		case <-time.After(time.Duration(attempt) * c.Backoff):
		}
	}
	return ""
}

func (c *Client) lookup(ctx context.Context) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return "", false
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false
	}
	var body struct {
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", false
	}
	country := strings.TrimSpace(body.Country)
	if country == "" {
		return "", false
	}
	return country, true
}
