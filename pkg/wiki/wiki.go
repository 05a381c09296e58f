// Package wiki provides an HTTP client for the community MediaWiki,
// treated as a remote key-value text store: fetch and publish page text,
// existence checks, cache purge.
package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// Client talks to one MediaWiki instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a wiki client for baseURL. token, when set, is sent as a
// bearer token on editing requests.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// FetchPage returns the raw wikitext of a page, or "" when the page does
// not exist.
func (c *Client) FetchPage(ctx context.Context, title string) (string, error) {
	query := url.Values{
		"title":  {title},
		"action": {"raw"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/index.php?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching page %q: unexpected status %d", title, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		return "", fmt.Errorf("reading page %q: %w", title, err)
	}
	return string(body), nil
}

// PageExists reports whether a page exists without fetching its content.
func (c *Client) PageExists(ctx context.Context, title string) (bool, error) {
	query := url.Values{
		"action": {"query"},
		"titles": {title},
		"format": {"json"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api.php?"+query.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("creating query request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("querying page %q: %w", title, err)
	}
	defer resp.Body.Close()

	var result struct {
		Query struct {
			Pages map[string]json.RawMessage `json:"pages"`
		} `json:"query"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decoding query response for %q: %w", title, err)
	}

	// Missing pages come back with a negative page ID key.
	for pageID := range result.Query.Pages {
		id, err := strconv.Atoi(pageID)
		if err != nil || id <= 0 {
			return false, nil
		}
	}
	return len(result.Query.Pages) > 0, nil
}

// Edit writes page content with an edit summary.
func (c *Client) Edit(ctx context.Context, title, content, summary string) error {
	form := url.Values{
		"action":  {"edit"},
		"title":   {title},
		"text":    {content},
		"summary": {summary},
		"format":  {"json"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api.php", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating edit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("editing page %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("editing page %q: unexpected status %d", title, resp.StatusCode)
	}

	var result struct {
		Edit struct {
			Result string `json:"result"`
		} `json:"edit"`
		Error struct {
			Code string `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decoding edit response for %q: %w", title, err)
	}
	if result.Error.Code != "" {
		return fmt.Errorf("editing page %q: %s (%s)", title, result.Error.Info, result.Error.Code)
	}
	if result.Edit.Result != "Success" {
		return fmt.Errorf("editing page %q: result %q", title, result.Edit.Result)
	}
	return nil
}

// Purge invalidates the parser cache for a page so the next view rerenders.
func (c *Client) Purge(ctx context.Context, title string) error {
	form := url.Values{
		"action": {"purge"},
		"titles": {title},
		"format": {"json"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api.php", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("creating purge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("purging page %q: %w", title, err)
	}
	resp.Body.Close()
	return nil
}
