package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blackwell-systems/songshelf/internal/catalog"
)

const (
	defaultAPIBase = "https://opensheet.elk.sh"
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 512
)

// Client reads spreadsheet tabs published through an opensheet-style endpoint,
// which serves each tab as a JSON array of objects keyed by the header row.
type Client struct {
	apiBase   string
	sheetID   string
	sheetName string
	http      *http.Client
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a Client for one sheet tab. If apiBase is empty, the public
// opensheet endpoint is used.
func New(apiBase, sheetID, sheetName string, opts ...Option) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	// Strip trailing slash for consistent URL building.
	apiBase = strings.TrimRight(apiBase, "/")

	c := &Client{
		apiBase:   apiBase,
		sheetID:   sheetID,
		sheetName: sheetName,
		http:      &http.Client{Timeout: defaultTimeout},
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string {
	return c.apiBase + "/" + url.PathEscape(c.sheetID) + "/" + url.PathEscape(c.sheetName)
}

// LoadRows fetches every row of the tab.
func (c *Client) LoadRows(ctx context.Context) ([]catalog.Row, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching sheet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("sheet request", "url", c.URL(), "status", resp.StatusCode, "elapsed", time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var rows []catalog.Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decoding sheet rows: %w", err)
	}
	if rows == nil {
		rows = []catalog.Row{}
	}
	return rows, nil
}

// checkStatus returns a typed error for non-2xx responses.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
}
