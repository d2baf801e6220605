// Package httpapi implements ports.JournalAPI against the journal backend's
// JSON endpoints.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"moodlog/internal/application"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// Backend paths
const (
	pathEntries     = "/api/entries"
	pathCreateEntry = "/api/create_entry"
	pathAnalyzeWeek = "/api/analyze_week"
	pathExport      = "/api/export"
)

// maximum error body kept in StatusError
const maxErrorBody = 512

// Client implements ports.JournalAPI over HTTP
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	log     *zap.Logger
}

// Ensure Client implements JournalAPI
var _ ports.JournalAPI = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient sets the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid API URL %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		http:    http.DefaultClient,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListEntries returns every entry in backend order
func (c *Client) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	var entries []domain.Entry
	if err := c.doJSON(ctx, "list entries", http.MethodGet, pathEntries, nil, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nil
}

// CreateEntry stores a new entry
func (c *Client) CreateEntry(ctx context.Context, in ports.EntryInput) error {
	// the status object in the response carries nothing the client uses
	return c.doJSON(ctx, "create entry", http.MethodPost, pathCreateEntry, in, nil)
}

// UpdateEntry replaces content and mood of an entry
func (c *Client) UpdateEntry(ctx context.Context, id int, in ports.EntryInput) error {
	return c.doJSON(ctx, "update entry", http.MethodPut, entryPath(id), in, nil)
}

// DeleteEntry removes an entry
func (c *Client) DeleteEntry(ctx context.Context, id int) error {
	return c.doJSON(ctx, "delete entry", http.MethodDelete, entryPath(id), nil, nil)
}

// AnalyzeWeek returns the backend's advice for the recent week
func (c *Client) AnalyzeWeek(ctx context.Context) (string, error) {
	var out struct {
		Advice string `json:"advice"`
	}
	if err := c.doJSON(ctx, "analyze week", http.MethodGet, pathAnalyzeWeek, nil, &out); err != nil {
		return "", err
	}
	return out.Advice, nil
}

// Export streams the export download. The filename comes from
// Content-Disposition when the backend sets one.
func (c *Client) Export(ctx context.Context) (io.ReadCloser, string, error) {
	// no per-request timeout: the body is streamed after return
	resp, err := c.send(ctx, "export", http.MethodGet, pathExport, nil)
	if err != nil {
		return nil, "", err
	}
	return resp.Body, exportFilename(resp.Header.Get("Content-Disposition")), nil
}

// ExportURL returns the absolute export URL, for handing to a browser
func (c *Client) ExportURL() string {
	return c.resolve(pathExport)
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	resp, err := c.send(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &application.TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// send issues the request and converts transport failures and non-2xx
// responses into typed errors. On success the caller owns resp.Body.
func (c *Client) send(ctx context.Context, op, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path), body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, &application.TransportError{Op: op, Err: err}
	}

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &application.StatusError{
			Op:     op,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(data)),
		}
	}
	return resp, nil
}

func (c *Client) resolve(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

func entryPath(id int) string {
	return pathEntries + "/" + strconv.Itoa(id)
}

func exportFilename(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
