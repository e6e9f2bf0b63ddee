// ABOUTME: HTTP client for the practice API (the transport collaborator).
// ABOUTME: Handles timeouts, request ids, auth, and response decoding.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// DefaultTimeout matches the original client's 10s request timeout.
const DefaultTimeout = 10 * time.Second

// Client talks to the practice API. All methods are safe for
// concurrent use; the zero value is not usable, construct with NewClient.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *log.Logger
}

// NewClient creates a Client for the given base URL (e.g.
// "http://localhost:8080/api/v1"). token may be empty.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpc:   &http.Client{Timeout: timeout},
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "api",
		}),
	}
}

// SetLogger replaces the diagnostics logger (used by tests to silence output).
func (c *Client) SetLogger(l *log.Logger) {
	c.logger = l
}

// do performs one round-trip. Non-2xx responses and network failures
// come back as *Error; the body, when present, is decoded into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("request failed", "method", method, "path", path, "err", err)
		return &Error{Status: 0, Message: "", cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeError(resp)
		// Status distinctions are diagnostics only; the caches collapse
		// them all into one error state.
		c.logger.Warn("server error", "method", method, "path", path,
			"status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts a server-supplied message from an error response.
func decodeError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error != "" {
			e.Message = payload.Error
		} else {
			e.Message = payload.Message
		}
	}
	return e
}

// ListFilter holds the common pagination parameters.
// Zero values fall back to page=1, page_size=10.
type ListFilter struct {
	Page     int
	PageSize int
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	size := f.PageSize
	if size <= 0 {
		size = 10
	}
	v.Set("page", strconv.Itoa(page))
	v.Set("page_size", strconv.Itoa(size))
	return v
}

// joinIDs renders an id list as the comma-separated query form.
func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
