package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-Id"
	bearerPrefix        = "Bearer "

	defaultTimeout = 15 * time.Second

	// maxErrorBody caps how much of a failed response is read for the
	// error message.
	maxErrorBody = 8 << 10
)

// ErrTransport is an exported constant or variable used by the console core.
var ErrTransport = errors.New("backend unreachable")

// TokenSource yields the bearer token to attach to outbound requests.
// ok is false when no session exists, in which case the request is sent
// without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool)
}

// TokenSourceFunc adapts a function to the [TokenSource] interface.
type TokenSourceFunc func(ctx context.Context) (string, bool)

// Token describes the token operation and its observable behavior.
func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

// APIError is the typed failure for any non-2xx backend response.
type APIError struct {
	StatusCode int
	Message    string
}

// Error describes the error operation and its observable behavior.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsAuthFailure reports whether the backend rejected the request's
// credentials or authorization (401 or 403).
func (e *APIError) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// Client defines a public type used by the console core APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	baseURL string
	http    *http.Client
	source  TokenSource
}

// NewClient creates a gateway client for the given backend base URL.
// httpClient may be nil, in which case a client with a 15s timeout is used.
// source may be nil for a gateway that never authenticates.
func NewClient(baseURL string, httpClient *http.Client, source TokenSource) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("gateway: base URL required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("gateway: invalid base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL: trimmed,
		http:    httpClient,
		source:  source,
	}, nil
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the response into out (which may be nil).
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Do executes one request against the backend. body is JSON-encoded when
// non-nil; out, when non-nil, receives the decoded response payload with
// the backend's optional {"data": ...} envelope already unwrapped.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	raw, _, err := c.roundTrip(ctx, method, path, body, "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return unmarshalEnvelope(raw, out)
}

// GetRaw issues a GET and returns the raw response bytes and content type,
// for binary payloads such as the evaluation PDF report.
func (c *Client) GetRaw(ctx context.Context, path string) ([]byte, string, error) {
	return c.roundTrip(ctx, http.MethodGet, path, nil, "")
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body interface{}, accept string) ([]byte, string, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("gateway: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+ensureLeadingSlash(path), reader)
	if err != nil {
		return nil, "", fmt.Errorf("gateway: build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	req.Header.Set(headerRequestID, uuid.NewString())

	if c.source != nil {
		if token, ok := c.source.Token(ctx); ok && token != "" {
			req.Header.Set(headerAuthorization, bearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", newAPIError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil {
		switch {
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Error != "":
			apiErr.Message = payload.Error
		}
	}
	return apiErr
}

// unmarshalEnvelope tolerates the backend's two response shapes: a bare
// payload, or the payload wrapped in {"data": ...}.
func unmarshalEnvelope(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil &&
			len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null")) {
			return json.Unmarshal(envelope.Data, out)
		}
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("gateway: decode response: %w", err)
	}
	return nil
}

func ensureLeadingSlash(path string) string {
	if path == "" || path[0] != '/' {
		return "/" + path
	}
	return path
}
