package integrations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
	"github.com/matzehuels/mvndeps/pkg/observability"
)

// Client provides shared HTTP functionality for repository clients.
// Requests are made exactly once; nothing is cached or retried.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given request timeout and default headers.
// A timeout of 0 uses [DefaultTimeout]. Pass nil for headers if no default
// headers are needed.
func NewClient(timeout time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(timeout),
		headers: headers,
	}
}

// GetText performs an HTTP GET request and returns the response body as a string.
//
// Errors:
//   - [ErrNotFound] for a 404 response
//   - [*apperr.StatusError] for any other non-2xx response
//   - an error wrapping [ErrNetwork] and the transport error otherwise
func (c *Client) GetText(ctx context.Context, rawURL string) (string, error) {
	body, err := c.doRequest(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer body.Close()
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}
	return string(data), nil
}

func (c *Client) doRequest(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(req.URL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		return &apperr.StatusError{StatusCode: code, Reason: reason(resp)}
	}
}

// reason returns the reason phrase of resp, falling back to the standard
// text for its status code.
func reason(resp *http.Response) string {
	if r := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)); r != resp.Status {
		if r = strings.TrimSpace(r); r != "" {
			return r
		}
	}
	return http.StatusText(resp.StatusCode)
}

func hostPath(u *url.URL) (string, string) {
	if u == nil {
		return "", ""
	}
	return u.Host, u.Path
}
