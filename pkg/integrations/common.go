package integrations

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single repository request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a resource doesn't exist in the repository.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures (timeouts, DNS, refused connections).
	ErrNetwork = errors.New("network error")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout uses [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// JoinURL joins a repository base URL and a relative resource path with a
// single slash between them.
func JoinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
