// Package observability lets callers watch resolutions and repository
// traffic without the libraries depending on a logging or metrics backend.
//
// Two hook sets exist: [ResolveHooks], called by the dependency resolver, and
// [HTTPHooks], called by the shared HTTP client. Both default to no-ops.
// Register replacements once at startup:
//
//	observability.SetHTTPHooks(myHTTPHooks{logger: logger})
//
// Libraries fetch the current set at the point of use:
//
//	observability.HTTP().OnRequest(ctx, "GET", host, path)
package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// ResolveHooks receives events from the dependency resolver.
type ResolveHooks interface {
	// OnResolveStart records the start of a resolution for pkg.
	OnResolveStart(ctx context.Context, pkg string)

	// OnResolveComplete records the end of a resolution. err is nil on success.
	OnResolveComplete(ctx context.Context, pkg string, depCount int, duration time.Duration, err error)
}

// HTTPHooks receives one OnRequest per outgoing request, followed by either
// OnResponse (any status) or OnError (transport failure).
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopResolveHooks ignores every event. Embed it to implement a subset.
type NoopResolveHooks struct{}

func (NoopResolveHooks) OnResolveStart(context.Context, string)                               {}
func (NoopResolveHooks) OnResolveComplete(context.Context, string, int, time.Duration, error) {}

// NoopHTTPHooks ignores every event. Embed it to implement a subset.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// registry is replaced as a whole on every change so readers never lock.
type registry struct {
	resolve ResolveHooks
	http    HTTPHooks
}

var (
	current  atomic.Pointer[registry]
	updateMu sync.Mutex
)

func init() {
	Reset()
}

func update(fn func(r *registry)) {
	updateMu.Lock()
	defer updateMu.Unlock()
	next := *current.Load()
	fn(&next)
	current.Store(&next)
}

// SetResolveHooks registers resolve hooks. A nil h is ignored.
func SetResolveHooks(h ResolveHooks) {
	if h == nil {
		return
	}
	update(func(r *registry) { r.resolve = h })
}

// SetHTTPHooks registers HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h == nil {
		return
	}
	update(func(r *registry) { r.http = h })
}

// Resolve returns the registered resolve hooks.
func Resolve() ResolveHooks { return current.Load().resolve }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset restores both hook sets to their no-op defaults.
func Reset() {
	updateMu.Lock()
	defer updateMu.Unlock()
	current.Store(&registry{resolve: NoopResolveHooks{}, http: NoopHTTPHooks{}})
}
