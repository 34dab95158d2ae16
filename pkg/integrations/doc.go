// Package integrations provides the HTTP plumbing shared by repository clients.
//
// # Overview
//
// Repository clients (currently only [maven]) build URLs against a
// user-supplied base URL and fetch documents through [Client]. The client
// classifies every outcome so that callers can map it onto their own error
// codes:
//
//   - 2xx: the body is returned as text
//   - 404: [ErrNotFound]
//   - any other status: [*errors.StatusError] with the code and reason phrase
//   - transport failure: an error wrapping [ErrNetwork] and the cause
//
// # Request Policy
//
// Each request is issued exactly once. There is no cache and no retry; the
// only bound on a request is the client timeout and the caller's context.
//
// Every request reports to [observability.HTTP] so the CLI can trace traffic
// at debug level.
//
// [maven]: github.com/matzehuels/mvndeps/pkg/integrations/maven
// [*errors.StatusError]: github.com/matzehuels/mvndeps/pkg/errors.StatusError
// [observability.HTTP]: github.com/matzehuels/mvndeps/pkg/observability.HTTP
package integrations
