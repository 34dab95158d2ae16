package deps

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mvndeps/pkg/integrations/maven"
	"github.com/matzehuels/mvndeps/pkg/observability"
)

// Source provides the two network steps of a resolution.
// [*maven.Client] implements it.
type Source interface {
	// ResolveVersion parses packageName and selects the version to inspect.
	ResolveVersion(ctx context.Context, packageName string) (maven.Coordinate, error)
	// FetchPOM returns the raw POM for a versioned coordinate.
	FetchPOM(ctx context.Context, coord maven.Coordinate) (string, error)
}

// Result is the outcome of a successful resolution.
type Result struct {
	Package      maven.Coordinate   `json:"package"`      // resolved coordinate, Version set
	Dependencies []maven.Dependency `json:"dependencies"` // document order, never nil
}

// Resolver resolves the direct dependencies of one package.
type Resolver struct {
	source Source
	logger *log.Logger
}

// NewResolver creates a Resolver backed by source. A nil logger uses log.Default().
func NewResolver(source Source, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.Default()
	}
	return &Resolver{source: source, logger: logger}
}

// Resolve runs version discovery, POM retrieval and dependency extraction in
// order. The first failing step aborts the resolution and its error is
// returned unchanged; no step is retried.
func (r *Resolver) Resolve(ctx context.Context, packageName string) (*Result, error) {
	hooks := observability.Resolve()
	hooks.OnResolveStart(ctx, packageName)
	start := time.Now()

	res, err := r.resolve(ctx, packageName)

	count := 0
	if res != nil {
		count = len(res.Dependencies)
	}
	hooks.OnResolveComplete(ctx, packageName, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, packageName string) (*Result, error) {
	coord, err := r.source.ResolveVersion(ctx, packageName)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("resolved version", "package", coord.Name(), "version", coord.Version)

	pom, err := r.source.FetchPOM(ctx, coord)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("fetched POM", "coordinate", coord.String(), "bytes", len(pom))

	deps, err := maven.ExtractDependencies(pom)
	if err != nil {
		return nil, err
	}
	return &Result{Package: coord, Dependencies: deps}, nil
}
