package maven

import (
	"context"
	"errors"
	"time"

	"github.com/matzehuels/mvndeps/pkg/buildinfo"
	apperr "github.com/matzehuels/mvndeps/pkg/errors"
	"github.com/matzehuels/mvndeps/pkg/integrations"
)

// DefaultRepositoryURL is Maven Central's repository root.
const DefaultRepositoryURL = "https://repo1.maven.org/maven2"

// Client fetches metadata descriptors and POMs from a Maven-layout repository.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a client for the repository rooted at repositoryURL.
// The URL is used as given; callers validate its scheme. A timeout of 0 uses
// [integrations.DefaultTimeout].
func NewClient(repositoryURL string, timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(timeout, map[string]string{"User-Agent": buildinfo.UserAgent()}),
		baseURL: repositoryURL,
	}
}

// BaseURL returns the repository root the client was created with.
func (c *Client) BaseURL() string { return c.baseURL }

// MetadataURL returns the absolute URL of coord's maven-metadata.xml.
func (c *Client) MetadataURL(coord Coordinate) string {
	return integrations.JoinURL(c.baseURL, coord.MetadataPath())
}

// POMURL returns the absolute URL of the POM for coord.Version.
func (c *Client) POMURL(coord Coordinate) string {
	return integrations.JoinURL(c.baseURL, coord.POMPath())
}

// ResolveVersion parses packageName ("groupId:artifactId"), fetches its
// maven-metadata.xml, and returns the coordinate with the selected version
// (see [Metadata.ResolvedVersion]).
//
// Errors carry one of these codes:
//   - INVALID_COORDINATE: packageName is malformed; no request is made
//   - PACKAGE_NOT_FOUND: the metadata request returned 404
//   - HTTP_ERROR: any other non-2xx status
//   - NETWORK_ERROR: the request failed in transport
//   - METADATA_PARSE_ERROR: the body is not well-formed XML
//   - VERSION_NOT_FOUND: no version could be selected
func (c *Client) ResolveVersion(ctx context.Context, packageName string) (Coordinate, error) {
	coord, err := ParseCoordinate(packageName)
	if err != nil {
		return Coordinate{}, err
	}

	url := c.MetadataURL(coord)
	body, err := c.GetText(ctx, url)
	if err != nil {
		return Coordinate{}, classify(err, url, "metadata",
			apperr.New(apperr.ErrCodePackageNotFound, "package %s not found in repository", coord.Name()))
	}

	meta, err := ParseMetadata([]byte(body))
	if err != nil {
		return Coordinate{}, err
	}
	version, ok := meta.ResolvedVersion()
	if !ok {
		return Coordinate{}, apperr.New(apperr.ErrCodeVersionNotFound,
			"could not determine a version for package %s", coord.Name())
	}
	return coord.WithVersion(version), nil
}

// FetchPOM returns the raw POM document for coord, which must carry a version.
//
// Errors carry one of these codes:
//   - POM_NOT_FOUND: the POM request returned 404
//   - HTTP_ERROR: any other non-2xx status
//   - NETWORK_ERROR: the request failed in transport
func (c *Client) FetchPOM(ctx context.Context, coord Coordinate) (string, error) {
	url := c.POMURL(coord)
	body, err := c.GetText(ctx, url)
	if err != nil {
		return "", classify(err, url, "POM",
			apperr.New(apperr.ErrCodePOMNotFound, "POM for %s not found", coord))
	}
	return body, nil
}

// classify maps a transport error onto the error codes of this package.
// notFound is returned as-is for 404 responses.
func classify(err error, url, what string, notFound *apperr.Error) error {
	var se *apperr.StatusError
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		return notFound
	case errors.As(err, &se):
		return apperr.Wrap(apperr.ErrCodeHTTP, se, "%s request to %s failed", what, url)
	default:
		return apperr.Wrap(apperr.ErrCodeNetwork, err, "%s request to %s failed", what, url)
	}
}
