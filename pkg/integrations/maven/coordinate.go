package maven

import (
	"strings"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
)

// Coordinate identifies a Maven artifact. Version is empty until resolved.
type Coordinate struct {
	GroupID    string `json:"group_id"`    // e.g. "org.springframework"
	ArtifactID string `json:"artifact_id"` // e.g. "spring-core"
	Version    string `json:"version,omitempty"`
}

// ParseCoordinate splits a "groupId:artifactId" package name.
// The name must have exactly two non-empty colon-separated segments;
// anything else fails with [apperr.ErrCodeInvalidCoordinate].
func ParseCoordinate(name string) (Coordinate, error) {
	parts := strings.Split(name, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinate{}, apperr.New(apperr.ErrCodeInvalidCoordinate,
			"invalid package name %q (expected groupId:artifactId)", name)
	}
	return Coordinate{GroupID: parts[0], ArtifactID: parts[1]}, nil
}

// Name returns "groupId:artifactId".
func (c Coordinate) Name() string {
	return c.GroupID + ":" + c.ArtifactID
}

// String returns "groupId:artifactId[:version]".
func (c Coordinate) String() string {
	if c.Version == "" {
		return c.Name()
	}
	return c.Name() + ":" + c.Version
}

// WithVersion returns a copy of c pinned to version.
func (c Coordinate) WithVersion(version string) Coordinate {
	c.Version = version
	return c
}

// GroupPath returns the group id as a repository path ("org.a.b" -> "org/a/b").
func (c Coordinate) GroupPath() string {
	return strings.ReplaceAll(c.GroupID, ".", "/")
}

// MetadataPath returns the repository-relative path of maven-metadata.xml.
func (c Coordinate) MetadataPath() string {
	return c.GroupPath() + "/" + c.ArtifactID + "/maven-metadata.xml"
}

// POMPath returns the repository-relative path of the POM for c.Version.
func (c Coordinate) POMPath() string {
	return c.GroupPath() + "/" + c.ArtifactID + "/" + c.Version + "/" + c.ArtifactID + "-" + c.Version + ".pom"
}
