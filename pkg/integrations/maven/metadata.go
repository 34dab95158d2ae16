package maven

import (
	"strings"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
)

// Metadata is the subset of maven-metadata.xml used for version selection.
type Metadata struct {
	GroupID    string      `xml:"groupId"`
	ArtifactID string      `xml:"artifactId"`
	Versioning *Versioning `xml:"versioning"`
}

// Versioning is the <versioning> block of maven-metadata.xml.
type Versioning struct {
	Latest      string   `xml:"latest"`
	Release     string   `xml:"release"`
	Versions    []string `xml:"versions>version"`
	LastUpdated string   `xml:"lastUpdated"`
}

// ParseMetadata decodes a maven-metadata.xml document. Text values are
// trimmed of surrounding whitespace. A document that is not well-formed XML
// fails with [apperr.ErrCodeMetadataParse].
func ParseMetadata(data []byte) (*Metadata, error) {
	if err := checkWellFormed(data); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeMetadataParse, err, "failed to parse maven metadata")
	}
	var m Metadata
	if err := newDecoder(data).Decode(&m); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeMetadataParse, err, "failed to parse maven metadata")
	}

	if v := m.Versioning; v != nil {
		v.Latest = strings.TrimSpace(v.Latest)
		v.Release = strings.TrimSpace(v.Release)
		for i := range v.Versions {
			v.Versions[i] = strings.TrimSpace(v.Versions[i])
		}
	}
	return &m, nil
}

// ResolvedVersion selects one version, first match wins:
//  1. versioning/latest
//  2. versioning/release
//  3. the highest of versioning/versions/version by [VersionKey]
//
// Returns false when no rule yields a version.
func (m *Metadata) ResolvedVersion() (string, bool) {
	v := m.Versioning
	if v == nil {
		return "", false
	}
	if v.Latest != "" {
		return v.Latest, true
	}
	if v.Release != "" {
		return v.Release, true
	}
	return LatestVersion(v.Versions)
}
