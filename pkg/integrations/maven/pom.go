package maven

import (
	"strings"

	"github.com/beevik/etree"

	apperr "github.com/matzehuels/mvndeps/pkg/errors"
)

// POMNamespace is the XML namespace of Maven 4.0.0 POM documents.
const POMNamespace = "http://maven.apache.org/POM/4.0.0"

// UnknownVersion is reported for dependencies that declare no version.
const UnknownVersion = "UNKNOWN"

// Dependency is one entry of a POM <dependencies> block.
type Dependency struct {
	Name       string `json:"name"`    // "groupId:artifactId"
	Version    string `json:"version"` // declared version or UnknownVersion
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
}

// lookups is the order in which element names are matched: first in the
// Maven POM namespace, then without a namespace.
var lookups = []string{POMNamespace, ""}

// ExtractDependencies returns the dependencies declared directly under the
// root's <dependencies> element, in document order.
//
// Elements are matched in the Maven namespace first and without a namespace
// second, so both namespaced and plain POMs are accepted. Entries lacking a
// groupId or artifactId are skipped; entries lacking a version get
// [UnknownVersion]. Scope and optional flags are not filtered and duplicates
// are kept.
//
// A document that is not well-formed XML fails with [apperr.ErrCodePOMParse].
func ExtractDependencies(pom string) ([]Dependency, error) {
	root, err := parsePOM(pom)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodePOMParse, err, "failed to parse POM")
	}

	block := child(root, "dependencies")
	if block == nil {
		return []Dependency{}, nil
	}

	deps := []Dependency{}
	for _, el := range children(block, "dependency") {
		groupID := childText(el, "groupId")
		artifactID := childText(el, "artifactId")
		if groupID == "" || artifactID == "" {
			continue
		}
		version := childText(el, "version")
		if version == "" {
			version = UnknownVersion
		}
		deps = append(deps, Dependency{
			Name:       groupID + ":" + artifactID,
			Version:    version,
			GroupID:    groupID,
			ArtifactID: artifactID,
		})
	}
	return deps, nil
}

// parsePOM checks that pom is a single well-formed document before building
// the element tree, since etree tolerates trailing content and unbound
// prefixes.
func parsePOM(pom string) (*etree.Element, error) {
	data := trimBOM([]byte(pom))
	if err := checkWellFormed(data); err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errNoElement
	}
	return root, nil
}

// children returns the child elements of parent named local under the first
// namespace in lookups that matches at least one child.
func children(parent *etree.Element, local string) []*etree.Element {
	for _, ns := range lookups {
		var found []*etree.Element
		for _, el := range parent.ChildElements() {
			if el.Tag == local && el.NamespaceURI() == ns {
				found = append(found, el)
			}
		}
		if len(found) > 0 {
			return found
		}
	}
	return nil
}

func child(parent *etree.Element, local string) *etree.Element {
	if found := children(parent, local); len(found) > 0 {
		return found[0]
	}
	return nil
}

func childText(parent *etree.Element, local string) string {
	if el := child(parent, local); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}
