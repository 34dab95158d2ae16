package maven

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// xmlNamespace is bound to the "xml" prefix in every document.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

var (
	errNoElement = errors.New("no element found")
	errJunk      = errors.New("junk after document element")
)

var utf8BOM = []byte("\xef\xbb\xbf")

// trimBOM drops a leading UTF-8 byte-order mark.
func trimBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

func newDecoder(data []byte) *xml.Decoder {
	d := xml.NewDecoder(bytes.NewReader(trimBOM(data)))
	// Bodies are read as text already; the declared encoding is not re-applied.
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return d
}

// checkWellFormed reads data to the end and reports the first syntax error,
// unbalanced tag, unbound namespace prefix, or content outside a single root
// element.
func checkWellFormed(data []byte) error {
	d := newDecoder(data)
	var scopes []map[string]bool // namespace URIs in scope, one per open element
	seenRoot := false
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			if !seenRoot {
				return errNoElement
			}
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if seenRoot && len(scopes) == 0 {
				return fmt.Errorf("%w: <%s>", errJunk, t.Name.Local)
			}
			seenRoot = true
			var parent map[string]bool
			if len(scopes) > 0 {
				parent = scopes[len(scopes)-1]
			}
			scope := declare(parent, t.Attr)
			if err := checkBound(scope, t); err != nil {
				return err
			}
			scopes = append(scopes, scope)
		case xml.EndElement:
			scopes = scopes[:len(scopes)-1]
		case xml.CharData:
			if len(scopes) == 0 && len(bytes.TrimSpace(t)) > 0 {
				if seenRoot {
					return errJunk
				}
				return errors.New("text before document element")
			}
		}
	}
}

// declare returns parent extended with the namespaces declared in attrs.
func declare(parent map[string]bool, attrs []xml.Attr) map[string]bool {
	scope, copied := parent, false
	for _, a := range attrs {
		if !isNamespaceDecl(a.Name) || a.Value == "" {
			continue
		}
		if !copied {
			scope = make(map[string]bool, len(parent)+1)
			for uri := range parent {
				scope[uri] = true
			}
			copied = true
		}
		scope[a.Value] = true
	}
	return scope
}

// checkBound fails if the element or one of its attributes uses a prefix
// without a matching declaration. The decoder leaves such prefixes in
// Name.Space untranslated.
func checkBound(scope map[string]bool, el xml.StartElement) error {
	names := []xml.Name{el.Name}
	for _, a := range el.Attr {
		if !isNamespaceDecl(a.Name) {
			names = append(names, a.Name)
		}
	}
	for _, n := range names {
		if n.Space == "" || n.Space == xmlNamespace || scope[n.Space] {
			continue
		}
		return fmt.Errorf("unbound prefix %q on <%s>", n.Space, el.Name.Local)
	}
	return nil
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
