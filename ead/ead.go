// Package ead flattens EAD finding aids into per-file records.
//
// The walker descends archdesc/dsc depth first. Every level carries the
// titles and identifiers of its ancestors in a Context that is copied on
// descent, so sibling branches never observe each other's additions.
// Elements the grammar does not expect abort the run with a
// *StructureError; recoverable oddities are returned as Diagnostics.
package ead

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/findingaid/helpers"
)

// Read parses an EAD document from r.
func Read(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parsing EAD XML: %w", err)
	}
	return doc, nil
}

// ReadFile parses the EAD document at path.
func ReadFile(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("parsing EAD file %s: %w", path, err)
	}
	return doc, nil
}

// Description returns the dsc element of the first archdesc under the root.
func Description(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrNoDescription)
	}
	for _, archdesc := range root.ChildElements() {
		if archdesc.Tag != "archdesc" {
			continue
		}
		for _, child := range archdesc.ChildElements() {
			if child.Tag == "dsc" {
				return child, nil
			}
		}
	}
	return nil, ErrNoDescription
}

// attrs returns the element attributes keyed by local name, so xlink:href
// and href are both visible as "href".
func attrs(el *etree.Element) map[string]string {
	if len(el.Attr) == 0 {
		return nil
	}
	m := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		m[a.Key] = a.Value
	}
	return m
}

// attr returns the value of the attribute with the given local name.
func attr(el *etree.Element, key string) (string, bool) {
	for _, a := range el.Attr {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// innerText returns all character data below el, normalized.
func innerText(el *etree.Element) string {
	var sb strings.Builder
	collectText(el, &sb)
	return helpers.NormalizeText(sb.String())
}

func collectText(el *etree.Element, sb *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			collectText(t, sb)
		}
	}
}

// leadingText returns the character data before the first child element.
func leadingText(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		if _, ok := tok.(*etree.Element); ok {
			break
		}
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return helpers.NormalizeText(sb.String())
}

// ownText returns only the character data directly inside el.
func ownText(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	return helpers.NormalizeText(sb.String())
}
