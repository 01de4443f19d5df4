package ead

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNoDescription is returned when the document has no archdesc/dsc.
	ErrNoDescription = errors.New("no archdesc/dsc element found")

	// ErrUnexpectedElement marks an element the grammar of its parent
	// level does not allow.
	ErrUnexpectedElement = errors.New("unexpected element")

	// ErrUnknownIdentifierType marks a unitid whose type attribute has no
	// known role.
	ErrUnknownIdentifierType = errors.New("unknown unitid type")

	// ErrMissingLevel marks a component (c) without a level attribute where
	// one is required.
	ErrMissingLevel = errors.New("component without level attribute")
)

// StructureError reports an element that violates the finding aid grammar.
// It carries the offending element and the context accumulated so far.
type StructureError struct {
	// Level is the structural level being parsed (series, subseries, ...).
	Level string

	// Tag and Attrs describe the offending element.
	Tag   string
	Attrs map[string]string

	// Context is the ancestor context at the point of failure.
	Context Context

	Err error
}

func (e *StructureError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %v <%s", e.Level, e.Err, e.Tag)

	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%q", k, e.Attrs[k])
	}
	sb.WriteString(">")

	if path := e.Context.Path(); path != "" {
		fmt.Fprintf(&sb, " in %s", path)
	}
	return sb.String()
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
