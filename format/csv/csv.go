// Package csv provides format plugins for delimited text output.
package csv

import (
	"github.com/lehigh-university-libraries/findingaid/format"
)

// Format implements a delimited text format.
type Format struct {
	name  string
	desc  string
	ext   string
	comma rune
}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// New returns the comma-separated format.
func New() *Format {
	return &Format{name: "csv", desc: "Comma-separated values", ext: "csv", comma: ','}
}

// NewTSV returns the tab-separated format.
func NewTSV() *Format {
	return &Format{name: "tsv", desc: "Tab-separated values", ext: "tsv", comma: '\t'}
}

// Name returns the format identifier.
func (f *Format) Name() string {
	return f.name
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return f.desc
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{f.ext}
}

func init() {
	format.Register(New())
	format.Register(NewTSV())
}
