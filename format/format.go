// Package format defines the interface for output format plugins.
package format

import (
	"fmt"
	"io"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "csv", "json", "table")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// Serializer is a format that can write a dataset to output.
type Serializer interface {
	Format

	// Serialize writes the dataset to the output.
	Serialize(w io.Writer, ds *Dataset, opts *SerializeOptions) error
}

// Dataset is the data handed to a serializer. Tabular formats render
// Columns and Rows; structured formats render Records.
type Dataset struct {
	// Name identifies the dataset in error messages (e.g., "table", "lookups")
	Name string

	Columns []string

	// Rows holds one cell per column. A nil cell is an absent value.
	Rows [][]*string

	// Records is the structured form of the data. Structured formats fall
	// back to column-keyed rows when it is nil.
	Records any
}

// Tabular reports whether the dataset has a column layout.
func (ds *Dataset) Tabular() bool {
	return len(ds.Columns) > 0
}

// StructuredRecords returns Records, or the rows keyed by column when no
// structured form was supplied.
func (ds *Dataset) StructuredRecords() any {
	if ds.Records != nil {
		return ds.Records
	}
	out := make([]map[string]any, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		rec := make(map[string]any, len(ds.Columns))
		for i, col := range ds.Columns {
			if i >= len(row) || row[i] == nil {
				rec[col] = nil
				continue
			}
			rec[col] = *row[i]
		}
		out = append(out, rec)
	}
	return out
}

// CellStrings renders a row, substituting null for absent cells.
func CellStrings(row []*string, null string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		if cell == nil {
			out[i] = null
			continue
		}
		out[i] = *cell
	}
	return out
}

// StringRows converts plain string rows into dataset rows. Empty strings
// stay present.
func StringRows(rows [][]string) [][]*string {
	out := make([][]*string, len(rows))
	for i, row := range rows {
		cells := make([]*string, len(row))
		for j := range row {
			cells[j] = &row[j]
		}
		out[i] = cells
	}
	return out
}

// NotTabularError is returned by tabular serializers given a dataset
// without columns.
type NotTabularError struct {
	Format  string
	Dataset string
}

func (e *NotTabularError) Error() string {
	return fmt.Sprintf("format %s needs tabular data, %s has no columns", e.Format, e.Dataset)
}

// SerializeOptions contains options for serialization.
type SerializeOptions struct {
	// Delimiter overrides the field separator of delimited formats
	Delimiter rune

	// NullValue is written for absent cells (for tabular formats)
	NullValue string

	// IncludeHeader includes a header row (for tabular formats)
	IncludeHeader bool

	// Pretty enables indented output (for structured formats)
	Pretty bool

	// Query is a jq expression applied to structured output
	Query string
}

// NewSerializeOptions creates SerializeOptions with defaults.
func NewSerializeOptions() *SerializeOptions {
	return &SerializeOptions{
		IncludeHeader: true,
		Pretty:        true,
	}
}
