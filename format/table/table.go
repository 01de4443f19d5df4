// Package table provides a format plugin for aligned plain-text tables.
package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/lehigh-university-libraries/findingaid/format"
	"github.com/lehigh-university-libraries/findingaid/helpers"
)

// maxCellWidth bounds each cell so long titles do not push later columns
// off screen.
const maxCellWidth = 48

// Format implements the terminal table format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "table"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Aligned plain-text table for terminals"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"txt"}
}

// Serialize writes the dataset's rows as tab-aligned columns.
func (f *Format) Serialize(w io.Writer, ds *format.Dataset, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}
	if !ds.Tabular() {
		return &format.NotTabularError{Format: f.Name(), Dataset: ds.Name}
	}

	null := opts.NullValue
	if null == "" {
		null = "-"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if opts.IncludeHeader {
		header := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			header[i] = strings.ToUpper(col)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
			return err
		}
	}

	for _, row := range ds.Rows {
		cells := format.CellStrings(row, null)
		for i, c := range cells {
			cells[i] = helpers.TruncateText(strings.ReplaceAll(c, "\t", " "), maxCellWidth)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func init() {
	format.Register(&Format{})
}
