package csv

import (
	"encoding/csv"
	"io"

	"github.com/lehigh-university-libraries/findingaid/format"
)

// Serialize writes the dataset's rows as delimited text.
func (f *Format) Serialize(w io.Writer, ds *format.Dataset, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}
	if !ds.Tabular() {
		return &format.NotTabularError{Format: f.name, Dataset: ds.Name}
	}

	writer := csv.NewWriter(w)
	writer.Comma = f.comma
	if opts.Delimiter != 0 {
		writer.Comma = opts.Delimiter
	}

	// Write header
	if opts.IncludeHeader {
		if err := writer.Write(ds.Columns); err != nil {
			return err
		}
	}

	for _, row := range ds.Rows {
		if err := writer.Write(format.CellStrings(row, opts.NullValue)); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
