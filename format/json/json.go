// Package json provides a format plugin for JSON output.
package json

import (
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lehigh-university-libraries/findingaid/format"
)

// Format implements the JSON format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "json"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON records, optionally filtered with a jq query"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"json"}
}

// Serialize writes the dataset's structured records as JSON. Object keys
// are emitted in sorted order.
func (f *Format) Serialize(w io.Writer, ds *format.Dataset, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	data, err := format.ApplyQuery(ds.StructuredRecords(), opts.Query)
	if err != nil {
		return err
	}

	value, err := structpb.NewValue(data)
	if err != nil {
		return fmt.Errorf("converting %s to JSON value: %w", ds.Name, err)
	}

	marshal := protojson.MarshalOptions{}
	if opts.Pretty {
		marshal.Multiline = true
		marshal.Indent = "  "
	}
	out, err := marshal.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", ds.Name, err)
	}

	if _, err := w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func init() {
	format.Register(&Format{})
}
