// Package yaml provides a format plugin for YAML output.
package yaml

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/findingaid/format"
)

// Format implements the YAML format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "yaml"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "YAML records, optionally filtered with a jq query"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"yaml", "yml"}
}

// Serialize writes the dataset's structured records as a YAML document.
func (f *Format) Serialize(w io.Writer, ds *format.Dataset, opts *format.SerializeOptions) error {
	if opts == nil {
		opts = format.NewSerializeOptions()
	}

	data, err := format.ApplyQuery(ds.StructuredRecords(), opts.Query)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding %s: %w", ds.Name, err)
	}
	return enc.Close()
}

func init() {
	format.Register(&Format{})
}
