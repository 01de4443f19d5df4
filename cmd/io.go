package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/findingaid/ead"
	"github.com/lehigh-university-libraries/findingaid/format"
)

// readDocument parses the finding aid at path, or stdin when path is empty.
func readDocument(path string) (*etree.Document, string, error) {
	if path == "" {
		doc, err := ead.Read(os.Stdin)
		return doc, "stdin", err
	}
	doc, err := ead.ReadFile(path)
	return doc, path, err
}

// writeOutput calls write with the file at path, or stdout when path is
// empty.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return write(f)
}

// chooseSerializer resolves the output format: an explicit name wins, then
// the output file's extension, then table for terminals and tsv otherwise.
func chooseSerializer(name, outputPath string) (format.Serializer, error) {
	if name != "" {
		return format.GetSerializer(name)
	}
	if outputPath != "" {
		f, err := format.DetectFormat(outputPath)
		if err != nil {
			return nil, fmt.Errorf("%w (use --format)", err)
		}
		return format.GetSerializer(f.Name())
	}
	if isTerminal(os.Stdout) {
		return format.GetSerializer("table")
	}
	return format.GetSerializer("tsv")
}

// serialize writes ds to path with s.
func serialize(path string, s format.Serializer, ds *format.Dataset, opts *format.SerializeOptions) error {
	return writeOutput(path, func(w io.Writer) error {
		if err := s.Serialize(w, ds, opts); err != nil {
			return fmt.Errorf("writing %s as %s: %w", ds.Name, s.Name(), err)
		}
		return nil
	})
}
