package format

import (
	"io"
	"slices"
	"testing"
)

type stubFormat struct {
	name string
	exts []string
}

func (s *stubFormat) Name() string         { return s.name }
func (s *stubFormat) Description() string  { return s.name }
func (s *stubFormat) Extensions() []string { return s.exts }

func (s *stubFormat) Serialize(io.Writer, *Dataset, *SerializeOptions) error { return nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFormat{name: "yaml", exts: []string{"yaml", "yml"}})
	r.Register(&stubFormat{name: "csv", exts: []string{"csv"}})

	if got := r.List(); !slices.Equal(got, []string{"csv", "yaml"}) {
		t.Errorf("List() = %v", got)
	}
	if _, ok := r.Get("CSV"); !ok {
		t.Error("Get should be case-insensitive")
	}
	if _, err := r.GetSerializer("xml"); err == nil {
		t.Error("expected error for unknown format")
	}

	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{"out/table.CSV", "csv", false},
		{"lookups.yml", "yaml", false},
		{"lookups", "", true},
		{"table.xlsx", "", true},
	}
	for _, tt := range tests {
		f, err := r.DetectFormat(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("DetectFormat(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			continue
		}
		if err == nil && f.Name() != tt.want {
			t.Errorf("DetectFormat(%q) = %s, want %s", tt.filename, f.Name(), tt.want)
		}
	}
}

func TestDatasetStructuredRecords(t *testing.T) {
	a := "A"
	ds := &Dataset{Columns: []string{"x", "y"}, Rows: [][]*string{{&a, nil}}}
	recs, ok := ds.StructuredRecords().([]map[string]any)
	if !ok || len(recs) != 1 {
		t.Fatalf("StructuredRecords() = %#v", ds.StructuredRecords())
	}
	if recs[0]["x"] != "A" || recs[0]["y"] != nil {
		t.Errorf("record = %v", recs[0])
	}

	ds.Records = "explicit"
	if ds.StructuredRecords() != "explicit" {
		t.Error("explicit Records should win")
	}
}

func TestStringRows(t *testing.T) {
	rows := StringRows([][]string{{"1", ""}})
	if got := CellStrings(rows[0], "NULL"); !slices.Equal(got, []string{"1", ""}) {
		t.Errorf("CellStrings() = %v", got)
	}
}
