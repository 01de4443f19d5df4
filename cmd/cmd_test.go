package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/findingaid/ead"
	"github.com/lehigh-university-libraries/findingaid/format"
	"github.com/lehigh-university-libraries/findingaid/mapping"
	"github.com/lehigh-university-libraries/findingaid/profile"
	"github.com/lehigh-university-libraries/findingaid/table"
)

const sampleEAD = `<ead><archdesc><dsc>
<c level="series">
  <did><unittitle>Correspondence</unittitle><unitid>1</unitid></did>
  <c level="subseries">
    <did><unittitle>Incoming</unittitle><unitid>1.1</unitid></did>
    <c level="file">
      <did>
        <unittitle>Letter A</unittitle>
        <unitid type="ABS">1</unitid>
        <unitid type="handle">hdl:10648/a</unitid>
        <unitdate normal="1900">1900</unitdate>
        <dao role="METS" href="https://example.org/mets/1.xml"/>
      </did>
    </c>
  </c>
</c>
</dsc></archdesc></ead>`

func TestChooseSerializer(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		output  string
		want    string
		wantErr bool
	}{
		{"explicit format wins", "yaml", "out.csv", "yaml", false},
		{"extension", "", "out.csv", "csv", false},
		{"tsv extension", "", "out.tsv", "tsv", false},
		{"yml extension", "", "out.yml", "yaml", false},
		{"unknown extension", "", "out.xlsx", "", true},
		{"unknown format", "xml", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := chooseSerializer(tt.format, tt.output)
			if (err != nil) != tt.wantErr {
				t.Fatalf("chooseSerializer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && s.Name() != tt.want {
				t.Errorf("chooseSerializer() = %s, want %s", s.Name(), tt.want)
			}
		})
	}
}

func TestLoadProfilePrecedence(t *testing.T) {
	dir := t.TempDir()
	profile.SetConfigDir(dir)
	t.Cleanup(func() { profile.SetConfigDir("") })

	depth := 5
	if err := profile.Save(&mapping.Profile{Name: "deep", Table: mapping.TableOptions{MaxSubseriesDepth: &depth}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	file := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(file, []byte("name: custom\ntable:\n  max_subseries_depth: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		profile   string
		file      string
		wantName  string
		wantDepth int
	}{
		{"default", "", "", "default", 2},
		{"embedded", "spreadsheet", "", "spreadsheet", 2},
		{"user shadows embedded", "deep", "", "deep", 5},
		{"file wins", "deep", file, "custom", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := loadProfile(tt.profile, tt.file)
			if err != nil {
				t.Fatalf("loadProfile failed: %v", err)
			}
			if p.Name != tt.wantName || p.Depth() != tt.wantDepth {
				t.Errorf("loadProfile() = %s depth %d, want %s depth %d", p.Name, p.Depth(), tt.wantName, tt.wantDepth)
			}
			if p.Classifier().CanonicalType != "ABS" {
				t.Errorf("CanonicalType = %q, want ABS from defaults", p.Classifier().CanonicalType)
			}
		})
	}

	if _, err := loadProfile("missing", ""); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestFlattenPipeline(t *testing.T) {
	doc, err := ead.Read(strings.NewReader(sampleEAD))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	res, err := ead.Parse(doc, nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	tbl, err := table.Build(res.Files, table.Options{MaxSubseriesDepth: 2})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	s, err := format.GetSerializer("tsv")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := s.Serialize(&buf, tableDataset(tbl), &format.SerializeOptions{IncludeHeader: true, NullValue: "NULL"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	want := "series\tsubseries_1\tsubseries_2\tfilegroup\tfilegroup_id\tfile\tunitdate\tinventory_num\tmets_file\n" +
		"Correspondence\tIncoming\tNULL\tNULL\tNULL\tLetter A\t1900\t1\thttps://example.org/mets/1.xml\n"
	if got := buf.String(); got != want {
		t.Errorf("tsv =\n%q\nwant\n%q", got, want)
	}
}

func TestWriteLookups(t *testing.T) {
	res, err := ead.ParseReader(strings.NewReader(sampleEAD), nil)
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	lookups := table.BuildLookups(res.Files)

	dir := t.TempDir()
	for _, name := range []string{"lookups.json", "lookups.yaml", "lookups"} {
		path := filepath.Join(dir, name)
		if err := writeLookups(path, lookups); err != nil {
			t.Fatalf("writeLookups(%s) failed: %v", name, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "Incoming") {
			t.Errorf("%s missing subseries key:\n%s", name, data)
		}
	}

	if err := writeLookups(filepath.Join(dir, "lookups.csv"), lookups); err == nil {
		t.Error("expected error writing lookups as csv")
	}
}

func TestDatesDataset(t *testing.T) {
	doc, err := ead.Read(strings.NewReader(sampleEAD))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	export, err := ead.ExtractDates(doc, nil)
	if err != nil {
		t.Fatalf("ExtractDates failed: %v", err)
	}

	ds := datesDataset(export)
	if len(ds.Rows) != 1 || len(ds.Rows[0]) != len(ead.DateColumns) {
		t.Fatalf("unexpected rows: %v", ds.Rows)
	}
	got := format.CellStrings(ds.Rows[0], "")
	want := []string{"1", "Letter A", "hdl:10648/a", "1900", "1900", "1900", "1900"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %q, want %q", ead.DateColumns[i], got[i], want[i])
		}
	}
}
