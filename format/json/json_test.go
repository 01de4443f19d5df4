package json

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/lehigh-university-libraries/findingaid/format"
)

func str(s string) *string { return &s }

func decode(t *testing.T, data []byte) any {
	t.Helper()
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, data)
	}
	return v
}

func TestSerializeRows(t *testing.T) {
	ds := &format.Dataset{
		Name:    "table",
		Columns: []string{"series", "subseries_1", "inventory_num"},
		Rows:    [][]*string{{str("Correspondence"), nil, str("1")}},
	}

	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, ds, nil); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	want := []any{map[string]any{
		"series":        "Correspondence",
		"subseries_1":   nil,
		"inventory_num": "1",
	}}
	if got := decode(t, buf.Bytes()); !reflect.DeepEqual(got, want) {
		t.Errorf("Serialize() = %#v, want %#v", got, want)
	}
}

func TestSerializeQuery(t *testing.T) {
	type lookups struct {
		Series map[string][]string `json:"series"`
	}
	ds := &format.Dataset{
		Name: "lookups",
		Records: lookups{Series: map[string][]string{
			"Correspondence": {"1", "2"},
			"Minutes":        {"3"},
		}},
	}

	tests := []struct {
		name  string
		query string
		want  any
	}{
		{"no query", "", map[string]any{"series": map[string]any{
			"Correspondence": []any{"1", "2"},
			"Minutes":        []any{"3"},
		}}},
		{"single result", `.series.Minutes`, []any{"3"}},
		{"multiple results", `.series[] | length`, []any{float64(2), float64(1)}},
		{"no results", `.series[] | select(length > 5)`, []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := &format.SerializeOptions{Query: tt.query}
			if err := (&Format{}).Serialize(&buf, ds, opts); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if got := decode(t, buf.Bytes()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Serialize() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestSerializeInvalidQuery(t *testing.T) {
	ds := &format.Dataset{Name: "lookups", Records: map[string]any{}}
	var buf bytes.Buffer
	if err := (&Format{}).Serialize(&buf, ds, &format.SerializeOptions{Query: ".[["}); err == nil {
		t.Error("expected error for invalid query")
	}
}
