// Package table flattens file records into fixed-width rows and builds
// title lookups over them.
package table

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/lehigh-university-libraries/findingaid/ead"
)

// DefaultMaxSubseriesDepth is the number of subseries columns emitted when
// no depth is configured.
const DefaultMaxSubseriesDepth = 2

// Row is one flattened file. A nil cell marks an absent value.
type Row []*string

// Strings renders the row with null in place of absent cells.
func (r Row) Strings(null string) []string {
	out := make([]string, len(r))
	for i, cell := range r {
		if cell == nil {
			out[i] = null
			continue
		}
		out[i] = *cell
	}
	return out
}

// Options configures Build.
type Options struct {
	MaxSubseriesDepth int
}

// Table is the flattened form of a parse result.
type Table struct {
	Columns []string
	Rows    []Row

	// Files is the number of records given to Build.
	Files int

	// WithoutID counts records dropped for lacking a canonical id.
	WithoutID int

	// MultipleFilegroups counts rows whose branch had more than one file
	// group; only the first is kept.
	MultipleFilegroups int
}

// Columns returns the header for a table with depth subseries columns.
func Columns(depth int) []string {
	cols := make([]string, 0, 7+depth)
	cols = append(cols, "series")
	for i := 1; i <= depth; i++ {
		cols = append(cols, "subseries_"+strconv.Itoa(i))
	}
	return append(cols, "filegroup", "filegroup_id", "file", "unitdate", "inventory_num", "mets_file")
}

// Build flattens records into rows of len(Columns(depth)) cells. Records
// without a canonical id are counted and skipped.
func Build(records []ead.FileRecord, opts Options) (*Table, error) {
	depth := opts.MaxSubseriesDepth
	if depth < 0 {
		return nil, fmt.Errorf("max subseries depth must not be negative, got %d", depth)
	}

	eligible := lo.Filter(records, func(r ead.FileRecord, _ int) bool {
		return r.HasID()
	})

	multiple := lo.CountBy(eligible, func(r ead.FileRecord) bool {
		return len(r.Filegroups) > 1
	})

	t := &Table{
		Columns:            Columns(depth),
		Rows:               make([]Row, 0, len(eligible)),
		Files:              len(records),
		WithoutID:          len(records) - len(eligible),
		MultipleFilegroups: multiple,
	}
	for _, r := range eligible {
		t.Rows = append(t.Rows, buildRow(r, depth))
	}
	return t, nil
}

func buildRow(r ead.FileRecord, depth int) Row {
	row := make(Row, 0, 7+depth)
	row = append(row, cell(r.Series.Title))

	subseries := lo.Slice(r.Subseries, 0, depth)
	for _, s := range subseries {
		row = append(row, cell(s.Title))
	}
	for range depth - len(subseries) {
		row = append(row, nil)
	}

	var group ead.Unit
	if len(r.Filegroups) > 0 {
		group = r.Filegroups[0]
	}
	row = append(row, cell(group.Title), cell(group.ID))

	var date string
	if r.File.UnitDate != nil {
		date = r.File.UnitDate.Date
	}
	return append(row,
		cell(r.File.Title),
		cell(date),
		cell(r.File.ID),
		cell(r.File.ManifestRef()),
	)
}

func cell(s string) *string {
	return lo.EmptyableToPtr(s)
}

// Records returns the rows as column-keyed maps, with nil for absent cells.
func (t *Table) Records() []map[string]any {
	return lo.Map(t.Rows, func(row Row, _ int) map[string]any {
		rec := make(map[string]any, len(t.Columns))
		for i, col := range t.Columns {
			if row[i] == nil {
				rec[col] = nil
				continue
			}
			rec[col] = *row[i]
		}
		return rec
	})
}
