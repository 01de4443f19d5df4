package table

import (
	"github.com/samber/lo"

	"github.com/lehigh-university-libraries/findingaid/ead"
)

// Lookups maps titles to the inventory numbers of the files beneath them,
// in document order.
type Lookups struct {
	Series       map[string][]string `json:"series" yaml:"series"`
	Subseries    map[string][]string `json:"subseries" yaml:"subseries"`
	Subsubseries map[string][]string `json:"subsubseries" yaml:"subsubseries"`
}

// BuildLookups groups records with a canonical id by series title, first
// subseries title and second subseries title.
func BuildLookups(records []ead.FileRecord) Lookups {
	eligible := lo.Filter(records, func(r ead.FileRecord, _ int) bool {
		return r.HasID()
	})

	return Lookups{
		Series: groupIDs(eligible, func(r ead.FileRecord) (string, bool) {
			return r.Series.Title, true
		}),
		Subseries:    groupIDs(eligible, subseriesTitle(0)),
		Subsubseries: groupIDs(eligible, subseriesTitle(1)),
	}
}

func subseriesTitle(level int) func(ead.FileRecord) (string, bool) {
	return func(r ead.FileRecord) (string, bool) {
		if len(r.Subseries) <= level {
			return "", false
		}
		return r.Subseries[level].Title, true
	}
}

func groupIDs(records []ead.FileRecord, key func(ead.FileRecord) (string, bool)) map[string][]string {
	keyed := lo.Filter(records, func(r ead.FileRecord, _ int) bool {
		_, ok := key(r)
		return ok
	})
	groups := lo.GroupBy(keyed, func(r ead.FileRecord) string {
		k, _ := key(r)
		return k
	})
	return lo.MapValues(groups, func(rs []ead.FileRecord, _ string) []string {
		return lo.Map(rs, func(r ead.FileRecord, _ int) string {
			return r.File.ID
		})
	})
}

// Records returns the lookups as nested maps for structured output.
func (l Lookups) Records() map[string]any {
	return map[string]any{
		"series":       l.Series,
		"subseries":    l.Subseries,
		"subsubseries": l.Subsubseries,
	}
}
