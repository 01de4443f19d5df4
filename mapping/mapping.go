// Package mapping provides conversion profiles that tune how finding aids
// are classified and flattened.
package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/findingaid/ead"
	"github.com/lehigh-university-libraries/findingaid/table"
)

// Profile represents a complete conversion configuration for one archive's
// finding aids.
type Profile struct {
	// Name is the profile identifier
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Table controls the flattened output
	Table TableOptions `yaml:"table,omitempty" json:"table,omitempty"`

	// Identifiers controls unitid classification
	Identifiers IdentifierOptions `yaml:"identifiers,omitempty" json:"identifiers,omitempty"`
}

// TableOptions configures the flattened table.
type TableOptions struct {
	// MaxSubseriesDepth is the number of subseries columns. Unset means
	// table.DefaultMaxSubseriesDepth.
	MaxSubseriesDepth *int `yaml:"max_subseries_depth,omitempty" json:"max_subseries_depth,omitempty"`

	// NullValue is written for absent cells in delimited output
	NullValue string `yaml:"null_value,omitempty" json:"null_value,omitempty"`

	// Delimiter overrides the field separator ("tab" or a single character)
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`
}

// IdentifierOptions configures unitid classification.
type IdentifierOptions struct {
	// CanonicalType is the type attribute of inventory numbers (default "ABS")
	CanonicalType string `yaml:"canonical_type,omitempty" json:"canonical_type,omitempty"`

	// HandleType is the type attribute of persistent handles (default "handle")
	HandleType string `yaml:"handle_type,omitempty" json:"handle_type,omitempty"`

	// IgnoredTypes are type values dropped without error, added to the
	// built-in set
	IgnoredTypes []string `yaml:"ignored_types,omitempty" json:"ignored_types,omitempty"`
}

// Depth returns the configured subseries depth with a default.
func (p *Profile) Depth() int {
	if p.Table.MaxSubseriesDepth != nil {
		return *p.Table.MaxSubseriesDepth
	}
	return table.DefaultMaxSubseriesDepth
}

// DelimiterRune returns the configured delimiter, or 0 when unset.
func (p *Profile) DelimiterRune() (rune, error) {
	switch d := p.Table.Delimiter; {
	case d == "":
		return 0, nil
	case d == "tab" || d == `\t`:
		return '\t', nil
	case utf8.RuneCountInString(d) == 1:
		r, _ := utf8.DecodeRuneInString(d)
		return r, nil
	default:
		return 0, fmt.Errorf("delimiter %q must be a single character or \"tab\"", d)
	}
}

// Classifier builds the unitid classifier described by the profile.
func (p *Profile) Classifier() *ead.Classifier {
	c := ead.DefaultClassifier()
	if p.Identifiers.CanonicalType != "" {
		c.CanonicalType = p.Identifiers.CanonicalType
	}
	if p.Identifiers.HandleType != "" {
		c.HandleType = p.Identifiers.HandleType
	}
	for _, t := range p.Identifiers.IgnoredTypes {
		c.Ignored[t] = true
	}
	return &c
}

// Validate reports configuration errors.
func (p *Profile) Validate() error {
	var errs []error
	if p.Depth() < 0 {
		errs = append(errs, fmt.Errorf("table.max_subseries_depth must not be negative, got %d", p.Depth()))
	}
	if _, err := p.DelimiterRune(); err != nil {
		errs = append(errs, fmt.Errorf("table.delimiter: %w", err))
	}
	c := p.Classifier()
	if c.CanonicalType == c.HandleType {
		errs = append(errs, fmt.Errorf("identifiers: canonical_type and handle_type are both %q", c.CanonicalType))
	}
	if c.Ignored[c.CanonicalType] {
		errs = append(errs, fmt.Errorf("identifiers: canonical_type %q is listed in ignored_types", c.CanonicalType))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return nil
}

// MergeProfiles merges a custom profile over a base profile.
// Fields set in custom override base fields; ignored types accumulate.
func MergeProfiles(base, custom *Profile) *Profile {
	merged := &Profile{
		Name:        custom.Name,
		Description: custom.Description,
		Table:       base.Table,
		Identifiers: base.Identifiers,
	}

	if merged.Name == "" {
		merged.Name = base.Name
	}
	if merged.Description == "" {
		merged.Description = base.Description
	}

	if custom.Table.MaxSubseriesDepth != nil {
		depth := *custom.Table.MaxSubseriesDepth
		merged.Table.MaxSubseriesDepth = &depth
	}
	if custom.Table.NullValue != "" {
		merged.Table.NullValue = custom.Table.NullValue
	}
	if custom.Table.Delimiter != "" {
		merged.Table.Delimiter = custom.Table.Delimiter
	}

	if custom.Identifiers.CanonicalType != "" {
		merged.Identifiers.CanonicalType = custom.Identifiers.CanonicalType
	}
	if custom.Identifiers.HandleType != "" {
		merged.Identifiers.HandleType = custom.Identifiers.HandleType
	}

	ignored := make(map[string]bool)
	for _, t := range base.Identifiers.IgnoredTypes {
		ignored[t] = true
	}
	for _, t := range custom.Identifiers.IgnoredTypes {
		ignored[t] = true
	}
	merged.Identifiers.IgnoredTypes = slices.Sorted(maps.Keys(ignored))
	if len(merged.Identifiers.IgnoredTypes) == 0 {
		merged.Identifiers.IgnoredTypes = nil
	}

	return merged
}
