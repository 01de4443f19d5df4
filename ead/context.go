package ead

import (
	"maps"
	"slices"
	"strings"
)

// Unit is the title and identifier of one ancestor level.
// An empty ID means the source had no usable unitid.
type Unit struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
}

// Context accumulates ancestor titles and ids on the way down to a file.
//
// Context is a value: the With* methods return a modified copy and never
// touch the receiver, so a branch can hand its context to every child
// without one child's additions leaking into its siblings.
type Context struct {
	Series     Unit              `json:"series" yaml:"series"`
	Subseries  []Unit            `json:"subseries,omitempty" yaml:"subseries,omitempty"`
	Filegroups []Unit            `json:"filegroups,omitempty" yaml:"filegroups,omitempty"`
	Odd        string            `json:"odd,omitempty" yaml:"odd,omitempty"`
	Notes      map[string]string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Clone returns a deep copy of c.
func (c Context) Clone() Context {
	return Context{
		Series:     c.Series,
		Subseries:  slices.Clone(c.Subseries),
		Filegroups: slices.Clone(c.Filegroups),
		Odd:        c.Odd,
		Notes:      maps.Clone(c.Notes),
	}
}

// WithSubseries returns a copy of c with u appended to the subseries chain.
func (c Context) WithSubseries(u Unit) Context {
	next := c.Clone()
	next.Subseries = append(next.Subseries, u)
	return next
}

// WithFilegroup returns a copy of c with u appended to the file groups.
func (c Context) WithFilegroup(u Unit) Context {
	next := c.Clone()
	next.Filegroups = append(next.Filegroups, u)
	return next
}

// WithOdd returns a copy of c carrying the odd annotation text.
func (c Context) WithOdd(text string) Context {
	next := c.Clone()
	next.Odd = text
	return next
}

// WithNote returns a copy of c with the note for tag set to text.
func (c Context) WithNote(tag, text string) Context {
	next := c.Clone()
	if next.Notes == nil {
		next.Notes = make(map[string]string)
	}
	next.Notes[tag] = text
	return next
}

// Path renders the ancestor titles for diagnostics, e.g.
// "Correspondence > Incoming > Batavia".
func (c Context) Path() string {
	parts := make([]string, 0, 1+len(c.Subseries)+len(c.Filegroups))
	if c.Series.Title != "" {
		parts = append(parts, c.Series.Title)
	}
	for _, u := range c.Subseries {
		parts = append(parts, u.Title)
	}
	for _, u := range c.Filegroups {
		parts = append(parts, u.Title)
	}
	return strings.Join(parts, " > ")
}
