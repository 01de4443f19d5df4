package ead

import "testing"

func TestContextWithSubseriesDoesNotShareBacking(t *testing.T) {
	// Spare capacity would let a naive append write into the parent's array.
	base := Context{
		Series:    Unit{Title: "Correspondence", ID: "1"},
		Subseries: make([]Unit, 1, 8),
	}
	base.Subseries[0] = Unit{Title: "Incoming"}

	a := base.WithSubseries(Unit{Title: "Batavia"})
	b := base.WithSubseries(Unit{Title: "Ceylon"})

	if len(base.Subseries) != 1 {
		t.Errorf("base changed: %v", base.Subseries)
	}
	if a.Subseries[1].Title != "Batavia" {
		t.Errorf("a.Subseries[1] = %q, want Batavia", a.Subseries[1].Title)
	}
	if b.Subseries[1].Title != "Ceylon" {
		t.Errorf("b.Subseries[1] = %q, want Ceylon", b.Subseries[1].Title)
	}
}

func TestContextWithNoteIsolated(t *testing.T) {
	base := Context{}.WithNote("odd", "first")
	a := base.WithNote("phystech", "damaged")
	b := base.WithNote("odd", "second")

	if _, ok := base.Notes["phystech"]; ok {
		t.Error("base saw a's note")
	}
	if base.Notes["odd"] != "first" {
		t.Errorf("base odd = %q, want first", base.Notes["odd"])
	}
	if a.Notes["odd"] != "first" {
		t.Errorf("a odd = %q, want first", a.Notes["odd"])
	}
	if b.Notes["odd"] != "second" {
		t.Errorf("b odd = %q, want second", b.Notes["odd"])
	}
}

func TestContextWithFilegroupAndOdd(t *testing.T) {
	base := Context{Series: Unit{Title: "S"}}
	next := base.WithFilegroup(Unit{Title: "Group", ID: "1-5"}).WithOdd("note")

	if len(base.Filegroups) != 0 || base.Odd != "" {
		t.Errorf("base changed: %+v", base)
	}
	if len(next.Filegroups) != 1 || next.Filegroups[0].ID != "1-5" {
		t.Errorf("Filegroups = %+v", next.Filegroups)
	}
	if next.Odd != "note" {
		t.Errorf("Odd = %q, want note", next.Odd)
	}
}

func TestContextPath(t *testing.T) {
	ctx := Context{
		Series:     Unit{Title: "Correspondence"},
		Subseries:  []Unit{{Title: "Incoming"}, {Title: "Batavia"}},
		Filegroups: []Unit{{Title: "Bundle 3"}},
	}
	want := "Correspondence > Incoming > Batavia > Bundle 3"
	if got := ctx.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
	if got := (Context{}).Path(); got != "" {
		t.Errorf("empty Path() = %q", got)
	}
}
