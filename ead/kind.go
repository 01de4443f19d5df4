package ead

import "github.com/beevik/etree"

// Kind is the structural role of a child element within its parent level.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindDid
	KindSeries
	KindSubseries
	KindFileGroup
	KindFile
	KindAnnotation
	KindIgnorable

	// KindSkipped is a component with a level its parent tolerates but
	// does not descend into.
	KindSkipped
)

func (k Kind) String() string {
	switch k {
	case KindDid:
		return "did"
	case KindSeries:
		return "series"
	case KindSubseries:
		return "subseries"
	case KindFileGroup:
		return "filegroup"
	case KindFile:
		return "file"
	case KindAnnotation:
		return "annotation"
	case KindIgnorable:
		return "ignorable"
	case KindSkipped:
		return "skipped"
	default:
		return "unrecognized"
	}
}

// narrativeTags carry no structural payload at any level.
var narrativeTags = []string{
	"bioghist", "custodhist", "head", "p", "note", "list", "item",
	"processinfo", "lb", "arrangement", "scopecontent",
	"separatedmaterial", "relatedmaterial",
}

// grammar is the closed set of children one level accepts besides did and
// the components it descends into.
type grammar struct {
	name string

	// components lists the component kinds the level descends into.
	components map[Kind]bool

	// annotations are parsed for their text.
	annotations map[string]bool

	// ignorable are matched and discarded.
	ignorable map[string]bool

	// skipOtherLevels tolerates components with any other level.
	skipOtherLevels bool
}

func set(tags ...string) map[string]bool {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return m
}

func kinds(ks ...Kind) map[Kind]bool {
	m := make(map[Kind]bool, len(ks))
	for _, k := range ks {
		m[k] = true
	}
	return m
}

var (
	seriesGrammar = grammar{
		name:        "series",
		components:  kinds(KindSeries, KindSubseries, KindFileGroup, KindFile),
		annotations: set("odd"),
		ignorable:   set(append([]string{"userestrict"}, narrativeTags...)...),
	}

	subseriesGrammar = grammar{
		name:            "subseries",
		components:      kinds(KindSubseries, KindFileGroup, KindFile),
		annotations:     set("odd", "otherfindaid"),
		ignorable:       set(narrativeTags...),
		skipOtherLevels: true,
	}

	filegroupGrammar = grammar{
		name:       "filegroup",
		components: kinds(KindFileGroup, KindFile),
		annotations: set("odd", "otherfindaid", "scopecontent", "phystech", "altformavail",
			"separatedmaterial", "bioghist", "bibliography", "custodhist"),
	}

	fileGrammar = grammar{
		name:        "file",
		annotations: set("controlaccess"),
		ignorable: set(append([]string{"odd", "otherfindaid", "phystech", "altformavail",
			"userestrict", "accessrestrict", "bibliography", "dao", "daogrp",
			"acqinfo", "prefercite", "originalsloc"}, narrativeTags...)...),
		skipOtherLevels: true,
	}
)

// componentKind classifies a c element from its level and otherlevel
// attributes. ok is false when the level attribute is missing.
func componentKind(el *etree.Element) (k Kind, ok bool) {
	level, ok := attr(el, "level")
	if !ok {
		return KindUnrecognized, false
	}
	switch level {
	case "series":
		return KindSeries, true
	case "subseries":
		return KindSubseries, true
	case "file":
		return KindFile, true
	case "otherlevel":
		if other, _ := attr(el, "otherlevel"); other == "filegrp" {
			return KindFileGroup, true
		}
	}
	return KindUnrecognized, true
}

// classify assigns child one Kind under grammar g. Every caller treats
// KindUnrecognized as fatal.
func (g grammar) classify(child *etree.Element) Kind {
	switch child.Tag {
	case "did":
		return KindDid
	case "c":
		k, ok := componentKind(child)
		if !ok {
			return KindUnrecognized
		}
		if g.components[k] {
			return k
		}
		if g.skipOtherLevels {
			return KindSkipped
		}
		return KindUnrecognized
	}
	if g.annotations[child.Tag] {
		return KindAnnotation
	}
	if g.ignorable[child.Tag] {
		return KindIgnorable
	}
	return KindUnrecognized
}
