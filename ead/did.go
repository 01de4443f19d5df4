package ead

import (
	"fmt"
	"maps"

	"github.com/beevik/etree"
)

// UnitID is one unitid element: its text plus every attribute.
type UnitID struct {
	Value string            `json:"value" yaml:"value"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Type returns the type attribute and whether it is present.
func (u UnitID) Type() (string, bool) {
	t, ok := u.Attrs["type"]
	return t, ok
}

// UnitDate is a unitdate element: its display text plus attributes.
type UnitDate struct {
	Date  string            `json:"date" yaml:"date"`
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Normal returns the normalized ISO form from the normal attribute.
func (d UnitDate) Normal() string {
	return d.Attrs["normal"]
}

// PhysDesc holds the extent and physfacet fields of a physdesc element.
type PhysDesc struct {
	Extent    string            `json:"extent,omitempty" yaml:"extent,omitempty"`
	Physfacet string            `json:"physfacet,omitempty" yaml:"physfacet,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// DAO is a digital archival object reference.
type DAO struct {
	Attrs map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text  string            `json:"text,omitempty" yaml:"text,omitempty"`
}

// ManifestRef returns the href of a METS dao.
func (d DAO) ManifestRef() (string, bool) {
	if d.Attrs["role"] != "METS" {
		return "", false
	}
	href, ok := d.Attrs["href"]
	return href, ok && href != ""
}

// DidInfo is the normalized content of a did block.
type DidInfo struct {
	UnitTitle string
	UnitIDs   []UnitID
	UnitDate  *UnitDate
	PhysDesc  *PhysDesc
	DAOs      []DAO
}

// ParseDid extracts a DidInfo from a did element. Unknown children are
// ignored; a physdesc outside its extent/physfacet grammar is an error.
func ParseDid(did *etree.Element) (DidInfo, error) {
	var info DidInfo
	var hoisted *UnitDate

	for _, child := range did.ChildElements() {
		switch child.Tag {
		case "unittitle":
			info.UnitTitle = innerText(child)
			if date := child.SelectElement("unitdate"); date != nil {
				// The embedded date stands in for the title text.
				d := newUnitDate(date)
				info.UnitTitle = d.Date
				hoisted = &d
			}
		case "unitid":
			info.UnitIDs = append(info.UnitIDs, UnitID{
				Value: innerText(child),
				Attrs: attrs(child),
			})
		case "unitdate":
			if info.UnitDate == nil {
				d := newUnitDate(child)
				info.UnitDate = &d
			}
		case "physdesc":
			pd, err := parsePhysDesc(child)
			if err != nil {
				return info, err
			}
			info.PhysDesc = pd
		case "dao":
			dao := DAO{Attrs: attrs(child)}
			if text := innerText(child); text != "" {
				dao.Text = text
			}
			info.DAOs = append(info.DAOs, dao)
		}
	}

	// The first unitdate directly under did wins over one embedded in
	// the title.
	if info.UnitDate == nil {
		info.UnitDate = hoisted
	}
	return info, nil
}

func newUnitDate(el *etree.Element) UnitDate {
	return UnitDate{Date: innerText(el), Attrs: attrs(el)}
}

func parsePhysDesc(el *etree.Element) (*PhysDesc, error) {
	pd := &PhysDesc{Extent: ownText(el)}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "extent":
			pd.Extent = innerText(child)
		case "physfacet":
			pd.Physfacet = innerText(child)
		default:
			return nil, &StructureError{
				Level: "physdesc",
				Tag:   child.Tag,
				Attrs: attrs(child),
				Err:   fmt.Errorf("%w: physdesc child", ErrUnexpectedElement),
			}
		}
		if a := attrs(child); a != nil {
			if pd.Attrs == nil {
				pd.Attrs = make(map[string]string, len(a))
			}
			maps.Copy(pd.Attrs, a)
		}
	}
	return pd, nil
}
