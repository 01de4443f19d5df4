package ead

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"

	"github.com/lehigh-university-libraries/findingaid/helpers"
)

// DateRecord is the date listing entry for one inventory number.
type DateRecord struct {
	InventoryNumber string `json:"inventory_number" yaml:"inventory_number"`
	Title           string `json:"title" yaml:"title"`
	Handle          string `json:"handle" yaml:"handle"`
	DateText        string `json:"date_text" yaml:"date_text"`
	DateISO         string `json:"date_iso" yaml:"date_iso"`
	YearBegin       string `json:"year_begin" yaml:"year_begin"`
	YearEnd         string `json:"year_end" yaml:"year_end"`
}

// DateColumns is the column order of a DateRecord row.
var DateColumns = []string{
	"inventory_number", "title", "handle", "date_text", "date_iso", "year_begin", "year_end",
}

// Row returns the record in DateColumns order.
func (r DateRecord) Row() []string {
	return []string{r.InventoryNumber, r.Title, r.Handle, r.DateText, r.DateISO, r.YearBegin, r.YearEnd}
}

// DateExport lists file dates in document order and by inventory number.
type DateExport struct {
	Records           []DateRecord
	ByInventoryNumber map[string]DateRecord
	Diagnostics       Diagnostics
}

// ExtractDates collects a DateRecord for every file-level component that
// has both a canonical (ABS) and a handle unitid. Files lacking either
// are skipped. The date comes from did/unitdate, falling back to a
// unitdate embedded in the title.
func ExtractDates(doc *etree.Document, classifier *Classifier) (*DateExport, error) {
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrNoDescription)
	}
	cl := DefaultClassifier()
	if classifier != nil {
		cl = *classifier
	}

	out := &DateExport{ByInventoryNumber: make(map[string]DateRecord)}

	for _, c := range doc.FindElements("//c[@level='file']") {
		name := unitIDOfType(c, cl.CanonicalType)
		handle := unitIDOfType(c, cl.HandleType)
		if name == nil || handle == nil {
			continue
		}

		date := c.FindElement("did/unitdate")
		if date == nil {
			date = c.FindElement("did/unittitle/unitdate")
		}
		var dateText, dateISO string
		if date != nil {
			dateText = innerText(date)
			dateISO, _ = attr(date, "normal")
		}

		var title string
		if t := c.FindElement("did/unittitle"); t != nil {
			title = leadingText(t)
		}

		begin, end := helpers.YearRange(dateISO)
		rec := DateRecord{
			InventoryNumber: innerText(name),
			Title:           title,
			Handle:          innerText(handle),
			DateText:        dateText,
			DateISO:         dateISO,
			YearBegin:       begin,
			YearEnd:         end,
		}

		if _, dup := out.ByInventoryNumber[rec.InventoryNumber]; dup {
			out.Diagnostics = append(out.Diagnostics, Diagnostic{
				Level:   slog.LevelWarn,
				Code:    DiagDuplicateInventory,
				Message: "inventory number listed more than once; keeping the last",
				Tag:     "unitid",
				Path:    rec.InventoryNumber,
			})
		}
		out.Records = append(out.Records, rec)
		out.ByInventoryNumber[rec.InventoryNumber] = rec
	}

	return out, nil
}

// unitIDOfType returns the first did/unitid of c whose type attribute
// is typ.
func unitIDOfType(c *etree.Element, typ string) *etree.Element {
	for _, u := range c.FindElements("did/unitid") {
		if t, ok := attr(u, "type"); ok && t == typ {
			return u
		}
	}
	return nil
}
