package ead

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// annotationText validates a free-text element (odd, otherfindaid,
// scopecontent, ...) and returns its paragraphs joined by newlines.
// Lists and headings are skipped; any other child is an error.
func annotationText(el *etree.Element) (string, error) {
	var paras []string
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "p":
			if text := innerText(child); text != "" {
				paras = append(paras, text)
			}
		case "list", "head":
		default:
			return "", &StructureError{
				Level: el.Tag,
				Tag:   child.Tag,
				Attrs: attrs(child),
				Err:   fmt.Errorf("%w: %s child", ErrUnexpectedElement, el.Tag),
			}
		}
	}
	return strings.Join(paras, "\n"), nil
}

// parseAccess reads the genreform classification of a controlaccess
// element. Later genreform elements overwrite earlier ones.
func parseAccess(el *etree.Element) (map[string]string, error) {
	var access map[string]string
	for _, child := range el.ChildElements() {
		if child.Tag != "genreform" {
			return nil, &StructureError{
				Level: "controlaccess",
				Tag:   child.Tag,
				Attrs: attrs(child),
				Err:   fmt.Errorf("%w: controlaccess child", ErrUnexpectedElement),
			}
		}
		access = map[string]string{"genreform": innerText(child)}
		for k, v := range attrs(child) {
			access[k] = v
		}
	}
	return access, nil
}
