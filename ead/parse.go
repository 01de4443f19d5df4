package ead

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/beevik/etree"
)

// Options configures a Parse run.
type Options struct {
	// Classifier assigns unitid roles. Nil uses DefaultClassifier.
	Classifier *Classifier

	// Logger receives one debug line per level entered. Nil discards.
	Logger *slog.Logger
}

// Result is the output of walking one finding aid.
type Result struct {
	// Files holds every file-level record in document order, including
	// those without a canonical id.
	Files []FileRecord

	Diagnostics Diagnostics
}

// WithoutID returns the number of files lacking a canonical id.
func (r *Result) WithoutID() int {
	n := 0
	for _, f := range r.Files {
		if !f.HasID() {
			n++
		}
	}
	return n
}

// ParseFile reads and walks the finding aid at path.
func ParseFile(path string, opts *Options) (*Result, error) {
	doc, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts)
}

// ParseReader reads and walks a finding aid from r.
func ParseReader(r io.Reader, opts *Options) (*Result, error) {
	doc, err := Read(r)
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts)
}

// Parse walks every top-level series under archdesc/dsc and returns the
// file records found below them. A *StructureError aborts the whole run.
func Parse(doc *etree.Document, opts *Options) (*Result, error) {
	dsc, err := Description(doc)
	if err != nil {
		return nil, err
	}

	w := newWalker(opts)
	var files []FileRecord
	for _, child := range dsc.ChildElements() {
		if child.Tag != "c" {
			continue
		}
		if k, _ := componentKind(child); k != KindSeries {
			w.warn(DiagSkippedComponent, child, Context{}, "skipping non-series component under dsc")
			continue
		}
		found, err := w.series(child, 0)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	return &Result{Files: files, Diagnostics: w.diags}, nil
}

type walker struct {
	classifier Classifier
	logger     *slog.Logger
	diags      Diagnostics
}

func newWalker(opts *Options) *walker {
	w := &walker{classifier: DefaultClassifier()}
	if opts != nil && opts.Classifier != nil {
		w.classifier = *opts.Classifier
	}
	if opts != nil && opts.Logger != nil {
		w.logger = opts.Logger
	} else {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w
}

// series starts a fresh branch: nested series do not inherit the context
// of the series that contains them.
func (w *walker) series(el *etree.Element, depth int) ([]FileRecord, error) {
	var ctx Context
	var files []FileRecord
	sawDid := false

	for _, child := range el.ChildElements() {
		switch seriesGrammar.classify(child) {
		case KindDid:
			did, err := ParseDid(child)
			if err != nil {
				return nil, attachContext(err, ctx)
			}
			ctx.Series = Unit{Title: did.UnitTitle, ID: firstUnitID(did)}
			sawDid = true
			w.enter(depth, seriesGrammar.name, did.UnitTitle)
		case KindSeries:
			found, err := w.series(child, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case KindSubseries:
			found, err := w.subseries(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case KindFileGroup:
			found, err := w.filegroup(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case KindFile:
			rec, err := w.file(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, rec)
		case KindAnnotation:
			if _, err := annotationText(child); err != nil {
				return nil, attachContext(err, ctx)
			}
		case KindIgnorable:
		default:
			return nil, unexpected(seriesGrammar, child, ctx)
		}
	}

	if !sawDid {
		w.warn(DiagSeriesWithoutDid, el, ctx, "series has no did block")
	}
	return files, nil
}

func (w *walker) subseries(el *etree.Element, parent Context, depth int) ([]FileRecord, error) {
	ctx := parent.Clone()
	var files []FileRecord

	for _, child := range el.ChildElements() {
		switch subseriesGrammar.classify(child) {
		case KindDid:
			did, err := ParseDid(child)
			if err != nil {
				return nil, attachContext(err, ctx)
			}
			unit := Unit{Title: did.UnitTitle, ID: firstUnitID(did)}
			if unit.ID == "" {
				// Some subseries are organizational labels without a unitid.
				w.diag(slog.LevelInfo, DiagSubseriesWithoutID, child, ctx, "subseries has no unitid")
			}
			ctx = ctx.WithSubseries(unit)
			w.enter(depth, subseriesGrammar.name, did.UnitTitle)
		case KindSubseries:
			found, err := w.subseries(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case KindFileGroup:
			found, err := w.filegroup(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case KindFile:
			rec, err := w.file(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, rec)
		case KindAnnotation:
			text, err := annotationText(child)
			if err != nil {
				return nil, attachContext(err, ctx)
			}
			if child.Tag == "odd" {
				ctx = ctx.WithOdd(text)
			}
		case KindIgnorable:
		case KindSkipped:
			w.warn(DiagSkippedComponent, child, ctx, "skipping component with unexpected level")
		default:
			return nil, unexpected(subseriesGrammar, child, ctx)
		}
	}
	return files, nil
}

func (w *walker) filegroup(el *etree.Element, parent Context, depth int) ([]FileRecord, error) {
	ctx := parent.Clone()
	var files []FileRecord

	for _, child := range el.ChildElements() {
		switch filegroupGrammar.classify(child) {
		case KindDid:
			did, err := ParseDid(child)
			if err != nil {
				return nil, attachContext(err, ctx)
			}
			unit := Unit{Title: did.UnitTitle, ID: firstUnitID(did)}
			if unit.ID == "" {
				w.warn(DiagFilegroupWithoutID, child, ctx, "file group has no unitid")
			}
			ctx = ctx.WithFilegroup(unit)
			w.enter(depth, filegroupGrammar.name, did.UnitTitle)
		case KindFileGroup:
			found, err := w.filegroup(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		case KindFile:
			rec, err := w.file(child, ctx, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, rec)
		case KindAnnotation:
			text, err := filegroupNote(child)
			if err != nil {
				return nil, attachContext(err, ctx)
			}
			ctx = ctx.WithNote(child.Tag, text)
		default:
			return nil, unexpected(filegroupGrammar, child, ctx)
		}
	}
	return files, nil
}

// filegroupNote returns the text of a descriptive file group child.
// Paragraph-structured notes are validated; the rest are taken verbatim.
func filegroupNote(el *etree.Element) (string, error) {
	switch el.Tag {
	case "separatedmaterial", "bioghist", "bibliography", "custodhist":
		return innerText(el), nil
	default:
		return annotationText(el)
	}
}

// file copies the inherited context into a record and fills in the
// file's own did, controlaccess and nested level.
func (w *walker) file(el *etree.Element, ctx Context, depth int) (FileRecord, error) {
	rec := FileRecord{Context: ctx.Clone()}

	for _, child := range el.ChildElements() {
		switch fileGrammar.classify(child) {
		case KindDid:
			did, err := ParseDid(child)
			if err != nil {
				return rec, attachContext(err, ctx)
			}
			if err := w.fillFile(&rec.File, did, ctx); err != nil {
				return rec, err
			}
			w.enter(depth, fileGrammar.name, did.UnitTitle)
		case KindAnnotation:
			access, err := parseAccess(child)
			if err != nil {
				return rec, attachContext(err, ctx)
			}
			rec.File.Access = access
		case KindSkipped:
			rec.File.Level, _ = attr(child, "level")
		case KindIgnorable:
		default:
			return rec, unexpected(fileGrammar, child, ctx)
		}
	}
	return rec, nil
}

// fillFile copies did fields into f and resolves its identifiers.
func (w *walker) fillFile(f *File, did DidInfo, ctx Context) error {
	f.Title = did.UnitTitle
	f.UnitIDs = did.UnitIDs
	f.UnitDate = did.UnitDate
	f.PhysDesc = did.PhysDesc
	f.DAOs = did.DAOs

	var extras []string
	for _, u := range did.UnitIDs {
		c, err := w.classifier.Classify(u)
		if err != nil {
			return &StructureError{
				Level:   fileGrammar.name,
				Tag:     "unitid",
				Attrs:   u.Attrs,
				Context: ctx.Clone(),
				Err:     err,
			}
		}
		switch c.Role {
		case RoleCanonical:
			if f.ID == "" {
				f.ID = c.Value
			}
		case RoleHandle:
			if f.Handle == "" {
				f.Handle = c.Value
			}
		case RoleNamed:
			if f.Identifier == "" && f.IdentifierText == "" {
				f.Identifier = c.Scheme
				f.IdentifierText = c.Value
			}
		case RoleExtra:
			extras = append(extras, c.Value)
		}
	}

	if len(extras) > 0 {
		f.ExtraID = extras[0]
	}
	if f.ID == "" {
		for _, v := range extras {
			if looksLikeInventoryNumber(v) {
				f.ID = v
				break
			}
		}
	}
	return nil
}

func firstUnitID(did DidInfo) string {
	if len(did.UnitIDs) == 0 {
		return ""
	}
	return did.UnitIDs[0].Value
}

func unexpected(g grammar, child *etree.Element, ctx Context) error {
	err := fmt.Errorf("%w: %s child", ErrUnexpectedElement, g.name)
	if child.Tag == "c" {
		if _, ok := attr(child, "level"); !ok {
			err = fmt.Errorf("%w under %s", ErrMissingLevel, g.name)
		}
	}
	return &StructureError{
		Level:   g.name,
		Tag:     child.Tag,
		Attrs:   attrs(child),
		Context: ctx.Clone(),
		Err:     err,
	}
}

// attachContext records ctx on a StructureError raised by a leaf parser.
func attachContext(err error, ctx Context) error {
	var se *StructureError
	if errors.As(err, &se) {
		se.Context = ctx.Clone()
	}
	return err
}

func (w *walker) enter(depth int, level, title string) {
	w.logger.Debug("entering "+level, "depth", depth, "title", title)
}

func (w *walker) warn(code string, el *etree.Element, ctx Context, msg string) {
	w.diag(slog.LevelWarn, code, el, ctx, msg)
}

func (w *walker) diag(level slog.Level, code string, el *etree.Element, ctx Context, msg string) {
	w.diags = append(w.diags, Diagnostic{
		Level:   level,
		Code:    code,
		Message: msg,
		Tag:     el.Tag,
		Path:    ctx.Path(),
	})
}
