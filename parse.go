package svgmap

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgmap/svgpath"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// mapCursor is used while parsing SVG files
type mapCursor struct {
	options
	doc     *Document
	decoder *xml.Decoder

	seenSVG                 bool
	depth                   int // of the current element, the root being 1
	inTitleText, inDescText bool
	ids                     map[string]bool
}

// line returns the current line in the source document
func (c *mapCursor) line() int {
	line, _ := c.decoder.InputPos()
	return line
}

// diagnose records a recovered problem. In strict mode,
// the problem is returned and aborts the parsing.
func (c *mapCursor) diagnose(region string, err error) error {
	d := Diagnostic{Region: region, Line: c.line(), Err: err}
	switch c.errorMode {
	case StrictErrorMode:
		return d
	case WarnErrorMode:
		Logger().Warn("svgmap: recovered problem", "region", region, "line", d.Line, "err", err)
	}
	c.doc.Diagnostics = append(c.doc.Diagnostics, d)
	return nil
}

// handleError reports an element the parser does not know about.
func (c *mapCursor) handleError(name string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return fmt.Errorf("svgmap: line %d: %w: %s", c.line(), ErrUnsupportedElement, name)
	case WarnErrorMode:
		Logger().Debug("svgmap: skipping element", "element", name, "line", c.line())
	}
	return nil
}

type svgFunc func(c *mapCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":   svgF,
	"g":     gF,
	"path":  pathF,
	"title": titleF,
	"desc":  descF,
}

// hiddenContainers hold definitions which are not rendered
// by themselves: their content is not part of the map.
var hiddenContainers = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"symbol":   true,
	"pattern":  true,
	"marker":   true,
}

func (c *mapCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError(se.Name.Local)
	}
	return df(c, se.Attr)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t'
		})
}

// parseLength reads a `width` or `height` attribute,
// accepting a trailing px unit.
func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	return strconv.ParseFloat(s, 64)
}

// parseViewBox reads the four numbers of a `viewBox` attribute.
func parseViewBox(s string) (svgpath.Bounds, error) {
	fields := splitOnCommaOrSpace(s)
	if len(fields) != 4 {
		return svgpath.Bounds{}, fmt.Errorf("invalid viewBox %q", s)
	}
	var vals [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return svgpath.Bounds{}, fmt.Errorf("invalid viewBox %q: %w", s, err)
		}
		vals[i] = v
	}
	return svgpath.Bounds{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]}, nil
}

// svgF reads the size of the document, only once.
// An invalid viewBox is ignored, so that width and height
// may still provide the size.
func svgF(c *mapCursor, attrs []xml.Attr) error {
	if c.seenSVG {
		return nil
	}
	c.seenSVG = true

	var (
		viewBox       svgpath.Bounds
		width, height float64
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox", "viewbox":
			vb, err := parseViewBox(attr.Value)
			if err != nil {
				if err = c.diagnose("", err); err != nil {
					return err
				}
				continue
			}
			viewBox = vb
		case "width":
			// relative sizes like 100% carry no information
			width, _ = parseLength(attr.Value)
		case "height":
			height, _ = parseLength(attr.Value)
		}
	}
	if viewBox.W == 0 {
		viewBox.W = width
	}
	if viewBox.H == 0 {
		viewBox.H = height
	}
	c.doc.ViewBox = viewBox
	return nil
}

func gF(*mapCursor, []xml.Attr) error { return nil } // groups are transparent

// only the title and description of the root element
// describe the map, the others belong to a region or a group

func titleF(c *mapCursor, _ []xml.Attr) error {
	c.inTitleText = c.depth == 2
	return nil
}

func descF(c *mapCursor, _ []xml.Attr) error {
	c.inDescText = c.depth == 2
	return nil
}

// regionKey resolves the identity of a region:
// the name falls back to the id, then to "undefined";
// the id falls back to the name, then to a generated token.
// Empty attributes are considered missing. Names are NFC normalized.
func regionKey(name, id string, newID func() string) (string, string) {
	name = norm.NFC.String(name)
	outName, outID := name, id
	if outName == "" {
		outName = norm.NFC.String(id)
	}
	if outName == "" {
		outName = "undefined"
	}
	if outID == "" {
		outID = name
	}
	if outID == "" {
		outID = newID()
	}
	return outName, outID
}

func pathF(c *mapCursor, attrs []xml.Attr) error {
	var (
		name, id, d string
		hasD        bool
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "name":
			name = attr.Value
		case "id":
			id = attr.Value
		case "d":
			d, hasD = attr.Value, true
		}
	}
	name, id = regionKey(name, id, c.newID)

	if !hasD {
		return c.diagnose(id, ErrMissingPathData)
	}

	cmds, lexDiags := svgpath.Lex(d)
	for _, diag := range lexDiags {
		if err := c.diagnose(id, diag); err != nil {
			return err
		}
	}
	outline, _, buildDiags := svgpath.Build(cmds)
	for _, diag := range buildDiags {
		if err := c.diagnose(id, diag); err != nil {
			return err
		}
	}

	if c.ids[id] {
		if err := c.diagnose(id, ErrDuplicateID); err != nil {
			return err
		}
	}
	c.ids[id] = true

	c.doc.Regions = append(c.doc.Regions, Region{Name: name, ID: id, Commands: cmds, Outline: outline})
	return nil
}

// ReadDocumentStream reads the map from the given io.Reader,
// and normalizes it to fit in `canvas`.
// If `canvas` is empty, the size of the document is used instead;
// if the document has no size either, the regions are not transformed
// and the document is flagged as degraded.
//
// Problems limited to one region are recovered (see WithErrorMode):
// only a malformed XML stream aborts the parsing.
func ReadDocumentStream(stream io.Reader, canvas Size, opts ...Option) (*Document, error) {
	doc := &Document{}
	cursor := &mapCursor{options: newOptions(opts), doc: doc, ids: make(map[string]bool)}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	cursor.decoder = decoder
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, fmt.Errorf("%w: no element found", ErrMalformed)
				}
				break
			}
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if hiddenContainers[se.Name.Local] {
				// the matching end element is consumed as well
				if err = decoder.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
				}
				continue
			}
			cursor.depth++
			if err = cursor.readStartElement(se); err != nil {
				return nil, err
			}
		case xml.EndElement:
			cursor.depth--
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				doc.Title += string(se)
			}
			if cursor.inDescText {
				doc.Description += string(se)
			}
		}
	}
	doc.Title = strings.TrimSpace(doc.Title)
	doc.Description = strings.TrimSpace(doc.Description)

	if err := cursor.normalize(canvas); err != nil {
		return nil, err
	}

	Logger().Debug("svgmap: document parsed", "regions", len(doc.Regions),
		"diagnostics", len(doc.Diagnostics), "scale", doc.Transform.Scale, "degraded", doc.Degraded)
	return doc, nil
}

// normalize selects the effective canvas and applies the layout
func (c *mapCursor) normalize(canvas Size) error {
	doc := c.doc
	if !canvas.isValid() {
		canvas = Size{W: doc.ViewBox.W, H: doc.ViewBox.H}
	}
	layout := Normalize(doc.Regions, canvas, c.bounds)

	doc.Regions = layout.Regions
	doc.Bounds = layout.Bounds
	doc.Transform = layout.Transform
	doc.Degraded = layout.Degraded
	if !layout.Degraded {
		doc.Canvas = canvas
	}
	doc.buildIndex()

	if layout.Degenerate {
		// recovered with a unit scale, never fatal
		d := Diagnostic{Err: ErrDegenerateBounds}
		if c.errorMode == WarnErrorMode {
			Logger().Warn("svgmap: recovered problem", "err", d.Err)
		}
		doc.Diagnostics = append(doc.Diagnostics, d)
	}
	return nil
}

// Parse is a convenience wrapper around ReadDocumentStream,
// reading the document from its text.
func Parse(text string, canvas Size, opts ...Option) (*Document, error) {
	return ReadDocumentStream(strings.NewReader(text), canvas, opts...)
}

// IsRecoverable returns true if `err` is a region level problem,
// as returned in StrictErrorMode.
func IsRecoverable(err error) bool {
	var d Diagnostic
	return errors.As(err, &d)
}
