package svgmap

import (
	"errors"
	"fmt"
)

// ErrorMode is the for setting how the parser reacts to
// unsupported elements and to recovered problems in regions.
type ErrorMode uint8

const (
	// IgnoreErrorMode collects the diagnostics silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode collects the diagnostics and logs them.
	WarnErrorMode
	// StrictErrorMode aborts on the first problem.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "Ignore"
	case WarnErrorMode:
		return "Warn"
	case StrictErrorMode:
		return "Strict"
	default:
		return "<unknown ErrorMode>"
	}
}

var (
	// ErrNotFound is returned when the document can't be located.
	ErrNotFound = errors.New("svgmap: document not found")
	// ErrMalformed is returned when the document is not valid XML.
	ErrMalformed = errors.New("svgmap: malformed document")

	ErrMissingPathData    = errors.New("missing path data")
	ErrDuplicateID        = errors.New("duplicate region id")
	ErrDegenerateBounds   = errors.New("degenerate document bounds")
	ErrUnsupportedElement = errors.New("unsupported element")
)

// Diagnostic is a problem recovered while parsing a document.
// Err is either one of the sentinel errors of this package
// or a svgpath.Diagnostic, so that errors.Is may be used
// with the sentinels of both packages.
type Diagnostic struct {
	Region string // id of the region, empty for the whole document
	Line   int    // in the source document, 0 if unknown
	Err    error
}

func (d Diagnostic) Error() string {
	s := "svgmap: "
	if d.Line > 0 {
		s += fmt.Sprintf("line %d: ", d.Line)
	}
	if d.Region != "" {
		s += fmt.Sprintf("region %q: ", d.Region)
	}
	return s + d.Err.Error()
}

func (d Diagnostic) Unwrap() error { return d.Err }
