package svgpath

import (
	"errors"
	"fmt"
)

// Point is a position in the user space of the document.
type Point struct{ X, Y float64 }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// CommandKind tags the supported path-data commands.
type CommandKind uint8

const (
	MoveAbs CommandKind = iota
	MoveRel
	LineAbs
	LineRel
	CurveAbs
	CurveRel
	ClosePath
)

func (k CommandKind) String() string {
	switch k {
	case MoveAbs:
		return "MoveAbs"
	case MoveRel:
		return "MoveRel"
	case LineAbs:
		return "LineAbs"
	case LineRel:
		return "LineRel"
	case CurveAbs:
		return "CurveAbs"
	case CurveRel:
		return "CurveRel"
	case ClosePath:
		return "Close"
	default:
		return "<unknown CommandKind>"
	}
}

// IsRelative returns true for the lowercase commands,
// whose point is an offset from the cursor.
func (k CommandKind) IsRelative() bool {
	return k == MoveRel || k == LineRel || k == CurveRel
}

// IsCurve returns true for the cubic curve commands.
func (k CommandKind) IsCurve() bool { return k == CurveAbs || k == CurveRel }

// Command is one coordinate pair of the path data, tagged
// by the letter it was read under. A cubic curve is therefore
// made of three consecutive curve Commands.
// The Point of a Close command is always zero.
type Command struct {
	Kind   CommandKind
	Letter byte // source letter, 'V' and 'L' share the same kind
	Point  Point
}

func (c Command) String() string {
	if c.Kind == ClosePath {
		return string(c.Letter)
	}
	return fmt.Sprintf("%c%g,%g", c.Letter, c.Point.X, c.Point.Y)
}

// kindOf maps the supported letters to their kind.
// ok is false for letters outside the supported subset.
func kindOf(letter byte) (k CommandKind, ok bool) {
	switch letter {
	case 'M':
		return MoveAbs, true
	case 'm':
		return MoveRel, true
	case 'L', 'V':
		return LineAbs, true
	case 'l', 'v':
		return LineRel, true
	case 'C':
		return CurveAbs, true
	case 'c':
		return CurveRel, true
	case 'Z', 'z':
		return ClosePath, true
	}
	return 0, false
}

// isCommandLetter returns true for every SVG path command letter,
// supported or not. Other letters (like the exponent 'e') belong
// to the coordinate payload.
func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'V', 'v', 'C', 'c', 'Z', 'z',
		'H', 'h', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

// DiagnosticKind classifies the recovered problems
// found while reading path data.
type DiagnosticKind uint8

const (
	// MalformedCoordinate: a non numeric token where a coordinate was expected.
	// The remainder of the command payload is discarded.
	MalformedCoordinate DiagnosticKind = iota + 1
	// OddCoordinate: a trailing value without its pair.
	OddCoordinate
	// UnsupportedCommand: a valid SVG letter outside the supported subset.
	UnsupportedCommand
	// IncompleteCurve: curve control points never followed by an end point.
	IncompleteCurve
)

var (
	ErrMalformedCoordinate = errors.New("malformed coordinate")
	ErrOddCoordinate       = errors.New("unpaired coordinate")
	ErrUnsupportedCommand  = errors.New("unsupported path command")
	ErrIncompleteCurve     = errors.New("incomplete cubic curve")
)

// Err returns the sentinel error matching the kind.
func (k DiagnosticKind) Err() error {
	switch k {
	case MalformedCoordinate:
		return ErrMalformedCoordinate
	case OddCoordinate:
		return ErrOddCoordinate
	case UnsupportedCommand:
		return ErrUnsupportedCommand
	case IncompleteCurve:
		return ErrIncompleteCurve
	}
	return nil
}

func (k DiagnosticKind) String() string {
	if err := k.Err(); err != nil {
		return err.Error()
	}
	return "<unknown DiagnosticKind>"
}

// Diagnostic describes a recovered problem. It implements error
// and unwraps to the sentinel of its kind.
type Diagnostic struct {
	Kind   DiagnosticKind
	Letter byte // command letter in effect, 0 before the first one
	// Offset is the byte offset in the path data for the lexer,
	// and the command index for the builder.
	Offset int
	Token  string // offending text, if any
}

func (d Diagnostic) Error() string {
	s := d.Kind.String()
	if d.Letter != 0 {
		s += fmt.Sprintf(" (command %c)", d.Letter)
	}
	s += fmt.Sprintf(" at %d", d.Offset)
	if d.Token != "" {
		s += fmt.Sprintf(": %q", d.Token)
	}
	return s
}

func (d Diagnostic) Unwrap() error { return d.Kind.Err() }
