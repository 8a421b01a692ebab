// Package svgpath implements the path data subset used by
// map documents: a lexer turning the `d` attribute into
// commands, a builder resolving them into an abstract Path,
// which can then be measured, transformed and consumed
// by painting drivers.
package svgpath

import (
	"fmt"
	"strings"
)

// Operation groups the different drawing operations
type Operation interface {
	// points returns the points of the operation, in order
	points() []Point
	transform(t Transform) Operation
}

type MoveTo Point

type LineTo Point

// CubicTo stores the first control point, the second
// control point and the end point.
type CubicTo [3]Point

type Close struct{}

func (op MoveTo) points() []Point  { return []Point{Point(op)} }
func (op LineTo) points() []Point  { return []Point{Point(op)} }
func (op CubicTo) points() []Point { return op[:] }
func (Close) points() []Point      { return nil }

func (op MoveTo) transform(t Transform) Operation { return MoveTo(t.Apply(Point(op))) }
func (op LineTo) transform(t Transform) Operation { return LineTo(t.Apply(Point(op))) }
func (op CubicTo) transform(t Transform) Operation {
	return CubicTo{t.Apply(op[0]), t.Apply(op[1]), t.Apply(op[2])}
}
func (op Close) transform(Transform) Operation { return op }

// Path describes a sequence of basic operations, which should not be nil
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", op.X, op.Y)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", op.X, op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", op[0].X, op[0].Y,
				op[1].X, op[1].Y, op[2].X, op[2].Y)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Transform returns a new path, with `t` applied to every point.
// `p` is not modified.
func (p Path) Transform(t Transform) Path {
	out := make(Path, len(p))
	for i, op := range p {
		out[i] = op.transform(t)
	}
	return out
}

// Transform is a uniform scale applied after a translation:
// a point p is mapped to ((p.X + TX) * Scale, (p.Y + TY) * Scale).
type Transform struct {
	Scale  float64
	TX, TY float64
}

// Identity does not change the points.
var Identity = Transform{Scale: 1}

// Apply maps the point `p`.
func (t Transform) Apply(p Point) Point {
	return Point{X: (p.X + t.TX) * t.Scale, Y: (p.Y + t.TY) * t.Scale}
}

// ApplyBounds maps the rectangle `b`. Since the scale is uniform
// the result is still axis aligned.
func (t Transform) ApplyBounds(b Bounds) Bounds {
	origin := t.Apply(Point{b.X, b.Y})
	return Bounds{X: origin.X, Y: origin.Y, W: b.W * t.Scale, H: b.H * t.Scale}
}
