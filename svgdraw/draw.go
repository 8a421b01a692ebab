// Given a normalized path, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/svgmap/svgpath"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

// Driver knows how to do the actual draw operations
// but doesn't need any SVG kwowledge.
// Points are already in the target space when they are
// sent to the Driver.
type Driver interface {
	// Clear must reset the internal state (used before starting a new path painting).
	// `op` tells which of Fill or Stroke will consume the path sent next.
	Clear(op Paint)

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetFillColor set the color used by Fill
	SetFillColor(c color.Color)

	// SetStrokeOptions set the width and color used by Stroke
	SetStrokeOptions(width fixed.Int26_6, c color.Color)

	// Fill fills the accumulated path
	Fill()

	// Stroke strokes the accumulated path
	Stroke()
}

// Paint selects the operation a path is sent for.
type Paint uint8

const (
	FillPaint Paint = iota
	StrokePaint
)

// Style is the paint applied to a region.
// A nil color disables the corresponding operation.
type Style struct {
	StrokeWidth float64
	StrokeColor color.Color
	FillColor   color.Color
}

// DefaultStyle strokes in black, with a width of 1.2,
// and fills in mid gray.
var DefaultStyle = Style{
	StrokeWidth: 1.2,
	StrokeColor: colornames.Black,
	FillColor:   colornames.Gray,
}

// ToFixed converts a point to the fixed representation
// used by drivers.
func ToFixed(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

// FromFixed is the inverse of ToFixed, up to rounding.
func FromFixed(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}

// send walks the path into the driver
func send(d Driver, path svgpath.Path) {
	started := false
	for _, op := range path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			if started {
				d.Stop(false) // implicit close if currently in path.
			}
			d.Start(ToFixed(svgpath.Point(op)))
			started = true
		case svgpath.LineTo:
			d.Line(ToFixed(svgpath.Point(op)))
		case svgpath.CubicTo:
			d.CubeBezier(ToFixed(op[0]), ToFixed(op[1]), ToFixed(op[2]))
		case svgpath.Close:
			d.Stop(true)
		}
	}
	d.Stop(false)
}

// DrawPath fills then strokes `path` with the given style.
func DrawPath(d Driver, path svgpath.Path, style Style) {
	if len(path) == 0 {
		return
	}
	if style.FillColor != nil { // nil color disable filling
		d.Clear(FillPaint)
		d.SetFillColor(style.FillColor)
		send(d, path)
		d.Fill()
	}
	if style.StrokeColor != nil && style.StrokeWidth > 0 { // nil color disable lining
		d.Clear(StrokePaint)
		// stroke options are used while the segments are added
		d.SetStrokeOptions(fixed.Int26_6(style.StrokeWidth*64), style.StrokeColor)
		send(d, path)
		d.Stroke()
	}
}
