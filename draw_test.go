package svgmap

import (
	"image/color"
	"testing"

	"github.com/benoitkugler/svgmap/svgdraw"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

// fillRecorder stores the fill color of each painted path,
// keyed by its first point.
type fillRecorder struct {
	start   fixed.Point26_6
	fill    color.Color
	fills   map[fixed.Point26_6]color.Color
	strokes int
}

func newFillRecorder() *fillRecorder {
	return &fillRecorder{fills: map[fixed.Point26_6]color.Color{}}
}

func (r *fillRecorder) Clear(svgdraw.Paint)                         {}
func (r *fillRecorder) Start(a fixed.Point26_6)                     { r.start = a }
func (r *fillRecorder) Line(fixed.Point26_6)                        {}
func (r *fillRecorder) CubeBezier(_, _, _ fixed.Point26_6)          {}
func (r *fillRecorder) Stop(bool)                                   {}
func (r *fillRecorder) SetFillColor(c color.Color)                  { r.fill = c }
func (r *fillRecorder) SetStrokeOptions(fixed.Int26_6, color.Color) {}
func (r *fillRecorder) Stroke()                                     { r.strokes++ }
func (r *fillRecorder) Fill()                                       { r.fills[r.start] = r.fill }

const twoSquares = `<path id="a" d="M0 0 L10 0 L10 10 Z"/><path id="b" d="M10 0 L20 0 L20 10 Z"/>`

func TestDrawHighlight(t *testing.T) {
	d := mustParse(t, doc(twoSquares), Size{200, 100})

	base := svgdraw.Style{FillColor: colornames.White}
	selected := svgdraw.Style{FillColor: colornames.Red}
	rec := newFillRecorder()
	d.Draw(rec, Highlight(base, selected, "b"))

	if len(rec.fills) != 2 {
		t.Fatalf("expected 2 fills, got %d", len(rec.fills))
	}
	if got := rec.fills[fixed.P(0, 0)]; got != colornames.White {
		t.Errorf("unexpected color for a: %v", got)
	}
	if got := rec.fills[fixed.P(100, 0)]; got != colornames.Red {
		t.Errorf("unexpected color for b: %v", got)
	}
	if rec.strokes != 0 {
		t.Errorf("no stroke expected, got %d", rec.strokes)
	}
}

func TestDrawDefaultStyle(t *testing.T) {
	d := mustParse(t, doc(twoSquares), Size{200, 100})
	rec := newFillRecorder()
	d.Draw(rec, nil)

	for start, c := range rec.fills {
		if c != svgdraw.DefaultStyle.FillColor {
			t.Errorf("unexpected color at %v: %v", start, c)
		}
	}
	if rec.strokes != 2 {
		t.Errorf("expected 2 strokes, got %d", rec.strokes)
	}
}
