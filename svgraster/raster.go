// Implements a raster backend to render maps,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"

	"github.com/benoitkugler/svgmap"
	"github.com/benoitkugler/svgmap/svgdraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes paths with a rasterx Filler or Dasher,
// depending on the pass selected by Clear.
// Both share the scanner, so only one of them receives the path.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	paint  svgdraw.Paint

	// Opacity is applied to every color.
	Opacity float64
}

// NewRenderer returns a renderer drawing with `scanner`,
// which must not be nil.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{
		dasher:  rasterx.NewDasher(width, height, scanner),
		filler:  rasterx.NewFiller(width, height, scanner),
		Opacity: 1,
	}
}

// RasterDocument uses a ScannerGV instance to render the
// regions of the document into an image and returns it.
// The image has the size of the canvas used to normalize the document,
// or the size of its bounds for degraded documents.
func RasterDocument(doc *svgmap.Document, style svgmap.StyleFunc) *image.RGBA {
	w, h := int(doc.Canvas.W+0.5), int(doc.Canvas.H+0.5)
	if doc.Degraded {
		max := doc.Bounds.Max()
		w, h = int(max.X+0.5), int(max.Y+0.5)
	}
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	doc.Draw(renderer, style)
	return img
}

func (rd *Renderer) Clear(op svgdraw.Paint) {
	rd.paint = op
	rd.dasher.Clear()
	rd.filler.Clear()
}

func (rd *Renderer) SetFillColor(c color.Color) {
	rd.filler.SetColor(rasterx.ApplyOpacity(c, rd.Opacity))
}

// SetStrokeOptions uses butt caps and bevel joins,
// so that the borders of adjacent regions do not overflow.
func (rd *Renderer) SetStrokeOptions(width fixed.Int26_6, c color.Color) {
	rd.dasher.SetColor(rasterx.ApplyOpacity(c, rd.Opacity))
	rd.dasher.SetStroke(width, 4*64, rasterx.ButtCap, nil, rasterx.FlatGap, rasterx.Bevel, nil, 0)
}

// adder returns the drawer of the current pass
func (rd *Renderer) adder() rasterx.Adder {
	if rd.paint == svgdraw.StrokePaint {
		return rd.dasher
	}
	return rd.filler
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.adder().Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.adder().Line(b)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.adder().CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.adder().Stop(closeLoop)
}

func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}
