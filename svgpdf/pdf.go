// Implements a PDF backend to render maps,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/svgmap"
	"github.com/benoitkugler/svgmap/svgdraw"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer writes the paths to the current page of a pdf.
// Since the path is recorded by the pdf itself, filling
// and stroking the same region requires to send it twice,
// which svgdraw.DrawPath does.
type Renderer struct {
	pather

	fillAlpha   float64
	strokeAlpha float64
}

// implements the common path commands
type pather struct {
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pather: pather{pdf: pdf}, fillAlpha: 1, strokeAlpha: 1}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// the path is owned by the pdf, and is reset by DrawPath
func (p pather) Clear(svgdraw.Paint) {}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// toRGB returns the 8 bits components of `c`, and its opacity
func toRGB(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}

func (rd *Renderer) SetFillColor(c color.Color) {
	r, g, b, a := toRGB(c)
	rd.pdf.SetFillColor(r, g, b)
	rd.fillAlpha = a
}

// SetStrokeOptions uses butt caps and bevel joins,
// as the raster backend does.
func (rd *Renderer) SetStrokeOptions(width fixed.Int26_6, c color.Color) {
	r, g, b, a := toRGB(c)
	rd.pdf.SetDrawColor(r, g, b)
	rd.pdf.SetLineWidth(float64(width) / 64)
	rd.pdf.SetLineCapStyle("butt")
	rd.pdf.SetLineJoinStyle("bevel")
	rd.strokeAlpha = a
}

// Fill uses the non zero winding rule, as rasterx does.
func (rd *Renderer) Fill() {
	rd.pdf.SetAlpha(rd.fillAlpha, "")
	rd.pdf.DrawPath("F")
}

func (rd *Renderer) Stroke() {
	rd.pdf.SetAlpha(rd.strokeAlpha, "")
	rd.pdf.DrawPath("D")
}

// pageSize returns the size of the canvas used by `doc`,
// or the extent of its regions for degraded documents.
func pageSize(doc *svgmap.Document) gofpdf.SizeType {
	w, h := doc.Canvas.W, doc.Canvas.H
	if doc.Degraded {
		max := doc.Bounds.Max()
		w, h = max.X, max.Y
	}
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	return gofpdf.SizeType{Wd: w, Ht: h}
}

// RenderDocument returns a new one page pdf, whose page has the size of the
// canvas of `doc` (in points), and draws the regions on it.
// The title of the document, if any, is used as pdf title.
func RenderDocument(doc *svgmap.Document, style svgmap.StyleFunc) *gofpdf.Fpdf {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: pageSize(doc)})
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	doc.Draw(NewRenderer(pdf), style)
	return pdf
}

// WritePDF renders `doc` (see RenderDocument) and writes
// the pdf file to `w`.
func WritePDF(doc *svgmap.Document, w io.Writer, style svgmap.StyleFunc) error {
	pdf := RenderDocument(doc, style)
	return pdf.Output(w)
}
