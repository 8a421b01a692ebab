package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/benoitkugler/svgmap"
	"github.com/benoitkugler/svgmap/svgdraw"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
)

const twoSquares = `<svg>
	<path id="a" d="M0 0 L10 0 L10 10 L0 10 Z"/>
	<path id="b" d="M10 0 L20 0 L20 10 L10 10 Z"/>
</svg>`

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func parse(t *testing.T, text string, canvas svgmap.Size) *svgmap.Document {
	t.Helper()
	doc, err := svgmap.Parse(text, canvas)
	if err != nil {
		t.Fatalf("can't parse map: %s", err)
	}
	return doc
}

func TestRasterDocument(t *testing.T) {
	doc := parse(t, twoSquares, svgmap.Size{W: 200, H: 100})
	style := svgmap.Highlight(
		svgdraw.Style{FillColor: colornames.Red},
		svgdraw.Style{FillColor: colornames.Blue},
		"b",
	)
	img := RasterDocument(doc, style)

	if got := img.Bounds(); got != image.Rect(0, 0, 200, 100) {
		t.Fatalf("unexpected image size %v", got)
	}
	for _, test := range []struct {
		x, y int
		want color.RGBA
	}{
		{50, 50, color.RGBA{255, 0, 0, 255}},
		{150, 50, color.RGBA{0, 0, 255, 255}},
	} {
		if got := img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("pixel (%d, %d): expected %v, got %v", test.x, test.y, test.want, got)
		}
	}

	if os.Getenv("SVGMAP_SAVE") != "" {
		b, err := toPngBytes(img)
		if err != nil {
			t.Fatal(err)
		}
		if err = os.WriteFile("two_squares.png", b, os.ModePerm); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRasterStroke(t *testing.T) {
	doc := parse(t, twoSquares, svgmap.Size{W: 200, H: 100})
	style := svgmap.Uniform(svgdraw.Style{StrokeWidth: 4, StrokeColor: colornames.Black})
	img := RasterDocument(doc, style)

	// the center is not filled
	if got := img.RGBAAt(50, 50); got != (color.RGBA{}) {
		t.Errorf("expected transparent pixel, got %v", got)
	}
	// the shared border is
	if got := img.RGBAAt(100, 50); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("expected black pixel, got %v", got)
	}
}

func TestOpacity(t *testing.T) {
	doc := parse(t, twoSquares, svgmap.Size{W: 20, H: 10})
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	scanner := rasterx.NewScannerGV(20, 10, img, img.Bounds())
	renderer := NewRenderer(20, 10, scanner)
	renderer.Opacity = 0.5
	doc.Draw(renderer, svgmap.Uniform(svgdraw.Style{FillColor: colornames.Red}))

	if a := img.RGBAAt(5, 5).A; a == 0 || a == 255 {
		t.Errorf("expected translucent pixel, got alpha %d", a)
	}
}

func TestRasterDegraded(t *testing.T) {
	doc := parse(t, twoSquares, svgmap.Size{})
	if !doc.Degraded {
		t.Fatal("expected a degraded document")
	}
	img := RasterDocument(doc, nil)
	if got := img.Bounds(); got != image.Rect(0, 0, 20, 10) {
		t.Errorf("unexpected image size %v", got)
	}
}

func TestRasterDefaultStyle(t *testing.T) {
	doc := parse(t, twoSquares, svgmap.Size{W: 200, H: 100})
	img := RasterDocument(doc, nil)

	// the stroke only covers the outline
	center := img.RGBAAt(50, 50)
	if d := int(center.R) - 128; d < -1 || d > 1 || center.R != center.G || center.A != 255 {
		t.Errorf("expected a gray pixel, got %v", center)
	}
	if border := img.RGBAAt(100, 50); border.R >= center.R || border.A != 255 {
		t.Errorf("expected a darker border, got %v", border)
	}
}
