// Provides parsing of map documents: SVG files whose regions
// (provinces, districts...) are described by <path> elements.
// Each region outline is scaled by a transform shared by the whole
// document, so that the map fits a target canvas while keeping the
// relative positions of its regions.
// The result can then be consumed by painting drivers,
// see for example svgmap/svgraster or svgmap/svgpdf.
package svgmap

import (
	"github.com/benoitkugler/svgmap/svgpath"
)

// Size is the size of the target canvas.
type Size struct{ W, H float64 }

func (s Size) isValid() bool { return s.W > 0 && s.H > 0 }

// Region is one drawable outline of the document.
type Region struct {
	Name string // display label
	ID   string // stable key, see Equal

	// Commands are the path data commands, as read
	Commands []svgpath.Command
	// Outline is the built path, in document space
	Outline svgpath.Path
	// Bounds is the extent of Outline, in document space
	Bounds svgpath.Bounds

	// Path is the outline mapped to the canvas
	// by the document transform.
	Path svgpath.Path
}

// Equal returns true if the regions have the same ID,
// whatever their geometry.
func (r Region) Equal(other Region) bool { return r.ID == other.ID }

// HasGeometry returns false for regions whose path data
// did not produce any point.
func (r Region) HasGeometry() bool {
	_, ok := r.Outline.Bounds()
	return ok
}

// CanvasBounds returns the extent of the region on the canvas.
func (d *Document) CanvasBounds(r Region) svgpath.Bounds {
	return d.Transform.ApplyBounds(r.Bounds)
}

// Document holds the regions of a parsed map document.
// See the `Draw` method to use it.
type Document struct {
	// ViewBox is read from the <svg> element, with the
	// `width` and `height` attributes as fallback.
	ViewBox      svgpath.Bounds
	Title        string // <title> element
	Description  string // <desc> element
	Regions      []Region
	Bounds       svgpath.Bounds    // union of the regions bounds, in document space
	Transform    svgpath.Transform // applied to every region
	Canvas       Size              // actually used to compute Transform
	Degraded     bool              // no canvas size available: Transform is the identity
	Diagnostics  []Diagnostic      // recovered problems
	regionsIndex map[string]int
}

// Lookup returns the first region with the given id.
func (d *Document) Lookup(id string) (Region, bool) {
	i, ok := d.regionsIndex[id]
	if !ok {
		return Region{}, false
	}
	return d.Regions[i], true
}

// Len returns the number of regions.
func (d *Document) Len() int { return len(d.Regions) }

func (d *Document) buildIndex() {
	d.regionsIndex = make(map[string]int, len(d.Regions))
	for i, r := range d.Regions {
		if _, has := d.regionsIndex[r.ID]; !has {
			d.regionsIndex[r.ID] = i
		}
	}
}
