package svgmap

import (
	"math"

	"github.com/benoitkugler/svgmap/svgpath"
)

// Layout is the result of the normalization of a set of regions.
type Layout struct {
	Regions   []Region
	Bounds    svgpath.Bounds // in document space
	Transform svgpath.Transform

	Degenerate bool // Bounds has no area, the scale is 1
	Degraded   bool // the canvas is empty, Transform is the identity
}

// Normalize measures the regions and maps all of them to `canvas`
// with the same transform, so that their union fits the canvas,
// preserving the aspect ratio.
// The input regions are not modified.
func Normalize(regions []Region, canvas Size, mode BoundsMode) Layout {
	measured, bounds, hasGeometry := measure(regions, mode)

	var out Layout
	out.Bounds = bounds
	out.Degenerate = hasGeometry && bounds.IsDegenerate()
	if canvas.isValid() {
		out.Transform = Fit(bounds, canvas)
	} else {
		out.Transform = svgpath.Identity
		out.Degraded = true
	}
	out.Regions = apply(measured, out.Transform)
	return out
}

// Fit returns the transform moving `bounds` to the origin and
// scaling it uniformly to fit in `canvas`.
// If `bounds` has no width or no height, the scale is 1.
func Fit(bounds svgpath.Bounds, canvas Size) svgpath.Transform {
	scale := 1.
	if !bounds.IsDegenerate() {
		scale = math.Min(canvas.W/bounds.W, canvas.H/bounds.H)
	}
	return svgpath.Transform{Scale: scale, TX: -bounds.X, TY: -bounds.Y}
}

// measure is the first pass: it computes the bounds of each region,
// and their union. Regions without points do not contribute.
func measure(regions []Region, mode BoundsMode) ([]Region, svgpath.Bounds, bool) {
	out := make([]Region, len(regions))
	var (
		union svgpath.Bounds
		seen  bool
	)
	for i, r := range regions {
		var (
			b  svgpath.Bounds
			ok bool
		)
		if mode == TightBounds {
			b, ok = r.Outline.TightBounds()
		} else {
			b, ok = r.Outline.Bounds()
		}
		r.Bounds = b
		out[i] = r
		if !ok {
			continue
		}
		if seen {
			union = union.Union(b)
		} else {
			union, seen = b, true
		}
	}
	return out, union, seen
}

// apply is the second pass: it maps every outline with `t`.
func apply(regions []Region, t svgpath.Transform) []Region {
	for i := range regions {
		regions[i].Path = regions[i].Outline.Transform(t)
	}
	return regions
}
