package svgmap

import "github.com/benoitkugler/svgmap/svgdraw"

// StyleFunc chooses the paint of each region.
type StyleFunc func(Region) svgdraw.Style

// Uniform paints every region with `s`.
func Uniform(s svgdraw.Style) StyleFunc {
	return func(Region) svgdraw.Style { return s }
}

// Highlight paints the regions with the given ids using `selected`,
// and the others using `base`.
func Highlight(base, selected svgdraw.Style, ids ...string) StyleFunc {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return func(r Region) svgdraw.Style {
		if set[r.ID] {
			return selected
		}
		return base
	}
}

// Draw paints the regions, in document order, using their
// canvas space path.
// A nil `style` uses svgdraw.DefaultStyle for every region.
func (d *Document) Draw(driver svgdraw.Driver, style StyleFunc) {
	if style == nil {
		style = Uniform(svgdraw.DefaultStyle)
	}
	for _, r := range d.Regions {
		svgdraw.DrawPath(driver, r.Path, style(r))
	}
}
