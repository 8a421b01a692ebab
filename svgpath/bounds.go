package svgpath

import "math"

// Bounds defines an axis aligned bounding box,
// such as a viewport or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// Max returns the bottom right corner.
func (b Bounds) Max() Point { return Point{b.X + b.W, b.Y + b.H} }

// IsDegenerate returns true if the box has no area.
func (b Bounds) IsDegenerate() bool { return b.W == 0 || b.H == 0 }

// Union returns the smallest box containing `b` and `o`.
func (b Bounds) Union(o Bounds) Bounds {
	var e extent
	e.add(Point{b.X, b.Y})
	e.add(b.Max())
	e.add(Point{o.X, o.Y})
	e.add(o.Max())
	return e.bounds()
}

// extent accumulates the extrema of a set of points
type extent struct {
	minX, minY, maxX, maxY float64
	seen                   bool
}

func (e *extent) add(p Point) {
	if !e.seen {
		e.minX, e.maxX, e.minY, e.maxY = p.X, p.X, p.Y, p.Y
		e.seen = true
		return
	}
	e.minX = math.Min(e.minX, p.X)
	e.minY = math.Min(e.minY, p.Y)
	e.maxX = math.Max(e.maxX, p.X)
	e.maxY = math.Max(e.maxY, p.Y)
}

func (e extent) bounds() Bounds {
	return Bounds{X: e.minX, Y: e.minY, W: e.maxX - e.minX, H: e.maxY - e.minY}
}

// Bounds returns the extrema of every point of the path,
// curve control points included, which may over-estimate
// the visual extent of curves.
// `ok` is false for a path without points.
func (p Path) Bounds() (b Bounds, ok bool) {
	var e extent
	for _, op := range p {
		for _, pt := range op.points() {
			e.add(pt)
		}
	}
	return e.bounds(), e.seen
}

// TightBounds returns the extent of the drawn outline:
// curves contribute their end points and their extrema,
// not their control points.
func (p Path) TightBounds() (b Bounds, ok bool) {
	var (
		e       extent
		current Point
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = Point(op)
			e.add(current)
		case LineTo:
			current = Point(op)
			e.add(current)
		case CubicTo:
			curve := cubicBezier{current, op[0], op[1], op[2]}
			tX, tY := curve.criticalPoints()
			// add begin and end point
			for _, t := range append(append(tX, 0, 1), tY...) {
				// filter invalid value
				if !(0 <= t && t <= 1) {
					continue
				}
				e.add(curve.evaluate(t))
			}
			current = op[2]
		}
	}
	return e.bounds(), e.seen
}

type cubicBezier [4]Point

// compute the t zeroing the derivative
func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

// compute the point a time t
func (cu cubicBezier) evaluate(t float64) Point {
	return Point{
		X: bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		Y: bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// bX + c, a line
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
