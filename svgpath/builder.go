package svgpath

// Builder resolves commands into a Path. It tracks the cursor,
// used for relative commands, and the control points of the
// cubic curve being assembled.
//
// The zero value is ready to use, starting at the origin.
type Builder struct {
	path   Path
	cursor Point

	// control points waiting for the end point of the curve
	pending  [2]Point
	npending int

	index int // of the next command
	diags []Diagnostic
}

// Build resolves all the commands of one region.
// It returns the path, the final cursor and the
// incomplete curves found.
func Build(cmds []Command) (Path, Point, []Diagnostic) {
	var b Builder
	for _, c := range cmds {
		b.Push(c)
	}
	return b.Finish()
}

// Cursor returns the current point.
func (b *Builder) Cursor() Point { return b.cursor }

func (b *Builder) resolve(c Command) Point {
	if c.Kind.IsRelative() {
		return c.Point.Add(b.cursor)
	}
	return c.Point
}

// dropPending discards a curve with no end point.
func (b *Builder) dropPending(letter byte) {
	if b.npending == 0 {
		return
	}
	b.diags = append(b.diags, Diagnostic{Kind: IncompleteCurve, Letter: letter, Offset: b.index})
	b.npending = 0
}

// Push adds one command.
func (b *Builder) Push(c Command) {
	defer func() { b.index++ }()

	if !c.Kind.IsCurve() {
		b.dropPending(c.Letter)
	}

	switch c.Kind {
	case MoveAbs, MoveRel:
		b.cursor = b.resolve(c)
		b.path.Start(b.cursor)
	case LineAbs, LineRel:
		b.cursor = b.resolve(c)
		b.path.Line(b.cursor)
	case CurveAbs, CurveRel:
		// the cursor only moves once the curve is complete, so that
		// relative control points share the same origin
		pt := b.resolve(c)
		if b.npending < 2 {
			b.pending[b.npending] = pt
			b.npending++
			return
		}
		b.path.CubeBezier(b.pending[0], b.pending[1], pt)
		b.npending = 0
		b.cursor = pt
	case ClosePath:
		// the cursor is not moved back to the start of the sub-path
		b.path.Stop(true)
	}
}

// Finish returns the path built so far, the cursor and the diagnostics.
// A curve still waiting for its end point is dropped.
func (b *Builder) Finish() (Path, Point, []Diagnostic) {
	b.dropPending(0)
	return b.path, b.cursor, b.diags
}
