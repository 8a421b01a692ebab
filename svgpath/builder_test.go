package svgpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cmd(kind CommandKind, letter byte, x, y float64) Command {
	return Command{Kind: kind, Letter: letter, Point: Point{x, y}}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name   string
		cmds   []Command
		path   Path
		cursor Point
	}{
		{
			"absolute ignores cursor",
			[]Command{cmd(MoveAbs, 'M', 5, 5), cmd(LineAbs, 'L', 1, 2), cmd(LineAbs, 'V', 3, 4)},
			Path{MoveTo{5, 5}, LineTo{1, 2}, LineTo{3, 4}},
			Point{3, 4},
		},
		{
			"relative adds cursor",
			[]Command{cmd(MoveRel, 'm', 1, 2), cmd(LineRel, 'l', 3, 4), cmd(MoveRel, 'm', -1, 0), cmd(LineRel, 'v', 0, 1)},
			Path{MoveTo{1, 2}, LineTo{4, 6}, MoveTo{3, 6}, LineTo{3, 7}},
			Point{3, 7},
		},
		{
			"absolute curve",
			[]Command{cmd(MoveAbs, 'M', 0, 0), cmd(CurveAbs, 'C', 1, 1), cmd(CurveAbs, 'C', 2, 2), cmd(CurveAbs, 'C', 3, 0)},
			Path{MoveTo{0, 0}, CubicTo{{1, 1}, {2, 2}, {3, 0}}},
			Point{3, 0},
		},
		{
			"relative curve",
			[]Command{cmd(MoveAbs, 'M', 10, 10), cmd(CurveRel, 'c', 1, 0), cmd(CurveRel, 'c', 2, 0), cmd(CurveRel, 'c', 3, 3)},
			Path{MoveTo{10, 10}, CubicTo{{11, 10}, {12, 10}, {13, 13}}},
			Point{13, 13},
		},
		{
			"chained relative curves",
			[]Command{
				cmd(MoveAbs, 'M', 0, 0),
				cmd(CurveRel, 'c', 0, 1), cmd(CurveRel, 'c', 1, 1), cmd(CurveRel, 'c', 1, 0),
				cmd(CurveRel, 'c', 0, 1), cmd(CurveRel, 'c', 1, 1), cmd(CurveRel, 'c', 1, 0),
			},
			Path{MoveTo{0, 0}, CubicTo{{0, 1}, {1, 1}, {1, 0}}, CubicTo{{1, 1}, {2, 1}, {2, 0}}},
			Point{2, 0},
		},
		{
			"close keeps cursor",
			[]Command{cmd(MoveAbs, 'M', 5, 5), cmd(LineAbs, 'L', 10, 5), {Kind: ClosePath, Letter: 'Z'}, cmd(LineRel, 'l', 1, 1)},
			Path{MoveTo{5, 5}, LineTo{10, 5}, Close{}, LineTo{11, 6}},
			Point{11, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, cursor, diags := Build(tt.cmds)
			if diff := cmp.Diff(tt.path, path); diff != "" {
				t.Errorf("unexpected path (-want +got):\n%s", diff)
			}
			if cursor != tt.cursor {
				t.Errorf("expected cursor %v, got %v", tt.cursor, cursor)
			}
			if len(diags) != 0 {
				t.Errorf("unexpected diagnostics %v", diags)
			}
		})
	}
}

func TestBuildIncompleteCurve(t *testing.T) {
	tests := []struct {
		name  string
		cmds  []Command
		path  Path
		diags []Diagnostic
	}{
		{
			"interrupted",
			[]Command{cmd(MoveAbs, 'M', 0, 0), cmd(CurveAbs, 'C', 1, 1), cmd(LineAbs, 'L', 5, 5)},
			Path{MoveTo{0, 0}, LineTo{5, 5}},
			[]Diagnostic{{Kind: IncompleteCurve, Letter: 'L', Offset: 2}},
		},
		{
			"at end",
			[]Command{cmd(MoveAbs, 'M', 0, 0), cmd(CurveAbs, 'C', 1, 1), cmd(CurveAbs, 'C', 2, 2)},
			Path{MoveTo{0, 0}},
			[]Diagnostic{{Kind: IncompleteCurve, Offset: 3}},
		},
		{
			"after a complete one",
			[]Command{
				cmd(MoveAbs, 'M', 0, 0),
				cmd(CurveAbs, 'C', 1, 1), cmd(CurveAbs, 'C', 2, 2), cmd(CurveAbs, 'C', 3, 3),
				cmd(CurveAbs, 'C', 4, 4),
				{Kind: ClosePath, Letter: 'z'},
			},
			Path{MoveTo{0, 0}, CubicTo{{1, 1}, {2, 2}, {3, 3}}, Close{}},
			[]Diagnostic{{Kind: IncompleteCurve, Letter: 'z', Offset: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, _, diags := Build(tt.cmds)
			if diff := cmp.Diff(tt.path, path); diff != "" {
				t.Errorf("unexpected path (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.diags, diags); diff != "" {
				t.Errorf("unexpected diagnostics (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLexThenBuild(t *testing.T) {
	path, cursor, diags := Build(mustLex(t, "m10 10 c0-5 10-5 10 0 l0 10z"))
	expected := Path{MoveTo{10, 10}, CubicTo{{10, 5}, {20, 5}, {20, 10}}, LineTo{20, 20}, Close{}}
	if diff := cmp.Diff(expected, path); diff != "" {
		t.Errorf("unexpected path (-want +got):\n%s", diff)
	}
	if cursor != (Point{20, 20}) {
		t.Errorf("unexpected cursor %v", cursor)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics %v", diags)
	}
}

func mustLex(t *testing.T, d string) []Command {
	t.Helper()
	cmds, diags := Lex(d)
	if len(diags) != 0 {
		t.Fatalf("lexing %q: %v", d, diags)
	}
	return cmds
}
