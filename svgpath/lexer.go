package svgpath

import (
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// Lex reads the path data `d` into a sequence of commands.
// Coordinates are returned as written: relative commands
// are resolved later by the Builder.
// Problems are recovered locally and reported as diagnostics:
// the commands returned are always usable.
func Lex(d string) ([]Command, []Diagnostic) {
	var lx lexer
	for i := 0; i < len(d); i++ {
		lx.feed(d, i)
	}
	lx.flush(d)
	return lx.cmds, lx.diags
}

// lexState is the scanning state carried from one byte to the next.
type lexState struct {
	letter  byte // current command letter, 0 before the first one
	start   int  // offset of the payload in the source
	payload []byte
}

type lexer struct {
	state lexState
	cmds  []Command
	diags []Diagnostic
}

func (lx *lexer) feed(d string, i int) {
	c := d[i]
	if !isCommandLetter(c) {
		if len(lx.state.payload) == 0 {
			lx.state.start = i
		}
		lx.state.payload = append(lx.state.payload, c)
		return
	}

	// a command letter closes the payload of the previous one
	lx.flush(d)
	lx.state = lexState{letter: c, start: i + 1, payload: lx.state.payload[:0]}

	if c == 'z' || c == 'Z' {
		lx.cmds = append(lx.cmds, Command{Kind: ClosePath, Letter: c})
	}
}

func (lx *lexer) diagnose(kind DiagnosticKind, offset int, token string) {
	lx.diags = append(lx.diags, Diagnostic{Kind: kind, Letter: lx.state.letter, Offset: offset, Token: token})
}

// flush converts the accumulated payload into commands
// of the current letter.
func (lx *lexer) flush(d string) {
	st := lx.state
	if st.letter == 'z' || st.letter == 'Z' {
		// close takes no payload: anything else is noise
		if i := skipSeparators(st.payload); i < len(st.payload) {
			lx.diagnose(MalformedCoordinate, st.start+i, tokenAt(st.payload, i))
		}
		return
	}

	if st.letter == 0 {
		if i := skipSeparators(st.payload); i < len(st.payload) {
			lx.diagnose(MalformedCoordinate, st.start+i, tokenAt(st.payload, i))
		}
		return
	}

	kind, ok := kindOf(st.letter)
	if !ok {
		lx.diagnose(UnsupportedCommand, st.start-1, string(st.letter))
		return
	}

	values, bad := scanValues(st.payload)
	for j := 0; j+1 < len(values); j += 2 {
		lx.cmds = append(lx.cmds, Command{Kind: kind, Letter: st.letter, Point: Point{values[j], values[j+1]}})
	}
	if bad >= 0 {
		lx.diagnose(MalformedCoordinate, st.start+bad, tokenAt(st.payload, bad))
		return
	}
	if len(values)%2 == 1 {
		lx.diagnose(OddCoordinate, st.start, "")
	}
}

// isSeparator returns true for the characters separating
// two coordinates.
func isSeparator(c byte) bool {
	return c == ',' || c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func skipSeparators(b []byte) int {
	i := 0
	for i < len(b) && isSeparator(b[i]) {
		i++
	}
	return i
}

// tokenAt returns the text starting at i, up to the next separator.
func tokenAt(b []byte, i int) string {
	j := i
	for j < len(b) && !isSeparator(b[j]) {
		j++
	}
	return string(b[i:j])
}

// scanValues parses every number of the payload. If a non numeric
// token is found, scanning stops and its offset is returned as `bad`,
// which is -1 otherwise. Numbers overflowing a float64 are not numeric.
func scanValues(payload []byte) (values []float64, bad int) {
	i := 0
	for {
		i += skipSeparators(payload[i:])
		if i >= len(payload) {
			return values, -1
		}
		f, n := strconv.ParseFloat(payload[i:])
		if n == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
			return values, i
		}
		values = append(values, f)
		i += n
	}
}
