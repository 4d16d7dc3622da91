// errors.go: caret-snippet rendering for positioned diagnostics.
//
// Lex and parse errors already render in the canonical single-line format
// via their Error() methods. WrapErrorWithSource augments them with a
// numbered source excerpt and a caret under the offending column, for
// drivers that want richer output (the CLI's --verbose mode). Errors
// without a position pass through unchanged.
package pyrust

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource returns an error whose message includes a source
// snippet with a caret at the error position. Only *LexError and
// *ParseError are recognized; any other error is returned as-is.
func WrapErrorWithSource(err error, src string) error {
	switch e := err.(type) {
	case *LexError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, e.Col))
	case *ParseError:
		return fmt.Errorf("%s", snippet(src, e.Error(), e.Line, e.Col))
	default:
		return err
	}
}

// snippet builds the annotated excerpt: the header line, up to one line of
// context before and after, and a caret under the 1-based column.
// Out-of-range coordinates are clamped so rendering never fails.
func snippet(src, header string, line, col int) string {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", header)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
