// errors_test.go
package pyrust

import (
	"errors"
	"strings"
	"testing"
)

func Test_ErrorStrings_CanonicalFormat(t *testing.T) {
	le := &LexError{Line: 3, Col: 7, Msg: "Unexpected character: @"}
	if le.Error() != "Error: Line 3, Column 7: Unexpected character: @" {
		t.Fatalf("lex error format: %q", le.Error())
	}

	pe := &ParseError{Line: 1, Col: 5, Msg: "Expected '=', found integer"}
	if pe.Error() != "Error: Line 1, Column 5: Expected '=', found integer" {
		t.Fatalf("parse error format: %q", pe.Error())
	}

	re := &RuntimeError{Kind: KindDivZero, Msg: "Division by zero"}
	if re.Error() != "Error: Division by zero" {
		t.Fatalf("runtime error format: %q", re.Error())
	}
}

func Test_WrapErrorWithSource_Snippet(t *testing.T) {
	src := "let x = 1\nlet = 2\nprint(x)"
	_, err := Parse(src)
	if err == nil {
		t.Fatalf("expected parse error")
	}

	wrapped := WrapErrorWithSource(err, src)
	msg := wrapped.Error()

	if !strings.Contains(msg, "Error: Line 2, Column 5") {
		t.Fatalf("missing header: %q", msg)
	}
	// Context lines with numbers, and a caret under column 5.
	if !strings.Contains(msg, "   2 | let = 2") {
		t.Fatalf("missing source line: %q", msg)
	}
	if !strings.Contains(msg, "   1 | let x = 1") || !strings.Contains(msg, "   3 | print(x)") {
		t.Fatalf("missing context lines: %q", msg)
	}
	if !strings.Contains(msg, "     |     ^") {
		t.Fatalf("missing caret: %q", msg)
	}
}

func Test_WrapErrorWithSource_PassThrough(t *testing.T) {
	plain := errors.New("boom")
	if got := WrapErrorWithSource(plain, "src"); got != plain {
		t.Fatalf("non-positioned errors must pass through, got %v", got)
	}

	re := &RuntimeError{Kind: KindName, Msg: "Variable 'x' not defined"}
	if got := WrapErrorWithSource(re, "src"); got != error(re) {
		t.Fatalf("runtime errors must pass through, got %v", got)
	}
}
