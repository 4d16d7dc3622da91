// printer.go: textual rendering of runtime values.
package pyrust

import (
	"strconv"
	"strings"
)

// FormatValue renders v the way `print` writes it: decimal integers,
// shortest round-trip floats with at least one fractional digit, bare
// string contents, true/false. Functions render as "<fn name>" for the
// REPL echo; `print` itself rejects them before formatting.
func FormatValue(v Value) string {
	switch v.Tag {
	case VTBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case VTInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTFloat:
		s := strconv.FormatFloat(v.Data.(float64), 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case VTStr:
		return v.Data.(string)
	case VTFun:
		f := v.Data.(*Fun)
		return "<fn " + f.Name + ">"
	}
	return "<unit>"
}
