// interpreter.go — public surface of the Pyrustlang runtime.
//
// What you get in this file:
//   - The runtime value model (Value, ValueTag, constructors Int/Float/Str/Bool).
//   - Functions/closures (Fun) as runtime values.
//   - Environments (Env) with lexical scoping and per-binding mutability.
//   - The Interpreter with the canonical entry points: Run for whole
//     programs, EvalSource for source text, and EvalLine for REPL lines.
//   - A structured RuntimeError surfaced as a Go error by all entry points.
//
// Evaluation itself (statement execution, operators, call frames) lives in
// interpreter_exec.go.
//
// SCOPING
// -------
// Code evaluates in environments (*Env) that form a lexical chain via the
// parent link. Global is the root frame and lives for the whole program
// run. Function calls evaluate in a fresh child of the function's captured
// environment — never of the caller's — and `if`/`else`/`while` bodies and
// bare blocks each get a fresh child of the surrounding scope.
//
// Bindings are slots {value, mutable}. Lookup and reassignment walk
// parent-ward to the nearest slot; declaration always lands in the current
// frame, shadowing outer bindings of the same name. A slot's mutability is
// fixed at declaration and enforced on every reassignment; the stored
// value's type is not re-checked after declaration.
package pyrust

import (
	"fmt"
	"io"
	"os"
)

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTUnit  ValueTag = iota // result of statements and valueless returns
	VTBool                  // bool
	VTInt                   // int64
	VTFloat                 // float64
	VTStr                   // string
	VTFun                   // *Fun
)

// String renders the tag the way programs name it in annotations.
func (t ValueTag) String() string {
	switch t {
	case VTUnit:
		return "unit"
	case VTBool:
		return "bool"
	case VTInt:
		return "i32"
	case VTFloat:
		return "f64"
	case VTStr:
		return "str"
	case VTFun:
		return "fn"
	}
	return "?"
}

// Value is the universal runtime carrier used by the interpreter.
// The tag determines which Go type Data holds: bool for VTBool, int64 for
// VTInt, float64 for VTFloat, string for VTStr, *Fun for VTFun, nil for
// VTUnit.
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// Unit is the singleton unit value. It is not first-class: it cannot be
// printed or used as an operand.
var Unit = Value{Tag: VTUnit}

func Bool(b bool) Value     { return Value{Tag: VTBool, Data: b} }
func Int(n int64) Value     { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Str(s string) Value    { return Value{Tag: VTStr, Data: s} }
func FunVal(f *Fun) Value   { return Value{Tag: VTFun, Data: f} }

// Matches reports whether a runtime value carries the tag an annotation
// demands. The check is exact: i32 is Int, f64 is Float, with no widening.
func (t TypeTag) Matches(v Value) bool {
	switch t {
	case TypeI32:
		return v.Tag == VTInt
	case TypeF64:
		return v.Tag == VTFloat
	case TypeStr:
		return v.Tag == VTStr
	case TypeBool:
		return v.Tag == VTBool
	}
	return false
}

// Fun is a function value: declared signature, body, and the environment
// captured at the point of declaration. The captured environment is shared,
// not owned; it lives as long as its longest holder.
type Fun struct {
	Name       string
	Params     []Param
	ReturnType *TypeTag
	Body       []Stmt
	Env        *Env
}

// ErrKind classifies runtime failures.
type ErrKind int

const (
	KindName ErrKind = iota
	KindType
	KindImmutable
	KindArity
	KindDivZero
	KindNotCallable
	KindOverflow
	KindRecursion
)

// RuntimeError is an execution-time failure. Runtime positions are not
// tracked; the message alone identifies the failure.
type RuntimeError struct {
	Kind ErrKind
	Msg  string
}

func (e *RuntimeError) Error() string {
	return "Error: " + e.Msg
}

func rtErr(kind ErrKind, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// binding is a scope slot: the stored value plus the mutability flag fixed
// at declaration.
type binding struct {
	value   Value
	mutable bool
}

// Env is a lexical environment frame with a parent link. Lookups walk
// parent-ward.
type Env struct {
	parent *Env
	table  map[string]binding
}

// NewEnv creates a new frame with the given parent (nil for the global
// frame).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]binding)}
}

// Define binds name in the current frame, shadowing any outer binding.
// Redeclaration in the same frame replaces the slot.
func (e *Env) Define(name string, v Value, mutable bool) {
	e.table[name] = binding{value: v, mutable: mutable}
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name string) (Value, *RuntimeError) {
	for s := e; s != nil; s = s.parent {
		if b, ok := s.table[name]; ok {
			return b.value, nil
		}
	}
	return Value{}, rtErr(KindName, "Variable '%s' not defined", name)
}

// Set updates the nearest visible binding of name. The slot must exist and
// be mutable; Set never declares.
func (e *Env) Set(name string, v Value) *RuntimeError {
	for s := e; s != nil; s = s.parent {
		if b, ok := s.table[name]; ok {
			if !b.mutable {
				return rtErr(KindImmutable, "Cannot reassign immutable variable '%s'", name)
			}
			b.value = v
			s.table[name] = b
			return nil
		}
	}
	return rtErr(KindName, "Variable '%s' not defined", name)
}

// Names returns every identifier visible from this frame, nearest first.
// Used by the REPL completer.
func (e *Env) Names() []string {
	seen := make(map[string]bool)
	var out []string
	for s := e; s != nil; s = s.parent {
		for name := range s.table {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

// snapshot copies the frame's own slot table (used for REPL rollback).
func (e *Env) snapshot() map[string]binding {
	out := make(map[string]binding, len(e.table))
	for k, v := range e.table {
		out[k] = v
	}
	return out
}

func (e *Env) restore(snap map[string]binding) {
	e.table = snap
}

// DefaultMaxDepth bounds call nesting so runaway recursion surfaces as a
// runtime error instead of exhausting the host stack.
const DefaultMaxDepth = 10000

// Interpreter evaluates parsed programs against a persistent global
// environment. Program output goes to Stdout (os.Stdout by default; tests
// substitute a buffer).
type Interpreter struct {
	Global *Env
	Stdout io.Writer

	depth    int
	maxDepth int
}

// NewInterpreter constructs an interpreter with an empty global frame.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		Global:   NewEnv(nil),
		Stdout:   os.Stdout,
		maxDepth: DefaultMaxDepth,
	}
}

// Run executes a parsed program in the global environment. A `return` at
// the top level ends the run.
func (ip *Interpreter) Run(prog []Stmt) error {
	_, _, err := ip.execBlock(prog, ip.Global)
	if err != nil {
		return err
	}
	return nil
}

// EvalSource parses and runs a complete source text. Lex and parse errors
// carry source positions; runtime errors do not.
func (ip *Interpreter) EvalSource(src string) error {
	prog, err := Parse(src)
	if err != nil {
		return err
	}
	return ip.Run(prog)
}

// EvalLine evaluates one REPL line against the global environment and
// returns the value of its trailing expression statement, with echo true
// when the REPL should print it.
//
// A failed line installs nothing: the global frame is snapshotted before
// the line runs and restored on any error, so bindings (and closures over
// them) from the failed line are discarded.
func (ip *Interpreter) EvalLine(src string) (val Value, echo bool, err error) {
	prog, perr := ParseInteractive(src)
	if perr != nil {
		return Unit, false, perr
	}

	snap := ip.Global.snapshot()
	last := Unit
	lastExpr := false
	for _, s := range prog {
		ctrl, v, rerr := ip.execStmt(s, ip.Global)
		if rerr != nil {
			ip.Global.restore(snap)
			return Unit, false, rerr
		}
		if ctrl == ctrlReturn {
			break
		}
		_, lastExpr = s.(*ExprStmt)
		last = v
	}
	if lastExpr && last.Tag != VTUnit {
		return last, true, nil
	}
	return Unit, false, nil
}
