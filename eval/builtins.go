/*
File    : symstatic/eval/builtins.go

Package eval's builtin registration. Grounded on the teacher
interpreter's objects.Builtin{Name, Callback} pattern (objects/
builtins.go's commonMethods/init), cut down to exactly the five
builtins the language specifies: println/1, print/1, getln/0,
assert/1, assert/2. Each is registered as an Extern Function bound
immutably in the global Environment, so user code cannot shadow or
reassign them.
*/
package eval

import (
	"fmt"

	"github.com/danilopedraza/symstatic/object"
)

// registerBuiltins installs println, print, getln, and assert into
// scope as immutable bindings, closing over e so they read/write
// through e.Writer/e.Reader (and so SetWriter/SetReader redirection
// affects already-evaluated programs, not just newly built ones).
func (e *Evaluator) registerBuiltins(scope interface {
	SetImmutable(name string, value object.Object)
}) {
	scope.SetImmutable("println", object.NewExternFunction(e.builtinPrintln))
	scope.SetImmutable("print", object.NewExternFunction(e.builtinPrint))
	scope.SetImmutable("getln", object.NewExternFunction(e.builtinGetln))
	scope.SetImmutable("assert", object.NewExternFunction(e.builtinAssert))
}

func (e *Evaluator) builtinPrintln(args []object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("println/1: got %d arguments, want 1", len(args))
	}
	fmt.Fprintln(e.Writer, args[0].String())
	return object.NewTuple(nil), nil
}

func (e *Evaluator) builtinPrint(args []object.Object) (object.Object, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("print/1: got %d arguments, want 1", len(args))
	}
	fmt.Fprint(e.Writer, args[0].String())
	return object.NewTuple(nil), nil
}

// builtinGetln reads a single line from e.Reader, stripping the
// trailing newline. EOF with no bytes read is reported as an error;
// a final line with no trailing newline is still returned.
func (e *Evaluator) builtinGetln(args []object.Object) (object.Object, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("getln/0: got %d arguments, want 0", len(args))
	}
	line, err := e.Reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, err
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return object.NewString(line), nil
}

// builtinAssert implements both assert/1 and assert/2: on a falsy
// first argument it returns an Error(FailedAssertion) value rather
// than a Go error, since a failed assertion flows through ordinary
// program evaluation per the language's error taxonomy.
func (e *Evaluator) builtinAssert(args []object.Object) (object.Object, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, fmt.Errorf("assert/1 or assert/2: got %d arguments", len(args))
	}
	if truthy(args[0]) {
		return object.NewTuple(nil), nil
	}
	msg := ""
	if len(args) == 2 {
		msg = args[1].String()
	}
	return object.NewError(msg), nil
}
