/*
File    : symstatic/env/env.go

Package env implements the lexical scope chain the evaluator binds
names into. It generalizes the teacher interpreter's scope.Scope:
where that scope tracked three parallel maps (Consts, LetVars,
LetTypes) to support a statically typed const/let distinction, komodo
has no static types, so only one bit of per-binding state survives —
whether a name, once bound, can be reassigned.
*/
package env

import "github.com/danilopedraza/symstatic/object"

type binding struct {
	value     object.Object
	immutable bool
}

// Environment is one frame of the lexical scope chain. A nil Parent
// marks the global (root) frame.
type Environment struct {
	vars   map[string]binding
	Parent *Environment
}

// New creates a root Environment with no parent.
func New() *Environment {
	return &Environment{vars: make(map[string]binding)}
}

// PushScope returns a new Environment nested under e, for entering a
// function body, for-loop body, or comprehension binder.
func (e *Environment) PushScope() *Environment {
	return &Environment{vars: make(map[string]binding), Parent: e}
}

// Get searches this frame and every enclosing frame for name.
func (e *Environment) Get(name string) (object.Object, bool) {
	if b, ok := e.vars[name]; ok {
		return b.value, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// IsImmutable reports whether name, wherever it is bound in the scope
// chain, was bound immutably. A name with no binding is not immutable.
func (e *Environment) IsImmutable(name string) bool {
	if b, ok := e.vars[name]; ok {
		return b.immutable
	}
	if e.Parent != nil {
		return e.Parent.IsImmutable(name)
	}
	return false
}

// Set binds name to value in the current frame as a mutable binding.
// It reports false without binding anything if name is already bound
// immutably in this same frame — the language's ReadOnlyBinding rule.
// A name immutable only in an enclosing frame is shadowed normally.
func (e *Environment) Set(name string, value object.Object) bool {
	if b, ok := e.vars[name]; ok && b.immutable {
		return false
	}
	e.vars[name] = binding{value: value}
	return true
}

// SetImmutable binds name to value in the current frame as an
// immutable binding — used for function clauses, builtins, and
// imported names that were bound immutably in their module, none of
// which the language allows reassigning.
func (e *Environment) SetImmutable(name string, value object.Object) {
	e.vars[name] = binding{value: value, immutable: true}
}
