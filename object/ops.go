/*
File    : symstatic/object/ops.go

Package object's operator table: the arithmetic, comparison, boolean
and bitwise operations the evaluator dispatches infix and prefix nodes
to. Every operator either returns a value or ErrUnsupported, which the
evaluator turns into a positioned NonExistentOperation error — no
operator here ever panics on a type mismatch.
*/
package object

import (
	"errors"
	"math/big"
)

// ErrUnsupported is returned by any operator applied to operand types
// it is not defined on.
var ErrUnsupported = errors.New("unsupported operation")

func Add(a, b Object) (Object, error) {
	switch x := a.(type) {
	case *Integer:
		if y, ok := b.(*Integer); ok {
			return NewInteger(new(big.Int).Add(x.Value, y.Value)), nil
		}
	case *String:
		if y, ok := b.(*String); ok {
			return NewString(x.Value + y.Value), nil
		}
	case *List:
		if y, ok := b.(*List); ok {
			elems := append(append([]Object{}, x.Elems...), y.Elems...)
			return NewList(elems), nil
		}
	}
	return nil, ErrUnsupported
}

func Sub(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Sub(x.Value, y.Value)), nil
}

func Mul(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Mul(x.Value, y.Value)), nil
}

// Div is integer division truncating toward zero, matching Go's
// native big.Int.Quo.
func Div(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok || y.Value.Sign() == 0 {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Quo(x.Value, y.Value)), nil
}

// Mod takes the sign of the dividend, matching Go's native
// big.Int.Rem.
func Mod(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok || y.Value.Sign() == 0 {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Rem(x.Value, y.Value)), nil
}

// Pow requires a non-negative exponent; a negative exponent is
// unsupported rather than producing a fractional result, since komodo
// integers have no fractional representation.
func Pow(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok || y.Value.Sign() < 0 {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Exp(x.Value, y.Value, nil)), nil
}

func compareOrdered(a, b Object) (int, bool) {
	switch x := a.(type) {
	case *Integer:
		if y, ok := b.(*Integer); ok {
			return x.Value.Cmp(y.Value), true
		}
	case *Char:
		if y, ok := b.(*Char); ok {
			return int(x.Value) - int(y.Value), true
		}
	case *String:
		if y, ok := b.(*String); ok {
			switch {
			case x.Value < y.Value:
				return -1, true
			case x.Value > y.Value:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	return 0, false
}

func Lt(a, b Object) (Object, error) {
	cmp, ok := compareOrdered(a, b)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewBoolean(cmp < 0), nil
}

func Le(a, b Object) (Object, error) {
	cmp, ok := compareOrdered(a, b)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewBoolean(cmp <= 0), nil
}

func Gt(a, b Object) (Object, error) {
	cmp, ok := compareOrdered(a, b)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewBoolean(cmp > 0), nil
}

func Ge(a, b Object) (Object, error) {
	cmp, ok := compareOrdered(a, b)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewBoolean(cmp >= 0), nil
}

// Eq and Neq are defined on any two objects of any type, per the
// language's universal equality: false across mismatched tags, never
// unsupported.
func Eq(a, b Object) (Object, error) { return NewBoolean(Equal(a, b)), nil }
func Neq(a, b Object) (Object, error) { return NewBoolean(!Equal(a, b)), nil }

func And(a, b Object) (Object, error) {
	x, xok := a.(*Boolean)
	y, yok := b.(*Boolean)
	if !xok || !yok {
		return nil, ErrUnsupported
	}
	return NewBoolean(x.Value && y.Value), nil
}

func Or(a, b Object) (Object, error) {
	x, xok := a.(*Boolean)
	y, yok := b.(*Boolean)
	if !xok || !yok {
		return nil, ErrUnsupported
	}
	return NewBoolean(x.Value || y.Value), nil
}

func Not(a Object) (Object, error) {
	x, ok := a.(*Boolean)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewBoolean(!x.Value), nil
}

func BitAnd(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).And(x.Value, y.Value)), nil
}

func BitXor(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Xor(x.Value, y.Value)), nil
}

func BitNot(a Object) (Object, error) {
	x, ok := a.(*Integer)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Not(x.Value)), nil
}

func Shl(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok || y.Value.Sign() < 0 || !y.Value.IsUint64() {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Lsh(x.Value, uint(y.Value.Uint64()))), nil
}

func Shr(a, b Object) (Object, error) {
	x, xok := a.(*Integer)
	y, yok := b.(*Integer)
	if !xok || !yok || y.Value.Sign() < 0 || !y.Value.IsUint64() {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Rsh(x.Value, uint(y.Value.Uint64()))), nil
}

func Neg(a Object) (Object, error) {
	x, ok := a.(*Integer)
	if !ok {
		return nil, ErrUnsupported
	}
	return NewInteger(new(big.Int).Neg(x.Value)), nil
}

// Contains implements `in`: rhs is a List or Set, searched linearly by
// value equality. ComprehensionSet membership is not handled here —
// it requires re-entering the evaluator, so the eval package checks
// for it before falling back to Contains.
func Contains(rhs, lhs Object) (Object, error) {
	switch y := rhs.(type) {
	case *List:
		for _, e := range y.Elems {
			if Equal(e, lhs) {
				return NewBoolean(true), nil
			}
		}
		return NewBoolean(false), nil
	case *Set:
		return NewBoolean(y.Has(lhs)), nil
	}
	return nil, ErrUnsupported
}
