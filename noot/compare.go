package noot

import (
	"bytes"
	"reflect"
)

// Equal reports whether a and b are structurally equal.  Equal is total
// over every kind and never panics; values of mismatched kinds are simply
// unequal, except that ints and reals holding the same mathematical value
// compare equal.  Closures compare by their underlying callable only;
// captures are not inspected.
func Equal(a, b NVal) bool {
	switch a.Type {
	case NNil:
		return b.Type == NNil
	case NBool:
		return b.Type == NBool && a.Bool == b.Bool
	case NInt:
		switch b.Type {
		case NInt:
			return a.Int == b.Int
		case NReal:
			return float64(a.Int) == b.Real
		}
	case NReal:
		switch b.Type {
		case NInt:
			return a.Real == float64(b.Int)
		case NReal:
			return a.Real == b.Real
		}
	case NString:
		return b.Type == NString && bytes.Equal(a.Bytes, b.Bytes)
	case NFun:
		return b.Type == NFun && fnPointer(a.Fn) == fnPointer(b.Fn)
	case NClosure:
		return b.Type == NClosure && fnPointer(a.ClosureFn) == fnPointer(b.ClosureFn)
	case NError:
		return b.Type == NError && Equal(*a.Err, *b.Err)
	}
	return false
}

// NotEqual is the negation of Equal.
func NotEqual(a, b NVal) bool {
	return !Equal(a, b)
}

// Less reports whether a orders before b.  Ordering is defined within a
// kind, and across the int/real pairing; any other pairing is a type
// panic, including nil, list, and tree values, whose ordering is
// intentionally undefined.  Callables order by the identity of their
// underlying callable, which is stable within a process run but not
// meaningful across runs.
func (rt *Runtime) Less(a, b NVal) bool {
	switch a.Type {
	case NBool:
		if b.Type == NBool {
			return !a.Bool && b.Bool
		}
	case NInt:
		switch b.Type {
		case NInt:
			return a.Int < b.Int
		case NReal:
			return float64(a.Int) < b.Real
		}
	case NReal:
		switch b.Type {
		case NInt:
			return a.Real < float64(b.Int)
		case NReal:
			return a.Real < b.Real
		}
	case NString:
		if b.Type == NString {
			return bytes.Compare(a.Bytes, b.Bytes) < 0
		}
	case NFun:
		if b.Type == NFun {
			return fnPointer(a.Fn) < fnPointer(b.Fn)
		}
	case NClosure:
		if b.Type == NClosure {
			return fnPointer(a.ClosureFn) < fnPointer(b.ClosureFn)
		}
	case NError:
		// Matches the original runtime: comparing two errors answers
		// equality of the wrapped values.
		if b.Type == NError {
			return Equal(*a.Err, *b.Err)
		}
	}
	rt.binaryTypePanic("Attempted to compare incompatible types %s and %s", a.Type, b.Type)
	return false
}

// Greater reports whether a orders after b.  See Less for the kinds that
// may be ordered.
func (rt *Runtime) Greater(a, b NVal) bool {
	switch a.Type {
	case NBool:
		if b.Type == NBool {
			return a.Bool && !b.Bool
		}
	case NInt:
		switch b.Type {
		case NInt:
			return a.Int > b.Int
		case NReal:
			return float64(a.Int) > b.Real
		}
	case NReal:
		switch b.Type {
		case NInt:
			return a.Real > float64(b.Int)
		case NReal:
			return a.Real > b.Real
		}
	case NString:
		if b.Type == NString {
			return bytes.Compare(a.Bytes, b.Bytes) > 0
		}
	case NFun:
		if b.Type == NFun {
			return fnPointer(a.Fn) > fnPointer(b.Fn)
		}
	case NClosure:
		if b.Type == NClosure {
			return fnPointer(a.ClosureFn) > fnPointer(b.ClosureFn)
		}
	case NError:
		if b.Type == NError {
			return Equal(*a.Err, *b.Err)
		}
	}
	rt.binaryTypePanic("Attempted to compare incompatible types %s and %s", a.Type, b.Type)
	return false
}

// LessEq reports a <= b.
func (rt *Runtime) LessEq(a, b NVal) bool {
	return rt.Less(a, b) || Equal(a, b)
}

// GreaterEq reports a >= b.
func (rt *Runtime) GreaterEq(a, b NVal) bool {
	return rt.Greater(a, b) || Equal(a, b)
}

// IsTrue reports the truthiness of v.  A bool yields its own value; nil
// and error values are false; everything else is true.  IsTrue is total
// and never panics.
func IsTrue(v NVal) bool {
	if v.Type == NBool {
		return v.Bool
	}
	return v.Type != NNil && v.Type != NError
}

// Not returns the boolean negation of v: a bool is inverted, nil negates
// to true, and every other value negates to false.
func Not(v NVal) NVal {
	if v.Type == NBool {
		return Bool(!v.Bool)
	}
	return Bool(v.Type == NNil)
}

// NotFn is Not in the native calling convention.
func NotFn(args []NVal) NVal {
	return Not(arg(args, 0))
}

// fnPointer returns the code pointer behind a callable so functions and
// closures can be compared by reference identity.
func fnPointer(fn interface{}) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
