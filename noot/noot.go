package noot

import "bytes"

// NType is the kind of an NVal.
type NType uint

// Possible NType values
const (
	NNil NType = iota
	NBool
	NInt
	NReal
	NString
	NList
	NTree
	NFun
	NClosure
	NError
)

// Closures render with the same kind name as plain functions; user programs
// cannot tell them apart.
var ntypeStrings = []string{
	NNil:     "nil",
	NBool:    "bool",
	NInt:     "int",
	NReal:    "real",
	NString:  "string",
	NList:    "list",
	NTree:    "tree",
	NFun:     "function",
	NClosure: "function",
	NError:   "error",
}

func (t NType) String() string {
	if int(t) >= len(ntypeStrings) {
		return "invalid"
	}
	return ntypeStrings[t]
}

// NVal is a noot value.  The discriminant Type determines which payload
// fields are valid.  The zero NVal is nil.
//
// NVal is a value type.  Operations never mutate payloads in place, so
// values may be shared freely between runtimes.
type NVal struct {
	Type NType
	Bool bool
	Int  int64
	Real float64

	// String payload.  The slice length is authoritative; strings are not
	// terminated.
	Bytes []byte

	// List payload.  A nil Head is the empty list.  Tail may reference any
	// value, so improper lists are representable.
	Head *NVal
	Tail *NVal

	// Tree payload.  A nil pointer is an absent branch or datum.
	Left  *NVal
	Data  *NVal
	Right *NVal

	// Callable payload.  Fn is set for NFun values, ClosureFn and Caps for
	// NClosure values.
	Fn        NFn
	ClosureFn NClosureFn
	Caps      []NVal

	// Error payload
	Err *NVal
}

// Nil returns the nil value.  NVal is a value type so no allocation occurs.
func Nil() NVal {
	return NVal{}
}

// Bool returns a bool value.
func Bool(b bool) NVal {
	return NVal{Type: NBool, Bool: b}
}

// True returns the true value.
func True() NVal {
	return Bool(true)
}

// False returns the false value.
func False() NVal {
	return Bool(false)
}

// Int returns an int value.
func Int(x int64) NVal {
	return NVal{Type: NInt, Int: x}
}

// Real returns a real value.
func Real(x float64) NVal {
	return NVal{Type: NReal, Real: x}
}

// String returns a string value holding the bytes of s.
func String(s string) NVal {
	return NVal{Type: NString, Bytes: []byte(s)}
}

// Bytes returns a string value holding b.  The slice is not copied.
func Bytes(b []byte) NVal {
	return NVal{Type: NString, Bytes: b}
}

// List returns an empty list.
func List() NVal {
	return NVal{Type: NList}
}

// Cons returns a list with head h and tail t.  The tail is normally a list
// or nil but may be any value.
func Cons(h, t NVal) NVal {
	return NVal{Type: NList, Head: &h, Tail: &t}
}

// ListOf returns a proper nil-terminated list of the given elements.
func ListOf(elems ...NVal) NVal {
	if len(elems) == 0 {
		return List()
	}
	list := Nil()
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons(elems[i], list)
	}
	return list
}

// Tree returns a tree value.  Any of the three parts may be nil to mark it
// absent.  The core imposes no ordering invariant on trees.
func Tree(left, data, right *NVal) NVal {
	return NVal{Type: NTree, Left: left, Data: data, Right: right}
}

// Fun returns a function value wrapping fn.
func Fun(fn NFn) NVal {
	return NVal{Type: NFun, Fn: fn}
}

// Closure returns a closure value wrapping fn with the given captured
// values.  Captures are forwarded verbatim on every call and are never
// inspected by the runtime.
func Closure(fn NClosureFn, captures []NVal) NVal {
	return NVal{Type: NClosure, ClosureFn: fn, Caps: captures}
}

// Error returns an error value wrapping v.  Producing an error value never
// halts execution; errors are ordinary data.
func Error(v NVal) NVal {
	return NVal{Type: NError, Err: &v}
}

// ErrorFn is the error constructor in the native calling convention.  Only
// the first argument is meaningful.
func ErrorFn(args []NVal) NVal {
	return Error(arg(args, 0))
}

// IsNil returns true if v is the nil value.
func IsNil(v NVal) bool {
	return v.Type == NNil
}

func (v NVal) String() string {
	var buf bytes.Buffer
	Fprint(&buf, v)
	return buf.String()
}
