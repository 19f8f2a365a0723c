package noot

// NFn is a plain noot function.  The argument count of the uniform calling
// convention is carried by the slice length.
type NFn func(args []NVal) NVal

// NClosureFn is the callable behind a closure value.  The captured values
// are supplied by the dispatcher on every call; their contents are opaque
// to it.
type NClosureFn func(args []NVal, captures []NVal) NVal

// arg returns args[i], or nil when fewer arguments were supplied.
func arg(args []NVal, i int) NVal {
	if i < len(args) {
		return args[i]
	}
	return Nil()
}

// Call invokes the callable v with args, recording callSite on the call
// stack for the duration of the call.  The frame is pushed before v is
// checked to be callable so that a failed call shows up in the trace at the
// site where it was attempted.
func (rt *Runtime) Call(v NVal, args []NVal, callSite string) NVal {
	rt.Stack.Push(callSite)
	switch v.Type {
	case NFun:
		res := v.Fn(args)
		rt.Stack.Pop()
		return res
	case NClosure:
		res := v.ClosureFn(args, v.Caps)
		rt.Stack.Pop()
		return res
	}
	rt.unaryTypePanic("Attempted to call %s value", v.Type)
	return Nil()
}

// BinOp is a binary operator over noot values.  The runtime's arithmetic
// methods have this shape.
type BinOp func(a, b NVal) NVal

// CallBin applies op to a and b with callSite framed on the call stack, so
// an operator panic is traced to the expression that applied it.
func (rt *Runtime) CallBin(op BinOp, a, b NVal, callSite string) NVal {
	rt.Stack.Push(callSite)
	res := op(a, b)
	rt.Stack.Pop()
	return res
}
