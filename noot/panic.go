package noot

import "fmt"

// Panic prints the panic banner and the message value, prints the call
// stack most recently pushed frame first, and terminates through the
// runtime's exit hook with status 1.  There is no recover; error handling
// visible to programs is done with error values, not unwinding.
func (rt *Runtime) Panic(args ...NVal) NVal {
	fmt.Fprint(rt.Stdout, "\nNoot panicked:\n")
	rt.Println(arg(args, 0))
	rt.fatal("")
	return Nil()
}

// Assert returns its first argument unchanged when it is truthy.
// Otherwise it panics, forwarding any trailing arguments as the panic
// message, or the offending value itself when no message was supplied.
func (rt *Runtime) Assert(args ...NVal) NVal {
	v := arg(args, 0)
	if !IsTrue(v) {
		if len(args) >= 2 {
			return rt.Panic(args[1:]...)
		}
		return rt.Panic(args...)
	}
	return v
}

// fatal writes a panic message and the stack trace to the runtime's output
// and invokes the exit hook with status 1.  Every type mismatch detected by
// an operator ends up here.
func (rt *Runtime) fatal(message string) {
	fmt.Fprintf(rt.Stdout, "%s\n", message)
	rt.Stack.Trace(rt.Stdout)
	rt.Exit(1)
}

func (rt *Runtime) binaryTypePanic(format string, a, b NType) {
	rt.fatal(fmt.Sprintf(format, a, b))
}

func (rt *Runtime) unaryTypePanic(format string, t NType) {
	rt.fatal(fmt.Sprintf(format, t))
}
