package noot

import (
	"io"
	"os"
)

// Runtime holds the state threaded through every operation that can write
// output or terminate the program: the diagnostic call stack, the output
// stream, and the exit hook invoked when a panic unwinds.
//
// A Runtime is not safe for concurrent use.  A multi-threaded host must
// give each logical thread of execution its own Runtime.  Values are never
// mutated by any operation and may be shared between runtimes freely.
type Runtime struct {
	Stack  *CallStack
	Stdout io.Writer
	Exit   func(status int)
}

// Config is a function that configures a Runtime.
type Config func(rt *Runtime)

// WithStdout returns a Config that makes the runtime write rendered text
// and panic diagnostics to w instead of the default, os.Stdout.
func WithStdout(w io.Writer) Config {
	return func(rt *Runtime) {
		rt.Stdout = w
	}
}

// WithExit returns a Config that installs fn as the exit hook run when a
// panic terminates the program.  The default hook is os.Exit.  A hook that
// returns normally leaves the failed operation returning nil, so hooks
// installed for testing should unwind instead of returning.
func WithExit(fn func(status int)) Config {
	return func(rt *Runtime) {
		rt.Exit = fn
	}
}

// New initializes and returns a new Runtime.
func New(cfg ...Config) *Runtime {
	rt := &Runtime{
		Stack:  &CallStack{},
		Stdout: os.Stdout,
		Exit:   os.Exit,
	}
	for _, fn := range cfg {
		fn(rt)
	}
	return rt
}
