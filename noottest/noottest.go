// Package noottest runs host programs against isolated noot runtimes so
// tests can observe output and fatal panics without terminating the test
// process.
package noottest

import (
	"bytes"

	"github.com/kaikalii/noot/noot"
)

// exitCall unwinds a program when the runtime's exit hook fires.
type exitCall struct {
	status int
}

// Result describes one program execution.
type Result struct {
	// Value is the program's return value.  It is nil when the program
	// exited before returning.
	Value noot.NVal
	// Output is everything the runtime wrote to its output stream,
	// including panic diagnostics.
	Output string
	// Status is the exit status passed to the exit hook.  Zero unless
	// Exited is set.
	Status int
	// Exited reports whether the exit hook fired, i.e. whether the program
	// panicked fatally.
	Exited bool
}

// Run executes program against a fresh runtime whose output is captured
// and whose exit hook unwinds back into Run.  Extra configs are applied
// after the capturing ones, so a test may still override the output
// stream.
func Run(program func(rt *noot.Runtime) noot.NVal, cfg ...noot.Config) (res Result) {
	var buf bytes.Buffer
	configs := append([]noot.Config{
		noot.WithStdout(&buf),
		noot.WithExit(func(status int) {
			panic(exitCall{status})
		}),
	}, cfg...)
	rt := noot.New(configs...)
	defer func() {
		res.Output = buf.String()
		if r := recover(); r != nil {
			call, ok := r.(exitCall)
			if !ok {
				panic(r)
			}
			res.Status = call.status
			res.Exited = true
		}
	}()
	res.Value = program(rt)
	return res
}
