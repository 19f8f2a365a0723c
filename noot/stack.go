package noot

import (
	"fmt"
	"io"
)

// CallStack is the diagnostic call stack.  It grows and shrinks with call
// nesting depth and is read only while a panic is being reported.  It is
// not a control-flow return stack.
type CallStack struct {
	Frames []CallFrame
}

// CallFrame is one frame in the CallStack.
type CallFrame struct {
	// Label describes the call site, e.g. "fib at main.noot:12".
	Label string
}

// Push adds a frame with the given call site label to the top of s.
func (s *CallStack) Push(label string) {
	s.Frames = append(s.Frames, CallFrame{Label: label})
}

// Pop removes the top frame from s and returns it.  Unbalanced pops are an
// invariant violation in the dispatcher, not a program error.
func (s *CallStack) Pop() CallFrame {
	if len(s.Frames) < 1 {
		panic("pop called on an empty stack")
	}
	f := s.Frames[len(s.Frames)-1]
	s.Frames[len(s.Frames)-1] = CallFrame{}
	s.Frames = s.Frames[:len(s.Frames)-1]
	return f
}

// Len returns the current stack height.
func (s *CallStack) Len() int {
	return len(s.Frames)
}

// Top returns the most recently pushed frame or nil if the stack is empty.
func (s *CallStack) Top() *CallFrame {
	if s == nil || len(s.Frames) == 0 {
		return nil
	}
	return &s.Frames[len(s.Frames)-1]
}

// Copy creates a copy of the current stack so it can outlive subsequent
// pushes and pops.
func (s *CallStack) Copy() *CallStack {
	frames := make([]CallFrame, len(s.Frames))
	copy(frames, s.Frames)
	return &CallStack{frames}
}

// Trace writes every frame to w, most recently pushed first, one line per
// frame.
func (s *CallStack) Trace(w io.Writer) (int, error) {
	n := 0
	for i := len(s.Frames) - 1; i >= 0; i-- {
		_n, err := fmt.Fprintf(w, "at %s\n", s.Frames[i].Label)
		n += _n
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
