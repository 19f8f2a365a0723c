package noot

import (
	"io"
	"strconv"
	"strings"
)

// Print renders v to the runtime's output stream and returns true so that
// printing composes as an expression.
func (rt *Runtime) Print(v NVal) NVal {
	Fprint(rt.Stdout, v)
	return True()
}

// Println is Print with a trailing line break.
func (rt *Runtime) Println(v NVal) NVal {
	res := rt.Print(v)
	io.WriteString(rt.Stdout, "\n")
	return res
}

// Fprint writes the canonical rendering of v to w.  Rendering recurses one
// level per compound element; shared substructure prints at each occurrence
// it is reached through.  Output is best effort, as with all diagnostic
// text write errors are not reported.
func Fprint(w io.Writer, v NVal) {
	switch v.Type {
	case NNil:
		io.WriteString(w, "nil")
	case NBool:
		if v.Bool {
			io.WriteString(w, "true")
		} else {
			io.WriteString(w, "false")
		}
	case NInt:
		io.WriteString(w, strconv.FormatInt(v.Int, 10))
	case NReal:
		io.WriteString(w, formatReal(v.Real))
	case NString:
		w.Write(v.Bytes)
	case NList:
		printList(w, v)
	case NTree:
		printTree(w, v)
	case NFun, NClosure:
		io.WriteString(w, "function")
	case NError:
		io.WriteString(w, "Error: ")
		if v.Err != nil {
			Fprint(w, *v.Err)
		}
	}
}

// printList walks the linked chain until it reaches a terminator: a nil
// value, an empty list, or the end of the pointer chain.  A tail that is
// neither prints as a trailing element before the closing bracket.
func printList(w io.Writer, v NVal) {
	io.WriteString(w, "[")
	printed := false
	cur := &v
	for cur.Type == NList && cur.Head != nil {
		if printed {
			io.WriteString(w, " ")
		}
		Fprint(w, *cur.Head)
		printed = true
		cur = cur.Tail
		if cur == nil {
			break
		}
	}
	if cur != nil && !isListEnd(*cur) {
		if printed {
			io.WriteString(w, " ")
		}
		Fprint(w, *cur)
	}
	io.WriteString(w, "]")
}

func isListEnd(v NVal) bool {
	return v.Type == NNil || (v.Type == NList && v.Head == nil)
}

func printTree(w io.Writer, v NVal) {
	io.WriteString(w, "{")
	if v.Left == nil && v.Data == nil && v.Right == nil {
		io.WriteString(w, "_ _ _")
	} else {
		printBranch(w, v.Left)
		io.WriteString(w, " ")
		printBranch(w, v.Data)
		io.WriteString(w, " ")
		printBranch(w, v.Right)
	}
	io.WriteString(w, "}")
}

func printBranch(w io.Writer, v *NVal) {
	if v == nil {
		io.WriteString(w, "_")
		return
	}
	Fprint(w, *v)
}

// formatReal renders x with six fixed decimal places, then strips the
// trailing zeros and a trailing bare decimal point, so 3.140000 renders as
// 3.14 and 2.000000 renders as 2.
func formatReal(x float64) string {
	s := strconv.FormatFloat(x, 'f', 6, 64)
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
