package interp

import (
	"fmt"
	"strings"

	"github.com/belagir/dicelang/distrib"
)

// Builtin is a named callable the function table dispatches to: its arity
// (function_call's only precondition check) and the Go function that
// implements it. None of dicelang's built-ins currently return a value —
// Returns is carried for symmetry with spec.md's function table shape and
// to let a future built-in opt in.
type Builtin struct {
	Name    string
	Arity   int
	Returns bool
	Call    func(it *Interpreter, args []*distrib.Distribution)
}

// registerBuiltins populates the function table at interpreter startup.
func (it *Interpreter) registerBuiltins() {
	it.Funcs["print"] = &Builtin{Name: "print", Arity: 1, Returns: false, Call: builtinPrint}
}

// builtinPrint renders one distribution to the interpreter's writer: a
// header line giving the entry count, then one line per entry with its
// value, its weight as a fraction of the total weight, and a proportional
// bar up to 40 characters wide.
func builtinPrint(it *Interpreter, args []*distrib.Distribution) {
	d := args[0]
	entries := d.Entries()

	var sum, max uint64
	for _, e := range entries {
		sum += e.Weight
		if e.Weight > max {
			max = e.Weight
		}
	}

	fmt.Fprintf(it.Writer, "%d ---\n", len(entries))
	if max == 0 {
		return
	}

	for _, e := range entries {
		ratio := float64(e.Weight) / float64(sum)
		barLen := int(40 * e.Weight / max)
		fmt.Fprintf(it.Writer, "%d\t%.3f %s\n", e.Value, ratio, strings.Repeat("|", barLen))
	}
}
