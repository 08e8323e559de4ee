// Package interp walks a dicelang parse tree and computes the
// distributions it denotes. The walk is driven by an explicit stack of
// frames rather than native recursion, so a deeply nested expression never
// grows the Go call stack.
package interp

import (
	"fmt"
	"io"
	"strconv"

	"github.com/belagir/dicelang/distrib"
	"github.com/belagir/dicelang/lexer"
	"github.com/belagir/dicelang/parser"
)

// RuntimeError reports an invariant violated by the implementation itself
// (a malformed tree, not a user mistake) — the interpret-kind analogue of
// spec.md's "internal" error kind. Ordinary user mistakes (unbound
// variable, wrong-arity call) are, per dicelang's own design, silent
// no-ops rather than errors; see DESIGN.md.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s near %s", e.Message, e.Token)
}

// frame is one entry of the explicit execution stack: the node currently
// being visited, which of its children has been descended into so far, and
// how many values sat on the value stack when this frame was entered —
// the latter is what lets a tag's routine know how many distributions its
// subtree produced without threading a separate counter through recursion.
type frame struct {
	node               *parser.Node
	nextChild          int
	valuesDepthAtEntry int
}

// Interpreter holds all the mutable state a running program touches: the
// variable and function tables, and the value stack used as working
// memory by the per-tag routines.
type Interpreter struct {
	Vars   map[string]*distrib.Distribution
	Funcs  map[string]*Builtin
	Writer io.Writer

	values []*distrib.Distribution
}

// New creates an Interpreter whose print builtin writes to w.
func New(w io.Writer) *Interpreter {
	it := &Interpreter{
		Vars:   map[string]*distrib.Distribution{},
		Funcs:  map[string]*Builtin{},
		Writer: w,
	}
	it.registerBuiltins()
	return it
}

func (it *Interpreter) push(d *distrib.Distribution) {
	it.values = append(it.values, d)
}

func (it *Interpreter) pop() *distrib.Distribution {
	d := it.values[len(it.values)-1]
	it.values = it.values[:len(it.values)-1]
	return d
}

// gained reports how many distributions have been pushed since f's frame
// was entered.
func (it *Interpreter) gained(f *frame) int {
	return len(it.values) - f.valuesDepthAtEntry
}

// Run walks root in post-order to completion, driven by an explicit stack
// of frames. root must be a well-formed program node (as produced by
// parser.Parse); a nil root is an internal error, since it can only arise
// from a driver bug upstream.
func (it *Interpreter) Run(root *parser.Node) *RuntimeError {
	if root == nil {
		return &RuntimeError{Message: "internal: nil program root"}
	}

	it.values = it.values[:0]
	stack := []*frame{{node: root, valuesDepthAtEntry: len(it.values)}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.nextChild < len(top.node.Children) {
			child := top.node.Children[top.nextChild]
			top.nextChild++
			stack = append(stack, &frame{node: child, valuesDepthAtEntry: len(it.values)})
			continue
		}

		it.dispatch(top)
		stack = stack[:len(stack)-1]
	}

	return nil
}

// dispatch runs the routine, if any, for top.node's tag. Terminal tags
// other than value (punctuation, operators, designator, identifier leaves)
// are visited like any other child but carry no routine: their meaning is
// read by the nonterminal node that owns them.
func (it *Interpreter) dispatch(top *frame) {
	switch top.node.Tag {
	case parser.Tag(lexer.Value):
		it.execValue(top)
	case parser.Assignment:
		it.execAssignment(top)
	case parser.VariableAccess:
		it.execVariableAccess(top)
	case parser.Addition:
		it.execAddition(top)
	case parser.Multiplication:
		it.execMultiplication(top)
	case parser.Dice:
		it.execDice(top)
	case parser.Operand:
		it.execOperand(top)
	case parser.FunctionCall:
		it.execFunctionCall(top)
	}
}

func (it *Interpreter) execValue(top *frame) {
	n, err := strconv.ParseInt(top.node.Token.Lexeme, 10, 64)
	if err != nil {
		// Unreachable for tokens the lexer actually produced as `value`
		// (all-digit lexemes), kept only so a malformed tree degrades to
		// "no value" rather than a panic.
		return
	}
	it.push(distrib.New(distrib.Entry{Value: n, Weight: 1}))
}

// execAssignment binds the top distribution to the name carried by the
// node's leading identifier leaf. Per the precondition in spec.md §4.4, a
// malformed frame (not exactly one value gained, or a missing identifier
// leaf) still drains whatever was gained rather than leaving it on the
// stack, and binds nothing.
func (it *Interpreter) execAssignment(top *frame) {
	gained := it.gained(top)

	if gained != 1 || len(top.node.Children) == 0 || top.node.Children[0].Tag != parser.Tag(lexer.Identifier) {
		for i := 0; i < gained; i++ {
			it.pop()
		}
		return
	}

	name := top.node.Children[0].Token.Lexeme
	it.Vars[name] = it.pop()
}

// execVariableAccess pushes a copy of the named variable's distribution.
// An unbound name is a silent no-op, per the resolved open question in
// SPEC_FULL.md.
func (it *Interpreter) execVariableAccess(top *frame) {
	if len(top.node.Children) == 0 {
		return
	}
	name := top.node.Children[0].Token.Lexeme
	if d, ok := it.Vars[name]; ok {
		it.push(d.Copy())
	}
}

// execDice pops the single distribution this node's frame gained (the
// face-count distribution) and replaces it with its dice expansion.
func (it *Interpreter) execDice(top *frame) {
	if it.gained(top) != 1 {
		return
	}
	it.push(distrib.Dice(it.pop()))
}
