package interp

import (
	"github.com/belagir/dicelang/distrib"
	"github.com/belagir/dicelang/lexer"
	"github.com/belagir/dicelang/parser"
)

// execOperand gives the "[e1, e2, ...]" bracketed alternative its union
// semantics: every value gained by this frame is merged into one before
// the operand returns, so operand keeps producing exactly one value the
// way every other alternative in its grammar production already does.
// Every other alternative (parenthesised addition, op_dice dice, a bare
// value, or a variable access) already leaves exactly one value on the
// stack and needs no further action here — see SPEC_FULL.md resolution 6.
func (it *Interpreter) execOperand(top *frame) {
	if len(top.node.Children) == 0 || top.node.Children[0].Tag != parser.Tag(lexer.OpenBracket) {
		return
	}

	gained := it.gained(top)
	base := len(it.values) - gained

	out := &distrib.Distribution{}
	for i := 0; i < gained; i++ {
		out = distrib.Union(out, it.values[base+i])
	}

	it.values = append(it.values[:base], out)
}

// execFunctionCall looks the callee up by name and, if the number of
// values gained matches its declared arity, invokes it with those values
// as arguments. A missing name or arity mismatch is a silent no-op (the
// arguments are still drained off the stack) per the resolved open
// question in SPEC_FULL.md.
func (it *Interpreter) execFunctionCall(top *frame) {
	gained := it.gained(top)

	if len(top.node.Children) == 0 || top.node.Children[0].Tag != parser.Tag(lexer.Identifier) {
		it.drain(gained)
		return
	}

	name := top.node.Children[0].Token.Lexeme
	fn, ok := it.Funcs[name]
	if !ok || fn.Arity != gained {
		it.drain(gained)
		return
	}

	args := make([]*distrib.Distribution, gained)
	for i := gained - 1; i >= 0; i-- {
		args[i] = it.pop()
	}
	fn.Call(it, args)
}

func (it *Interpreter) drain(n int) {
	for i := 0; i < n; i++ {
		it.pop()
	}
}
