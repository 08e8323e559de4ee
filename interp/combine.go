package interp

import (
	"github.com/belagir/dicelang/distrib"
	"github.com/belagir/dicelang/lexer"
	"github.com/belagir/dicelang/parser"
)

// execAddition folds every distribution gained by this frame left to
// right, consulting the actual operator leaf between each adjacent pair
// rather than whether the node contains an op_add leaf anywhere — the
// latter is what the original source does, and it silently mishandles a
// mixed chain like "4d6 + 1 - d20" (see DESIGN.md).
func (it *Interpreter) execAddition(top *frame) {
	gained := it.gained(top)
	if gained == 0 {
		return
	}

	ops := operatorsBetween(top.node, lexer.OpAdd, lexer.OpSub)
	base := len(it.values) - gained
	acc := it.values[base]

	for i := 1; i < gained; i++ {
		rhs := it.values[base+i]
		if i-1 < len(ops) && ops[i-1] == lexer.OpSub {
			acc = distrib.Sub(acc, rhs)
		} else {
			acc = distrib.Add(acc, rhs)
		}
	}

	it.values = append(it.values[:base], acc)
}

// execMultiplication folds every distribution gained by this frame left to
// right. Each pairing is either an explicit op_mul (scalar Mul) or an
// implicit dice continuation — a peeked op_dice that multiplication left
// for operand to consume, recognisable because no operator leaf sits
// between the two operand children (see SPEC_FULL.md resolution 4).
func (it *Interpreter) execMultiplication(top *frame) {
	gained := it.gained(top)
	if gained == 0 {
		return
	}

	viaDice := dicePairings(top.node)
	base := len(it.values) - gained
	acc := it.values[base]

	for i := 1; i < gained; i++ {
		rhs := it.values[base+i]
		if i-1 < len(viaDice) && viaDice[i-1] {
			acc = diceRepeat(acc, rhs)
		} else {
			acc = distrib.Mul(acc, rhs)
		}
	}

	it.values = append(it.values[:base], acc)
}

// diceRepeat combines a count distribution with a one-roll distribution:
// for each (n, w) in left, roll right n times summed, scale that branch's
// weight by w, and union all branches together. This is the orchestration
// that makes "NdM" mean "the sum of N independent M-sided dice" rather than
// a scalar product, per the GLOSSARY's authoritative definition.
func diceRepeat(left, right *distrib.Distribution) *distrib.Distribution {
	out := &distrib.Distribution{}
	for _, e := range left.Entries() {
		branch := distrib.Scale(distrib.Repeat(right, e.Value), e.Weight)
		out = distrib.Union(out, branch)
	}
	return out
}

// operatorsBetween scans node's direct children for op leaves among the
// given kinds, returning them in order. Used by addition, whose parser
// production attaches an operator leaf between every pair of
// multiplication children.
func operatorsBetween(node *parser.Node, kinds ...lexer.Kind) []lexer.Kind {
	var ops []lexer.Kind
	for _, c := range node.Children {
		for _, k := range kinds {
			if c.Tag == parser.Tag(k) {
				ops = append(ops, k)
			}
		}
	}
	return ops
}

// dicePairings scans node's direct children (a multiplication node) and
// reports, for each gap between consecutive operand children, whether that
// gap has no op_mul leaf between them — i.e. the continuation came from a
// peeked op_dice, which multiplication never consumes itself.
func dicePairings(node *parser.Node) []bool {
	var gaps []bool
	pendingExplicitMul := false
	seenFirstOperand := false

	for _, c := range node.Children {
		switch {
		case c.Tag == parser.Tag(lexer.OpMul):
			pendingExplicitMul = true
		case c.Tag == parser.Operand:
			if seenFirstOperand {
				gaps = append(gaps, !pendingExplicitMul)
			}
			seenFirstOperand = true
			pendingExplicitMul = false
		}
	}

	return gaps
}
