package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/belagir/dicelang/distrib"
	"github.com/belagir/dicelang/lexer"
	"github.com/belagir/dicelang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	toks := lexer.Tokenize([]byte(src))
	require.NotEqual(t, lexer.Invalid, toks[len(toks)-1].Kind)

	root, perr := parser.Parse(toks)
	require.Nil(t, perr)

	var out bytes.Buffer
	it := New(&out)
	require.Nil(t, it.Run(root))
	return it, &out
}

func TestInterpret_SimpleAssignment(t *testing.T) {
	it, _ := run(t, "R : 4\n")
	require.Contains(t, it.Vars, "R")
	assert.Equal(t, []distrib.Entry{{Value: 4, Weight: 1}}, it.Vars["R"].Entries())
}

func TestInterpret_PrintSingleDie(t *testing.T) {
	_, out := run(t, "print(1d3)\n")
	assert.Equal(t, "3 ---\n1\t0.333 "+barOf(40)+"\n2\t0.333 "+barOf(40)+"\n3\t0.333 "+barOf(40)+"\n", out.String())
}

func TestInterpret_ClassicalTwoD6(t *testing.T) {
	it, out := run(t, "R : 2d6\nprint(R)\n")
	assert.Equal(t, []distrib.Entry{
		{2, 1}, {3, 2}, {4, 3}, {5, 4}, {6, 5}, {7, 6},
		{8, 5}, {9, 4}, {10, 3}, {11, 2}, {12, 1},
	}, it.Vars["R"].Entries())

	// 11 entries, not the total weight (36): print's header is the entry
	// count, per original_source/src/dicelang/interpreter.c's
	// `input->values->length`.
	assert.True(t, strings.HasPrefix(out.String(), "11 ---\n"), "got header %q", out.String())
}

func TestInterpret_AdditionAndSubtraction(t *testing.T) {
	it, _ := run(t, "R : 1 + 2\n")
	assert.Equal(t, []distrib.Entry{{Value: 3, Weight: 1}}, it.Vars["R"].Entries())

	it, _ = run(t, "R : 5 - 2\n")
	assert.Equal(t, []distrib.Entry{{Value: 3, Weight: 1}}, it.Vars["R"].Entries())
}

func TestInterpret_MixedAddSubChainUsesPerPairOperator(t *testing.T) {
	// 4d6 + 1 - d20: regression guard for the left-to-right per-pair fold
	// (as opposed to the naive "any op_add in this node" whole-node check).
	it, _ := run(t, "R : 4d6 + 1 - d20\n")
	d := it.Vars["R"]

	var sum uint64
	for _, e := range d.Entries() {
		sum += e.Weight
	}
	assert.Equal(t, uint64(6*6*6*6*20), sum)

	// 4d6 ranges 4..24, plus 1 is 5..25, minus d20 (1..20) spans 5-20..25-1.
	assert.Equal(t, int64(-15), d.Entries()[0].Value)
	assert.Equal(t, int64(24), d.Entries()[len(d.Entries())-1].Value)
}

func TestInterpret_ExpressionSetUnion(t *testing.T) {
	it, _ := run(t, "S : [1, 2, 2, 3, 4, 10]\n")
	assert.Equal(t, []distrib.Entry{
		{1, 1}, {2, 2}, {3, 1}, {4, 1}, {10, 1},
	}, it.Vars["S"].Entries())
}

func TestInterpret_UnboundVariableIsSilentNoop(t *testing.T) {
	it, _ := run(t, "R : Unbound\n")
	assert.NotContains(t, it.Vars, "R")
}

func TestInterpret_ArityMismatchIsSilentNoop(t *testing.T) {
	_, out := run(t, "print(1, 2)\n")
	assert.Empty(t, out.String())
}

func TestInterpret_EmptyProgramIsNoop(t *testing.T) {
	it, out := run(t, "")
	assert.Empty(t, it.Vars)
	assert.Empty(t, out.String())
}

func barOf(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '|'
	}
	return string(b)
}
