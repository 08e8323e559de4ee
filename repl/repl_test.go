package repl

import (
	"bytes"
	"testing"

	"github.com/belagir/dicelang/interp"
	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecovery_StatePersistsAcrossLines(t *testing.T) {
	var out bytes.Buffer
	it := interp.New(&out)
	r := New("", "", "", "", "", "")

	r.executeWithRecovery(&out, "R : 4", it)
	assert.Empty(t, out.String())

	r.executeWithRecovery(&out, "print(R)", it)
	assert.Equal(t, "1 ---\n4\t1.000 "+stringsRepeat("|", 40)+"\n", out.String())
}

func TestExecuteWithRecovery_LexErrorReportsAndContinues(t *testing.T) {
	var out bytes.Buffer
	it := interp.New(&out)
	r := New("", "", "", "", "", "")

	r.executeWithRecovery(&out, "@", it)
	assert.Contains(t, out.String(), "dicelang: reading error")
}

func TestExecuteWithRecovery_ParseErrorReportsAndContinues(t *testing.T) {
	var out bytes.Buffer
	it := interp.New(&out)
	r := New("", "", "", "", "", "")

	r.executeWithRecovery(&out, "R :", it)
	assert.Contains(t, out.String(), "dicelang: syntax error")
}

func stringsRepeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
