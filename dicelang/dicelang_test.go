package dicelang

import (
	"bytes"
	"testing"

	"github.com/belagir/dicelang/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SimpleAssignmentNoOutput(t *testing.T) {
	var out bytes.Buffer
	p := Run([]byte("R : 4\n"), &out)
	require.Nil(t, p.Err)
	assert.Empty(t, out.String())
}

func TestRun_PrintSingleDie(t *testing.T) {
	var out bytes.Buffer
	p := Run([]byte("print(1d3)\n"), &out)
	require.Nil(t, p.Err)
	assert.Contains(t, out.String(), "3 ---\n")
}

func TestRun_LexErrorReportsReadingError(t *testing.T) {
	var out bytes.Buffer
	p := Run([]byte("@\n"), &out)
	require.NotNil(t, p.Err)
	assert.Equal(t, Lex, p.Err.Kind)
	assert.Equal(t, lexer.Pos{Line: 1, Col: 1}, p.Err.Token.Pos)

	var report bytes.Buffer
	p.Err.Report(&report)
	assert.Contains(t, report.String(), "dicelang: reading error")
	assert.Contains(t, report.String(), "at (1:1) near token 'invalid'")
}

func TestRun_ParseErrorReportsSyntaxError(t *testing.T) {
	var out bytes.Buffer
	p := Run([]byte("R :\n"), &out)
	require.NotNil(t, p.Err)
	assert.Equal(t, Parse, p.Err.Kind)
	assert.Equal(t, lexer.LineEnd, p.Err.Token.Kind)

	var report bytes.Buffer
	p.Err.Report(&report)
	assert.Contains(t, report.String(), "dicelang: syntax error")
	assert.Contains(t, report.String(), "unexpected token")
}

func TestRun_EmptySourceIsNoop(t *testing.T) {
	var out bytes.Buffer
	p := Run(nil, &out)
	require.Nil(t, p.Err)
	assert.Empty(t, out.String())
}

func TestError_NoErrorHeader(t *testing.T) {
	var report bytes.Buffer
	(&Error{Kind: None}).Report(&report)
	assert.Equal(t, "dicelang: no error\n", report.String())
}
