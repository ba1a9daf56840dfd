package compiler

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ostnam/yapl/pkg/ast"
	"github.com/ostnam/yapl/pkg/parser"
	"github.com/ostnam/yapl/pkg/source"
	"github.com/ostnam/yapl/pkg/tokens"
)

func TestExamples(t *testing.T) {
	for _, name := range []string{"expressions.ypl", "factorial.ypl"} {
		prog, err := Compile(filepath.Join("testdata", name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, prog.Declarations, name)
	}
}

func TestExpressionsExample(t *testing.T) {
	prog, err := Compile(filepath.Join("testdata", "expressions.ypl"))
	require.NoError(t, err)
	require.Len(t, prog.Declarations, 7)
	assert.Equal(t, "(val a (1 + (2 * 3)))", ast.Sexpr(prog.Declarations[0]))
	assert.Equal(t, "(var c (((-a) / 4.0) - 2f))", ast.Sexpr(prog.Declarations[2]))
	assert.Equal(t, "(c = (c * (-(group (b - a)))))", ast.Sexpr(prog.Declarations[3]))
	assert.Equal(t, "(print ((a < b) == true))", ast.Sexpr(prog.Declarations[4]))
}

func TestReadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.ypl")
	_, err := Compile(path)

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, path, readErr.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist), "the source error is passed through")
}

func TestDecodeErrorIsReadError(t *testing.T) {
	_, err := CompileReader("bad.ypl", strings.NewReader("val x = \xff"))

	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	var decodeErr *source.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestLexErrorListsEveryIllegalToken(t *testing.T) {
	_, err := Compile(filepath.Join("testdata", "illegal.ypl"))

	var lexErr *LexError
	require.True(t, errors.As(err, &lexErr))
	require.Len(t, lexErr.Illegal, 2)
	assert.Equal(t, tokens.Token{Kind: tokens.Illegal, Text: `"unterminated`, Line: 1, Column: 8}, lexErr.Illegal[0])
	assert.Equal(t, tokens.Token{Kind: tokens.Illegal, Text: "@", Line: 2, Column: 10}, lexErr.Illegal[1])
	assert.Contains(t, err.Error(), `line 2, column 10: illegal "@"`)
}

func TestParseError(t *testing.T) {
	_, err := CompileString("(1 + 2")

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, parser.ErrEndOfFile))
	assert.EqualError(t, err, "<string>: unexpected end of file")

	_, err = CompileString("val x = 1\nval 2 = x")
	var unexpected *parser.UnexpectedTokenError
	require.True(t, errors.As(err, &unexpected))
	assert.Equal(t, 2, unexpected.Token.Line)
}

func TestOptionsReachTheParser(t *testing.T) {
	_, err := CompileString("----1", parser.WithMaxDepth(2))
	assert.True(t, errors.Is(err, parser.ErrTooDeep))
}

func TestTreeHoldsNoTokens(t *testing.T) {
	prog, err := CompileReader("mem", strings.NewReader("fun f(a, b) { return a + b }\n"))
	require.NoError(t, err)
	assert.Equal(t, "(program (fun f (a b) (block (return (a + b)))))", ast.Sexpr(prog))
}
