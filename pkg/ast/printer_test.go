package ast

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lit wraps a primary into a full expression with no operators.
func lit(p Primary) *Expr {
	return &Expr{Assignment: &LogicOr{Left: &LogicAnd{Left: &Equality{Left: &Comparison{Left: term(p)}}}}}
}

func term(p Primary) *Term {
	return &Term{Left: &Factor{Left: &Unary{Right: p}}}
}

// sum builds a + b as a full expression.
func sum(a, b Primary) *Expr {
	t := &Term{
		Left:  &Factor{Left: &Unary{Right: a}},
		Right: &TermRight{Op: Plus, Operand: &Factor{Left: &Unary{Right: b}}},
	}
	return &Expr{Assignment: &LogicOr{Left: &LogicAnd{Left: &Equality{Left: &Comparison{Left: t}}}}}
}

func sampleProgram() *Program {
	return &Program{Declarations: []Declaration{
		&Function{
			Name:   Identifier{Name: "add"},
			Params: []Identifier{{Name: "a"}, {Name: "b"}},
			Body: &Block{Declarations: []Declaration{
				&Return{Expr: sum(&Identifier{Name: "a"}, &Identifier{Name: "b"})},
			}},
		},
		&Variable{Mutability: Val, Name: Identifier{Name: "s"}, Initializer: lit(&StringLit{Text: "hi"})},
		&Loop{Body: &Block{Declarations: []Declaration{
			&Print{Expr: lit(&Grouping{Expr: lit(&FloatLit{Text: "1.5"})})},
			&ExpressionStmt{Expr: &Expr{Assignment: &Assign{
				Name:  Identifier{Name: "s"},
				Value: lit(&BoolLit{Value: false}),
			}}},
		}}},
		&ExpressionStmt{Expr: lit(&Grouping{Expr: &Expr{Assignment: &LogicOr{Left: &LogicAnd{Left: &Equality{Left: &Comparison{
			Left: &Term{Left: &Factor{Left: &Unary{Op: Not, Right: &Unary{Op: Negate, Right: &IntLit{Text: "3"}}}}},
		}}}}}})},
	}}
}

func TestSexpr(t *testing.T) {
	assert.Equal(t,
		`(program (fun add (a b) (block (return (a + b)))) (val s "hi") (loop (block (print (group 1.5)) (s = false))) (group (!(-3))))`,
		Sexpr(sampleProgram()))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, sampleProgram()))
	want := `Program
  | Function add(a, b)
     | Block
        | Return
           | Binop +
              | Identifier a
              | Identifier b
  | Variable Val s
     | String "hi"
  | Loop
     | Block
        | Print
           | Grouping
              | Float 1.5
        | Expression
           | Assign s
              | Bool false
  | Expression
     | Grouping
        | Unary !
           | Unary -
              | Int 3
`
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFprintWriteError(t *testing.T) {
	err := Fprint(failingWriter{}, sampleProgram())
	assert.EqualError(t, err, "disk full")
}

func TestUnknownNodePanics(t *testing.T) {
	assert.Panics(t, func() { Sexpr(42) })
	assert.Panics(t, func() { Fprint(&bytes.Buffer{}, "not a node") })
}

func TestOperatorNames(t *testing.T) {
	assert.Equal(t, "!=", NotEqual.String())
	assert.Equal(t, "<=", LessEqual.String())
	assert.Equal(t, "/", Div.String())
	assert.Equal(t, "-", Negate.String())
	assert.Equal(t, "Var", Var.String())
}
