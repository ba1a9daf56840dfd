// Package ast defines the syntax tree produced by the parser.
//
// Every node is exclusively owned by its parent and never mutated once the
// parser returns it. Variant types are sealed interfaces: only the node types
// of this package implement them.
package ast

// Program is the root of a parsed source file.
type Program struct {
	Declarations []Declaration
}

// Declaration is a *Function, a *Variable or a Statement.
type Declaration interface {
	declaration()
}

type Identifier struct {
	Name string
}

// Function declares a named function. Params is nil when the parameter list
// is empty.
type Function struct {
	Name   Identifier
	Params []Identifier
	Body   *Block
}

type Mutability uint8

const (
	Val Mutability = iota
	Var
)

func (self Mutability) String() string {
	return []string{"Val", "Var"}[self]
}

type Variable struct {
	Mutability  Mutability
	Name        Identifier
	Initializer *Expr
}

// Statement is an *ExpressionStmt, a *Loop, a *Print or a *Return.
type Statement interface {
	Declaration
	statement()
}

type ExpressionStmt struct {
	Expr *Expr
}

type Loop struct {
	Body *Block
}

type Print struct {
	Expr *Expr
}

type Return struct {
	Expr *Expr
}

// Block is a braced list of declarations.
type Block struct {
	Declarations []Declaration
}

func (*Function) declaration()       {}
func (*Variable) declaration()       {}
func (*ExpressionStmt) declaration() {}
func (*Loop) declaration()           {}
func (*Print) declaration()          {}
func (*Return) declaration()         {}

func (*ExpressionStmt) statement() {}
func (*Loop) statement()           {}
func (*Print) statement()          {}
func (*Return) statement()         {}
