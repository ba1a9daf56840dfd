package ast

// Expressions form a chain of precedence levels, lowest precedence outermost:
//
//	Assignment -> LogicOr -> LogicAnd -> Equality -> Comparison -> Term -> Factor -> Unary -> Primary
//
// A binary level node holds a Left operand and, only when an operator of that
// level was parsed, a Right part. Left is either the next level down or a
// node of the same level holding the already folded left part of a chain, so
// 1 - 2 - 3 is Term{Left: Term{1 - 2}, Right: - 3}.

type Expr struct {
	Assignment Assignment
}

// Assignment is an *Assign or a *LogicOr.
type Assignment interface {
	assignment()
}

type Assign struct {
	Name  Identifier
	Value *Expr
}

type LogicOrOp uint8

const (
	Or LogicOrOp = iota
)

type LogicOr struct {
	Left  LogicOrLeft
	Right *LogicOrRight
}

// LogicOrLeft is a *LogicAnd or a *LogicOr.
type LogicOrLeft interface {
	logicOrLeft()
}

type LogicOrRight struct {
	Op      LogicOrOp
	Operand *LogicAnd
}

type LogicAndOp uint8

const (
	And LogicAndOp = iota
)

type LogicAnd struct {
	Left  LogicAndLeft
	Right *LogicAndRight
}

// LogicAndLeft is an *Equality or a *LogicAnd.
type LogicAndLeft interface {
	logicAndLeft()
}

type LogicAndRight struct {
	Op      LogicAndOp
	Operand *Equality
}

type EqualityOp uint8

const (
	Equal EqualityOp = iota
	NotEqual
)

type Equality struct {
	Left  EqualityLeft
	Right *EqualityRight
}

// EqualityLeft is a *Comparison or an *Equality.
type EqualityLeft interface {
	equalityLeft()
}

type EqualityRight struct {
	Op      EqualityOp
	Operand *Comparison
}

type ComparisonOp uint8

const (
	Greater ComparisonOp = iota
	GreaterEqual
	Less
	LessEqual
)

type Comparison struct {
	Left  ComparisonLeft
	Right *ComparisonRight
}

// ComparisonLeft is a *Term or a *Comparison.
type ComparisonLeft interface {
	comparisonLeft()
}

type ComparisonRight struct {
	Op      ComparisonOp
	Operand *Term
}

type TermOp uint8

const (
	Minus TermOp = iota
	Plus
)

type Term struct {
	Left  TermLeft
	Right *TermRight
}

// TermLeft is a *Factor or a *Term.
type TermLeft interface {
	termLeft()
}

type TermRight struct {
	Op      TermOp
	Operand *Factor
}

type FactorOp uint8

const (
	Div FactorOp = iota
	Mult
)

type Factor struct {
	Left  FactorLeft
	Right *FactorRight
}

// FactorLeft is a *Unary or a *Factor.
type FactorLeft interface {
	factorLeft()
}

type FactorRight struct {
	Op      FactorOp
	Operand *Unary
}

type UnaryOp uint8

const (
	NoUnaryOp UnaryOp = iota
	Not
	Negate
)

// Unary is a prefix operator applied to another *Unary, or, when Op is
// NoUnaryOp, a bare Primary.
type Unary struct {
	Op    UnaryOp
	Right UnaryRight
}

// UnaryRight is a *Unary or a Primary.
type UnaryRight interface {
	unaryRight()
}

// Primary is an *IntLit, a *FloatLit, a *StringLit, an *Identifier, a
// *BoolLit or a *Grouping.
type Primary interface {
	UnaryRight
	primary()
}

// Literal texts are kept verbatim, numbers are not converted.
type IntLit struct {
	Text string
}

type FloatLit struct {
	Text string
}

type StringLit struct {
	Text string
}

type BoolLit struct {
	Value bool
}

type Grouping struct {
	Expr *Expr
}

func (*Assign) assignment()  {}
func (*LogicOr) assignment() {}

func (*LogicAnd) logicOrLeft() {}
func (*LogicOr) logicOrLeft()  {}

func (*Equality) logicAndLeft() {}
func (*LogicAnd) logicAndLeft() {}

func (*Comparison) equalityLeft() {}
func (*Equality) equalityLeft()   {}

func (*Term) comparisonLeft()       {}
func (*Comparison) comparisonLeft() {}

func (*Factor) termLeft() {}
func (*Term) termLeft()   {}

func (*Unary) factorLeft()  {}
func (*Factor) factorLeft() {}

func (*Unary) unaryRight()      {}
func (*IntLit) unaryRight()     {}
func (*FloatLit) unaryRight()   {}
func (*StringLit) unaryRight()  {}
func (*Identifier) unaryRight() {}
func (*BoolLit) unaryRight()    {}
func (*Grouping) unaryRight()   {}

func (*IntLit) primary()     {}
func (*FloatLit) primary()   {}
func (*StringLit) primary()  {}
func (*Identifier) primary() {}
func (*BoolLit) primary()    {}
func (*Grouping) primary()   {}

var (
	logicOrOpNames    = []string{"or"}
	logicAndOpNames   = []string{"and"}
	equalityOpNames   = []string{"==", "!="}
	comparisonOpNames = []string{">", ">=", "<", "<="}
	termOpNames       = []string{"-", "+"}
	factorOpNames     = []string{"/", "*"}
	unaryOpNames      = []string{"", "!", "-"}
)

func (self LogicOrOp) String() string    { return logicOrOpNames[self] }
func (self LogicAndOp) String() string   { return logicAndOpNames[self] }
func (self EqualityOp) String() string   { return equalityOpNames[self] }
func (self ComparisonOp) String() string { return comparisonOpNames[self] }
func (self TermOp) String() string       { return termOpNames[self] }
func (self FactorOp) String() string     { return factorOpNames[self] }
func (self UnaryOp) String() string      { return unaryOpNames[self] }
