package parser

import (
	"github.com/ostnam/yapl/pkg/ast"
	. "github.com/ostnam/yapl/pkg/tokens"
)

// No token spells "or" or "and" yet, so these levels always pass through.
// Reserving the words in the scanner and mapping them here is all the
// logical operators still need.
var (
	logicOrOps  = map[Kind]ast.LogicOrOp{}
	logicAndOps = map[Kind]ast.LogicAndOp{}
)

var equalityOps = map[Kind]ast.EqualityOp{
	EqualEqual: ast.Equal,
	BangEqual:  ast.NotEqual,
}

var comparisonOps = map[Kind]ast.ComparisonOp{
	Greater:      ast.Greater,
	GreaterEqual: ast.GreaterEqual,
	Less:         ast.Less,
	LessEqual:    ast.LessEqual,
}

var termOps = map[Kind]ast.TermOp{
	Minus: ast.Minus,
	Plus:  ast.Plus,
}

var factorOps = map[Kind]ast.FactorOp{
	Slash: ast.Div,
	Star:  ast.Mult,
}

var unaryOps = map[Kind]ast.UnaryOp{
	Bang:  ast.Not,
	Minus: ast.Negate,
}

func (self *Parser) expr() (*ast.Expr, error) {
	if err := self.enter(); err != nil {
		return nil, err
	}
	defer self.leave()

	assignment, err := self.assignment()
	if err != nil {
		return nil, err
	}
	return &ast.Expr{Assignment: assignment}, nil
}

// assignment needs two tokens of lookahead: an identifier is only an
// assignment target when "=" follows it.
func (self *Parser) assignment() (ast.Assignment, error) {
	tok, err := self.need()
	if err != nil {
		return nil, err
	}
	if tok.Kind == Identifier {
		tok2, ok := self.next()
		if ok && tok2.Kind == Equal {
			value, err := self.expr()
			if err != nil {
				return nil, err
			}
			return &ast.Assign{Name: ast.Identifier{Name: tok.Text}, Value: value}, nil
		}
		// Hand both back, tok first.
		if ok {
			self.store(tok2)
		}
		self.store(tok)
	} else {
		self.store(tok)
	}
	return self.logicOr()
}

// Each binary level parses one operand, then folds every following
// "op operand" of the same level into the left side. The first operator
// fills Right, later ones wrap the node built so far.

func (self *Parser) logicOr() (*ast.LogicOr, error) {
	first, err := self.logicAnd()
	if err != nil {
		return nil, err
	}
	node := &ast.LogicOr{Left: first}
	for {
		tok, ok := self.next()
		if !ok {
			return node, nil
		}
		op, isOp := logicOrOps[tok.Kind]
		if !isOp {
			self.store(tok)
			return node, nil
		}
		operand, err := self.logicAnd()
		if err != nil {
			return nil, err
		}
		right := &ast.LogicOrRight{Op: op, Operand: operand}
		if node.Right == nil {
			node.Right = right
		} else {
			node = &ast.LogicOr{Left: node, Right: right}
		}
	}
}

func (self *Parser) logicAnd() (*ast.LogicAnd, error) {
	first, err := self.equality()
	if err != nil {
		return nil, err
	}
	node := &ast.LogicAnd{Left: first}
	for {
		tok, ok := self.next()
		if !ok {
			return node, nil
		}
		op, isOp := logicAndOps[tok.Kind]
		if !isOp {
			self.store(tok)
			return node, nil
		}
		operand, err := self.equality()
		if err != nil {
			return nil, err
		}
		right := &ast.LogicAndRight{Op: op, Operand: operand}
		if node.Right == nil {
			node.Right = right
		} else {
			node = &ast.LogicAnd{Left: node, Right: right}
		}
	}
}

func (self *Parser) equality() (*ast.Equality, error) {
	first, err := self.comparison()
	if err != nil {
		return nil, err
	}
	node := &ast.Equality{Left: first}
	for {
		tok, ok := self.next()
		if !ok {
			return node, nil
		}
		op, isOp := equalityOps[tok.Kind]
		if !isOp {
			self.store(tok)
			return node, nil
		}
		operand, err := self.comparison()
		if err != nil {
			return nil, err
		}
		right := &ast.EqualityRight{Op: op, Operand: operand}
		if node.Right == nil {
			node.Right = right
		} else {
			node = &ast.Equality{Left: node, Right: right}
		}
	}
}

func (self *Parser) comparison() (*ast.Comparison, error) {
	first, err := self.term()
	if err != nil {
		return nil, err
	}
	node := &ast.Comparison{Left: first}
	for {
		tok, ok := self.next()
		if !ok {
			return node, nil
		}
		op, isOp := comparisonOps[tok.Kind]
		if !isOp {
			self.store(tok)
			return node, nil
		}
		operand, err := self.term()
		if err != nil {
			return nil, err
		}
		right := &ast.ComparisonRight{Op: op, Operand: operand}
		if node.Right == nil {
			node.Right = right
		} else {
			node = &ast.Comparison{Left: node, Right: right}
		}
	}
}

func (self *Parser) term() (*ast.Term, error) {
	first, err := self.factor()
	if err != nil {
		return nil, err
	}
	node := &ast.Term{Left: first}
	for {
		tok, ok := self.next()
		if !ok {
			return node, nil
		}
		op, isOp := termOps[tok.Kind]
		if !isOp {
			self.store(tok)
			return node, nil
		}
		operand, err := self.factor()
		if err != nil {
			return nil, err
		}
		right := &ast.TermRight{Op: op, Operand: operand}
		if node.Right == nil {
			node.Right = right
		} else {
			node = &ast.Term{Left: node, Right: right}
		}
	}
}

func (self *Parser) factor() (*ast.Factor, error) {
	first, err := self.unary()
	if err != nil {
		return nil, err
	}
	node := &ast.Factor{Left: first}
	for {
		tok, ok := self.next()
		if !ok {
			return node, nil
		}
		op, isOp := factorOps[tok.Kind]
		if !isOp {
			self.store(tok)
			return node, nil
		}
		operand, err := self.unary()
		if err != nil {
			return nil, err
		}
		right := &ast.FactorRight{Op: op, Operand: operand}
		if node.Right == nil {
			node.Right = right
		} else {
			node = &ast.Factor{Left: node, Right: right}
		}
	}
}

func (self *Parser) unary() (*ast.Unary, error) {
	tok, err := self.need()
	if err != nil {
		return nil, err
	}
	op, isOp := unaryOps[tok.Kind]
	if !isOp {
		self.store(tok)
		prim, err := self.primary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: ast.NoUnaryOp, Right: prim}, nil
	}

	if err := self.enter(); err != nil {
		return nil, err
	}
	defer self.leave()
	right, err := self.unary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Op: op, Right: right}, nil
}

func (self *Parser) primary() (ast.Primary, error) {
	tok, err := self.need()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case Int:
		return &ast.IntLit{Text: tok.Text}, nil
	case Float:
		return &ast.FloatLit{Text: tok.Text}, nil
	case String:
		return &ast.StringLit{Text: tok.Text}, nil
	case Identifier:
		return &ast.Identifier{Name: tok.Text}, nil
	case True:
		return &ast.BoolLit{Value: true}, nil
	case False:
		return &ast.BoolLit{Value: false}, nil
	case LeftParen:
		expr, err := self.expr()
		if err != nil {
			return nil, err
		}
		if _, err := self.expect(RightParen, "expected ) to close the grouping"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expr: expr}, nil
	}
	return nil, unexpected(tok, "expected an expression")
}
