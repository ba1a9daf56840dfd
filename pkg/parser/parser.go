package parser

import (
	"strings"

	"github.com/ostnam/yapl/pkg/ast"
	. "github.com/ostnam/yapl/pkg/tokens"
	"github.com/ostnam/yapl/pkg/utils"
)

/*
program     → declaration* ;
declaration → function | variable | statement ;
function    → "fun" IDENT "(" ( IDENT ( "," IDENT )* )? ")" block ;
variable    → ( "val" | "var" ) IDENT "=" expression ;
statement   → loopStmt | printStmt | returnStmt | exprStmt ;
loopStmt    → "loop" block ;
printStmt   → "print" "(" expression ")" ;
returnStmt  → "return" expression ;
block       → "{" declaration* "}" ;
expression  → assignment ;
assignment  → IDENT "=" expression | logicOr ;
logicOr     → logicAnd ( "or" logicAnd )* ;
logicAnd    → equality ( "and" equality )* ;
equality    → comparison ( ( "!=" | "==" ) comparison )* ;
comparison  → term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
term        → factor ( ( "-" | "+" ) factor )* ;
factor      → unary ( ( "/" | "*" ) unary )* ;
unary       → ( "!" | "-" ) unary | primary ;
primary     → INT | FLOAT | STRING | IDENT | "true" | "false" | "(" expression ")" ;

A declaration ends with ";", written or inserted by the scanner at a line
break, unless a "}" or the end of input follows it directly.
*/

// TokenStream is the token source consumed by a Parser.
type TokenStream = utils.Stream[Token]

// DefaultMaxDepth bounds the nesting of blocks, groupings, assignments and
// prefix operators.
const DefaultMaxDepth = 1024

type Option func(*Parser)

// WithMaxDepth sets the nesting limit past which parsing fails with
// ErrTooDeep.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// Parser builds an AST from a token stream. It stops at the first error and
// never returns a partial tree.
type Parser struct {
	src  TokenStream
	held utils.Pushback[Token]

	maxDepth int
	depth    int
}

func New(src TokenStream, opts ...Option) *Parser {
	p := &Parser{
		src:      src,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a whole program from src.
func Parse(src TokenStream, opts ...Option) (*ast.Program, error) {
	return New(src, opts...).Parse()
}

// next returns the first held token if any, else pulls from the stream.
func (self *Parser) next() (Token, bool) {
	if tok, ok := self.held.Pop(); ok {
		return tok, true
	}
	return self.src.Next()
}

// store hands a token back: the following call to next returns it.
func (self *Parser) store(tok Token) {
	self.held.Unread(tok)
}

// need is next for productions that cannot end here.
func (self *Parser) need() (Token, error) {
	tok, ok := self.next()
	if !ok {
		return Token{}, ErrEndOfFile
	}
	return tok, nil
}

func (self *Parser) expect(kind Kind, want string) (Token, error) {
	tok, err := self.need()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, unexpected(tok, want)
	}
	return tok, nil
}

func (self *Parser) enter() error {
	if self.depth >= self.maxDepth {
		return ErrTooDeep
	}
	self.depth++
	return nil
}

func (self *Parser) leave() {
	self.depth--
}

// Parse consumes the whole token stream.
func (self *Parser) Parse() (*ast.Program, error) {
	prog := &ast.Program{Declarations: []ast.Declaration{}}
	for {
		tok, ok := self.next()
		if !ok {
			return prog, nil
		}
		if tok.Kind == Semicolon {
			continue
		}
		self.store(tok)
		decl, err := self.declaration()
		if err != nil {
			return nil, err
		}
		prog.Declarations = append(prog.Declarations, decl)
	}
}

// ParseExpr parses a stream holding a single expression, optionally
// terminated.
func (self *Parser) ParseExpr() (*ast.Expr, error) {
	expr, err := self.expr()
	if err != nil {
		return nil, err
	}
	if err := self.terminator(); err != nil {
		return nil, err
	}
	if tok, ok := self.next(); ok {
		return nil, unexpected(tok, "expected end of input")
	}
	return expr, nil
}

// terminator ends a declaration: it consumes a ";" and accepts, without
// consuming, a "}" or the end of the stream.
func (self *Parser) terminator() error {
	tok, ok := self.next()
	if !ok {
		return nil
	}
	switch tok.Kind {
	case Semicolon:
		return nil
	case RightBrace:
		self.store(tok)
		return nil
	}
	return unexpected(tok, "expected ; or a line break")
}

// Declarations

func (self *Parser) declaration() (ast.Declaration, error) {
	tok, err := self.need()
	if err != nil {
		return nil, err
	}
	self.store(tok)

	var decl ast.Declaration
	switch tok.Kind {
	case Fun:
		decl, err = self.function()
	case Val, Var:
		decl, err = self.variable()
	default:
		decl, err = self.statement()
	}
	if err != nil {
		return nil, err
	}
	if err := self.terminator(); err != nil {
		return nil, err
	}
	return decl, nil
}

func (self *Parser) function() (*ast.Function, error) {
	if _, err := self.expect(Fun, "expected fun"); err != nil {
		return nil, err
	}
	name, err := self.expect(Identifier, "expected a function name")
	if err != nil {
		return nil, err
	}
	if _, err := self.expect(LeftParen, "expected ( after the function name"); err != nil {
		return nil, err
	}

	tok, err := self.need()
	if err != nil {
		return nil, err
	}
	var params []ast.Identifier
	if tok.Kind != RightParen {
		self.store(tok)
		params, err = self.params()
		if err != nil {
			return nil, err
		}
		if _, err := self.expect(RightParen, "expected , or ) in the parameter list"); err != nil {
			return nil, err
		}
	}

	body, err := self.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{
		Name:   ast.Identifier{Name: name.Text},
		Params: params,
		Body:   body,
	}, nil
}

func (self *Parser) params() ([]ast.Identifier, error) {
	first, err := self.expect(Identifier, "expected a parameter name")
	if err != nil {
		return nil, err
	}
	params := []ast.Identifier{{Name: first.Text}}
	for {
		tok, ok := self.next()
		if !ok {
			return params, nil
		}
		if tok.Kind != Comma {
			self.store(tok)
			return params, nil
		}
		param, err := self.expect(Identifier, "expected a parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Identifier{Name: param.Text})
	}
}

func (self *Parser) variable() (*ast.Variable, error) {
	tok, err := self.need()
	if err != nil {
		return nil, err
	}
	var mut ast.Mutability
	switch tok.Kind {
	case Val:
		mut = ast.Val
	case Var:
		mut = ast.Var
	default:
		return nil, unexpected(tok, "expected val or var")
	}

	name, err := self.expect(Identifier, "expected a variable name")
	if err != nil {
		return nil, err
	}
	if _, err := self.expect(Equal, "expected = after the variable name"); err != nil {
		return nil, err
	}
	initializer, err := self.expr()
	if err != nil {
		return nil, err
	}
	return &ast.Variable{
		Mutability:  mut,
		Name:        ast.Identifier{Name: name.Text},
		Initializer: initializer,
	}, nil
}

// Statements

func (self *Parser) statement() (ast.Statement, error) {
	tok, err := self.need()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case Loop:
		body, err := self.block()
		if err != nil {
			return nil, err
		}
		return &ast.Loop{Body: body}, nil
	case Print:
		return self.printStmt()
	case Return:
		expr, err := self.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Return{Expr: expr}, nil
	case If:
		// TODO: parse if/else once the tree has a conditional statement node.
		return nil, unexpected(tok, "if statements are not implemented")
	case Break, Continue:
		return nil, unexpected(tok, strings.ToLower(tok.Kind.String())+" statements are not implemented")
	default:
		self.store(tok)
		expr, err := self.expr()
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionStmt{Expr: expr}, nil
	}
}

func (self *Parser) printStmt() (*ast.Print, error) {
	if _, err := self.expect(LeftParen, "expected ( after print"); err != nil {
		return nil, err
	}
	expr, err := self.expr()
	if err != nil {
		return nil, err
	}
	if _, err := self.expect(RightParen, "expected ) after the printed expression"); err != nil {
		return nil, err
	}
	return &ast.Print{Expr: expr}, nil
}

func (self *Parser) block() (*ast.Block, error) {
	if _, err := self.expect(LeftBrace, "expected {"); err != nil {
		return nil, err
	}
	if err := self.enter(); err != nil {
		return nil, err
	}
	defer self.leave()

	block := &ast.Block{Declarations: []ast.Declaration{}}
	for {
		tok, err := self.need()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case RightBrace:
			return block, nil
		case Semicolon:
			continue
		}
		self.store(tok)
		decl, err := self.declaration()
		if err != nil {
			return nil, err
		}
		block.Declarations = append(block.Declarations, decl)
	}
}
