package tokens

import (
	"fmt"
	"sort"
)

// A Token is a single lexical unit. Text holds the verbatim source of
// literals, identifiers and illegal fragments, and is empty otherwise.
type Token struct {
	Kind   Kind
	Text   string
	Line   int // 1-based
	Column int // 0-based, reset on every newline
}

func (self Token) String() string {
	if self.Text == "" {
		return fmt.Sprintf("%s at %d:%d", self.Kind, self.Line, self.Column)
	}
	return fmt.Sprintf("%s %q at %d:%d", self.Kind, self.Text, self.Line, self.Column)
}

type Kind int8

const (
	// special
	Illegal Kind = iota
	Semicolon
	// literals
	Identifier
	Int
	Float
	String
	True
	False
	// delimiters
	LeftParen
	RightParen
	LeftBrace
	RightBrace
	Comma
	// 1 or 2 char operators
	Minus
	Plus
	Slash
	Star
	Bang
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	// keywords
	Fun
	Loop
	If
	Else
	Print
	Return
	Val
	Var
	Break
	Continue
)

var kindNames = [...]string{
	Illegal:      "Illegal",
	Semicolon:    "Semicolon",
	Identifier:   "Identifier",
	Int:          "Int",
	Float:        "Float",
	String:       "String",
	True:         "True",
	False:        "False",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	Comma:        "Comma",
	Minus:        "Minus",
	Plus:         "Plus",
	Slash:        "Slash",
	Star:         "Star",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Fun:          "Fun",
	Loop:         "Loop",
	If:           "If",
	Else:         "Else",
	Print:        "Print",
	Return:       "Return",
	Val:          "Val",
	Var:          "Var",
	Break:        "Break",
	Continue:     "Continue",
}

func (self Kind) String() string {
	if self < 0 || int(self) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(self))
	}
	return kindNames[self]
}

// HasText reports whether tokens of this kind carry source text.
func (self Kind) HasText() bool {
	switch self {
	case Illegal, Identifier, Int, Float, String:
		return true
	}
	return false
}

// TerminatesStatement reports whether a newline directly after a token of
// this kind ends the current statement.
func (self Kind) TerminatesStatement() bool {
	switch self {
	case Identifier, Int, Float, String, True, False,
		RightParen, RightBrace, Return, Continue, Break:
		return true
	}
	return false
}

var keywords = map[string]Kind{
	"true":     True,
	"false":    False,
	"fun":      Fun,
	"loop":     Loop,
	"if":       If,
	"else":     Else,
	"print":    Print,
	"return":   Return,
	"val":      Val,
	"var":      Var,
	"break":    Break,
	"continue": Continue,
}

// LookupIdent maps an identifier spelling to its keyword kind, or to
// Identifier when the spelling is not reserved. The match is case-sensitive.
func LookupIdent(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// Keywords returns the reserved spellings in lexical order.
func Keywords() []string {
	res := make([]string, 0, len(keywords))
	for word := range keywords {
		res = append(res, word)
	}
	sort.Strings(res)
	return res
}
