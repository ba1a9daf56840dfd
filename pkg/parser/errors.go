package parser

import (
	"errors"
	"fmt"

	"github.com/ostnam/yapl/pkg/tokens"
)

var (
	// ErrEndOfFile is returned when a production needs another token and
	// the token stream is exhausted.
	ErrEndOfFile = errors.New("unexpected end of file")

	// ErrTooDeep is returned when expressions or blocks nest deeper than the
	// parser's depth limit.
	ErrTooDeep = errors.New("nesting too deep")
)

// UnexpectedTokenError reports a token that the grammar does not allow where
// it was found.
type UnexpectedTokenError struct {
	Token tokens.Token
	Want  string // what the production expected, may be empty
}

func (self *UnexpectedTokenError) Error() string {
	msg := fmt.Sprintf("line %d, column %d: unexpected token %s", self.Token.Line, self.Token.Column, describe(self.Token))
	if self.Want != "" {
		msg += ", " + self.Want
	}
	return msg
}

func describe(tok tokens.Token) string {
	if tok.Kind.HasText() {
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	}
	return tok.Kind.String()
}

func unexpected(tok tokens.Token, want string) error {
	return &UnexpectedTokenError{Token: tok, Want: want}
}
