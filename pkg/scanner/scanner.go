package scanner

import (
	"strings"
	"unicode"

	"github.com/ostnam/yapl/pkg/tokens"
	"github.com/ostnam/yapl/pkg/utils"
)

// RuneSource is the character stream consumed by a Scanner.
type RuneSource = utils.Stream[rune]

// Scanner turns a stream of characters into a stream of tokens.
//
// It is total: malformed input never stops it, every unrecognized fragment is
// reported inline as an Illegal token. Tokens are produced on demand and the
// scanner cannot be restarted.
type Scanner struct {
	src *utils.Peeker[rune]

	line        int
	column      int
	atLineStart bool

	last    tokens.Kind
	emitted bool
}

func New(src RuneSource) *Scanner {
	return &Scanner{
		src:         utils.NewPeeker(src),
		line:        1,
		atLineStart: true,
	}
}

// FromString returns a Scanner reading the characters of input.
func FromString(input string) *Scanner {
	return New(utils.NewSliceStream([]rune(input)))
}

// ScanString tokenizes the whole input.
func ScanString(input string) []tokens.Token {
	return Collect(FromString(input))
}

// Collect drains the scanner.
func Collect(s *Scanner) []tokens.Token {
	return utils.Collect[tokens.Token](s)
}

type position struct {
	line   int
	column int
}

// Next returns the next token, or false once the input is exhausted.
func (self *Scanner) Next() (tokens.Token, bool) {
	for {
		c, pos, ok := self.advance()
		if !ok {
			return tokens.Token{}, false
		}
		switch {
		case c == '\n':
			// A newline ends the statement when the previous token can end one.
			if self.emitted && self.last.TerminatesStatement() {
				return self.emit(tokens.Semicolon, "", pos), true
			}
		case unicode.IsSpace(c):
		case c == '/' && self.peekIs('/'):
			self.skipComment()
		default:
			kind, text := self.scanToken(c)
			return self.emit(kind, text, pos), true
		}
	}
}

func (self *Scanner) scanToken(c rune) (tokens.Kind, string) {
	switch c {
	case '(':
		return tokens.LeftParen, ""
	case ')':
		return tokens.RightParen, ""
	case '{':
		return tokens.LeftBrace, ""
	case '}':
		return tokens.RightBrace, ""
	case ',':
		return tokens.Comma, ""
	case ';':
		return tokens.Semicolon, ""
	case '-':
		return tokens.Minus, ""
	case '+':
		return tokens.Plus, ""
	case '*':
		return tokens.Star, ""
	case '/':
		return tokens.Slash, ""
	case '!':
		return self.withEqual(tokens.Bang, tokens.BangEqual), ""
	case '=':
		return self.withEqual(tokens.Equal, tokens.EqualEqual), ""
	case '<':
		return self.withEqual(tokens.Less, tokens.LessEqual), ""
	case '>':
		return self.withEqual(tokens.Greater, tokens.GreaterEqual), ""
	case '"':
		return self.scanStrLiteral()
	}
	switch {
	case isDigit(c):
		return self.scanNumLiteral(c)
	case isIdentStart(c):
		return self.scanIdentifier(c)
	}
	return tokens.Illegal, string(c)
}

// withEqual resolves the one and two character forms of an operator.
func (self *Scanner) withEqual(bare, withEq tokens.Kind) tokens.Kind {
	if self.peekIs('=') {
		self.advance()
		return withEq
	}
	return bare
}

// scanStrLiteral reads the body of a string literal whose opening quote was
// already consumed. Reaching a newline or the end of input first yields an
// Illegal token holding the text read so far, opening quote included.
func (self *Scanner) scanStrLiteral() (tokens.Kind, string) {
	var sb strings.Builder
	for {
		c, ok := self.src.Peek()
		if !ok || c == '\n' {
			return tokens.Illegal, `"` + sb.String()
		}
		self.advance()
		if c == '"' {
			return tokens.String, sb.String()
		}
		sb.WriteRune(c)
	}
}

// scanNumLiteral reads an integer or float literal starting with first.
func (self *Scanner) scanNumLiteral(first rune) (tokens.Kind, string) {
	var sb strings.Builder
	sb.WriteRune(first)
	kind := tokens.Int
	for {
		c, ok := self.src.Peek()
		if !ok {
			return kind, sb.String()
		}
		switch {
		case isDigit(c):
			self.advance()
			sb.WriteRune(c)
		case c == '.' && kind == tokens.Float:
			self.advance()
			sb.WriteRune(c)
			self.consumeNumRun(&sb)
			return tokens.Illegal, sb.String()
		case c == '.':
			self.advance()
			sb.WriteRune(c)
			kind = tokens.Float
		case c == 'f':
			self.advance()
			sb.WriteRune(c)
			return tokens.Float, sb.String()
		default:
			return kind, sb.String()
		}
	}
}

// consumeNumRun swallows the digits and dots that follow a malformed number so
// the whole fragment is reported as one Illegal token.
func (self *Scanner) consumeNumRun(sb *strings.Builder) {
	for {
		c, ok := self.src.Peek()
		if !ok || !(isDigit(c) || c == '.') {
			return
		}
		self.advance()
		sb.WriteRune(c)
	}
}

func (self *Scanner) scanIdentifier(first rune) (tokens.Kind, string) {
	var sb strings.Builder
	sb.WriteRune(first)
	for {
		c, ok := self.src.Peek()
		if !ok || !isIdentPart(c) {
			break
		}
		self.advance()
		sb.WriteRune(c)
	}
	ident := sb.String()
	kind := tokens.LookupIdent(ident)
	if kind != tokens.Identifier {
		return kind, ""
	}
	return kind, ident
}

// skipComment discards a line comment up to, not including, the newline.
func (self *Scanner) skipComment() {
	for {
		c, ok := self.src.Peek()
		if !ok || c == '\n' {
			return
		}
		self.advance()
	}
}

// advance consumes one character and returns it with its position.
func (self *Scanner) advance() (rune, position, bool) {
	c, ok := self.src.Next()
	if !ok {
		return 0, position{}, false
	}
	if self.atLineStart {
		self.atLineStart = false
	} else {
		self.column++
	}
	pos := position{line: self.line, column: self.column}
	if c == '\n' {
		self.line++
		self.column = 0
		self.atLineStart = true
	}
	return c, pos, true
}

func (self *Scanner) peekIs(want rune) bool {
	c, ok := self.src.Peek()
	return ok && c == want
}

func (self *Scanner) emit(kind tokens.Kind, text string, pos position) tokens.Token {
	self.last = kind
	self.emitted = true
	return tokens.Token{
		Kind:   kind,
		Text:   text,
		Line:   pos.line,
		Column: pos.column,
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || unicode.IsDigit(c)
}
