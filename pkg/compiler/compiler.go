// Package compiler runs the front end over a source: it reads characters,
// scans them into tokens and parses the tokens into a program.
//
// Failures fall into three classes. A *ReadError wraps the error of the
// character source unchanged. A *LexError lists every Illegal token of the
// source; the whole token stream is scanned before parsing so all of them are
// reported at once. A *ParseError wraps the first parser error.
package compiler

import (
	"fmt"
	"io"
	"strings"

	"github.com/ostnam/yapl/pkg/ast"
	"github.com/ostnam/yapl/pkg/parser"
	"github.com/ostnam/yapl/pkg/scanner"
	"github.com/ostnam/yapl/pkg/source"
	"github.com/ostnam/yapl/pkg/tokens"
	"github.com/ostnam/yapl/pkg/utils"
)

type ReadError struct {
	Path string
	Err  error
}

func (self *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", self.Path, self.Err)
}

func (self *ReadError) Unwrap() error {
	return self.Err
}

type LexError struct {
	Path    string
	Illegal []tokens.Token
}

func (self *LexError) Error() string {
	parts := make([]string, len(self.Illegal))
	for i, tok := range self.Illegal {
		parts[i] = fmt.Sprintf("line %d, column %d: illegal %q", tok.Line, tok.Column, tok.Text)
	}
	return fmt.Sprintf("%s: %s", self.Path, strings.Join(parts, "; "))
}

type ParseError struct {
	Path string
	Err  error
}

func (self *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", self.Path, self.Err)
}

func (self *ParseError) Unwrap() error {
	return self.Err
}

// Compile parses the file at path.
func Compile(path string, opts ...parser.Option) (*ast.Program, error) {
	r, err := source.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer r.Close()
	return compile(path, r, r.Err, opts)
}

// CompileReader parses the source read from rd. name labels errors.
func CompileReader(name string, rd io.Reader, opts ...parser.Option) (*ast.Program, error) {
	r := source.NewReader(name, rd)
	return compile(name, r, r.Err, opts)
}

// CompileString parses an in-memory source.
func CompileString(src string, opts ...parser.Option) (*ast.Program, error) {
	chars := utils.NewSliceStream([]rune(src))
	return compile("<string>", chars, func() error { return nil }, opts)
}

func compile(name string, chars scanner.RuneSource, readErr func() error, opts []parser.Option) (*ast.Program, error) {
	toks := scanner.Collect(scanner.New(chars))
	if err := readErr(); err != nil {
		return nil, &ReadError{Path: name, Err: err}
	}
	if illegal := illegalTokens(toks); len(illegal) > 0 {
		return nil, &LexError{Path: name, Illegal: illegal}
	}
	prog, err := parser.Parse(utils.NewSliceStream(toks), opts...)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	return prog, nil
}

func illegalTokens(toks []tokens.Token) []tokens.Token {
	var res []tokens.Token
	for _, tok := range toks {
		if tok.Kind == tokens.Illegal {
			res = append(res, tok)
		}
	}
	return res
}
