package scanner_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/ostnam/yapl/pkg/scanner"
	"github.com/ostnam/yapl/pkg/tokens"
)

// alphabet holds the characters the scanner treats specially, plus one it
// rejects. It leaves out ';' so every Semicolon seen is an inserted one.
const alphabet = "ab_z09.f \t\n\"/=!<>+-*(){},@é"

func sourceFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).Funcs(func(s *string, c fuzz.Continue) {
		chars := []rune(alphabet)
		n := c.Intn(64)
		buf := make([]rune, n)
		for i := range buf {
			buf[i] = chars[c.Intn(len(chars))]
		}
		*s = string(buf)
	})
}

func TestRandomInputIsTotal(t *testing.T) {
	f := sourceFuzzer()
	for i := 0; i < 2000; i++ {
		var src string
		f.Fuzz(&src)

		toks := scanner.ScanString(src)
		for j, tok := range toks {
			assert.GreaterOrEqual(t, tok.Line, 1, "input %q", src)
			assert.GreaterOrEqual(t, tok.Column, 0, "input %q", src)
			if tok.Kind.HasText() && tok.Kind != tokens.String {
				assert.NotEmpty(t, tok.Text, "input %q", src)
			}
			if j == 0 {
				assert.NotEqual(t, tokens.Semicolon, tok.Kind, "input %q", src)
				continue
			}
			prev := toks[j-1]
			if tok.Kind == tokens.Semicolon {
				assert.True(t, prev.Kind.TerminatesStatement(), "input %q: %s after %s", src, tok, prev)
			}
			assert.True(t, prev.Line < tok.Line || prev.Line == tok.Line && prev.Column < tok.Column,
				"input %q: %s not after %s", src, tok, prev)
		}
	}
}

func TestRandomUnicodeIsTotal(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 500; i++ {
		var src string
		f.Fuzz(&src)
		assert.NotPanics(t, func() { scanner.ScanString(src) })
	}
}
