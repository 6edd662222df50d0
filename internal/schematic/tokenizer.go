package schematic

import (
	"fmt"
	"strconv"

	"github.com/phyten/gearscan/internal/model"
	"github.com/phyten/gearscan/internal/scan"
)

// Tokenizer turns a schematic into parts and symbols.
type Tokenizer struct {
	s *scan.Scanner
}

// NewTokenizer returns a tokenizer reading from input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{s: scan.New(input)}
}

// Next returns the next token, or false once the input is exhausted.
func (t *Tokenizer) Next() (model.Token, bool) {
	t.s.NextWhile(isFiller)

	start := t.s.Pos()
	if digits, ok := t.s.NextWhile(scan.IsDigit); ok {
		return model.Part{
			Value:  mustParseDigits(digits, start),
			LineNo: start.Line,
			Cols:   model.NewSpan(start.Column, t.s.Pos().Column),
		}, true
	}

	glyph, ok := t.s.Next()
	if !ok {
		return nil, false
	}
	return model.Symbol{
		Glyph:  glyph,
		LineNo: start.Line,
		Cols:   model.NewSpan(start.Column, start.Column+1),
	}, true
}

// Tokenize returns every token of input in scan order.
func Tokenize(input string) []model.Token {
	tz := NewTokenizer(input)
	var out []model.Token
	for {
		tok, ok := tz.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func isFiller(c byte) bool {
	return c == '.' || scan.IsSpace(c)
}

// mustParseDigits panics on overflow: the run holds digits only, so any other
// failure is impossible.
func mustParseDigits(digits string, at model.Position) uint64 {
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("schematic: part number at %s: %v", at, err))
	}
	return n
}
