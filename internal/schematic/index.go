package schematic

import (
	"sort"

	"github.com/phyten/gearscan/internal/model"
)

// LineIndex groups tokens by line number. Tokens on a line keep their scan
// order and Lines is sorted ascending.
type LineIndex struct {
	byLine map[int][]model.Token
	lines  []int
}

// Index buckets the tokens for which keep returns true. A nil keep keeps all.
func Index(tokens []model.Token, keep func(model.Token) bool) *LineIndex {
	idx := &LineIndex{byLine: make(map[int][]model.Token)}
	for _, tok := range tokens {
		if keep != nil && !keep(tok) {
			continue
		}
		line := tok.Line()
		if _, ok := idx.byLine[line]; !ok {
			idx.lines = append(idx.lines, line)
		}
		idx.byLine[line] = append(idx.byLine[line], tok)
	}
	sort.Ints(idx.lines)
	return idx
}

// Lines returns the line numbers that hold at least one token.
func (x *LineIndex) Lines() []int {
	out := make([]int, len(x.lines))
	copy(out, x.lines)
	return out
}

// At returns the tokens on line.
func (x *LineIndex) At(line int) []model.Token {
	return x.byLine[line]
}

// Neighborhood returns the tokens on line-1, line and line+1, in that order.
func (x *LineIndex) Neighborhood(line int) []model.Token {
	above, same, below := x.byLine[line-1], x.byLine[line], x.byLine[line+1]
	out := make([]model.Token, 0, len(above)+len(same)+len(below))
	out = append(out, above...)
	out = append(out, same...)
	return append(out, below...)
}

// Len returns the total number of indexed tokens.
func (x *LineIndex) Len() int {
	n := 0
	for _, toks := range x.byLine {
		n += len(toks)
	}
	return n
}

func adjacentTo(tok model.Token, candidates []model.Token) []model.Part {
	var out []model.Part
	for _, c := range candidates {
		p, ok := c.(model.Part)
		if !ok {
			continue
		}
		if model.IsAdjacent(tok, p) {
			out = append(out, p)
		}
	}
	return out
}
