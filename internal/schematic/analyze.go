package schematic

import (
	"strings"

	"github.com/phyten/gearscan/internal/model"
)

// Report summarises one schematic.
type Report struct {
	Lines        int            `json:"lines"`
	Parts        int            `json:"parts"`
	Symbols      int            `json:"symbols"`
	Adjacent     []model.Part   `json:"adjacent,omitempty"`
	Isolated     []model.Part   `json:"isolated,omitempty"`
	Gears        []Gear         `json:"gears,omitempty"`
	Glyphs       map[string]int `json:"glyphs,omitempty"`
	PartSum      uint64         `json:"part_sum"`
	GearRatioSum uint64         `json:"gear_ratio_sum"`
}

// Analyze tokenizes input once and answers both queries, listing the parts
// that touch a symbol, the parts that do not, and every qualifying gear.
// Like the queries it panics on part numbers, sums or ratios that overflow
// uint64.
func Analyze(input string, opts Options) Report {
	opts = opts.normalized()
	tokens := Tokenize(input)
	parts := Index(tokens, model.IsPart)
	symbols := Index(tokens, model.IsSymbol)

	found := adjacentParts(parts, symbols)
	rep := Report{
		Lines:    countLines(input),
		Parts:    parts.Len(),
		Symbols:  symbols.Len(),
		Adjacent: found.Sorted(),
		Gears:    gears(parts, Index(tokens, gearFilter(opts.GearGlyph)), opts.GearArity),
		PartSum:  found.Sum(),
	}
	for _, line := range parts.lines {
		for _, tok := range parts.At(line) {
			if p := tok.(model.Part); !found.Has(p) {
				rep.Isolated = append(rep.Isolated, p)
			}
		}
	}
	for _, line := range symbols.lines {
		for _, tok := range symbols.At(line) {
			if rep.Glyphs == nil {
				rep.Glyphs = make(map[string]int)
			}
			rep.Glyphs[string(tok.(model.Symbol).Glyph)]++
		}
	}
	for _, g := range rep.Gears {
		rep.GearRatioSum = mustAdd(rep.GearRatioSum, g.Ratio)
	}
	return rep
}

func countLines(input string) int {
	if input == "" {
		return 0
	}
	n := strings.Count(input, "\n")
	if !strings.HasSuffix(input, "\n") {
		n++
	}
	return n
}
