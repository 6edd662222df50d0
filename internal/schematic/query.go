package schematic

import (
	"sort"

	"github.com/phyten/gearscan/internal/model"
)

// Options tunes which symbols count as gears.
type Options struct {
	// GearGlyph selects gear candidates. Zero means '*'.
	GearGlyph byte
	// GearArity is the exact number of adjacent parts a gear needs. Zero means 2.
	GearArity int
}

// DefaultOptions returns the standard gear rule: '*' with exactly two parts.
func DefaultOptions() Options {
	return Options{GearGlyph: model.DefaultGearGlyph, GearArity: 2}
}

func (o Options) normalized() Options {
	if o.GearGlyph == 0 {
		o.GearGlyph = model.DefaultGearGlyph
	}
	if o.GearArity <= 0 {
		o.GearArity = 2
	}
	return o
}

// PartNumberSum returns the sum of all parts adjacent to at least one symbol.
// A part touching several symbols is counted once.
func PartNumberSum(input string) uint64 {
	tokens := Tokenize(input)
	return adjacentParts(Index(tokens, model.IsPart), Index(tokens, model.IsSymbol)).Sum()
}

// GearRatioSum returns the sum of gear ratios using DefaultOptions.
func GearRatioSum(input string) uint64 {
	return GearRatioSumWith(input, DefaultOptions())
}

// GearRatioSumWith returns the sum of gear ratios for the given gear rule.
func GearRatioSumWith(input string, opts Options) uint64 {
	opts = opts.normalized()
	tokens := Tokenize(input)
	var total uint64
	for _, g := range gears(Index(tokens, model.IsPart), Index(tokens, gearFilter(opts.GearGlyph)), opts.GearArity) {
		total = mustAdd(total, g.Ratio)
	}
	return total
}

// PartSet is a set of parts keyed by value, line and span.
type PartSet map[model.Part]struct{}

// Add inserts p.
func (s PartSet) Add(p model.Part) {
	s[p] = struct{}{}
}

// Has reports whether p is in the set.
func (s PartSet) Has(p model.Part) bool {
	_, ok := s[p]
	return ok
}

// Sum adds the values of every member. It panics if the total does not fit
// in a uint64.
func (s PartSet) Sum() uint64 {
	var total uint64
	for p := range s {
		total = mustAdd(total, p.Value)
	}
	return total
}

// Sorted returns the members ordered by line then start column.
func (s PartSet) Sorted() []model.Part {
	out := make([]model.Part, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sortParts(out)
	return out
}

// Gear is a gear candidate that touches exactly the required number of parts.
type Gear struct {
	Symbol model.Symbol `json:"symbol"`
	Parts  []model.Part `json:"parts"`
	Ratio  uint64       `json:"ratio"`
}

func adjacentParts(parts, symbols *LineIndex) PartSet {
	found := make(PartSet)
	for _, line := range symbols.lines {
		nearby := parts.Neighborhood(line)
		for _, sym := range symbols.At(line) {
			for _, p := range adjacentTo(sym, nearby) {
				found.Add(p)
			}
		}
	}
	return found
}

func gears(parts, candidates *LineIndex, arity int) []Gear {
	var out []Gear
	for _, line := range candidates.lines {
		nearby := parts.Neighborhood(line)
		for _, tok := range candidates.At(line) {
			touching := adjacentTo(tok, nearby)
			if len(touching) != arity {
				continue
			}
			ratio := uint64(1)
			for _, p := range touching {
				ratio = mustMul(ratio, p.Value)
			}
			out = append(out, Gear{Symbol: tok.(model.Symbol), Parts: touching, Ratio: ratio})
		}
	}
	return out
}

func gearFilter(glyph byte) func(model.Token) bool {
	return func(t model.Token) bool {
		s, ok := t.(model.Symbol)
		return ok && s.IsGearCandidate(glyph)
	}
}

func sortParts(parts []model.Part) {
	sort.Slice(parts, func(i, j int) bool {
		if parts[i].LineNo == parts[j].LineNo {
			return parts[i].Cols.Start < parts[j].Cols.Start
		}
		return parts[i].LineNo < parts[j].LineNo
	})
}
