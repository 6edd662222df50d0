package model

import "fmt"

// Position is a place in the input buffer. Offset is a 0-based byte offset;
// Line and Column are 1-based.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open column range [Start, End) within one line. Columns
// are never negative.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NewSpan builds a span and panics when start is negative or start > end.
func NewSpan(start, end int) Span {
	if start < 0 {
		panic(fmt.Sprintf("model: span start %d is negative", start))
	}
	if start > end {
		panic(fmt.Sprintf("model: span start %d exceeds end %d", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the number of columns covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Overlaps reports whether the two half-open spans share at least one column.
// Touching spans ([0,2) and [2,4)) do not overlap.
//
// The hull of both spans is shorter than their combined length exactly when
// they share a column.
func (s Span) Overlaps(other Span) bool {
	hull := s.hull(other)
	return hull.Len() < s.Len()+other.Len()
}

// Adjacent reports whether other overlaps s once s is widened by one column on
// each side, so touching spans count as adjacent.
func (s Span) Adjacent(other Span) bool {
	return s.Expand(1).Overlaps(other)
}

// Expand widens the span by n columns on each side. The start never drops
// below zero.
func (s Span) Expand(n int) Span {
	start := s.Start - n
	if start < 0 {
		start = 0
	}
	return Span{Start: start, End: s.End + n}
}

func (s Span) hull(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// overlapsBounds is the comparison form of Overlaps, kept as a test oracle.
func (s Span) overlapsBounds(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}
