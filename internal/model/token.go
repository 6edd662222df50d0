package model

import (
	"encoding/json"
	"fmt"
)

// TokenKind は回路図トークンの種別を表します。
type TokenKind string

const (
	TokenKindPart   TokenKind = "part"
	TokenKindSymbol TokenKind = "symbol"
)

// DefaultGearGlyph はギアになり得る記号の既定値です。
const DefaultGearGlyph byte = '*'

// Token は回路図から切り出された 1 個の部品番号または記号です。
type Token interface {
	Kind() TokenKind
	Line() int
	Span() Span
	// PartNumber は部品なら値と true、記号なら false を返します。
	PartNumber() (uint64, bool)
	String() string
}

// Part は連続する 10 進数字列です。
type Part struct {
	Value  uint64 `json:"value"`
	LineNo int    `json:"line"`
	Cols   Span   `json:"span"`
}

func (p Part) Kind() TokenKind { return TokenKindPart }
func (p Part) Line() int       { return p.LineNo }
func (p Part) Span() Span      { return p.Cols }

func (p Part) PartNumber() (uint64, bool) { return p.Value, true }

func (p Part) String() string {
	return fmt.Sprintf("Part(%d, line %d, span%s)", p.Value, p.LineNo, p.Cols)
}

// Symbol は数字・'.'・空白以外の 1 文字です。
type Symbol struct {
	Glyph  byte `json:"glyph"`
	LineNo int  `json:"line"`
	Cols   Span `json:"span"`
}

func (s Symbol) Kind() TokenKind { return TokenKindSymbol }
func (s Symbol) Line() int       { return s.LineNo }
func (s Symbol) Span() Span      { return s.Cols }

func (s Symbol) PartNumber() (uint64, bool) { return 0, false }

// IsGearCandidate は記号が指定のギア記号かどうかを返します。
func (s Symbol) IsGearCandidate(glyph byte) bool {
	return s.Glyph == glyph
}

func (s Symbol) String() string {
	return fmt.Sprintf("Symbol(%q, line %d, span%s)", s.Glyph, s.LineNo, s.Cols)
}

// IsPart は t が Part かどうかを返します。
func IsPart(t Token) bool {
	_, ok := t.(Part)
	return ok
}

// IsSymbol は t が Symbol かどうかを返します。
func IsSymbol(t Token) bool {
	_, ok := t.(Symbol)
	return ok
}

// IsAdjacent は a と b が同じ行または隣接行にあり、桁範囲が接するか重なる
// ときに true を返します。斜めの隣接も含みます。
func IsAdjacent(a, b Token) bool {
	d := a.Line() - b.Line()
	if d < -1 || d > 1 {
		return false
	}
	return a.Span().Adjacent(b.Span())
}

type symbolJSON struct {
	Glyph  string `json:"glyph"`
	LineNo int    `json:"line"`
	Cols   Span   `json:"span"`
}

// MarshalJSON は記号を数値ではなく 1 文字の文字列として書き出します。
func (s Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(symbolJSON{Glyph: string([]byte{s.Glyph}), LineNo: s.LineNo, Cols: s.Cols})
}

func (s *Symbol) UnmarshalJSON(data []byte) error {
	var raw symbolJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Glyph) != 1 {
		return fmt.Errorf("model: symbol glyph %q must be one byte", raw.Glyph)
	}
	if raw.Cols.Start < 0 || raw.Cols.Start > raw.Cols.End {
		return fmt.Errorf("model: invalid symbol span %s", raw.Cols)
	}
	*s = Symbol{Glyph: raw.Glyph[0], LineNo: raw.LineNo, Cols: raw.Cols}
	return nil
}
