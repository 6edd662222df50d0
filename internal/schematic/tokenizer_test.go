package schematic

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/phyten/gearscan/internal/model"
)

func TestTokenizeTwoLines(t *testing.T) {
	got := Tokenize("467..114..\n&..35..633")
	want := []model.Token{
		model.Part{Value: 467, LineNo: 1, Cols: model.NewSpan(1, 4)},
		model.Part{Value: 114, LineNo: 1, Cols: model.NewSpan(6, 9)},
		model.Symbol{Glyph: '&', LineNo: 2, Cols: model.NewSpan(1, 2)},
		model.Part{Value: 35, LineNo: 2, Cols: model.NewSpan(4, 6)},
		model.Part{Value: 633, LineNo: 2, Cols: model.NewSpan(8, 11)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizerNextStopsAtEOF(t *testing.T) {
	tz := NewTokenizer("..\n  ..")
	tok, ok := tz.Next()
	require.False(t, ok)
	require.Nil(t, tok)

	tz = NewTokenizer("")
	_, ok = tz.Next()
	require.False(t, ok)
}

func TestTokenizeAdjacentPartAndSymbol(t *testing.T) {
	got := Tokenize("617*")
	want := []model.Token{
		model.Part{Value: 617, LineNo: 1, Cols: model.NewSpan(1, 4)},
		model.Symbol{Glyph: '*', LineNo: 1, Cols: model.NewSpan(4, 5)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Tokenize mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeNeverEmitsEmptySpans(t *testing.T) {
	for _, tok := range Tokenize(example) {
		require.Greater(t, tok.Span().Len(), 0, "token %v", tok)
	}
}

func TestTokenizeWindowsLineEndings(t *testing.T) {
	got := Tokenize("1.\r\n*2")
	require.Len(t, got, 3)
	require.Equal(t, model.Symbol{Glyph: '*', LineNo: 2, Cols: model.NewSpan(1, 2)}, got[1])
}

func TestTokenizePanicsOnOverflow(t *testing.T) {
	huge := strings.Repeat("9", 21)
	require.Panics(t, func() { Tokenize(huge) })
}
