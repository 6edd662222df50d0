package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/gearscan/internal/model"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..`

func TestPartNumberSumExample(t *testing.T) {
	assert.Equal(t, uint64(4361), PartNumberSum(example))
}

func TestGearRatioSumExample(t *testing.T) {
	assert.Equal(t, uint64(467835), GearRatioSum(example))
}

func TestQueriesOnEmptyInput(t *testing.T) {
	assert.Zero(t, PartNumberSum(""))
	assert.Zero(t, GearRatioSum(""))
}

func TestQueriesWithoutSymbols(t *testing.T) {
	input := "467..114\n..35..63\n12......"
	assert.Zero(t, PartNumberSum(input))
	assert.Zero(t, GearRatioSum(input))
}

func TestPartNumberSumCountsSharedPartOnce(t *testing.T) {
	// 50 touches both '#' and '$'.
	input := "#..\n50.\n.$."
	assert.Equal(t, uint64(50), PartNumberSum(input))
}

func TestPartNumberSumKeepsRepeatedValues(t *testing.T) {
	// Two distinct parts share the value 7; both count.
	input := "7*7"
	assert.Equal(t, uint64(14), PartNumberSum(input))
}

func TestGearCardinalityGate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  uint64
	}{
		{name: "One", input: "..\n3*", want: 0},
		{name: "Two", input: "3*4", want: 12},
		{name: "Three", input: "5..\n3*4", want: 0},
		{name: "Diagonal", input: "2..\n.*.\n..6", want: 12},
		{name: "NotAGear", input: "3#4", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GearRatioSum(tc.input))
		})
	}
}

func TestQueriesPanicOnOverflow(t *testing.T) {
	// 13 digits each, product about 1e26
	require.Panics(t, func() { GearRatioSum("9999999999999*9999999999999") })
	require.Panics(t, func() { Analyze("9999999999999*9999999999999", DefaultOptions()) })
	maxed := "18446744073709551615*1\n18446744073709551615*1"
	require.Panics(t, func() { PartNumberSum(maxed) })
	require.Panics(t, func() { Analyze(maxed, DefaultOptions()) })
}

func TestQueriesAtUint64Limit(t *testing.T) {
	assert.Equal(t, uint64(18446744073709551615), PartNumberSum("18446744073709551615*"))
	assert.Equal(t, uint64(18446744073709551614), GearRatioSum("9223372036854775807*2"))
}

func TestCheckedArithmetic(t *testing.T) {
	assert.Equal(t, uint64(12), mustMul(3, 4))
	assert.Equal(t, uint64(7), mustAdd(3, 4))
	require.Panics(t, func() { mustAdd(1<<63, 1<<63) })
	require.Panics(t, func() { mustMul(1<<32, 1<<32) })
	require.NotPanics(t, func() { mustMul(1<<32, 1<<31) })
}

func TestGearRatioSumWithCustomRule(t *testing.T) {
	input := "5..\n3#4"
	assert.Zero(t, GearRatioSumWith(input, Options{GearGlyph: '#'}))
	assert.Equal(t, uint64(60), GearRatioSumWith(input, Options{GearGlyph: '#', GearArity: 3}))
}

func TestLineIndexNeighborhood(t *testing.T) {
	parts := Index(Tokenize(example), model.IsPart)
	require.Equal(t, []int{1, 3, 5, 6, 7, 8, 10}, parts.Lines())
	require.Equal(t, 10, parts.Len())

	got := parts.Neighborhood(2)
	values := make([]uint64, 0, len(got))
	for _, tok := range got {
		v, _ := tok.PartNumber()
		values = append(values, v)
	}
	require.Equal(t, []uint64{467, 114, 35, 633}, values)
	require.Empty(t, parts.At(2))
}

func TestIndexNilKeepsEverything(t *testing.T) {
	tokens := Tokenize(example)
	require.Equal(t, len(tokens), Index(tokens, nil).Len())
}

func BenchmarkPartNumberSum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		PartNumberSum(example)
	}
}

func BenchmarkGearRatioSum(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GearRatioSum(example)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	opts := DefaultOptions()
	for i := 0; i < b.N; i++ {
		Analyze(example, opts)
	}
}
