package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/gearscan/internal/model"
)

func TestAnalyzeExample(t *testing.T) {
	rep := Analyze(example, DefaultOptions())

	assert.Equal(t, 10, rep.Lines)
	assert.Equal(t, 10, rep.Parts)
	assert.Equal(t, 6, rep.Symbols)
	assert.Equal(t, uint64(4361), rep.PartSum)
	assert.Equal(t, uint64(467835), rep.GearRatioSum)
	assert.Equal(t, map[string]int{"*": 3, "#": 1, "+": 1, "$": 1}, rep.Glyphs)

	require.Len(t, rep.Isolated, 2)
	assert.Equal(t, model.Part{Value: 114, LineNo: 1, Cols: model.NewSpan(6, 9)}, rep.Isolated[0])
	assert.Equal(t, model.Part{Value: 58, LineNo: 6, Cols: model.NewSpan(8, 10)}, rep.Isolated[1])
	require.Len(t, rep.Adjacent, 8)
	assert.Equal(t, uint64(467), rep.Adjacent[0].Value)

	require.Len(t, rep.Gears, 2)
	assert.Equal(t, uint64(16345), rep.Gears[0].Ratio)
	assert.Equal(t, 2, rep.Gears[0].Symbol.LineNo)
	assert.Equal(t, uint64(451490), rep.Gears[1].Ratio)
}

func TestAnalyzeAgreesWithQueries(t *testing.T) {
	inputs := []string{"", "1", "*", example, "12*\n.34\n*..", "1.1\n.*.\n1.1"}
	for _, in := range inputs {
		rep := Analyze(in, DefaultOptions())
		assert.Equal(t, PartNumberSum(in), rep.PartSum, "input %q", in)
		assert.Equal(t, GearRatioSum(in), rep.GearRatioSum, "input %q", in)
		assert.Equal(t, rep.Parts, len(rep.Adjacent)+len(rep.Isolated), "input %q", in)
	}
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("abc"))
	assert.Equal(t, 1, countLines("abc\n"))
	assert.Equal(t, 2, countLines("a\nb"))
}
