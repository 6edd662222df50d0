package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
	"github.com/phyten/gearscan/internal/model"
	"github.com/phyten/gearscan/internal/termcolor"
	"github.com/phyten/gearscan/internal/textutil"
)

// WriteParts lists, per file, the adjacent and isolated parts and every
// qualifying gear. Items without lists (WithParts off) print only the header.
//
//	example.txt
//	  adjacent  1:1-4  467
//	  isolated  1:6-9  114
//	  gear      2:4-5  * 467 x 35 = 16345
func WriteParts(w io.Writer, res *engine.Result, color bool) error {
	var b strings.Builder
	for i, it := range res.Items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(termcolor.HeaderStyle(termcolor.SchemeUnknown).Wrap(it.File, color))
		b.WriteByte('\n')

		var rows [][3]string
		if res.HasParts {
			for _, p := range it.Adjacent {
				rows = append(rows, [3]string{"adjacent", location(p.LineNo, p.Cols), strconv.FormatUint(p.Value, 10)})
			}
			for _, p := range it.Isolated {
				rows = append(rows, [3]string{"isolated", location(p.LineNo, p.Cols), strconv.FormatUint(p.Value, 10)})
			}
		}
		if res.HasGears {
			for _, g := range it.GearList {
				glyph := termcolor.GearStyle().Wrap(string([]byte{g.Symbol.Glyph}), color)
				values := make([]string, len(g.Parts))
				for k, p := range g.Parts {
					values[k] = strconv.FormatUint(p.Value, 10)
				}
				desc := fmt.Sprintf("%s %s = %d", glyph, strings.Join(values, " x "), g.Ratio)
				rows = append(rows, [3]string{"gear", location(g.Symbol.LineNo, g.Symbol.Cols), desc})
			}
		}

		var kindW, locW int
		for _, row := range rows {
			kindW = max(kindW, textutil.VisibleWidth(row[0]))
			locW = max(locW, textutil.VisibleWidth(row[1]))
		}
		for _, row := range rows {
			b.WriteString("  ")
			b.WriteString(textutil.PadRight(row[0], kindW))
			b.WriteString(columnGap)
			b.WriteString(textutil.PadRight(row[1], locW))
			b.WriteString(columnGap)
			b.WriteString(row[2])
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func location(line int, cols model.Span) string {
	return fmt.Sprintf("%d:%d-%d", line, cols.Start, cols.End)
}
