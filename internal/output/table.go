package output

import (
	"io"
	"strconv"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
	"github.com/phyten/gearscan/internal/termcolor"
	"github.com/phyten/gearscan/internal/textutil"
)

const columnGap = "  "

// TableStyle controls colouring and truncation of WriteTable.
type TableStyle struct {
	Color   bool
	Profile termcolor.Profile
	Scheme  termcolor.Scheme
	// MaxFileWidth truncates the file column from the left; 0 disables it.
	MaxFileWidth int
}

// WriteTable renders an aligned table followed by a totals row. Widths are
// measured in terminal cells so wide file names stay aligned.
func WriteTable(w io.Writer, res *engine.Result, sel FieldSelection, style TableStyle) error {
	fields := sel.Fields
	rows := make([][]string, 0, len(res.Items)+2)
	rows = append(rows, Headers(fields))
	for _, it := range res.Items {
		rows = append(rows, RowValues(it, fields))
	}
	if len(res.Items) > 0 {
		rows = append(rows, TotalsValues(res.Totals, fields))
	}
	if style.MaxFileWidth > 0 {
		for i, f := range fields {
			if f.Key != "file" {
				continue
			}
			for _, row := range rows[1:] {
				row[i] = textutil.TruncateLeft(row[i], style.MaxFileWidth, "…")
			}
		}
	}

	widths := make([]int, len(fields))
	for _, row := range rows {
		for i, cell := range row {
			if cw := textutil.VisibleWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	maxima := columnMaxima(res.Items, fields)

	var b strings.Builder
	for r, row := range rows {
		isHeader := r == 0
		isTotals := len(res.Items) > 0 && r == len(rows)-1
		for i, cell := range row {
			f := fields[i]
			styled := cell
			switch {
			case isHeader:
				styled = termcolor.HeaderStyle(style.Scheme).Wrap(cell, style.Color)
			case isTotals:
				styled = termcolor.TotalsStyle().Wrap(cell, style.Color)
			case f.Key == "part_sum" || f.Key == "gear_ratio":
				v, _ := strconv.ParseUint(cell, 10, 64)
				styled = termcolor.MagnitudeStyle(v, maxima[f.Key], style.Profile, style.Scheme).Wrap(cell, style.Color)
			}
			if i > 0 {
				b.WriteString(columnGap)
			}
			last := i == len(row)-1
			switch {
			case f.Numeric && !isHeader:
				b.WriteString(textutil.PadLeft(styled, widths[i]))
			case last:
				b.WriteString(styled)
			default:
				b.WriteString(textutil.PadRight(styled, widths[i]))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func columnMaxima(items []engine.Item, fields []Field) map[string]uint64 {
	out := make(map[string]uint64, len(fields))
	for _, f := range fields {
		if !f.Numeric {
			continue
		}
		for _, it := range items {
			if v := numericValue(it, f.Key); v > out[f.Key] {
				out[f.Key] = v
			}
		}
	}
	return out
}
