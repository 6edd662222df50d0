package output

import (
	"io"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
)

var markdownCell = strings.NewReplacer("\r\n", "<br>", "\r", "", "\n", "<br>", "|", `\|`)

// WriteMarkdownTable renders items as a GitHub Flavored Markdown table with a
// bold totals row. Numeric columns are right-aligned.
func WriteMarkdownTable(w io.Writer, res *engine.Result, sel FieldSelection) error {
	var b strings.Builder
	markdownRow(&b, Headers(sel.Fields), false)
	align := make([]string, len(sel.Fields))
	for i, f := range sel.Fields {
		align[i] = "---"
		if f.Numeric {
			align[i] = "---:"
		}
	}
	markdownRow(&b, align, false)
	for _, it := range res.Items {
		markdownRow(&b, RowValues(it, sel.Fields), false)
	}
	if len(res.Items) > 0 {
		markdownRow(&b, TotalsValues(res.Totals, sel.Fields), true)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func markdownRow(b *strings.Builder, cells []string, bold bool) {
	b.WriteByte('|')
	for _, c := range cells {
		b.WriteByte(' ')
		c = markdownCell.Replace(c)
		if bold && c != "" {
			c = "**" + c + "**"
		}
		b.WriteString(c)
		b.WriteString(" |")
	}
	b.WriteByte('\n')
}
