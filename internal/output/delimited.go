package output

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
)

// recordWriter is satisfied by *csv.Writer and tsvWriter.
type recordWriter interface {
	Write(record []string) error
}

func writeRecords(rw recordWriter, items []engine.Item, fields []Field) error {
	if err := rw.Write(Headers(fields)); err != nil {
		return err
	}
	for _, it := range items {
		if err := rw.Write(RowValues(it, fields)); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV renders items as RFC 4180 CSV with CRLF line endings. There is no
// totals row so the output stays one record per file.
func WriteCSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := writeRecords(cw, items, sel.Fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

var tsvCleaner = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

type tsvWriter struct{ w *bufio.Writer }

func (t tsvWriter) Write(record []string) error {
	for i, v := range record {
		if i > 0 {
			t.w.WriteByte('\t')
		}
		t.w.WriteString(tsvCleaner.Replace(v))
	}
	return t.w.WriteByte('\n')
}

// WriteTSV writes a header and one tab separated row per item. Tabs and line
// breaks inside values become spaces.
func WriteTSV(w io.Writer, items []engine.Item, sel FieldSelection) error {
	bw := bufio.NewWriter(w)
	if err := writeRecords(tsvWriter{bw}, items, sel.Fields); err != nil {
		return err
	}
	return bw.Flush()
}
