package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
	"github.com/phyten/gearscan/internal/termcolor"
)

// WriteErrors summarises per-file failures, one line each.
func WriteErrors(w io.Writer, errs []engine.ItemError, color bool) error {
	if len(errs) == 0 {
		return nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "gearscan: %d error(s)\n", len(errs))
	for _, e := range errs {
		file := strings.TrimSpace(e.File)
		if file == "" {
			file = "(unknown file)"
		}
		stage := strings.TrimSpace(e.Stage)
		if stage == "" {
			stage = "unknown"
		}
		line := fmt.Sprintf("%s [%s] %s", file, stage, e.Message)
		b.WriteString("  ")
		b.WriteString(termcolor.ErrorStyle().Wrap(line, color))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
