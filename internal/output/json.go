package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/gearscan/internal/engine"
)

// newJSONEncoder keeps '<', '>' and '&' in file names readable.
func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// WriteJSON writes the whole result, totals and errors included, as one
// indented document.
func WriteJSON(w io.Writer, res *engine.Result) error {
	enc := newJSONEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteNDJSON streams one object per item.
func WriteNDJSON(w io.Writer, items []engine.Item) error {
	enc := newJSONEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}
