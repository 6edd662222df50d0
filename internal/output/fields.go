package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
)

type Field struct {
	Key    string
	Header string
	// Numeric columns are right-aligned in tables.
	Numeric bool
}

type FieldSelection struct {
	Fields []Field
}

type fieldMeta struct {
	header  string
	numeric bool
}

var fieldRegistry = map[string]fieldMeta{
	"file":       {header: "FILE"},
	"lines":      {header: "LINES", numeric: true},
	"parts":      {header: "PARTS", numeric: true},
	"symbols":    {header: "SYMBOLS", numeric: true},
	"gears":      {header: "GEARS", numeric: true},
	"part_sum":   {header: "PART_SUM", numeric: true},
	"gear_ratio": {header: "GEAR_RATIO", numeric: true},
}

var fieldAliases = map[string]string{
	"path":           "file",
	"sum":            "part_sum",
	"ratio":          "gear_ratio",
	"gear_ratio_sum": "gear_ratio",
}

// canonicalField lower-cases name and resolves aliases. The result may still
// be unknown to the registry.
func canonicalField(name string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if alias, ok := fieldAliases[key]; ok {
		return alias
	}
	return key
}

// ResolveFields parses a comma separated field list. An empty list selects
// the default columns for the queries that ran.
func ResolveFields(raw string, hasParts, hasGears bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		keys := []string{"file", "lines", "parts", "symbols"}
		if hasGears {
			keys = append(keys, "gears")
		}
		if hasParts {
			keys = append(keys, "part_sum")
		}
		if hasGears {
			keys = append(keys, "gear_ratio")
		}
		sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
		for _, key := range keys {
			sel.Fields = append(sel.Fields, newField(key))
		}
		return sel, nil
	}

	parts := strings.Split(raw, ",")
	sel := FieldSelection{Fields: make([]Field, 0, len(parts))}
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
		}
		key := canonicalField(name)
		if _, ok := fieldRegistry[key]; !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		sel.Fields = append(sel.Fields, newField(key))
	}
	return sel, nil
}

func newField(key string) Field {
	meta := fieldRegistry[key]
	return Field{Key: key, Header: meta.header, Numeric: meta.numeric}
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(it engine.Item, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = formatFieldValue(it, f.Key)
	}
	return out
}

// TotalsValues renders the aggregate row. The file column carries the label.
func TotalsValues(t engine.Totals, fields []Field) []string {
	agg := engine.Item{
		File:         fmt.Sprintf("TOTAL (%d)", t.Files),
		Lines:        t.Lines,
		Parts:        t.Parts,
		Symbols:      t.Symbols,
		Gears:        t.Gears,
		PartSum:      t.PartSum,
		GearRatioSum: t.GearRatioSum,
	}
	return RowValues(agg, fields)
}

func formatFieldValue(it engine.Item, key string) string {
	switch key {
	case "file":
		return it.File
	case "lines":
		return strconv.Itoa(it.Lines)
	case "parts":
		return strconv.Itoa(it.Parts)
	case "symbols":
		return strconv.Itoa(it.Symbols)
	case "gears":
		return strconv.Itoa(it.Gears)
	case "part_sum":
		return strconv.FormatUint(it.PartSum, 10)
	case "gear_ratio":
		return strconv.FormatUint(it.GearRatioSum, 10)
	default:
		return ""
	}
}

// numericValue returns the sortable value of a numeric field.
func numericValue(it engine.Item, key string) uint64 {
	switch key {
	case "lines":
		return uint64(it.Lines)
	case "parts":
		return uint64(it.Parts)
	case "symbols":
		return uint64(it.Symbols)
	case "gears":
		return uint64(it.Gears)
	case "part_sum":
		return it.PartSum
	case "gear_ratio":
		return it.GearRatioSum
	default:
		return 0
	}
}
