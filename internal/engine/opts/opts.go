package opts

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
	"github.com/phyten/gearscan/internal/scan"
)

const (
	maxJobs  = 64
	maxArity = 8
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Defaults returns the shared baseline options for the CLI and config layers.
func Defaults() engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Query:        "both",
		GearGlyph:    "*",
		GearArity:    2,
		Jobs:         jobs,
		MaxFileBytes: 0,
		WithParts:    false,
		Progress:     false,
	}
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
func NormalizeAndValidate(o *engine.Options) error {
	o.Query = strings.ToLower(strings.TrimSpace(o.Query))
	switch o.Query {
	case "", "both":
		o.Query = "both"
	case "parts", "gears":
	case "part", "sum":
		o.Query = "parts"
	case "gear", "ratio":
		o.Query = "gears"
	default:
		return fmt.Errorf("invalid --query: %s", o.Query)
	}

	if o.GearGlyph == "" {
		o.GearGlyph = "*"
	}
	if err := ValidateGlyph(o.GearGlyph); err != nil {
		return err
	}

	if o.GearArity == 0 {
		o.GearArity = 2
	}
	if o.GearArity < 1 || o.GearArity > maxArity {
		return fmt.Errorf("arity must be between 1 and %d", maxArity)
	}

	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}

	if o.MaxFileBytes < 0 {
		return fmt.Errorf("max_file_bytes must be >= 0")
	}

	o.Paths = trimSlice(o.Paths)
	return nil
}

// ValidateGlyph checks that glyph could be produced as a symbol token.
func ValidateGlyph(glyph string) error {
	if len(glyph) != 1 {
		return fmt.Errorf("invalid --gear: %q must be a single character", glyph)
	}
	c := glyph[0]
	if scan.IsDigit(c) || scan.IsSpace(c) || c == '.' {
		return fmt.Errorf("invalid --gear: %q is not a symbol", glyph)
	}
	return nil
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "table", nil
	case "table", "tsv", "json", "ndjson", "csv", "markdown":
		return v, nil
	case "md":
		return "markdown", nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func trimSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := values[:0]
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
