package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phyten/gearscan/internal/engine"
)

type SortKey struct {
	Name string
	Desc bool
}

type SortSpec struct {
	Keys []SortKey
}

// ParseSortSpec parses "key,-key,+key". Keys are field names; a leading '-'
// sorts descending.
func ParseSortSpec(raw string) (SortSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortSpec{}, nil
	}
	parts := strings.Split(raw, ",")
	keys := make([]SortKey, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			return SortSpec{}, fmt.Errorf("invalid sort key: empty segment")
		}
		desc := false
		switch token[0] {
		case '+':
			token = token[1:]
		case '-':
			desc = true
			token = token[1:]
		}
		if strings.TrimSpace(token) == "" {
			return SortSpec{}, fmt.Errorf("invalid sort key: sign without name")
		}
		name := canonicalField(token)
		if _, ok := fieldRegistry[name]; !ok {
			return SortSpec{}, fmt.Errorf("invalid sort key: %s", strings.TrimSpace(token))
		}
		keys = append(keys, SortKey{Name: name, Desc: desc})
	}
	return SortSpec{Keys: keys}, nil
}

// ApplySort orders items by spec, then by file name.
func ApplySort(items []engine.Item, spec SortSpec) {
	keys := append(append([]SortKey{}, spec.Keys...), SortKey{Name: "file"})
	sort.SliceStable(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		for _, key := range keys {
			if key.Name == "file" {
				if a.File != b.File {
					return (a.File < b.File) != key.Desc
				}
				continue
			}
			av, bv := numericValue(*a, key.Name), numericValue(*b, key.Name)
			if av != bv {
				return (av < bv) != key.Desc
			}
		}
		return false
	})
}
