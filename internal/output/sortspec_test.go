package output

import (
	"testing"

	"github.com/phyten/gearscan/internal/engine"
)

func TestParseSortSpecNormalizesKeys(t *testing.T) {
	spec, err := ParseSortSpec("-sum, +ratio ,file,Parts")
	if err != nil {
		t.Fatalf("ParseSortSpec failed: %v", err)
	}
	want := []SortKey{
		{Name: "part_sum", Desc: true},
		{Name: "gear_ratio", Desc: false},
		{Name: "file", Desc: false},
		{Name: "parts", Desc: false},
	}
	if len(spec.Keys) != len(want) {
		t.Fatalf("unexpected key count: got=%v want=%v", spec.Keys, want)
	}
	for i, got := range spec.Keys {
		if got != want[i] {
			t.Fatalf("key %d mismatch: got=%+v want=%+v", i, got, want[i])
		}
	}
}

func TestParseSortSpecErrors(t *testing.T) {
	for _, raw := range []string{"unknown", "file,,parts", "-", "+ "} {
		if _, err := ParseSortSpec(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	if spec, err := ParseSortSpec("  "); err != nil || len(spec.Keys) != 0 {
		t.Fatalf("blank spec should be empty, got %+v %v", spec, err)
	}
}

func TestApplySort(t *testing.T) {
	items := []engine.Item{
		{File: "c.txt", PartSum: 46},
		{File: "a.txt", PartSum: 4361},
		{File: "b.txt", PartSum: 46},
	}
	spec, _ := ParseSortSpec("-part_sum")
	ApplySort(items, spec)
	got := []string{items[0].File, items[1].File, items[2].File}
	want := []string{"a.txt", "b.txt", "c.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	spec, _ = ParseSortSpec("-file")
	ApplySort(items, spec)
	if items[0].File != "c.txt" || items[2].File != "a.txt" {
		t.Fatalf("descending file order wrong: %+v", items)
	}
}
