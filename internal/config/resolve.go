package config

import "strings"

// override returns *v when the layer sets the value, cur otherwise.
func override[T any](cur T, v *T) T {
	if v == nil {
		return cur
	}
	return *v
}

// overrideOptional keeps a tri-state setting unset until some layer sets it.
func overrideOptional[T any](cur, v *T) *T {
	if v == nil {
		return cur
	}
	c := *v
	return &c
}

func overrideTrimmed(cur string, v *string) string {
	return strings.TrimSpace(override(cur, v))
}

// overrideList copies so merged settings never alias a layer's slice. An
// explicitly empty list clears earlier values.
func overrideList(cur []string, v *[]string) []string {
	if v == nil {
		return cur
	}
	if len(*v) == 0 {
		return []string{}
	}
	return cloneStrings(*v)
}
