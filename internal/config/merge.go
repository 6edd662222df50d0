package config

import "strings"

// MergeEngine applies layers over base in order; later layers win.
func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Query = overrideTrimmed(out.Query, layer.Query)
		out.Gear = overrideTrimmed(out.Gear, layer.Gear)
		out.Arity = override(out.Arity, layer.Arity)
		out.Paths = overrideList(out.Paths, layer.Paths)
		out.WithParts = override(out.WithParts, layer.WithParts)
		out.Jobs = override(out.Jobs, layer.Jobs)
		out.MaxFileBytes = override(out.MaxFileBytes, layer.MaxFileBytes)
		out.Output = overrideTrimmed(out.Output, layer.Output)
		out.Color = overrideTrimmed(out.Color, layer.Color)
		out.Verbose = override(out.Verbose, layer.Verbose)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Fields = overrideTrimmed(out.Fields, layer.Fields)
		out.Sort = overrideTrimmed(out.Sort, layer.Sort)
		out.Progress = overrideOptional(out.Progress, layer.Progress)
	}
	return out
}
