package config

import (
	"strings"

	engineopts "github.com/phyten/gearscan/internal/engine/opts"
	"github.com/phyten/gearscan/internal/termcolor"
)

// NormalizeEngine canonicalises the output and color values of merged settings.
func NormalizeEngine(values EngineSettings) (EngineSettings, error) {
	out, err := engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	values.Output = out
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	values.Query = strings.ToLower(strings.TrimSpace(values.Query))
	return values, nil
}

func NormalizeUI(values UISettings) UISettings {
	values.Fields = strings.TrimSpace(values.Fields)
	values.Sort = strings.TrimSpace(values.Sort)
	return values
}
