package config

import (
	"github.com/phyten/gearscan/internal/engine"
)

type EngineConfig struct {
	Query        *string   `yaml:"query" toml:"query" json:"query"`
	Gear         *string   `yaml:"gear" toml:"gear" json:"gear"`
	Arity        *int      `yaml:"arity" toml:"arity" json:"arity"`
	Paths        *[]string `yaml:"path" toml:"path" json:"path"`
	WithParts    *bool     `yaml:"with_parts" toml:"with_parts" json:"with_parts"`
	Jobs         *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
	MaxFileBytes *int      `yaml:"max_file_bytes" toml:"max_file_bytes" json:"max_file_bytes"`
	Output       *string   `yaml:"output" toml:"output" json:"output"`
	Color        *string   `yaml:"color" toml:"color" json:"color"`
	Verbose      *bool     `yaml:"verbose" toml:"verbose" json:"verbose"`
}

type UIConfig struct {
	Fields   *string `yaml:"fields" toml:"fields" json:"fields"`
	Sort     *string `yaml:"sort" toml:"sort" json:"sort"`
	Progress *bool   `yaml:"progress" toml:"progress" json:"progress"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type EngineSettings struct {
	Query        string   `yaml:"query"`
	Gear         string   `yaml:"gear"`
	Arity        int      `yaml:"arity"`
	Paths        []string `yaml:"path,omitempty"`
	WithParts    bool     `yaml:"with_parts"`
	Jobs         int      `yaml:"jobs"`
	MaxFileBytes int      `yaml:"max_file_bytes"`
	Output       string   `yaml:"output"`
	Color        string   `yaml:"color"`
	Verbose      bool     `yaml:"verbose"`
}

type UISettings struct {
	Fields   string `yaml:"fields"`
	Sort     string `yaml:"sort"`
	Progress *bool  `yaml:"progress,omitempty"` // nil: only on a terminal
}

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Query:        opts.Query,
		Gear:         opts.GearGlyph,
		Arity:        opts.GearArity,
		Paths:        cloneStrings(opts.Paths),
		WithParts:    opts.WithParts,
		Jobs:         opts.Jobs,
		MaxFileBytes: opts.MaxFileBytes,
		Output:       "table",
		Color:        "auto",
		Verbose:      false,
	}
}

func (s EngineSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	opts.Query = s.Query
	opts.GearGlyph = s.Gear
	opts.GearArity = s.Arity
	if len(s.Paths) > 0 {
		opts.Paths = cloneStrings(s.Paths)
	}
	opts.WithParts = s.WithParts
	opts.Jobs = s.Jobs
	opts.MaxFileBytes = s.MaxFileBytes
}

func DefaultUISettings() UISettings {
	return UISettings{
		Fields: "",
		Sort:   "",
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
