package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/gearscan/internal/engine/opts"
)

// EnvPrefix is prepended to every environment variable read by FromEnv.
const EnvPrefix = "GEARSCAN_"

// FromEnv builds a config layer from GEARSCAN_* variables. Every malformed
// value is reported; the returned error joins them all.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(name string) (string, string) {
		key := EnvPrefix + name
		return key, strings.TrimSpace(getenv(key))
	}
	setString := func(target **string, name string) {
		_, raw := lookup(name)
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, name string) {
		_, raw := lookup(name)
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, name string) {
		key, raw := lookup(name)
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, name string, min, max int) {
		key, raw := lookup(name)
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setString(&cfg.Engine.Query, "QUERY")
	setString(&cfg.Engine.Gear, "GEAR")
	// bounds are enforced by NormalizeAndValidate so every layer reports the same message
	setInt(&cfg.Engine.Arity, "ARITY", 0, math.MaxInt)
	setList(&cfg.Engine.Paths, "PATH")
	setBool(&cfg.Engine.WithParts, "WITH_PARTS")
	setInt(&cfg.Engine.Jobs, "JOBS", 0, math.MaxInt)
	setInt(&cfg.Engine.MaxFileBytes, "MAX_FILE_BYTES", 0, math.MaxInt)
	setString(&cfg.Engine.Output, "OUTPUT")
	setString(&cfg.Engine.Color, "COLOR")
	setBool(&cfg.Engine.Verbose, "VERBOSE")

	setString(&cfg.UI.Fields, "FIELDS")
	setString(&cfg.UI.Sort, "SORT")
	setBool(&cfg.UI.Progress, "PROGRESS")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
