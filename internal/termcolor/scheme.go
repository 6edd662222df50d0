package termcolor

import (
	"strconv"
	"strings"
)

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

// SchemeEnv overrides background detection with "light" or "dark".
const SchemeEnv = "GEARSCAN_SCHEME"

// DetectScheme guesses the terminal background from the environment.
// Dark is the fallback.
func DetectScheme(env map[string]string) Scheme {
	switch strings.ToLower(strings.TrimSpace(env[SchemeEnv])) {
	case "light":
		return SchemeLight
	case "dark":
		return SchemeDark
	}
	if bg, ok := colorFGBGBackground(env["COLORFGBG"]); ok {
		// 7 is white and 8-15 the bright colours
		if bg >= 7 {
			return SchemeLight
		}
		return SchemeDark
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}

// colorFGBGBackground returns the last numeric field of a COLORFGBG value
// ("15;0" or "15;default;0").
func colorFGBGBackground(raw string) (int, bool) {
	fields := strings.Split(raw, ";")
	for i := len(fields) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err == nil && n >= 0 {
			return n, true
		}
	}
	return 0, false
}
