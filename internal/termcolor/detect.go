package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

var modeNames = map[string]ColorMode{
	"":       ModeAuto,
	"auto":   ModeAuto,
	"always": ModeAlways,
	"force":  ModeAlways,
	"on":     ModeAlways,
	"never":  ModeNever,
	"off":    ModeNever,
	"none":   ModeNever,
}

var modeStrings = [...]string{ModeAuto: "auto", ModeAlways: "always", ModeNever: "never"}

// String returns the canonical name; unknown values print as "auto".
func (m ColorMode) String() string {
	if m < 0 || int(m) >= len(modeStrings) {
		return "auto"
	}
	return modeStrings[m]
}

// ParseMode accepts auto|always|never and the synonyms force/on and off/none.
func ParseMode(v string) (ColorMode, error) {
	if m, ok := modeNames[strings.ToLower(strings.TrimSpace(v))]; ok {
		return m, nil
	}
	return ModeAuto, fmt.Errorf("invalid --color: %s", v)
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvMap converts os.Environ style entries into a lookup map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// Enabled reports whether colour escapes should be written.
//
// ModeAlways と ModeNever は環境に関係なく固定です。ModeAuto の場合は次の順で判定します:
//  1. TERM=dumb は無効
//  2. NO_COLOR (空でない値) は無効
//  3. CLICOLOR=0 は無効
//  4. CLICOLOR_FORCE / FORCE_COLOR が 0 以外なら有効
//  5. それ以外は isTTY に従う
func Enabled(mode ColorMode, env map[string]string, isTTY bool) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	get := func(key string) string { return strings.TrimSpace(env[key]) }
	switch {
	case strings.EqualFold(get("TERM"), "dumb"), get("NO_COLOR") != "", get("CLICOLOR") == "0":
		return false
	case forceColor(get("CLICOLOR_FORCE")), forceColor(get("FORCE_COLOR")):
		return true
	}
	return isTTY
}

// DetectProfile picks the richest palette COLORTERM or TERM advertises.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(env["COLORTERM"])
	for _, marker := range []string{"truecolor", "24bit", "24-bit"} {
		if strings.Contains(colorterm, marker) {
			return ProfileTrueColor
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

// IsTerminal reports whether f is attached to a terminal. nil is never a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	return v != "" && v != "0"
}
