package termcolor

import (
	"os"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{"never", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"off", ModeNever, false},
		{"invalid", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
		if round, _ := ParseMode(got.String()); round != got {
			t.Fatalf("String() of %v does not parse back", got)
		}
	}
}

func TestEnabledEnvironmentOverrides(t *testing.T) {
	cases := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"ttyWithoutEnv", nil, true, true},
		{"pipeWithoutEnv", nil, false, false},
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}, true, false},
		{"CLICOLOR=0", map[string]string{"CLICOLOR": "0"}, true, false},
		{"CLICOLOR_FORCE", map[string]string{"CLICOLOR_FORCE": "1"}, false, true},
		{"FORCE_COLOR=2", map[string]string{"FORCE_COLOR": "2"}, false, true},
		{"FORCE_COLOR=0", map[string]string{"FORCE_COLOR": "0"}, false, false},
		{"NO_COLOR beats force", map[string]string{"NO_COLOR": "1", "FORCE_COLOR": "1"}, false, false},
		{"TERM=dumb", map[string]string{"TERM": "dumb"}, true, false},
		{"TERM=dumb beats force", map[string]string{"TERM": "dumb", "CLICOLOR_FORCE": "1"}, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Enabled(ModeAuto, tc.env, tc.isTTY); got != tc.want {
				t.Fatalf("Enabled(auto)=%v want %v", got, tc.want)
			}
		})
	}
}

func TestEnabledFixedModes(t *testing.T) {
	env := map[string]string{"NO_COLOR": "1"}
	if !Enabled(ModeAlways, env, false) {
		t.Fatal("ModeAlways should ignore NO_COLOR and tty")
	}
	if Enabled(ModeNever, map[string]string{"FORCE_COLOR": "1"}, true) {
		t.Fatal("ModeNever should be disabled")
	}
}

func TestIsTerminal(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()
	if IsTerminal(w) {
		t.Fatal("pipe should not be a terminal")
	}
	if IsTerminal(nil) {
		t.Fatal("nil file should not be a terminal")
	}
}

func TestDetectProfile(t *testing.T) {
	env := map[string]string{"COLORTERM": "truecolor"}
	if got := DetectProfile(env); got != ProfileTrueColor {
		t.Fatalf("COLORTERM truecolor should yield TrueColor, got %v", got)
	}
	env = map[string]string{"TERM": "xterm-256color"}
	if got := DetectProfile(env); got != ProfileANSI256 {
		t.Fatalf("TERM 256color should yield ANSI256, got %v", got)
	}
	if got := DetectProfile(nil); got != ProfileBasic8 {
		t.Fatalf("default profile should be Basic8, got %v", got)
	}
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"FOO=bar", "BAZ", "QUX=1=2", ""})
	if env["FOO"] != "bar" {
		t.Fatalf("expected FOO=bar, got %q", env["FOO"])
	}
	if v, ok := env["BAZ"]; !ok || v != "" {
		t.Fatalf("expected BAZ empty, got %q", v)
	}
	if env["QUX"] != "1=2" {
		t.Fatalf("expected QUX=1=2, got %q", env["QUX"])
	}
	if len(env) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(env))
	}
}
