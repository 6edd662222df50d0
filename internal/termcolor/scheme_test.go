package termcolor

import "testing"

func TestDetectScheme(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want Scheme
	}{
		{"nil", nil, SchemeDark},
		{"bg0", map[string]string{"COLORFGBG": "7;0"}, SchemeDark},
		{"bg7", map[string]string{"COLORFGBG": "15;7"}, SchemeLight},
		{"bg15", map[string]string{"COLORFGBG": "0;default;15"}, SchemeLight},
		{"termLight", map[string]string{"TERM": "xterm-light"}, SchemeLight},
		{"override", map[string]string{"COLORFGBG": "15;7", SchemeEnv: "dark"}, SchemeDark},
		{"overrideLight", map[string]string{SchemeEnv: "LIGHT"}, SchemeLight},
		{"trailingSeparator", map[string]string{"COLORFGBG": "0;15;"}, SchemeLight},
		{"garbage", map[string]string{"COLORFGBG": "x;y"}, SchemeDark},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectScheme(tc.env); got != tc.want {
				t.Fatalf("DetectScheme=%v want %v", got, tc.want)
			}
		})
	}
}
