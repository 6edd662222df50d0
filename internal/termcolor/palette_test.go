package termcolor

import "testing"

func TestMagnitudeStyleBasic8Buckets(t *testing.T) {
	cases := []struct {
		v, max uint64
		want   uint8
	}{
		{1, 100, 2},
		{40, 100, 3},
		{70, 100, 5},
		{100, 100, 1},
		{500, 100, 1},
		{5, 0, 1},
	}
	for _, tc := range cases {
		s := MagnitudeStyle(tc.v, tc.max, ProfileBasic8, SchemeDark)
		if s.FG != Basic(tc.want) {
			t.Fatalf("MagnitudeStyle(%d,%d) fg=%+v want basic %d", tc.v, tc.max, s.FG, tc.want)
		}
	}
}

func TestMagnitudeStyleZeroIsDim(t *testing.T) {
	s := MagnitudeStyle(0, 100, ProfileTrueColor, SchemeDark)
	if !s.Dim || !s.FG.IsZero() {
		t.Fatalf("zero should be dim without colour, got %+v", s)
	}
}

func TestMagnitudeStyleProfiles(t *testing.T) {
	s := MagnitudeStyle(100, 100, ProfileANSI256, SchemeDark)
	if s.FG != Indexed(196) {
		t.Fatalf("max value should map to 196 (red), got %+v", s.FG)
	}
	s = MagnitudeStyle(100, 100, ProfileTrueColor, SchemeDark)
	if s.FG != RGB([3]uint8{255, 0, 0}) {
		t.Fatalf("max value on dark background should stay red, got %+v", s.FG)
	}
	s = MagnitudeStyle(50, 100, ProfileTrueColor, SchemeLight)
	if s.FG.kind != colorRGB {
		t.Fatal("expected truecolor style")
	}
	if ratio := contrastRatio(s.FG.rgb, white); ratio < 3.0 {
		t.Fatalf("light scheme colour contrast %.2f < 3.0", ratio)
	}
}

func TestGradientRGB(t *testing.T) {
	cases := []struct {
		t    float64
		want [3]uint8
	}{
		{-1, [3]uint8{0, 255, 0}},
		{0.25, [3]uint8{128, 255, 0}},
		{0.5, [3]uint8{255, 255, 0}},
		{0.75, [3]uint8{255, 128, 0}},
		{2, [3]uint8{255, 0, 0}},
	}
	for _, tc := range cases {
		if got := gradientRGB(tc.t); got != tc.want {
			t.Fatalf("gradientRGB(%v)=%v want %v", tc.t, got, tc.want)
		}
	}
}

func TestRGBToANSI256Grays(t *testing.T) {
	if got := rgbToANSI256([3]uint8{0, 0, 0}); got != 16 {
		t.Fatalf("black should map to 16, got %d", got)
	}
	if got := rgbToANSI256([3]uint8{255, 255, 255}); got != 231 {
		t.Fatalf("white should map to 231, got %d", got)
	}
	if got := rgbToANSI256([3]uint8{128, 128, 128}); got < 232 || got > 255 {
		t.Fatalf("gray should land in the grayscale ramp, got %d", got)
	}
}

func TestHeaderStyleFollowsScheme(t *testing.T) {
	dark := HeaderStyle(SchemeDark)
	light := HeaderStyle(SchemeLight)
	if dark.FG != Basic(6) || light.FG != Basic(4) {
		t.Fatalf("unexpected header colours dark=%+v light=%+v", dark.FG, light.FG)
	}
	if !dark.Bold || !dark.Underline {
		t.Fatal("header should be bold and underlined")
	}
}
