package termcolor

import "math"

// HeaderStyle is used for table headers. Light terminals get blue, dark ones cyan.
func HeaderStyle(scheme Scheme) Style {
	fg := Basic(6)
	if scheme == SchemeLight {
		fg = Basic(4)
	}
	return Style{Bold: true, Underline: true, FG: fg}
}

// TotalsStyle marks the aggregated row.
func TotalsStyle() Style {
	return Style{Bold: true}
}

// ErrorStyle marks per-file failures.
func ErrorStyle() Style {
	return Style{FG: Basic(1)}
}

// GearStyle highlights gear glyphs and gear ratios in part listings.
func GearStyle() Style {
	return Style{Bold: true, FG: Basic(3)}
}

// MagnitudeStyle colours v on a green to red gradient relative to max.
// Zero values are dimmed.
func MagnitudeStyle(v, max uint64, profile Profile, scheme Scheme) Style {
	if v == 0 {
		return Style{Dim: true}
	}
	t := 1.0
	if max > 0 && v < max {
		t = float64(v) / float64(max)
	}
	switch profile {
	case ProfileTrueColor:
		return Style{FG: RGB(readable(gradientRGB(t), background(scheme), 3.0))}
	case ProfileANSI256:
		return Style{FG: Indexed(rgbToANSI256(gradientRGB(t)))}
	default:
		return Style{FG: Basic(bucketColor(t))}
	}
}

func gradientRGB(t float64) [3]uint8 {
	switch {
	case t <= 0:
		return [3]uint8{0, 255, 0}
	case t >= 1:
		return [3]uint8{255, 0, 0}
	case t < 0.5:
		return [3]uint8{uint8(math.Round(255 * t / 0.5)), 255, 0}
	default:
		return [3]uint8{255, uint8(math.Round(255 * (1 - (t-0.5)/0.5))), 0}
	}
}

func bucketColor(t float64) uint8 {
	switch {
	case t <= 0.25:
		return 2
	case t <= 0.5:
		return 3
	case t <= 0.75:
		return 5
	default:
		return 1
	}
}

// rgbToANSI256 maps onto the 6x6x6 cube, or the gray ramp for neutral colours.
func rgbToANSI256(rgb [3]uint8) uint8 {
	r, g, b := int(rgb[0]), int(rgb[1]), int(rgb[2])
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		}
		return uint8(232 + (r-8)*24/247)
	}
	cube := func(v int) int { return v * 5 / 255 }
	return uint8(16 + 36*cube(r) + 6*cube(g) + cube(b))
}
