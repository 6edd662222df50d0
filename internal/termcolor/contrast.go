package termcolor

import "math"

var (
	black = [3]uint8{0, 0, 0}
	white = [3]uint8{255, 255, 255}
)

// background approximates the terminal background for contrast checks.
func background(scheme Scheme) [3]uint8 {
	if scheme == SchemeLight {
		return white
	}
	return black
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func luminance(rgb [3]uint8) float64 {
	r := srgbToLinear(float64(rgb[0]) / 255.0)
	g := srgbToLinear(float64(rgb[1]) / 255.0)
	b := srgbToLinear(float64(rgb[2]) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// contrastRatio is the WCAG 2 contrast ratio, always >= 1.
func contrastRatio(fg, bg [3]uint8) float64 {
	l1, l2 := luminance(fg), luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// readable returns fg when it meets minRatio against bg, otherwise whichever
// of black and white contrasts better.
func readable(fg, bg [3]uint8, minRatio float64) [3]uint8 {
	if minRatio <= 0 {
		minRatio = 4.5
	}
	if contrastRatio(fg, bg) >= minRatio {
		return fg
	}
	if contrastRatio(black, bg) >= contrastRatio(white, bg) {
		return black
	}
	return white
}
