package termcolor

import "math"

var (
	black = [3]uint8{0, 0, 0}
	white = [3]uint8{255, 255, 255}

	// assumed terminal backgrounds per scheme
	darkBackground  = [3]uint8{30, 30, 30}
	lightBackground = [3]uint8{250, 250, 250}
)

// minContrast is the WCAG ratio for large text.
const minContrast = 3.0

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

// ContrastRatio is the WCAG contrast between two colors, from 1 to 21.
func ContrastRatio(fg, bg [3]uint8) float64 {
	l1 := luminance(fg)
	l2 := luminance(bg)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ensureContrast keeps fg when it is readable on bg, otherwise falls back
// to black or white, whichever reads better.
func ensureContrast(fg, bg [3]uint8, minRatio float64) [3]uint8 {
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	if ContrastRatio(black, bg) >= ContrastRatio(white, bg) {
		return black
	}
	return white
}

func background(s Scheme) [3]uint8 {
	if s == SchemeLight {
		return lightBackground
	}
	return darkBackground
}
