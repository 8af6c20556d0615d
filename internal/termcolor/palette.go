package termcolor

import (
	"os"

	"github.com/phyten/cmtrans/internal/model"
)

// Palette paints spans by role. The zero value paints nothing.
type Palette struct {
	Enabled bool
	Profile Profile
	Scheme  Scheme
}

// NewPalette resolves mode for f using env.
func NewPalette(mode Mode, f *os.File, env map[string]string) Palette {
	return Palette{
		Enabled: Enabled(mode, f, env),
		Profile: DetectProfile(env),
		Scheme:  DetectScheme(env),
	}
}

// Paint colors text as a span of role r.
func (p Palette) Paint(r model.Role, text string) string {
	return Apply(RoleStyle(r, p.Profile, p.Scheme), text, p.Enabled)
}

// Header styles table headings.
func (p Palette) Header(text string) string {
	return Apply(Style{Bold: true, Underline: true}, text, p.Enabled)
}

type roleColor struct {
	basic int
	dark  [3]uint8
	light [3]uint8
}

// source text is left uncolored
var roleColors = map[model.Role]roleColor{
	model.RoleComment:       {basic: 2, dark: [3]uint8{126, 200, 110}, light: [3]uint8{30, 120, 40}},
	model.RoleStringLiteral: {basic: 3, dark: [3]uint8{230, 190, 90}, light: [3]uint8{150, 100, 0}},
	model.RoleTypeChanger:   {basic: 6, dark: [3]uint8{110, 180, 220}, light: [3]uint8{20, 100, 150}},
	model.RoleDecorative:    {basic: 5, dark: [3]uint8{170, 140, 200}, light: [3]uint8{120, 70, 150}},
}

// RoleStyle returns the style for r under the given profile and scheme.
func RoleStyle(r model.Role, profile Profile, scheme Scheme) Style {
	c, ok := roleColors[r]
	if !ok {
		return Style{}
	}
	rgb := c.dark
	if scheme == SchemeLight {
		rgb = c.light
	}
	rgb = ensureContrast(rgb, background(scheme), minContrast)
	s := Style{Dim: r == model.RoleTypeChanger || r == model.RoleDecorative}
	switch profile {
	case ProfileTrueColor:
		s.FGTrue = &rgb
	case ProfileANSI256:
		idx := rgbToANSI256(rgb)
		s.FG256 = &idx
	default:
		basic := c.basic
		s.FGBasic = &basic
	}
	return s
}

func rgbToANSI256(c [3]uint8) int {
	r, g, b := int(c[0]), int(c[1]), int(c[2])
	if r == g && g == b {
		switch {
		case r < 8:
			return 16
		case r > 248:
			return 231
		}
		return 232 + (r-8)*24/247
	}
	return 16 + 36*(r*5/255) + 6*(g*5/255) + b*5/255
}
