package termcolor

import (
	"strconv"
	"strings"
)

type Scheme int

const (
	SchemeDark Scheme = iota
	SchemeLight
)

// DetectScheme reads the background from COLORFGBG ("fg;bg", bg >= 7 is
// light) and falls back to a "light" TERM name. Dark is the default.
func DetectScheme(env map[string]string) Scheme {
	if raw := strings.TrimSpace(env["COLORFGBG"]); raw != "" {
		parts := strings.Split(raw, ";")
		bg := strings.TrimSpace(parts[len(parts)-1])
		if bg == "" && len(parts) >= 2 {
			bg = strings.TrimSpace(parts[len(parts)-2])
		}
		if n, err := strconv.Atoi(bg); err == nil && n >= 0 {
			if n >= 7 {
				return SchemeLight
			}
			return SchemeDark
		}
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "light") {
		return SchemeLight
	}
	return SchemeDark
}
