// Package termcolor decides whether to color terminal output and paints
// spans by role.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Mode は --color の値です。
type Mode int

const (
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

func (m Mode) String() string {
	return [...]string{"auto", "always", "never"}[m]
}

func ParseMode(v string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	}
	return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

// EnvMap turns os.Environ() style entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		k, v, _ := strings.Cut(entry, "=")
		env[k] = v
	}
	return env
}

// Enabled resolves m for output going to f. Auto consults, in order:
// TERM=dumb and NO_COLOR and CLICOLOR=0 (off), CLICOLOR_FORCE and
// FORCE_COLOR (on unless "0"), then whether f is a terminal.
func Enabled(m Mode, f *os.File, env map[string]string) bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if strings.EqualFold(strings.TrimSpace(env["TERM"]), "dumb") ||
		strings.TrimSpace(env["NO_COLOR"]) != "" ||
		strings.TrimSpace(env["CLICOLOR"]) == "0" {
		return false
	}
	for _, key := range []string{"CLICOLOR_FORCE", "FORCE_COLOR"} {
		if v := strings.TrimSpace(env[key]); v != "" && v != "0" {
			return true
		}
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// DetectProfile picks the richest palette COLORTERM/TERM advertise.
func DetectProfile(env map[string]string) Profile {
	ct := strings.ToLower(env["COLORTERM"])
	if strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit") || strings.Contains(ct, "24-bit") {
		return ProfileTrueColor
	}
	if strings.Contains(strings.ToLower(env["TERM"]), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}
