package termcolor

import (
	"fmt"
	"strings"
)

// Style is one SGR combination. Only the richest foreground set is used.
type Style struct {
	Bold      bool
	Dim       bool
	Underline bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	var codes []string
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	switch {
	case s.FGTrue != nil:
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d", s.FGTrue[0], s.FGTrue[1], s.FGTrue[2]))
	case s.FG256 != nil:
		codes = append(codes, fmt.Sprintf("38;5;%d", *s.FG256))
	case s.FGBasic != nil:
		codes = append(codes, fmt.Sprintf("3%d", *s.FGBasic))
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}
