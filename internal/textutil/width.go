package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CSI and OSC escape sequences
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the terminal cell width of s, counting each
// grapheme cluster once.
func VisibleWidth(s string) int {
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateByWidth cuts s to at most w cells without splitting a grapheme.
// When s is cut, ellipsis replaces the tail if it fits.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if w <= 0 || s == "" {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	ellW := runewidth.StringWidth(ellipsis)
	if ellW > w {
		ellipsis, ellW = "", 0
	}
	budget := w - ellW

	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		segW := runewidth.StringWidth(g.Str())
		if used+segW > budget {
			break
		}
		b.WriteString(g.Str())
		used += segW
	}
	return b.String() + ellipsis
}

// Visible rewrites control characters so a span fits on one table row:
// newlines become "⏎" and tabs "→".
func Visible(s string) string {
	return visibleReplacer.Replace(s)
}

var visibleReplacer = strings.NewReplacer("\r\n", "⏎", "\n", "⏎", "\r", "␍", "\t", "→", "\v", "␋", "\f", "␌")

// Preview is Visible followed by TruncateByWidth with "…".
func Preview(s string, w int) string {
	return TruncateByWidth(Visible(s), w, "…")
}

// PadRight pads s on the right so that its visible width is w.
func PadRight(s string, w int) string {
	if pad := w - VisibleWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
