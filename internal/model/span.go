package model

import "strings"

// Role はスパンが元のテキスト上で担う役割を表します。
type Role string

const (
	RoleSource        Role = "source"
	RoleTypeChanger   Role = "type_changer"
	RoleComment       Role = "comment"
	RoleStringLiteral Role = "string_literal"
	// RoleDecorative is only produced by line views: the framing part of a
	// comment span (banners, stars, slashes).
	RoleDecorative Role = "decorative"
)

// Span は同じ役割を持つ連続したテキスト片です。
type Span struct {
	Text string `json:"text" msgpack:"text"`
	Role Role   `json:"role" msgpack:"role"`
}

// Line は改行を含まないスパン列で、入力の 1 物理行に対応します。
type Line struct {
	Number int    `json:"number" msgpack:"number"`
	Spans  []Span `json:"spans" msgpack:"spans"`
}

// Text returns the line's text without a trailing newline.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Has reports whether any span on the line carries the role.
func (l Line) Has(role Role) bool {
	for _, s := range l.Spans {
		if s.Role == role {
			return true
		}
	}
	return false
}

// JoinSpans concatenates span texts in order.
func JoinSpans(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
