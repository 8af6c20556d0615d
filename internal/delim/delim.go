// Package delim describes the markers that switch text between source,
// comment and string-literal roles.
package delim

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/phyten/cmtrans/internal/model"
)

// Newline terminates every line comment.
const Newline = "\n"

var (
	ErrEmptyStart = errors.New("delimiter start pattern is empty")
	ErrEmptyEnd   = errors.New("delimiter end pattern is empty")
	ErrBadRole    = errors.New("delimiter role must be comment or string_literal")
)

// TypeChanger は開始・終了マーカーと、その間のテキストに与える役割の組です。
type TypeChanger struct {
	Start string     `json:"start" yaml:"start" toml:"start" msgpack:"start"`
	End   string     `json:"end" yaml:"end" toml:"end" msgpack:"end"`
	Role  model.Role `json:"role" yaml:"role" toml:"role" msgpack:"role"`
}

// LineComment returns a comment changer closed by the end of the line.
func LineComment(marker string) TypeChanger {
	return TypeChanger{Start: marker, End: Newline, Role: model.RoleComment}
}

// BlockComment returns a comment changer with an explicit end marker.
func BlockComment(start, end string) TypeChanger {
	return TypeChanger{Start: start, End: end, Role: model.RoleComment}
}

// StringLiteral returns a string-literal changer.
func StringLiteral(start, end string) TypeChanger {
	return TypeChanger{Start: start, End: end, Role: model.RoleStringLiteral}
}

// IsLineComment reports whether the changer is closed by a newline.
func (tc TypeChanger) IsLineComment() bool {
	return tc.End == Newline
}

func (tc TypeChanger) String() string {
	if tc.IsLineComment() {
		return fmt.Sprintf("%s %q", tc.Role, tc.Start)
	}
	return fmt.Sprintf("%s %q…%q", tc.Role, tc.Start, tc.End)
}

func (tc TypeChanger) validate() error {
	if tc.Start == "" {
		return ErrEmptyStart
	}
	if tc.End == "" {
		return errors.Wrapf(ErrEmptyEnd, "start %q", tc.Start)
	}
	switch tc.Role {
	case model.RoleComment, model.RoleStringLiteral:
		return nil
	}
	return errors.Wrapf(ErrBadRole, "start %q has role %q", tc.Start, tc.Role)
}

// Set は優先順位付きの TypeChanger 列です。先に定義されたものほど優先されます。
// 構築後は変更されません。
type Set struct {
	changers []TypeChanger
}

// New validates and freezes the changers in the given order.
func New(changers ...TypeChanger) (Set, error) {
	for i, tc := range changers {
		if err := tc.validate(); err != nil {
			return Set{}, errors.Wrapf(err, "delimiter #%d", i+1)
		}
	}
	return Set{changers: append([]TypeChanger(nil), changers...)}, nil
}

// MustNew is New for static tables.
func MustNew(changers ...TypeChanger) Set {
	s, err := New(changers...)
	if err != nil {
		panic(err)
	}
	return s
}

// Unchecked builds a set without validation. A changer with an empty start
// is never entered and one with an empty end is never left.
func Unchecked(changers ...TypeChanger) Set {
	return Set{changers: append([]TypeChanger(nil), changers...)}
}

// Len returns the number of changers.
func (s Set) Len() int { return len(s.changers) }

// At returns the i-th changer in priority order.
func (s Set) At(i int) TypeChanger { return s.changers[i] }

// Changers returns a copy of the changers in priority order.
func (s Set) Changers() []TypeChanger {
	return append([]TypeChanger(nil), s.changers...)
}

// Filter returns the changers that carry role, keeping their order.
func (s Set) Filter(role model.Role) []TypeChanger {
	var out []TypeChanger
	for _, tc := range s.changers {
		if tc.Role == role {
			out = append(out, tc)
		}
	}
	return out
}

// Pair is a start/end marker pair as written in configuration.
type Pair struct {
	Start string `json:"start" yaml:"start" toml:"start"`
	End   string `json:"end" yaml:"end" toml:"end"`
}

func (p Pair) String() string { return p.Start + " " + p.End }

// ParsePair reads "START END" (whitespace separated).
func ParsePair(raw string) (Pair, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Pair{}, errors.Errorf("invalid delimiter pair %q: want \"START END\"", raw)
	}
	return Pair{Start: fields[0], End: fields[1]}, nil
}

// ParsePairs parses every entry with ParsePair.
func ParsePairs(raw []string) ([]Pair, error) {
	out := make([]Pair, 0, len(raw))
	for _, r := range raw {
		p, err := ParsePair(r)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Build assembles a set in the canonical order: line comments, then block
// comments, then string literals, each in the order given.
func Build(lineComments []string, blockComments, stringLiterals []Pair) (Set, error) {
	changers := make([]TypeChanger, 0, len(lineComments)+len(blockComments)+len(stringLiterals))
	for _, m := range lineComments {
		changers = append(changers, LineComment(m))
	}
	for _, p := range blockComments {
		changers = append(changers, BlockComment(p.Start, p.End))
	}
	for _, p := range stringLiterals {
		changers = append(changers, StringLiteral(p.Start, p.End))
	}
	return New(changers...)
}
