package delim

import (
	"fmt"
	"strings"
)

// WarningKind classifies an ambiguity between two start patterns.
type WarningKind string

const (
	// WarnShadowed: the later changer can never be entered because an
	// earlier start pattern is equal to or a prefix of its own.
	WarnShadowed WarningKind = "shadowed"
	// WarnOverlap: an earlier, longer start pattern begins with a later,
	// shorter one. Definition order resolves it the intended way.
	WarnOverlap WarningKind = "overlap"
)

// Warning は開始パターン同士の重なりを表します。スキャン結果は定義順で決まります。
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Winner  int         `json:"winner"`
	Loser   int         `json:"loser"`
	Message string      `json:"message"`
}

func (w Warning) String() string { return w.Message }

// Warnings lists every pair of changers whose start patterns overlap.
func (s Set) Warnings() []Warning {
	var out []Warning
	for i := 0; i < len(s.changers); i++ {
		a := s.changers[i].Start
		if a == "" {
			continue
		}
		for j := i + 1; j < len(s.changers); j++ {
			b := s.changers[j].Start
			if b == "" {
				continue
			}
			switch {
			case a == b:
				out = append(out, Warning{
					Kind: WarnShadowed, Winner: i, Loser: j,
					Message: fmt.Sprintf("start %q (#%d) duplicates #%d and is never used", b, j+1, i+1),
				})
			case strings.HasPrefix(b, a):
				out = append(out, Warning{
					Kind: WarnShadowed, Winner: i, Loser: j,
					Message: fmt.Sprintf("start %q (#%d) begins with %q (#%d) defined earlier and is never used", b, j+1, a, i+1),
				})
			case strings.HasPrefix(a, b):
				out = append(out, Warning{
					Kind: WarnOverlap, Winner: i, Loser: j,
					Message: fmt.Sprintf("start %q (#%d) begins with %q (#%d); %q wins where both match", a, i+1, b, j+1, a),
				})
			}
		}
	}
	return out
}
