package engine

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/model"
)

// pad matches a run of whitespace that never crosses a line break.
const pad = `[\t\v\f\r\p{Zs}\x{2028}\x{2029}\x{feff}]*`

// scanState は 1 回の Classify 呼び出しの間だけ存在する走査位置とモードです。
// active が -1 のときはソース中を走査しています。
type scanState struct {
	pos    int
	active int
}

const inSource = -1

type scanner struct {
	set    delim.Set
	starts *regexp.Regexp
	// groups[k] is the changer index captured by submatch k+1.
	groups []int
	// ends[i] is nil when changer i has no end pattern.
	ends []*regexp.Regexp
}

func newScanner(set delim.Set) *scanner {
	sc := &scanner{set: set, ends: make([]*regexp.Regexp, set.Len())}
	var alts []string
	for i := 0; i < set.Len(); i++ {
		tc := set.At(i)
		if tc.Start != "" {
			alts = append(alts, "("+regexp.QuoteMeta(tc.Start)+")")
			sc.groups = append(sc.groups, i)
		}
		if tc.End != "" {
			sc.ends[i] = regexp.MustCompile(pad + regexp.QuoteMeta(tc.End) + pad)
		}
	}
	if len(alts) > 0 {
		sc.starts = regexp.MustCompile(pad + "(?:" + strings.Join(alts, "|") + ")" + pad)
	}
	return sc
}

// Classify は text を役割ごとのスパン列に分割します。
//
// 開始パターンは最も左の一致が優先され、同じ位置では set の定義順が優先されます。
// 終了パターンが見つからない場合は残り全体がその TypeChanger の役割になります。
// 返されるスパンを連結すると text と完全に一致します。
func Classify(text string, set delim.Set) ([]model.Span, error) {
	return newScanner(set).classify(text)
}

func (sc *scanner) classify(text string) ([]model.Span, error) {
	var spans []model.Span
	emit := func(s string, role model.Role) {
		if s != "" {
			spans = append(spans, model.Span{Text: s, Role: role})
		}
	}

	st := scanState{active: inSource}
	for st.pos < len(text) {
		rest := text[st.pos:]

		if st.active == inSource {
			if sc.starts == nil {
				emit(rest, model.RoleSource)
				break
			}
			loc := sc.starts.FindStringSubmatchIndex(rest)
			if loc == nil {
				emit(rest, model.RoleSource)
				break
			}
			idx := sc.startedBy(loc)
			if idx == inSource {
				return nil, errors.Wrapf(ErrUnreachableState, "start match %q at byte %d", rest[loc[0]:loc[1]], st.pos+loc[0])
			}
			emit(rest[:loc[0]], model.RoleSource)
			emit(rest[loc[0]:loc[1]], model.RoleTypeChanger)
			st = scanState{pos: st.pos + loc[1], active: idx}
			continue
		}

		tc := sc.set.At(st.active)
		var loc []int
		if end := sc.ends[st.active]; end != nil {
			loc = end.FindStringIndex(rest)
		}
		if loc == nil {
			// unterminated: the buffer ends inside the changer
			emit(rest, tc.Role)
			break
		}
		emit(rest[:loc[0]], tc.Role)
		emit(rest[loc[0]:loc[1]], model.RoleTypeChanger)
		st = scanState{pos: st.pos + loc[1], active: inSource}
	}
	return spans, nil
}

// startedBy maps the participating capture group back to its changer.
func (sc *scanner) startedBy(loc []int) int {
	for k, idx := range sc.groups {
		if loc[2*(k+1)] >= 0 {
			return idx
		}
	}
	return inSource
}
