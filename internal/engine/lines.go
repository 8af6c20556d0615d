package engine

import (
	"strings"

	"github.com/phyten/cmtrans/internal/model"
)

// SplitLines は スパン列を改行位置で物理行ごとに分割します。
// 改行文字そのものは行境界となり、どの行のスパンにも含まれません。
// 行数は常に 1 + 改行数です。
func SplitLines(spans []model.Span) []model.Line {
	lines := []model.Line{{Number: 1}}
	for _, s := range spans {
		for i, frag := range strings.Split(s.Text, "\n") {
			if i > 0 {
				lines = append(lines, model.Line{Number: len(lines) + 1})
			}
			if frag == "" {
				continue
			}
			cur := &lines[len(lines)-1]
			cur.Spans = append(cur.Spans, model.Span{Text: frag, Role: s.Role})
		}
	}
	return lines
}

// JoinLines is the inverse of SplitLines on the text level.
func JoinLines(lines []model.Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text()
	}
	return strings.Join(parts, "\n")
}
