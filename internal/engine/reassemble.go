package engine

import (
	"strings"

	"github.com/phyten/cmtrans/internal/model"
)

// Join は隣接する 2 行の間に入る区切りの種類です。
type Join int

const (
	// JoinNewline forces a paragraph break.
	JoinNewline Join = iota
	// JoinSpace soft-wraps two comment-only lines with one space.
	JoinSpace
	// JoinHyphen drops the trailing hyphen of the first line and
	// concatenates directly.
	JoinHyphen
)

func (j Join) String() string {
	switch j {
	case JoinSpace:
		return "space"
	case JoinHyphen:
		return "hyphen"
	}
	return "newline"
}

// Decide returns the join between line a and the line that follows it.
func Decide(a, b LineProps) Join {
	if !a.HasComment || !b.HasComment {
		return JoinNewline
	}
	if a.CommentOnly && b.CommentOnly {
		if a.EndsWithHyphen {
			return JoinHyphen
		}
		return JoinSpace
	}
	return JoinNewline
}

// Reassemble はコメントを段落ごとに連結した文書を返します。
//
// コメント本文が空の行は出力されませんが、その行をまたぐ改行判定の数だけ
// 改行を出力するため、段落間の空行は保持されます。最初の本文より前と
// 最後の本文より後の行は何も出力しません。
func Reassemble(lines []model.Line) string {
	return reassemble(newPropsTable(lines))
}

func reassemble(t *propsTable) string {
	var b strings.Builder
	pending := ""
	last := -1
	breaks := 0
	var prevJoin Join
	for i := range t.lines {
		cur := t.at(i)
		if i > 0 {
			prevJoin = Decide(t.at(i-1), cur)
			if last >= 0 && prevJoin == JoinNewline {
				breaks++
			}
		}
		if cur.Projection == "" {
			continue
		}
		if last >= 0 {
			switch {
			case breaks > 0:
				b.WriteString(pending)
				b.WriteString(strings.Repeat("\n", breaks))
			case last == i-1 && prevJoin == JoinHyphen:
				b.WriteString(strings.TrimSuffix(pending, "-"))
			default:
				b.WriteString(pending)
				b.WriteByte(' ')
			}
		}
		pending = cur.Projection
		last = i
		breaks = 0
	}
	b.WriteString(pending)
	return b.String()
}
