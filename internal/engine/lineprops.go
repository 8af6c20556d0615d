package engine

import (
	"strings"
	"unicode"

	"github.com/phyten/cmtrans/internal/model"
)

// decorative lists the punctuation that frames comments rather than
// carrying content. "-" is absent: a trailing hyphen marks a wrapped word.
const decorative = `#$%&=^~\|@+*<>?/`

func isFrame(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(decorative, r)
}

// LineProps は再構成の判断に使う 1 行ぶんの性質です。
type LineProps struct {
	// CommentOnly: ソースも文字列リテラルも含まない (空行を含む)。
	CommentOnly bool `json:"comment_only"`
	// HasComment: コメント役割のスパンを 1 つ以上含む。
	HasComment bool `json:"has_comment"`
	// EndsWithHyphen: 装飾を除いたコメント本文がハイフンで終わる。
	EndsWithHyphen bool `json:"ends_with_hyphen"`
	// Projection はコメント本文を空白 1 つで連結し、前後の装飾を除いたものです。
	Projection string `json:"projection"`
}

// NewLineProps derives the predicates of one line from its spans.
func NewLineProps(line model.Line) LineProps {
	var p LineProps
	p.CommentOnly = true
	var comments []string
	for _, s := range line.Spans {
		switch s.Role {
		case model.RoleSource, model.RoleStringLiteral:
			p.CommentOnly = false
		case model.RoleComment:
			p.HasComment = true
			comments = append(comments, s.Text)
		}
	}
	p.Projection = strings.TrimFunc(strings.Join(comments, " "), isFrame)
	p.EndsWithHyphen = strings.HasSuffix(p.Projection, "-")
	return p
}

// DecorativeParts returns the line's spans with every comment span split
// into its leading frame, body and trailing frame.
func DecorativeParts(line model.Line) []model.Span {
	var out []model.Span
	for _, s := range line.Spans {
		if s.Role != model.RoleComment {
			out = append(out, s)
			continue
		}
		body := strings.TrimLeftFunc(s.Text, isFrame)
		lead := s.Text[:len(s.Text)-len(body)]
		trimmed := strings.TrimRightFunc(body, isFrame)
		trail := body[len(trimmed):]
		for _, part := range []model.Span{
			{Text: lead, Role: model.RoleDecorative},
			{Text: trimmed, Role: model.RoleComment},
			{Text: trail, Role: model.RoleDecorative},
		} {
			if part.Text != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// propsTable computes LineProps lazily, once per line.
type propsTable struct {
	lines []model.Line
	props []LineProps
	done  []bool
}

func newPropsTable(lines []model.Line) *propsTable {
	return &propsTable{
		lines: lines,
		props: make([]LineProps, len(lines)),
		done:  make([]bool, len(lines)),
	}
}

func (t *propsTable) at(i int) LineProps {
	if !t.done[i] {
		t.props[i] = NewLineProps(t.lines[i])
		t.done[i] = true
	}
	return t.props[i]
}
