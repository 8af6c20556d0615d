// Package output renders extraction results in the CLI and API formats.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/lang"
	"github.com/phyten/cmtrans/internal/model"
	"github.com/phyten/cmtrans/internal/termcolor"
)

// rows is a rendered view: header plus string cells. roleCol, when >= 0,
// names the column holding a model.Role to paint in text output.
type rows struct {
	headers []string
	cells   [][]string
	roleCol int
}

// WriteResult renders the result of an extract run.
func WriteResult(w io.Writer, format string, res *engine.Result) error {
	switch format {
	case "", "text":
		return writeDocuments(w, res.Items)
	case "json":
		return writeJSON(w, res)
	case "ndjson":
		return WriteNDJSON(w, res.Items)
	case "msgpack":
		return WriteMsgpack(w, res)
	case "csv":
		return WriteCSV(w, itemRows(res.Items))
	case "markdown":
		return WriteMarkdownTable(w, itemRows(res.Items))
	}
	return unknownFormat(format)
}

// WriteSpans renders classified spans, one row per span.
func WriteSpans(w io.Writer, format string, spans []model.Span, pal termcolor.Palette) error {
	return writeView(w, format, spans, spanRows(spans), pal)
}

// WriteLines renders the per-line predicates.
func WriteLines(w io.Writer, format string, lines []engine.LineResult, pal termcolor.Palette) error {
	return writeView(w, format, lines, lineRows(lines), pal)
}

// LangView is the serialized form of a preset.
type LangView struct {
	Name       string              `json:"name"`
	Keys       []string            `json:"keys,omitempty"`
	Delimiters []delim.TypeChanger `json:"delimiters"`
}

// WriteLangs renders the language list.
func WriteLangs(w io.Writer, format string, langs []lang.Language, pal termcolor.Palette) error {
	views := make([]LangView, len(langs))
	for i, l := range langs {
		views[i] = LangView{Name: l.Name, Keys: l.Keys, Delimiters: l.Set.Changers()}
	}
	return writeView(w, format, views, langRows(langs), pal)
}

func writeView[T any](w io.Writer, format string, values []T, r rows, pal termcolor.Palette) error {
	switch format {
	case "", "text":
		return writeTable(w, r, pal)
	case "json":
		if values == nil {
			values = []T{}
		}
		return writeJSON(w, values)
	case "ndjson":
		return WriteNDJSON(w, values)
	case "msgpack":
		return WriteMsgpack(w, values)
	case "csv":
		return WriteCSV(w, r)
	case "markdown":
		return WriteMarkdownTable(w, r)
	}
	return unknownFormat(format)
}

func unknownFormat(format string) error {
	return fmt.Errorf("unknown output format: %s", format)
}

func itemRows(items []engine.Item) rows {
	r := rows{headers: []string{"name", "lang", "document"}, roleCol: -1}
	for _, it := range items {
		r.cells = append(r.cells, []string{it.Name, it.Lang, it.Document})
	}
	return r
}

func spanRows(spans []model.Span) rows {
	r := rows{headers: []string{"index", "role", "text"}, roleCol: 1}
	for i, s := range spans {
		r.cells = append(r.cells, []string{strconv.Itoa(i), string(s.Role), s.Text})
	}
	return r
}

func lineRows(lines []engine.LineResult) rows {
	r := rows{
		headers: []string{"line", "comment_only", "has_comment", "ends_with_hyphen", "join", "projection"},
		roleCol: -1,
	}
	for _, l := range lines {
		r.cells = append(r.cells, []string{
			strconv.Itoa(l.Number),
			strconv.FormatBool(l.CommentOnly),
			strconv.FormatBool(l.HasComment),
			strconv.FormatBool(l.EndsWithHyphen),
			l.Join,
			l.Projection,
		})
	}
	return r
}

func langRows(langs []lang.Language) rows {
	r := rows{headers: []string{"name", "line", "block", "string"}, roleCol: -1}
	for _, l := range langs {
		r.cells = append(r.cells, []string{
			l.Name,
			joinChangers(l.Set.Filter(model.RoleComment), true),
			joinChangers(l.Set.Filter(model.RoleComment), false),
			joinChangers(l.Set.Filter(model.RoleStringLiteral), false),
		})
	}
	return r
}

// joinChangers lists line comments (lineOnly) or the other changers as
// "start end" pairs.
func joinChangers(changers []delim.TypeChanger, lineOnly bool) string {
	var out []string
	for _, tc := range changers {
		if tc.IsLineComment() != lineOnly {
			continue
		}
		if lineOnly {
			out = append(out, tc.Start)
			continue
		}
		out = append(out, tc.Start+" "+tc.End)
	}
	return joinCells(out)
}
