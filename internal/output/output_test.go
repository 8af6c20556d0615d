package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/lang"
	"github.com/phyten/cmtrans/internal/model"
	"github.com/phyten/cmtrans/internal/termcolor"
)

var sampleResult = &engine.Result{
	Items: []engine.Item{
		{Name: "main.go", Lang: "Go", Document: "Package main wires the CLI.\n\nRun starts <everything> | now"},
		{Name: "tool.py", Lang: "Python", Document: "Say \"hi\", then exit"},
	},
	Total:      2,
	ErrorCount: 0,
}

var sampleSpans = []model.Span{
	{Text: "x = 1", Role: model.RoleSource},
	{Text: "  # ", Role: model.RoleTypeChanger},
	{Text: "note", Role: model.RoleComment},
}

func TestWriteResultのテキストは見出し付きで連結する(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, "text", sampleResult); err != nil {
		t.Fatal(err)
	}
	want := "==> main.go <==\nPackage main wires the CLI.\n\nRun starts <everything> | now\n\n==> tool.py <==\nSay \"hi\", then exit\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("text mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	single := &engine.Result{Items: sampleResult.Items[1:]}
	if err := WriteResult(&buf, "", single); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Say \"hi\", then exit\n" {
		t.Fatalf("single input should print the bare document, got %q", buf.String())
	}
}

func TestWriteResultCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, "csv", sampleResult); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	assertGolden(t, "want-result.csv", buf.String())
	if !strings.Contains(buf.String(), "\r\n") {
		t.Fatal("CSV output should use CRLF line endings")
	}
}

func TestWriteResultMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, "markdown", sampleResult); err != nil {
		t.Fatalf("WriteMarkdownTable failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "CLI.<br><br>Run") {
		t.Fatal("expected newline conversion to <br> in markdown output")
	}
	if !strings.Contains(output, `<everything> \| now`) {
		t.Fatal("expected pipe characters to be escaped in markdown output")
	}
	assertGolden(t, "want-result.md", output)
}

func TestWriteResultNDJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, "ndjson", sampleResult); err != nil {
		t.Fatalf("WriteNDJSON failed: %v", err)
	}
	output := buf.String()
	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != len(sampleResult.Items) {
		t.Fatalf("expected %d lines, got %d", len(sampleResult.Items), len(lines))
	}
	for i, line := range lines {
		var item engine.Item
		if err := json.Unmarshal([]byte(line), &item); err != nil {
			t.Fatalf("failed to decode line %d: %v", i, err)
		}
		if item.Name != sampleResult.Items[i].Name {
			t.Fatalf("line %d name = %q", i, item.Name)
		}
	}
	if strings.Contains(output, "\\u003c") {
		t.Fatal("HTML characters should not be escaped in NDJSON output")
	}
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResult(&buf, "json", sampleResult); err != nil {
		t.Fatal(err)
	}
	var got engine.Result
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Total != 2 || len(got.Items) != 2 || got.Items[0].Lang != "Go" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestWriteMsgpackはJSONと同じキーを使う(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSpans(&buf, "msgpack", sampleSpans, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := msgpack.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid msgpack: %v", err)
	}
	if len(decoded) != 3 || decoded[2]["role"] != "comment" || decoded[2]["text"] != "note" {
		t.Fatalf("unexpected decode: %v", decoded)
	}

	buf.Reset()
	if err := WriteResult(&buf, "msgpack", sampleResult); err != nil {
		t.Fatal(err)
	}
	var res map[string]any
	if err := msgpack.Unmarshal(buf.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if _, ok := res["items"]; !ok {
		t.Fatalf("expected json key items, got %v", res)
	}
}

func TestWriteSpansのテキスト表(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSpans(&buf, "text", sampleSpans, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"INDEX", "ROLE", "type_changer", "note", "x = 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table should contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("disabled palette should not emit escapes:\n%s", out)
	}

	buf.Reset()
	pal := termcolor.Palette{Enabled: true, Profile: termcolor.ProfileBasic8}
	if err := WriteSpans(&buf, "text", sampleSpans, pal); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[32mcomment\x1b[0m") {
		t.Fatalf("comment role should be painted:\n%q", buf.String())
	}
}

func TestWriteSpansCSVとJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSpans(&buf, "csv", sampleSpans, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	want := "index,role,text\r\n0,source,x = 1\r\n1,type_changer,\"  # \"\r\n2,comment,note\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := WriteSpans(&buf, "json", nil, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty spans should encode as [], got %q", buf.String())
	}
}

func TestWriteLines(t *testing.T) {
	lines := []engine.LineResult{
		{Number: 1, Text: "// a-", LineProps: engine.LineProps{CommentOnly: true, HasComment: true, EndsWithHyphen: true, Projection: "a-"}, Join: "hyphen"},
		{Number: 2, Text: "// b", LineProps: engine.LineProps{CommentOnly: true, HasComment: true, Projection: "b"}},
	}
	var buf bytes.Buffer
	if err := WriteLines(&buf, "markdown", lines, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	want := "| line | comment_only | has_comment | ends_with_hyphen | join | projection |\n" +
		"| --- | --- | --- | --- | --- | --- |\n" +
		"| 1 | true | true | true | hyphen | a- |\n" +
		"| 2 | true | true | false |  | b |\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("markdown mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteLangs(t *testing.T) {
	py, err := lang.Lookup("python")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteLangs(&buf, "csv", []lang.Language{py}, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	want := "name,line,block,string\r\nPython,#,\"\"\"\"\"\"\" \"\"\"\"\"\"  ''' '''\",\"\"\" \"\"  ' '\"\r\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("csv mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := WriteLangs(&buf, "ndjson", []lang.Language{py}, termcolor.Palette{}); err != nil {
		t.Fatal(err)
	}
	var view LangView
	if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatal(err)
	}
	if view.Name != "Python" || len(view.Delimiters) != 5 {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestUnknownFormat(t *testing.T) {
	if err := WriteResult(&bytes.Buffer{}, "yaml", sampleResult); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := WriteSpans(&bytes.Buffer{}, "yaml", sampleSpans, termcolor.Palette{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name)
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v", name, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
