package detect

import "testing"

func TestNormalizeLangNameAliases(t *testing.T) {
	cases := map[string]string{
		"JS":          "javascript",
		"Ts":          "typescript",
		"c++":         "cpp",
		"C#":          "csharp",
		"Py":          "python",
		"bash":        "shell",
		"Batchfile":   "batch",
		"Common Lisp": "common-lisp",
		" Go ":        "go",
	}
	for input, want := range cases {
		if got := NormalizeLangName(input); got != want {
			t.Fatalf("NormalizeLangName(%q)=%q want %q", input, got, want)
		}
	}
}

func TestCanonicalLangsDedupes(t *testing.T) {
	got := CanonicalLangs([]string{" js ", "TS", "js", "", "PY"})
	want := []string{"javascript", "typescript", "python"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value mismatch at %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestFromPathAndContentByPath(t *testing.T) {
	cases := map[string]string{
		"main.go":             "go",
		"src/App.TSX":         "typescriptreact",
		"Makefile":            "make",
		"deploy/Dockerfile":   "dockerfile",
		"templates/page.html": "html",
		"query.sql.j2":        "jinja",
		"conf/app.yml":        "yaml",
	}
	for path, want := range cases {
		info := FromPathAndContent(path, nil)
		if info.Name != want || info.Source != "path" {
			t.Fatalf("FromPathAndContent(%q)=%+v want %q from path", path, info, want)
		}
	}
}

func TestFromPathAndContentShebang(t *testing.T) {
	cases := map[string]string{
		"#!/usr/bin/env python3\nprint(1)\n": "python",
		"#!/bin/sh\necho hi\n":               "shell",
		"#!/usr/bin/env -S deno run\n":       "typescript",
	}
	for data, want := range cases {
		info := FromPathAndContent("script", []byte(data))
		if info.Name != want || info.Source != "shebang" {
			t.Fatalf("shebang %q: got %+v want %q", data, info, want)
		}
	}
}

func TestFromPathAndContentFallsBackToEnry(t *testing.T) {
	info := FromPathAndContent("lib/thing.coffee", []byte("square = (x) -> x * x\n"))
	if info.Name != "coffeescript" || info.Source != "enry" {
		t.Fatalf("expected enry to detect CoffeeScript, got %+v", info)
	}
}

func TestFromPathAndContentUnknown(t *testing.T) {
	if info := FromPathAndContent("-", nil); info.Name != "" {
		t.Fatalf("stdin without content should be unknown, got %+v", info)
	}
}

func TestFromPathAndContentMatlabHeuristic(t *testing.T) {
	data := []byte("% comment\nfunction y = square(x)\ny = x.^2;\nend\n")
	info := FromPathAndContent("foo.m", data)
	if info.Name != "" {
		t.Fatalf("expected matlab-like .m files to fall back, got %q", info.Name)
	}
}

func TestFromPathAndContentObjectiveCPreferred(t *testing.T) {
	data := []byte("#import <Foundation/Foundation.h>\n@interface Foo : NSObject\n@end\n")
	info := FromPathAndContent("bar.m", data)
	if info.Name != "objective-c" {
		t.Fatalf("expected objective-c heuristics to remain, got %q", info.Name)
	}
}
