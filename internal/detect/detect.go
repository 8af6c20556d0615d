// Package detect guesses the language of an input from its path and
// content.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Info は検出結果です。Name は正規化済みの言語キーで、不明な場合は空です。
type Info struct {
	Name string
	// Source tells which heuristic produced Name: path, shebang or enry.
	Source string
}

// FromPathAndContent tries the path tables first, then the shebang line,
// then go-enry's classifiers.
func FromPathAndContent(p string, data []byte) Info {
	if name := detectByPath(p); name != "" {
		if strings.EqualFold(filepath.Ext(p), ".m") && name == "objective-c" && looksLikeMatlab(data) {
			return Info{}
		}
		return Info{Name: name, Source: "path"}
	}
	if name := detectByShebang(data); name != "" {
		return Info{Name: name, Source: "shebang"}
	}
	if name := detectByEnry(p, data); name != "" {
		return Info{Name: name, Source: "enry"}
	}
	return Info{}
}

func detectByPath(p string) string {
	if p == "" || p == "-" {
		return ""
	}
	lowerBase := strings.ToLower(filepath.Base(p))
	if lang, ok := basenameLanguages[lowerBase]; ok {
		return lang
	}
	ext := filepath.Ext(lowerBase)
	if ext == "" {
		return ""
	}
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	// template suffixes such as .html.j2 or .sql.tmpl
	stem := strings.TrimSuffix(lowerBase, ext)
	if lang, ok := extensionLanguages[filepath.Ext(stem)]; ok {
		return lang
	}
	return ""
}

func detectByShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	fields := strings.Fields(strings.ToLower(string(data[2:end])))
	for i, f := range fields {
		prog := filepath.Base(f)
		if prog == "env" && i+1 < len(fields) {
			continue
		}
		prog = strings.TrimRight(prog, "0123456789.")
		if lang, ok := shebangLanguages[prog]; ok {
			return lang
		}
	}
	return ""
}

func detectByEnry(p string, data []byte) string {
	name := p
	if name == "-" {
		name = ""
	}
	var lang string
	if name != "" {
		lang, _ = enry.GetLanguageByExtension(name)
	}
	if lang == "" && len(data) > 0 {
		lang = enry.GetLanguage(name, data)
	}
	if lang == "" || enry.IsVendor(name) {
		return ""
	}
	return NormalizeLangName(lang)
}

// NormalizeLangName lower-cases a language name and resolves aliases.
func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

// CanonicalLangs normalizes and dedupes language names, keeping order.
func CanonicalLangs(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		norm := NormalizeLangName(raw)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

func looksLikeMatlab(data []byte) bool {
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	keyword := false
	for _, line := range strings.Split(string(sample), "\n") {
		lower := strings.ToLower(strings.TrimSpace(line))
		switch {
		case lower == "" || strings.HasPrefix(lower, "%"):
			continue
		case strings.HasPrefix(lower, "@interface"), strings.HasPrefix(lower, "@implementation"), strings.HasPrefix(lower, "#import"):
			return false
		case strings.HasPrefix(lower, "function"), strings.HasPrefix(lower, "classdef"):
			return true
		case strings.HasPrefix(lower, "properties"), strings.HasPrefix(lower, "methods"):
			keyword = true
		}
	}
	return keyword
}
