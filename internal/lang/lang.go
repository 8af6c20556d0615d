// Package lang maps language names onto delimiter sets.
package lang

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/detect"
)

const (
	// CustomName selects the caller-built set.
	CustomName = "Custom"
	// Auto selects a preset per input from its path and content.
	Auto = "auto"
)

// ErrUnknownLanguage is returned by Lookup for names no preset covers.
var ErrUnknownLanguage = errors.New("unknown language")

// Language は言語の表示名と区切り文字セットの組です。
type Language struct {
	Name string
	// Keys are the normalized detection keys served by this preset.
	Keys []string
	Set  delim.Set
}

type preset struct {
	name  string
	style style
	keys  []string
}

var presets = []preset{
	{"JavaScript or TypeScript", styleJS, []string{"javascript", "typescript", "javascriptreact", "typescriptreact", "ejs", "php"}},
	{"C or C++", styleC, []string{"c", "cpp", "objective-c", "objective-cpp"}},
	{"Python", stylePython, []string{"python", "starlark", "cython"}},
	{"Shell", styleShell, []string{"shell", "fish", "perl"}},
	{"Go", styleGo, []string{"go"}},
	{"Java or C#", styleC, []string{"java", "csharp", "kotlin", "scala", "groovy", "gradle", "swift", "dart", "apex", "proto", "thrift", "verilog", "systemverilog"}},
	{"Rust", styleRust, []string{"rust", "zig"}},
	{"Ruby", styleRuby, []string{"ruby"}},
	{"SQL", styleSQL, []string{"sql"}},
	{"HTML or XML", styleHTML, []string{"html", "xml", "vue", "svelte", "markdown"}},
	{"CSS", styleCSS, []string{"css"}},
	{"SCSS or Less", styleSCSS, []string{"scss", "sass", "less", "stylus"}},
	{"Haskell", styleHaskell, []string{"haskell"}},
	{"OCaml", styleOCaml, []string{"ocaml"}},
	{"Lua", styleLua, []string{"lua"}},
	{"Lisp", styleLisp, []string{"common-lisp", "scheme", "racket", "clojure"}},
	{"Erlang or LaTeX", stylePercent, []string{"erlang", "latex"}},
	{"PowerShell", stylePowershell, []string{"powershell"}},
	{"Batch", styleBatch, []string{"batch"}},
	{"INI", styleIni, []string{"ini", "properties"}},
	{"HCL or Terraform", styleHCL, []string{"hcl", "terraform"}},
	{"Jinja or Twig", styleJinja, []string{"jinja", "twig", "django", "liquid"}},
	{"Handlebars", styleHandlebars, []string{"handlebars"}},
	{"Hash comments", styleHash, []string{"yaml", "toml", "dotenv", "make", "cmake", "ninja", "dockerfile", "procfile", "coffeescript", "elixir", "julia", "nim", "r", "rego", "cue"}},
}

var (
	byName = map[string]int{}
	byKey  = map[string]int{}
)

func init() {
	for i, p := range presets {
		byName[strings.ToLower(p.name)] = i
		for _, k := range p.keys {
			if _, dup := byKey[k]; dup {
				panic("lang: key " + k + " registered twice")
			}
			byKey[k] = i
		}
	}
}

func (p preset) language() Language {
	return Language{Name: p.name, Keys: append([]string(nil), p.keys...), Set: p.style.set()}
}

// Presets returns every built-in language in display order.
func Presets() []Language {
	out := make([]Language, len(presets))
	for i, p := range presets {
		out[i] = p.language()
	}
	return out
}

// Names returns the preset display names followed by CustomName.
func Names() []string {
	out := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		out = append(out, p.name)
	}
	return append(out, CustomName)
}

// Keys returns every detection key, sorted.
func Keys() []string {
	out := make([]string, 0, len(byKey))
	for k := range byKey {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup finds a preset by display name or by any language name or alias
// the detect package understands ("ts", "C++", "bash").
func Lookup(name string) (Language, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if i, ok := byName[n]; ok {
		return presets[i].language(), nil
	}
	if i, ok := byKey[detect.NormalizeLangName(n)]; ok {
		return presets[i].language(), nil
	}
	return Language{}, errors.Wrapf(ErrUnknownLanguage, "%q", name)
}

// IsCustom reports whether name selects the custom set.
func IsCustom(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), CustomName)
}

// IsAuto reports whether name asks for per-input detection.
func IsAuto(name string) bool {
	n := strings.TrimSpace(name)
	return n == "" || strings.EqualFold(n, Auto)
}

// Custom builds the user-edited language. Any of the lists may be empty;
// an entirely empty set is rejected later by the engine.
func Custom(lineComments []string, blockComments, stringLiterals []delim.Pair) (Language, error) {
	set, err := delim.Build(lineComments, blockComments, stringLiterals)
	if err != nil {
		return Language{}, errors.Wrap(err, "custom language")
	}
	return Language{Name: CustomName, Set: set}, nil
}
