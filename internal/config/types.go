package config

import (
	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/lang"
)

// ExtractConfig は抽出に関する設定の 1 レイヤー分です。nil は「未指定」を表します。
type ExtractConfig struct {
	Lang           *string       `yaml:"lang" toml:"lang" json:"lang"`
	LineComments   *[]string     `yaml:"line_comments" toml:"line_comments" json:"line_comments"`
	BlockComments  *[]delim.Pair `yaml:"block_comments" toml:"block_comments" json:"block_comments"`
	StringLiterals *[]delim.Pair `yaml:"string_literals" toml:"string_literals" json:"string_literals"`
	Output         *string       `yaml:"output" toml:"output" json:"output"`
	Color          *string       `yaml:"color" toml:"color" json:"color"`
	Encoding       *string       `yaml:"encoding" toml:"encoding" json:"encoding"`
	Jobs           *int          `yaml:"jobs" toml:"jobs" json:"jobs"`
	Progress       *bool         `yaml:"progress" toml:"progress" json:"progress"`
}

// TranslateConfig は翻訳サイト連携の設定です。
type TranslateConfig struct {
	Site   *string `yaml:"site" toml:"site" json:"site"`
	Source *string `yaml:"source" toml:"source" json:"source"`
	Target *string `yaml:"target" toml:"target" json:"target"`
	Open   *bool   `yaml:"open" toml:"open" json:"open"`
}

type LogConfig struct {
	Level  *string `yaml:"level" toml:"level" json:"level"`
	Format *string `yaml:"format" toml:"format" json:"format"`
}

type Config struct {
	Extract   ExtractConfig   `yaml:"extract" toml:"extract" json:"extract"`
	Translate TranslateConfig `yaml:"translate" toml:"translate" json:"translate"`
	Log       LogConfig       `yaml:"log" toml:"log" json:"log"`
}

type ExtractSettings struct {
	Lang           string
	LineComments   []string
	BlockComments  []delim.Pair
	StringLiterals []delim.Pair
	Output         string
	Color          string
	Encoding       string
	Jobs           int
	Progress       bool
}

type TranslateSettings struct {
	Site   string
	Source string
	Target string
	Open   bool
}

type LogSettings struct {
	Level  string
	Format string
}

func ExtractSettingsFromOptions(opts engine.Options) ExtractSettings {
	return ExtractSettings{
		Lang:     opts.Lang,
		Output:   opts.Output,
		Color:    opts.Color,
		Encoding: opts.Encoding,
		Jobs:     opts.Jobs,
		Progress: opts.Progress,
	}
}

// ApplyToOptions copies the merged values into opts and installs a
// resolver for the selected language.
func (s ExtractSettings) ApplyToOptions(opts *engine.Options) error {
	if opts == nil {
		return nil
	}
	opts.Lang = s.Lang
	opts.Output = s.Output
	opts.Color = s.Color
	opts.Encoding = s.Encoding
	opts.Jobs = s.Jobs
	opts.Progress = s.Progress
	custom, err := s.CustomLanguage()
	if err != nil {
		return err
	}
	opts.Resolver = lang.Resolver{Lang: s.Lang, Custom: custom}
	return nil
}

// CustomLanguage builds the custom set from the configured markers.
func (s ExtractSettings) CustomLanguage() (lang.Language, error) {
	return lang.Custom(s.LineComments, s.BlockComments, s.StringLiterals)
}

// HasCustom reports whether any custom marker is configured.
func (s ExtractSettings) HasCustom() bool {
	return len(s.LineComments)+len(s.BlockComments)+len(s.StringLiterals) > 0
}

func DefaultTranslateSettings() TranslateSettings {
	return TranslateSettings{Site: "google", Source: "auto", Target: "ja"}
}

func DefaultLogSettings() LogSettings {
	return LogSettings{Level: "info", Format: "logfmt"}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func clonePairs(in []delim.Pair) []delim.Pair {
	if len(in) == 0 {
		return nil
	}
	return append([]delim.Pair(nil), in...)
}
