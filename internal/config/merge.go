package config

import "strings"

func MergeExtract(base ExtractSettings, layers ...ExtractConfig) ExtractSettings {
	out := base
	for _, layer := range layers {
		out.Lang = ResolveAndTrim(out.Lang, layer.Lang)
		out.LineComments = ResolveStrings(out.LineComments, layer.LineComments)
		out.BlockComments = ResolvePairs(out.BlockComments, layer.BlockComments)
		out.StringLiterals = ResolvePairs(out.StringLiterals, layer.StringLiterals)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Encoding = ResolveAndTrim(out.Encoding, layer.Encoding)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
		out.Progress = ResolveBool(out.Progress, layer.Progress)
	}
	if out.Lang == "" {
		out.Lang = "auto"
	}
	if out.Output == "" {
		out.Output = "text"
	}
	if out.Color == "" {
		out.Color = "auto"
	}
	if out.Encoding == "" {
		out.Encoding = "utf-8"
	}
	return out
}

func MergeTranslate(base TranslateSettings, layers ...TranslateConfig) TranslateSettings {
	out := base
	for _, layer := range layers {
		out.Site = ResolveAndTrim(out.Site, layer.Site)
		out.Source = ResolveAndTrim(out.Source, layer.Source)
		out.Target = ResolveAndTrim(out.Target, layer.Target)
		out.Open = ResolveBool(out.Open, layer.Open)
	}
	out.Site = strings.ToLower(out.Site)
	return out
}

func MergeLog(base LogSettings, layers ...LogConfig) LogSettings {
	out := base
	for _, layer := range layers {
		out.Level = ResolveAndTrim(out.Level, layer.Level)
		out.Format = ResolveAndTrim(out.Format, layer.Format)
	}
	return out
}
