package opts

import (
	"fmt"
	"net/url"
	"runtime"
	"strconv"
	"strings"

	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/lang"
	"github.com/phyten/cmtrans/internal/textutil"
)

const (
	maxJobs = 64
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// Outputs lists the accepted output formats in help order.
var Outputs = []string{"text", "json", "ndjson", "csv", "markdown", "msgpack"}

// Defaults returns the shared baseline options for both CLI and Web inputs.
func Defaults() engine.Options {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return engine.Options{
		Lang:      lang.Auto,
		Resolver:  lang.Resolver{Lang: lang.Auto},
		Jobs:      jobs,
		WithSpans: false,
		WithLines: false,
		Progress:  false,
		Output:    "text",
		Color:     "auto",
		Encoding:  "utf-8",
	}
}

// ApplyWebQueryToOptions copies recognised values from the query string into the
// provided options. Validation happens separately via NormalizeAndValidate.
//
// Custom markers come from "line", "block" and "string"; each value may hold
// several markers, one per line. Pairs are written "START END".
func ApplyWebQueryToOptions(def engine.Options, q url.Values) (engine.Options, error) {
	out := def

	if raw, ok := lastLiteralValue(q["lang"]); ok {
		out.Lang = raw
	}
	if raw, ok := lastLiteralValue(q["output"]); ok {
		out.Output = raw
	}
	if raw, ok := lastLiteralValue(q["encoding"]); ok {
		out.Encoding = raw
	}
	if raw, ok := lastLiteralValue(q["with_spans"]); ok {
		v, err := ParseBool(raw, "with_spans")
		if err != nil {
			return out, err
		}
		out.WithSpans = v
	}
	if raw, ok := lastLiteralValue(q["with_lines"]); ok {
		v, err := ParseBool(raw, "with_lines")
		if err != nil {
			return out, err
		}
		out.WithLines = v
	}
	if raw, ok := lastLiteralValue(q["jobs"]); ok {
		n, err := ParseIntInRange(raw, "jobs", 1, maxJobs)
		if err != nil {
			return out, err
		}
		out.Jobs = n
	}

	custom, ok, err := CustomFromValues(q)
	if err != nil {
		return out, err
	}
	if ok {
		if lang.IsAuto(out.Lang) {
			out.Lang = lang.CustomName
		}
		out.Resolver = lang.Resolver{Lang: out.Lang, Custom: custom}
	}

	return out, nil
}

// CustomFromValues builds the custom language from form values. ok is false
// when no marker was given at all.
func CustomFromValues(q url.Values) (lang.Language, bool, error) {
	lines := SplitMarkers(q["line"])
	blocks, err := delim.ParsePairs(SplitMarkers(q["block"]))
	if err != nil {
		return lang.Language{}, false, fmt.Errorf("invalid block: %w", err)
	}
	strs, err := delim.ParsePairs(SplitMarkers(q["string"]))
	if err != nil {
		return lang.Language{}, false, fmt.Errorf("invalid string: %w", err)
	}
	if len(lines)+len(blocks)+len(strs) == 0 {
		return lang.Language{}, false, nil
	}
	custom, err := lang.Custom(lines, blocks, strs)
	if err != nil {
		return lang.Language{}, false, err
	}
	return custom, true, nil
}

// NormalizeAndValidate ensures the options are canonical and within the allowed ranges.
// The resolver is rebuilt for the canonical language; a custom set already
// installed on it is kept.
func NormalizeAndValidate(o *engine.Options) error {
	var custom lang.Language
	if r, ok := o.Resolver.(lang.Resolver); ok {
		custom = r.Custom
	}

	switch {
	case lang.IsAuto(o.Lang):
		o.Lang = lang.Auto
	case lang.IsCustom(o.Lang):
		o.Lang = lang.CustomName
	default:
		l, err := lang.Lookup(o.Lang)
		if err != nil {
			return fmt.Errorf("invalid --lang: %s", strings.TrimSpace(o.Lang))
		}
		o.Lang = l.Name
	}
	if o.Resolver == nil || isLangResolver(o.Resolver) {
		o.Resolver = lang.Resolver{Lang: o.Lang, Custom: custom}
	}

	if o.Jobs < 1 || o.Jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}

	output, err := NormalizeOutput(o.Output)
	if err != nil {
		return err
	}
	o.Output = output

	color, err := NormalizeColor(o.Color)
	if err != nil {
		return err
	}
	o.Color = color

	o.Encoding = strings.ToLower(strings.TrimSpace(o.Encoding))
	if o.Encoding == "" {
		o.Encoding = "utf-8"
	}
	if _, err := textutil.LookupEncoding(o.Encoding); err != nil {
		return fmt.Errorf("invalid --encoding: %s", o.Encoding)
	}

	return nil
}

func isLangResolver(r engine.Resolver) bool {
	_, ok := r.(lang.Resolver)
	return ok
}

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// NormalizeOutput validates and lower-cases the CLI/Web output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "text", nil
	case "md":
		return "markdown", nil
	}
	for _, known := range Outputs {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}

// NormalizeColor accepts auto, always and never.
func NormalizeColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "auto", nil
	case "auto", "always", "never":
		return v, nil
	}
	return "", fmt.Errorf("invalid --color: %s", value)
}

// SplitMulti turns repeated query parameters (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

// SplitMarkers splits values on newlines only. Markers may contain commas
// and keep their inner spaces, so only the line break is stripped.
func SplitMarkers(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, "\n") {
			part := strings.TrimRight(piece, "\r")
			if strings.TrimSpace(part) == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}

func lastLiteralValue(vals []string) (string, bool) {
	flat := SplitMulti(vals)
	if len(flat) == 0 {
		return "", false
	}
	return flat[len(flat)-1], true
}
