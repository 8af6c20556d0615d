package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/phyten/cmtrans/internal/delim"
	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
)

var extractKeyMap = map[string]string{
	"lang":            "lang",
	"language":        "lang",
	"line_comments":   "line_comments",
	"line_comment":    "line_comments",
	"block_comments":  "block_comments",
	"block_comment":   "block_comments",
	"string_literals": "string_literals",
	"strings":         "string_literals",
	"output":          "output",
	"color":           "color",
	"encoding":        "encoding",
	"charset":         "encoding",
	"jobs":            "jobs",
	"progress":        "progress",
}

var translateKeyMap = map[string]string{
	"site":   "site",
	"source": "source",
	"from":   "source",
	"target": "target",
	"to":     "target",
	"open":   "open",
}

var logKeyMap = map[string]string{
	"level":  "level",
	"format": "format",
}

// Load reads a YAML, TOML or JSON file. Sections ("extract", "translate",
// "log") are optional: extract keys may sit at the top level, translate and
// log keys may be written flat with their section prefix ("log_level").
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, errors.Wrap(err, path)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	extractSection := make(map[string]any)
	translateSection := make(map[string]any)
	logSection := make(map[string]any)

	sections := []struct {
		name    string
		dst     map[string]any
		allowed map[string]string
	}{
		{"extract", extractSection, extractKeyMap},
		{"translate", translateSection, translateKeyMap},
		{"log", logSection, logKeyMap},
	}
	for _, sec := range sections {
		block, ok := raw[sec.name]
		if !ok {
			continue
		}
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", sec.name, err)
		}
		if err := fillSection(sec.dst, sub, sec.allowed, sec.name); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "extract", "translate", "log":
			continue
		}
		if canonical, ok := extractKeyMap[norm]; ok {
			extractSection[canonical] = value
			continue
		}
		if rest, ok := strings.CutPrefix(norm, "translate_"); ok {
			if canonical, ok := translateKeyMap[rest]; ok {
				translateSection[canonical] = value
				continue
			}
		}
		if rest, ok := strings.CutPrefix(norm, "log_"); ok {
			if canonical, ok := logKeyMap[rest]; ok {
				logSection[canonical] = value
				continue
			}
		}
		return cfg, fmt.Errorf("unknown config key: %s", key)
	}

	if err := assignExtract(extractSection, &cfg.Extract); err != nil {
		return cfg, fmt.Errorf("extract: %w", err)
	}
	if err := assignTranslate(translateSection, &cfg.Translate); err != nil {
		return cfg, fmt.Errorf("translate: %w", err)
	}
	if err := assignLog(logSection, &cfg.Log); err != nil {
		return cfg, fmt.Errorf("log: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignExtract(section map[string]any, dst *ExtractConfig) error {
	for key, value := range section {
		switch key {
		case "lang", "output", "color", "encoding":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			switch key {
			case "lang":
				dst.Lang = &trimmed
			case "output":
				dst.Output = &trimmed
			case "color":
				dst.Color = &trimmed
			case "encoding":
				dst.Encoding = &trimmed
			}
		case "line_comments":
			list, err := expectMarkerList(value, key)
			if err != nil {
				return err
			}
			dst.LineComments = &list
		case "block_comments":
			pairs, err := expectPairList(value, key)
			if err != nil {
				return err
			}
			dst.BlockComments = &pairs
		case "string_literals":
			pairs, err := expectPairList(value, key)
			if err != nil {
				return err
			}
			dst.StringLiterals = &pairs
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		case "progress":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Progress = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignTranslate(section map[string]any, dst *TranslateConfig) error {
	for key, value := range section {
		switch key {
		case "site", "source", "target":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			switch key {
			case "site":
				dst.Site = &str
			case "source":
				dst.Source = &str
			case "target":
				dst.Target = &str
			}
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignLog(section map[string]any, dst *LogConfig) error {
	for key, value := range section {
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		switch key {
		case "level":
			dst.Level = &str
		case "format":
			dst.Format = &str
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

// expectMarkerList keeps markers verbatim: "REM " needs its trailing space.
func expectMarkerList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return dropEmpty([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return dropEmpty(out), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

// expectPairList accepts "START END" strings, [start, end] lists and
// {start, end} maps, alone or in a list.
func expectPairList(value any, field string) ([]delim.Pair, error) {
	items, ok := value.([]any)
	if !ok {
		items = []any{value}
	} else if len(items) == 2 {
		// a bare [start, end] pair
		if a, aok := items[0].(string); aok {
			if b, bok := items[1].(string); bok && len(strings.Fields(a)) == 1 && len(strings.Fields(b)) == 1 {
				return []delim.Pair{{Start: a, End: b}}, nil
			}
		}
	}
	out := make([]delim.Pair, 0, len(items))
	for _, item := range items {
		p, err := expectPair(item, field)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func expectPair(value any, field string) (delim.Pair, error) {
	switch v := value.(type) {
	case string:
		p, err := delim.ParsePair(v)
		if err != nil {
			return delim.Pair{}, fmt.Errorf("%s: %w", field, err)
		}
		return p, nil
	case []any:
		if len(v) != 2 {
			return delim.Pair{}, fmt.Errorf("%s: expected [start, end], got %d items", field, len(v))
		}
		start, err := expectString(v[0], field)
		if err != nil {
			return delim.Pair{}, err
		}
		end, err := expectString(v[1], field)
		if err != nil {
			return delim.Pair{}, err
		}
		return delim.Pair{Start: start, End: end}, nil
	default:
		m, err := toStringKeyMap(value)
		if err != nil {
			return delim.Pair{}, fmt.Errorf("%s: expected pair, got %T", field, value)
		}
		var p delim.Pair
		for k, raw := range m {
			str, err := expectString(raw, field)
			if err != nil {
				return delim.Pair{}, err
			}
			switch normalizeKey(k) {
			case "start":
				p.Start = str
			case "end":
				p.End = str
			default:
				return delim.Pair{}, fmt.Errorf("%s: unknown pair key %s", field, k)
			}
		}
		return p, nil
	}
}

func dropEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
