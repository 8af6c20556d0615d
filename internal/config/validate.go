package config

import (
	"fmt"
	"strings"

	"github.com/phyten/cmtrans/internal/translate"
)

func CanonicalizeLogLevel(raw string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(raw))
	switch level {
	case "":
		return "info", nil
	case "warning":
		return "warn", nil
	case "debug", "info", "warn", "error":
		return level, nil
	}
	return "", fmt.Errorf("invalid log level: %s", raw)
}

func CanonicalizeLogFormat(raw string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(raw))
	switch format {
	case "":
		return "logfmt", nil
	case "logfmt", "json":
		return format, nil
	}
	return "", fmt.Errorf("invalid log format: %s", raw)
}

func NormalizeLog(values LogSettings) (LogSettings, error) {
	var err error
	if values.Level, err = CanonicalizeLogLevel(values.Level); err != nil {
		return values, err
	}
	if values.Format, err = CanonicalizeLogFormat(values.Format); err != nil {
		return values, err
	}
	return values, nil
}

func NormalizeTranslate(values TranslateSettings) (TranslateSettings, error) {
	site, err := translate.ParseSite(values.Site)
	if err != nil {
		return values, err
	}
	values.Site = string(site)
	values.Source = strings.ToLower(strings.TrimSpace(values.Source))
	if values.Source == "" {
		values.Source = "auto"
	}
	values.Target = strings.ToLower(strings.TrimSpace(values.Target))
	if values.Target == "" || values.Target == "auto" {
		return values, fmt.Errorf("translate target language must be set")
	}
	return values, nil
}
