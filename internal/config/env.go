package config

import (
	"errors"
	"math"
	"strings"

	"github.com/phyten/cmtrans/internal/delim"
	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
)

// FromEnv reads the CMTRANS_* variables. List values are comma separated;
// delimiter pairs are written "START END".
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		*target = &list
	}
	setPairs := func(target **[]delim.Pair, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		pairs, err := delim.ParsePairs(engineopts.SplitMulti([]string{raw}))
		if err != nil {
			errs = append(errs, errors.New(key+": "+err.Error()))
			return
		}
		*target = &pairs
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setString(&cfg.Extract.Lang, "CMTRANS_LANG")
	setList(&cfg.Extract.LineComments, "CMTRANS_LINE_COMMENTS")
	setPairs(&cfg.Extract.BlockComments, "CMTRANS_BLOCK_COMMENTS")
	setPairs(&cfg.Extract.StringLiterals, "CMTRANS_STRING_LITERALS")
	setString(&cfg.Extract.Output, "CMTRANS_OUTPUT")
	setString(&cfg.Extract.Color, "CMTRANS_COLOR")
	setString(&cfg.Extract.Encoding, "CMTRANS_ENCODING")
	// the upper bound is enforced by NormalizeAndValidate
	setInt(&cfg.Extract.Jobs, "CMTRANS_JOBS", 0, math.MaxInt)
	setBool(&cfg.Extract.Progress, "CMTRANS_PROGRESS")

	setString(&cfg.Translate.Site, "CMTRANS_TRANSLATE_SITE")
	setString(&cfg.Translate.Source, "CMTRANS_TRANSLATE_SOURCE")
	setString(&cfg.Translate.Target, "CMTRANS_TRANSLATE_TARGET")
	setBool(&cfg.Translate.Open, "CMTRANS_TRANSLATE_OPEN")

	setString(&cfg.Log.Level, "CMTRANS_LOG_LEVEL")
	setString(&cfg.Log.Format, "CMTRANS_LOG_FORMAT")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
