// Package logging builds the go-kit logger shared by the CLI and the web
// server.
package logging

import (
	"io"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Nop discards everything. Handlers use it until a logger is injected.
var Nop = kitlog.NewNopLogger()

// New returns a logger writing format ("logfmt" or "json") to w, filtered
// to lvl and above. A nil w means stderr.
func New(w io.Writer, format, lvl string) (kitlog.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	writer := kitlog.NewSyncWriter(w)

	var logger kitlog.Logger
	switch format {
	case "", "logfmt":
		logger = kitlog.NewLogfmtLogger(writer)
	case "json":
		logger = kitlog.NewJSONLogger(writer)
	default:
		return nil, errors.Errorf("invalid log format: %s", format)
	}

	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC, "caller", kitlog.DefaultCaller)

	// level filter goes last
	return level.NewFilter(logger, opt), nil
}

func levelOption(lvl string) (level.Option, error) {
	switch lvl {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, errors.Errorf("invalid log level: %s", lvl)
}
