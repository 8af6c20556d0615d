package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNewはレベルで絞り込む(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "logfmt", "warn")
	if err != nil {
		t.Fatal(err)
	}
	_ = level.Info(logger).Log("msg", "hidden")
	_ = level.Warn(logger).Log("msg", "shadowed delimiter", "winner", "'")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, "level=warn") || !strings.Contains(out, `msg="shadowed delimiter"`) {
		t.Fatalf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "ts=") || !strings.Contains(out, "caller=") {
		t.Fatalf("ts and caller keys expected: %s", out)
	}
}

func TestNewのJSON形式(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "json", "debug")
	if err != nil {
		t.Fatal(err)
	}
	_ = level.Debug(logger).Log("msg", "file done", "name", "a.go")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not json: %q", buf.String())
	}
	if rec["msg"] != "file done" || rec["level"] != "debug" || rec["name"] != "a.go" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestNewの不正な指定(t *testing.T) {
	if _, err := New(nil, "xml", "info"); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := New(nil, "logfmt", "trace"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
