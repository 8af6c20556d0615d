package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phyten/cmtrans/internal/config"
	"github.com/phyten/cmtrans/internal/delim"
	"github.com/phyten/cmtrans/internal/engine"
	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
	"github.com/phyten/cmtrans/internal/lang"
	"github.com/phyten/cmtrans/internal/logging"
	"github.com/phyten/cmtrans/internal/termcolor"
	"github.com/phyten/cmtrans/internal/textutil"
)

// app は1回の実行で共有する入出力と、設定を重ね合わせた結果を持ちます。
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	getenv func(string) string

	opts      engine.Options
	extract   config.ExtractSettings
	translate config.TranslateSettings
	logger    kitlog.Logger
	palette   termcolor.Palette
	cfgPath   string
}

func newApp(stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) *app {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		getenv: getenv,
		logger: logging.Nop,
	}
}

// setup layers defaults, the config file, CMTRANS_* variables and flags.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	explicit := config.Explicit{From: "--config"}
	explicit.Path, _ = flags.GetString("config")
	if explicit.Path == "" {
		explicit = config.Explicit{Path: a.getenv("CMTRANS_CONFIG"), From: "CMTRANS_CONFIG"}
	}
	cwd, _ := os.Getwd()
	path, where, err := config.Find(cwd, explicit, a.getenv("XDG_CONFIG_HOME"), a.getenv("HOME"))
	if err != nil {
		return usageError(errors.Wrap(err, "config"))
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return usageError(err)
	}
	a.cfgPath = path
	envCfg, err := config.FromEnv(a.getenv)
	if err != nil {
		return usageError(err)
	}
	flagCfg, err := extractFlags(cmd)
	if err != nil {
		return usageError(err)
	}

	logSettings, err := config.NormalizeLog(config.MergeLog(config.DefaultLogSettings(), fileCfg.Log, envCfg.Log, logFlags(cmd)))
	if err != nil {
		return usageError(err)
	}
	if a.logger, err = logging.New(a.stderr, logSettings.Format, logSettings.Level); err != nil {
		return usageError(err)
	}
	if path != "" {
		_ = level.Debug(a.logger).Log("msg", "config loaded", "path", path, "from", where)
	}

	defaults := engineopts.Defaults()
	a.extract = config.MergeExtract(config.ExtractSettingsFromOptions(defaults), fileCfg.Extract, envCfg.Extract, flagCfg)
	if a.extract.HasCustom() && lang.IsAuto(a.extract.Lang) {
		a.extract.Lang = lang.CustomName
	}
	a.opts = defaults
	if err := a.extract.ApplyToOptions(&a.opts); err != nil {
		return usageError(err)
	}
	if err := engineopts.NormalizeAndValidate(&a.opts); err != nil {
		return usageError(err)
	}

	a.translate, err = config.NormalizeTranslate(config.MergeTranslate(config.DefaultTranslateSettings(), fileCfg.Translate, envCfg.Translate, translateFlags(cmd)))
	if err != nil {
		return usageError(err)
	}

	mode, _ := termcolor.ParseMode(a.opts.Color)
	env := a.colorEnv()
	a.palette = termcolor.NewPalette(mode, asFile(a.stdout), env)
	color.NoColor = !termcolor.Enabled(mode, asFile(a.stderr), env)
	return nil
}

var colorEnvKeys = []string{"TERM", "NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR", "COLORTERM", "COLORFGBG"}

func (a *app) colorEnv() map[string]string {
	env := make(map[string]string, len(colorEnvKeys))
	for _, k := range colorEnvKeys {
		if v := a.getenv(k); v != "" {
			env[k] = v
		}
	}
	return env
}

func asFile(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}

// extractFlags turns explicitly set flags into the top config layer.
func extractFlags(cmd *cobra.Command) (config.ExtractConfig, error) {
	var cfg config.ExtractConfig
	flags := cmd.Flags()
	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	cfg.Lang = str("lang")
	cfg.Output = str("output")
	cfg.Color = str("color")
	cfg.Encoding = str("encoding")
	if flags.Changed("jobs") {
		v, _ := flags.GetInt("jobs")
		cfg.Jobs = &v
	}
	if flags.Changed("progress") {
		v, _ := flags.GetBool("progress")
		cfg.Progress = &v
	}
	if flags.Changed("line") {
		v, _ := flags.GetStringArray("line")
		cfg.LineComments = &v
	}
	for name, dst := range map[string]**[]delim.Pair{"block": &cfg.BlockComments, "string": &cfg.StringLiterals} {
		if !flags.Changed(name) {
			continue
		}
		raw, _ := flags.GetStringArray(name)
		pairs, err := delim.ParsePairs(raw)
		if err != nil {
			return cfg, errors.Wrapf(err, "--%s", name)
		}
		*dst = &pairs
	}
	return cfg, nil
}

func logFlags(cmd *cobra.Command) config.LogConfig {
	var cfg config.LogConfig
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		v := f.Value.String()
		cfg.Level = &v
	}
	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		v := f.Value.String()
		cfg.Format = &v
	}
	return cfg
}

// translateFlags reads the translate command's own flags; other commands
// do not define them.
func translateFlags(cmd *cobra.Command) config.TranslateConfig {
	var cfg config.TranslateConfig
	for name, dst := range map[string]**string{"site": &cfg.Site, "from": &cfg.Source, "to": &cfg.Target} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			v := f.Value.String()
			*dst = &v
		}
	}
	if f := cmd.Flags().Lookup("open"); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool("open")
		cfg.Open = &v
	}
	return cfg
}

// readInputs reads files, or stdin for "-" and for no argument at all.
func (a *app) readInputs(args []string) ([]engine.Input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	inputs := make([]engine.Input, 0, len(args))
	stdinUsed := false
	for _, name := range args {
		var data []byte
		var err error
		if name == "-" {
			if stdinUsed {
				return nil, usageError(errors.New("standard input given twice"))
			}
			stdinUsed = true
			data, err = io.ReadAll(a.stdin)
		} else {
			data, err = os.ReadFile(name)
		}
		if err != nil {
			return nil, errors.Wrap(err, "read input")
		}
		text, err := textutil.Decode(data, a.opts.Encoding)
		if err != nil {
			return nil, errors.Wrap(err, displayName(name))
		}
		inputs = append(inputs, engine.Input{Name: name, Text: text})
	}
	return inputs, nil
}

// readOne is readInputs for commands that take a single input.
func (a *app) readOne(args []string) (engine.Input, error) {
	inputs, err := a.readInputs(args)
	if err != nil {
		return engine.Input{}, err
	}
	return inputs[0], nil
}

// logWarnings reports overlapping start patterns. Shadowed changers can
// never match, so they are logged at warn; resolved overlaps at debug.
func (a *app) logWarnings(name string, warnings []delim.Warning) {
	for _, w := range warnings {
		lvl := level.Debug
		if w.Kind == delim.WarnShadowed {
			lvl = level.Warn
		}
		_ = lvl(a.logger).Log("msg", "delimiter overlap", "input", displayName(name), "kind", w.Kind, "detail", w.Message)
	}
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "standard input"
	}
	return strings.TrimSpace(name)
}
