package main

import (
	"strings"

	"github.com/spf13/cobra"

	engineopts "github.com/phyten/cmtrans/internal/engine/opts"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cmtrans [files...|-]",
		Short: "Extract source comments into a document ready for translation",
		Long: `cmtrans classifies source text into code, comment and string spans and
rebuilds the comments into prose: wrapped comment lines are joined and a
trailing hyphen glues a split word back together.

Without a subcommand, cmtrans behaves like "cmtrans extract".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, args)
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default: .cmtrans.* found upwards, then $XDG_CONFIG_HOME/cmtrans, then ~)")
	pf.StringP("lang", "l", "auto", "language preset or alias; auto detects per file; custom uses --line/--block/--string")
	pf.StringArray("line", nil, `custom line-comment marker (repeatable), e.g. --line "//"`)
	pf.StringArray("block", nil, `custom block comment as "START END" (repeatable), e.g. --block "/* */"`)
	pf.StringArray("string", nil, `custom string literal as "START END" (repeatable)`)
	pf.StringP("output", "o", "text", strings.Join(engineopts.Outputs, "|"))
	pf.String("color", "auto", "auto|always|never")
	pf.String("encoding", "utf-8", "input charset (IANA name)")
	pf.IntP("jobs", "j", engineopts.Defaults().Jobs, "parallel workers (1-64)")
	pf.Bool("progress", false, "force the progress line on stderr")
	pf.Bool("no-progress", false, "never show the progress line (wins over --progress)")
	pf.String("log-level", "info", "debug|info|warn|error")
	pf.String("log-format", "logfmt", "logfmt|json")

	root.AddCommand(
		newExtractCmd(a),
		newSpansCmd(a),
		newLinesCmd(a),
		newLangsCmd(a),
		newTranslateCmd(a),
		newServeCmd(a),
	)
	root.SetHelpTemplate(root.HelpTemplate() + "\nConfig keys may also be set with CMTRANS_* environment variables.\n")
	return root
}
