package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/output"
	"github.com/phyten/cmtrans/internal/util"
)

func newExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [files...|-]",
		Short: "Print the reassembled comment document of each input",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.runExtract,
	}
	cmd.Flags().Bool("with-spans", false, "include spans in json/ndjson/msgpack output")
	cmd.Flags().Bool("with-lines", false, "include line predicates in json/ndjson/msgpack output")
	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, args []string) error {
	inputs, err := a.readInputs(args)
	if err != nil {
		return err
	}
	opts := a.opts
	opts.Inputs = inputs
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	opts.Progress = len(inputs) > 1 && util.ShouldShowProgress(a.extract.Progress, noProgress)
	if cmd.Flags().Changed("with-spans") {
		opts.WithSpans, _ = cmd.Flags().GetBool("with-spans")
	}
	if cmd.Flags().Changed("with-lines") {
		opts.WithLines, _ = cmd.Flags().GetBool("with-lines")
	}

	res, err := engine.Run(cmd.Context(), opts)
	if errors.Is(err, engine.ErrInvalidDelimiterSet) {
		return usageError(errors.Wrap(err, "pass --lang or at least one of --line, --block, --string"))
	}
	if err != nil {
		return err
	}
	for _, it := range res.Items {
		a.logWarnings(it.Name, it.Warnings)
		_ = level.Debug(a.logger).Log("msg", "extracted", "input", displayName(it.Name), "lang", it.Lang, "bytes", len(it.Document))
	}
	if err := output.WriteResult(a.stdout, opts.Output, res); err != nil {
		return err
	}
	if res.ErrorCount > 0 {
		for _, e := range res.Errors {
			_ = level.Error(a.logger).Log("msg", "input failed", "input", displayName(e.Name), "stage", e.Stage, "err", e.Message)
		}
		return fmt.Errorf("%d of %d inputs failed", res.ErrorCount, len(inputs))
	}
	return nil
}
