package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/output"
)

func newSpansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "spans [file|-]",
		Short: "Show how the input is classified into spans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(args)
			if err != nil {
				return err
			}
			return output.WriteSpans(a.stdout, a.opts.Output, an.Spans, a.palette)
		},
	}
}

func newLinesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lines [file|-]",
		Short: "Show the per-line predicates and join decisions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			an, err := a.analyze(args)
			if err != nil {
				return err
			}
			return output.WriteLines(a.stdout, a.opts.Output, an.Lines, a.palette)
		},
	}
}

// analyze resolves the language of a single input and runs every stage.
func (a *app) analyze(args []string) (*engine.Analysis, error) {
	in, err := a.readOne(args)
	if err != nil {
		return nil, err
	}
	_, set, err := a.opts.Resolver.Resolve(in.Name, in.Text)
	if err != nil {
		return nil, usageError(err)
	}
	an, err := engine.Analyze(in.Text, set)
	if errors.Is(err, engine.ErrInvalidDelimiterSet) {
		return nil, usageError(err)
	}
	if err != nil {
		return nil, err
	}
	a.logWarnings(in.Name, an.Warnings)
	return an, nil
}
