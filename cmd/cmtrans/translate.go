package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phyten/cmtrans/internal/engine"
	"github.com/phyten/cmtrans/internal/translate"
)

func newTranslateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [file|-]",
		Short: "Print a translation-site URL for the extracted document",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runTranslate,
	}
	cmd.Flags().String("site", "", "google|deepl|bing (default from config, else google)")
	cmd.Flags().String("from", "", "source language code (default auto)")
	cmd.Flags().String("to", "", "target language code (default ja)")
	cmd.Flags().Bool("open", false, "open the URL in the browser")
	return cmd
}

func (a *app) runTranslate(cmd *cobra.Command, args []string) error {
	in, err := a.readOne(args)
	if err != nil {
		return err
	}
	_, set, err := a.opts.Resolver.Resolve(in.Name, in.Text)
	if err != nil {
		return usageError(err)
	}
	an, err := engine.Analyze(in.Text, set)
	if errors.Is(err, engine.ErrInvalidDelimiterSet) {
		return usageError(err)
	}
	if err != nil {
		return err
	}
	a.logWarnings(in.Name, an.Warnings)
	if an.Document == "" {
		return errors.Errorf("no comments found in %s", displayName(in.Name))
	}

	site, err := translate.ParseSite(a.translate.Site)
	if err != nil {
		return usageError(err)
	}
	link, err := translate.URL(site, a.translate.Source, a.translate.Target, an.Document)
	if err != nil {
		return usageError(err)
	}
	if link.Truncated {
		_ = level.Warn(a.logger).Log("msg", "document truncated to fit the site limit", "site", site, "max_runes", site.MaxRunes())
	}
	if _, err := fmt.Fprintln(a.stdout, link.URL); err != nil {
		return err
	}
	if a.translate.Open {
		return translate.Open(link)
	}
	return nil
}
