package main

import (
	"github.com/spf13/cobra"

	"github.com/phyten/cmtrans/internal/lang"
	"github.com/phyten/cmtrans/internal/output"
)

func newLangsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List the language presets and their delimiters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			show, _ := cmd.Flags().GetString("show")
			langs := lang.Presets()
			if show != "" {
				l, err := a.language(show)
				if err != nil {
					return usageError(err)
				}
				langs = []lang.Language{l}
			}
			return output.WriteLangs(a.stdout, a.opts.Output, langs, a.palette)
		},
	}
	cmd.Flags().String("show", "", `show one language; "custom" prints the configured custom set`)
	return cmd
}

// language looks up a preset, or the custom set from flags and config.
func (a *app) language(name string) (lang.Language, error) {
	if lang.IsCustom(name) {
		return a.extract.CustomLanguage()
	}
	return lang.Lookup(name)
}
