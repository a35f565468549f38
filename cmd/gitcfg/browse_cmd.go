package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/format"
	"github.com/raphi011/gitcfg/internal/output"
	"github.com/raphi011/gitcfg/internal/ui"
)

func newBrowseCmd() *cobra.Command {
	var (
		file      string
		copyValue bool
	)

	cmd := &cobra.Command{
		Use:     "browse",
		Short:   "Browse entries interactively",
		GroupID: GroupQuery,
		Args:    cobra.NoArgs,
		Long: `Browse the entries of a config file with fuzzy filtering. The selected
value is printed to stdout, so the command composes with shell pipelines.`,
		Example: `  gitcfg browse
  gitcfg browse -f ~/.gitconfig --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.FromContext(ctx)

			doc, err := loadDocument(ctx, configFile(file))
			if err != nil {
				return err
			}

			var items []ui.Item
			for _, s := range doc.Sections() {
				for _, e := range s.Entries {
					text, err := entryText(e)
					if err != nil {
						return err
					}
					items = append(items, ui.Item{
						Name:  format.DisplayKey(s.Name, s.Subsection, e.Key),
						Value: text,
					})
				}
			}
			if len(items) == 0 {
				return fmt.Errorf("%s has no entries", configFile(file))
			}

			result, err := ui.Browse(items)
			if err != nil {
				return err
			}
			if result.Cancelled {
				return nil
			}

			printer.Println(result.Item.Value)
			return copyToClipboard(ctx, copyValue, result.Item.Value)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Config file to browse")
	cmd.Flags().BoolVar(&copyValue, "copy", false, "Also copy the selected value to the system clipboard")

	return cmd
}
