package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/output"
)

func newListCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List all entries",
		Aliases: []string{"ls"},
		GroupID: GroupQuery,
		Args:    cobra.NoArgs,
		Long: `List every entry of a config file in declaration order.

Repeated sections are listed as often as they appear. Bare keys (implicitly
true) are listed without "=value".`,
		Example: `  gitcfg list                    # Entries of .git/config
  gitcfg list -f ~/.gitconfig    # Entries of another file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.FromContext(ctx)
			renderer := newRenderer()

			doc, err := loadDocument(ctx, configFile(file))
			if err != nil {
				return err
			}

			for _, s := range doc.Sections() {
				for _, e := range s.Entries {
					if e.Implicit() {
						printer.Println(renderer.Key(s.Name, s.Subsection, e.Key))
						continue
					}
					text, err := entryText(e)
					if err != nil {
						return err
					}
					printer.Println(renderer.Entry(s.Name, s.Subsection, e.Key, text))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Config file to list")

	return cmd
}
