package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/output"
)

func newSectionsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:     "sections",
		Short:   "List section headers",
		GroupID: GroupQuery,
		Args:    cobra.NoArgs,
		Long: `List the distinct section headers of a config file with their entry
counts. Sections repeated in the file are reported once, with the number
of repetitions.`,
		Example: `  gitcfg sections
  gitcfg sections -f ~/.gitconfig`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.FromContext(ctx)
			renderer := newRenderer()

			doc, err := loadDocument(ctx, configFile(file))
			if err != nil {
				return err
			}

			type group struct {
				name, subsection    string
				entries, repetition int
			}
			var order []string
			groups := map[string]*group{}
			for _, s := range doc.Sections() {
				// Identity folds the name but keeps the subsection exact,
				// same as lookup.
				id := strings.ToLower(s.Name) + "\x00" + s.Subsection
				g, ok := groups[id]
				if !ok {
					g = &group{name: s.Name, subsection: s.Subsection}
					groups[id] = g
					order = append(order, id)
				}
				g.entries += len(s.Entries)
				g.repetition++
			}
			for _, id := range order {
				g := groups[id]
				printer.Println(renderer.SectionHeader(g.name, g.subsection, g.entries, g.repetition))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Config file to inspect")

	return cmd
}
