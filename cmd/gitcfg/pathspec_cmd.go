package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/output"
	"github.com/raphi011/gitcfg/internal/pathspec"
)

func newPathspecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pathspec <spec>...",
		Short:   "Explain pathspec patterns",
		GroupID: GroupUtility,
		Args:    cobra.MinimumNArgs(1),
		Long: `Parse pathspec patterns and show their components: the path, the magic
signature, the search mode and any attribute requirements.

Both short form (":/!^:") and long form (":(top,exclude,attr:a -b)path")
magic are understood.`,
		Example: `  gitcfg pathspec ':/src/*.go'
  gitcfg pathspec ':(icase,literal)README'
  gitcfg pathspec ':(attr:export-ignore)dist' ':!vendor'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.FromContext(cmd.Context())
			renderer := newRenderer()

			var failed bool
			for i, arg := range args {
				if i > 0 {
					printer.Println("")
				}
				p, err := pathspec.Parse([]byte(arg))
				if err != nil {
					printer.Printf("%s: %v\n", arg, err)
					failed = true
					continue
				}
				printer.Println(renderer.Muted(arg))
				printer.Printf("  path:  %s\n", p.Path)
				if sig := p.Signature.String(); sig != "" {
					printer.Printf("  magic: %s\n", sig)
				}
				printer.Printf("  mode:  %s\n", p.Mode)
				if len(p.Attributes) > 0 {
					attrs := make([]string, 0, len(p.Attributes))
					for _, a := range p.Attributes {
						attrs = append(attrs, a.String())
					}
					printer.Printf("  attrs: %s\n", strings.Join(attrs, " "))
				}
			}
			if failed {
				return fmt.Errorf("some pathspecs did not parse")
			}
			return nil
		},
	}

	return cmd
}
