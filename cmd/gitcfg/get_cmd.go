package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/document"
	"github.com/raphi011/gitcfg/internal/log"
	"github.com/raphi011/gitcfg/internal/output"
	"github.com/raphi011/gitcfg/internal/value"
)

func newGetCmd() *cobra.Command {
	var (
		file      string
		valueType string
		all       bool
		defValue  string
		copyValue bool
		homeDir   string
	)

	cmd := &cobra.Command{
		Use:     "get <section>[.<subsection>].<key>",
		Short:   "Resolve a config value",
		GroupID: GroupQuery,
		Args:    cobra.ExactArgs(1),
		Long: `Resolve a value from a git config file.

Lookup follows git semantics: section and key names are case-insensitive,
the subsection matches exactly, and when a section is repeated the most
recent declaration wins while older repetitions still answer for keys the
newer ones omit.

With --type the value is decoded instead of returned verbatim:
  bool    true/false (bare keys count as true)
  int     scaled by a trailing k, m or g suffix
  color   validated; a styled sample is shown when color is on
  path    verbatim; --home interpolates a leading ~ or ~user`,
		Example: `  gitcfg get core.bare                      # Raw value
  gitcfg get --type bool core.bare          # Decoded boolean
  gitcfg get remote.origin.url              # Subsection lookup
  gitcfg get --all core.ignores             # Every value, oldest first
  gitcfg get --default master init.defaultbranch
  gitcfg get --type path --home /home/me core.excludesfile
  gitcfg get --copy remote.origin.url       # Also copy to clipboard`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printer := output.FromContext(ctx)

			t, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			doc, err := loadDocument(ctx, configFile(file))
			if err != nil {
				return err
			}

			if all {
				entries := doc.LookupAll(t.Section, t.Subsection, t.Key)
				if len(entries) == 0 {
					return notFound(cmd, doc, t)
				}
				var lines []string
				for _, e := range entries {
					text, err := renderEntry(e, valueType, homeDir)
					if err != nil {
						return err
					}
					lines = append(lines, text)
				}
				for _, line := range lines {
					printer.Println(line)
				}
				return copyToClipboard(ctx, copyValue, lines[len(lines)-1])
			}

			e, ok := doc.Lookup(t.Section, t.Subsection, t.Key)
			if !ok {
				if cmd.Flags().Changed("default") {
					printer.Println(defValue)
					return nil
				}
				return notFound(cmd, doc, t)
			}
			text, err := renderEntry(e, valueType, homeDir)
			if err != nil {
				return err
			}
			printer.Println(text)
			return copyToClipboard(ctx, copyValue, text)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Config file to query (default: default_file from config, else .git/config)")
	cmd.Flags().StringVarP(&valueType, "type", "t", "", "Decode as: string, bool, int, color or path")
	cmd.Flags().BoolVar(&all, "all", false, "Print every matching value in declaration order")
	cmd.Flags().StringVar(&defValue, "default", "", "Value to print when the key is absent")
	cmd.Flags().BoolVar(&copyValue, "copy", false, "Also copy the value to the system clipboard")
	cmd.Flags().StringVar(&homeDir, "home", "", "Base directory for ~ interpolation (path type only)")

	return cmd
}

// renderEntry decodes one entry according to the requested type and
// renders it for output.
func renderEntry(e document.Entry, valueType, homeDir string) (string, error) {
	switch valueType {
	case "", "string":
		return entryText(e)

	case "bool":
		var b value.Boolean
		var err error
		if e.Implicit() {
			b, err = value.DecodeBoolean(nil)
		} else {
			raw, nerr := value.Normalize(e.Raw())
			if nerr != nil {
				return "", nerr
			}
			b, err = value.DecodeBooleanWith(cfg.Vocabulary(), raw.Bytes())
		}
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b.Value), nil

	case "int":
		raw, err := value.Normalize(e.Raw())
		if err != nil {
			return "", err
		}
		i, err := value.DecodeInteger(raw.Bytes())
		if err != nil {
			return "", err
		}
		scaled, ok := i.Scaled()
		if !ok {
			return "", fmt.Errorf("integer %d%s overflows when scaled", i.Value, i.Suffix)
		}
		return strconv.FormatInt(scaled, 10), nil

	case "color":
		raw, err := value.Normalize(e.Raw())
		if err != nil {
			return "", err
		}
		c, err := value.DecodeColor(raw.Bytes())
		if err != nil {
			return "", err
		}
		return newRenderer().Swatch(c, raw.String()), nil

	case "path":
		raw, err := value.Normalize(e.Raw())
		if err != nil {
			return "", err
		}
		p := value.PathFrom(raw)
		if homeDir == "" {
			return p.String(), nil
		}
		return p.Interpolate(value.InterpolateContext{HomeDir: homeDir})

	default:
		return "", fmt.Errorf("unknown type %q: must be string, bool, int, color or path", valueType)
	}
}

// notFound reports an absent key, with fuzzy suggestions when the file
// holds similar names.
func notFound(cmd *cobra.Command, doc *document.Document, t target) error {
	logger := log.FromContext(cmd.Context())
	if suggestions := suggestTargets(doc, t.String(), 3); len(suggestions) > 0 {
		logger.Println("Did you mean:")
		for _, s := range suggestions {
			logger.Printf("  %s\n", s)
		}
	}
	return fmt.Errorf("%s: %w", t, document.ErrNotFound)
}

// copyToClipboard copies text when requested. Clipboard failures are
// reported but do not fail the query; the value was already printed.
func copyToClipboard(ctx context.Context, enabled bool, text string) error {
	if !enabled {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.FromContext(ctx).Printf("copy to clipboard failed: %v\n", err)
	}
	return nil
}
