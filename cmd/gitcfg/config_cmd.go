package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/config"
	"github.com/raphi011/gitcfg/internal/log"
	"github.com/raphi011/gitcfg/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage gitcfg configuration",
		GroupID: GroupConfig,
		Long: `Manage the gitcfg configuration file.

The file lives at ~/.config/gitcfg/config.toml unless GITCFG_CONFIG
points elsewhere.`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

// defaultConfigTOML is the template written by "config init".
const defaultConfigTOML = `# gitcfg configuration

# File queried when --file is not given.
default_file = ".git/config"

# Color output: "auto", "always" or "never".
color = "auto"

# Extra tokens accepted by --type bool, on top of the built-in
# true/yes/on/1 and false/no/off/0.
[boolean]
# true = ["enabled"]
# false = ["disabled"]
`

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		Example: `  gitcfg config init
  gitcfg config init --stdout > custom.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if stdout {
				output.FromContext(ctx).Print(defaultConfigTOML)
				return nil
			}

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o644); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}
			log.FromContext(ctx).Printf("Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print the default config instead of writing it")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := output.FromContext(cmd.Context())

			path, err := config.Path()
			if err == nil {
				if _, statErr := os.Stat(path); statErr == nil {
					printer.Printf("# %s\n", path)
				} else {
					printer.Printf("# %s (not present, showing defaults)\n", path)
				}
			}

			printer.Printf("default_file = %q\n", cfg.DefaultFile)
			printer.Printf("color = %q\n", cfg.Color)
			if len(cfg.Boolean.True) > 0 || len(cfg.Boolean.False) > 0 {
				printer.Println("")
				printer.Println("[boolean]")
				if len(cfg.Boolean.True) > 0 {
					printer.Printf("true = %q\n", cfg.Boolean.True)
				}
				if len(cfg.Boolean.False) > 0 {
					printer.Printf("false = %q\n", cfg.Boolean.False)
				}
			}
			return nil
		},
	}

	return cmd
}
