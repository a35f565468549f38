package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/gitcfg/internal/config"
	"github.com/raphi011/gitcfg/internal/log"
	"github.com/raphi011/gitcfg/internal/output"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	colorFlag string

	// Shared state injected into commands
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupQuery   = "query"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitcfg",
	Short: "Query git config files with type-aware lookups",
	Long: `gitcfg reads git config files and resolves values the way git does:
section and key names are case-insensitive, subsections match exactly,
repeated sections are logically concatenated, and values decode into
booleans, integers, colors, strings or paths on request.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch colorFlag {
		case "", config.ColorAuto, config.ColorAlways, config.ColorNever:
			return nil
		default:
			return fmt.Errorf("invalid --color %q: must be auto, always or never", colorFlag)
		}
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger on stderr for diagnostics, printer on stdout for data
	var logOut io.Writer = os.Stderr
	if quiet {
		logOut = io.Discard
	}
	ctx = log.WithLogger(ctx, log.New(logOut, verbose))
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show parse and lookup diagnostics")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "Color output: auto, always or never (default from config)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupQuery, Title: "Query Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Query commands
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newBrowseCmd())

	// Utility commands
	rootCmd.AddCommand(newPathspecCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
}
