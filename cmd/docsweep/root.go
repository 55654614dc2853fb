package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/docsweep/docsweep/internal/config"
	"github.com/docsweep/docsweep/internal/log"
	"github.com/docsweep/docsweep/internal/output"
)

var (
	// Global flags
	quiet    bool
	logLevel string

	// Shared state injected into commands
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsweep",
	Short: "Repair ECMA XML documentation corpora",
	Long: `docsweep repairs a corpus of ECMA XML documentation files against the
authoritative FrameworksIndex.

Per file it collapses duplicate members by stable identifier (DocId),
collapses duplicate documentation-body elements, and prunes identifiers
the framework index no longer knows - up to deleting files whose type
is gone entirely.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Flags are parsed by now; build the logger from their values.
		logger := log.New(os.Stderr, logLevel, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Primary data goes to stdout, downsampled to the terminal's color profile
	ctx = output.WithPrinter(ctx, colorprofile.NewWriter(os.Stdout, os.Environ()))

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log verbosity (debug, info, warn, error)")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newRepairCmd())
	rootCmd.AddCommand(newCheckCmd())
}
