package main

import (
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var opts repairOptions

	cmd := &cobra.Command{
		Use:   "check <root>",
		Short: "Report what repair would change, without touching disk",
		Args:  cobra.ExactArgs(1),
		Long: `Run the full repair pipeline in dry-run mode: every file is parsed
and repaired in memory, outcomes are reported, and nothing is written
or deleted.`,
		Example: `  docsweep check ./xml
  docsweep check ./xml --log-level debug  # show every would-be removal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.dryRun = true
			return runRepair(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel file units (0 = one per CPU)")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "Duplicate-member survivor policy (keep-first, keep-richest)")
	cmd.Flags().StringVar(&opts.indexDir, "index", "", "Name of the index subtree under the root (default FrameworksIndex)")

	return cmd
}
