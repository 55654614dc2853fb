package main

import (
	"github.com/spf13/cobra"
)

func newRepairCmd() *cobra.Command {
	var opts repairOptions

	cmd := &cobra.Command{
		Use:   "repair <root>",
		Short: "Repair a documentation corpus in place",
		Args:  cobra.ExactArgs(1),
		Long: `Repair every documentation file under <root> against the framework
index found in the <root>/FrameworksIndex subtree.

Files whose type identifier is unknown to the index are deleted. Files
with duplicate members, duplicate documentation content, or orphaned
members are rewritten in place. Everything else is left untouched.

Exits nonzero if any file failed to process; failed files are always
left unmodified on disk.`,
		Example: `  docsweep repair ./xml                   # repair the corpus under ./xml
  docsweep repair ./xml --dry-run         # report changes without writing
  docsweep repair ./xml --workers 4       # cap parallel file units
  docsweep repair ./xml --policy keep-richest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report outcomes without writing or deleting")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Parallel file units (0 = one per CPU)")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "Duplicate-member survivor policy (keep-first, keep-richest)")
	cmd.Flags().StringVar(&opts.indexDir, "index", "", "Name of the index subtree under the root (default FrameworksIndex)")

	return cmd
}
