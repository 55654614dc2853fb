package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docsweep/docsweep/internal/config"
	"github.com/docsweep/docsweep/internal/discovery"
	"github.com/docsweep/docsweep/internal/frameworks"
	"github.com/docsweep/docsweep/internal/log"
	"github.com/docsweep/docsweep/internal/output"
	"github.com/docsweep/docsweep/internal/repair"
)

// repairOptions carries flag values into the run; empty/zero values fall
// back to config.
type repairOptions struct {
	dryRun   bool
	workers  int
	policy   string
	indexDir string
}

func runRepair(ctx context.Context, root string, opts repairOptions) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if opts.workers == 0 {
		opts.workers = cfg.Workers
	}
	if opts.policy == "" {
		opts.policy = cfg.Policy
	}
	if opts.indexDir == "" {
		opts.indexDir = cfg.IndexDir
	}
	if opts.indexDir == "" {
		opts.indexDir = config.DefaultIndexDir
	}

	policy, err := repair.PolicyByName(opts.policy)
	if err != nil {
		return err
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("corpus root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus root %s is not a directory", root)
	}

	// The identifier universe must be complete before any file is touched.
	set, err := frameworks.Build(filepath.Join(root, opts.indexDir))
	if err != nil {
		return err
	}
	l.Info().Int("identifiers", set.Len()).Str("index", opts.indexDir).Msg("framework index loaded")

	files, err := discovery.Candidates(root, opts.indexDir)
	if err != nil {
		return err
	}
	l.Info().Int("files", len(files)).Bool("dry_run", opts.dryRun).Msg("repairing corpus")

	r := repair.New(set, repair.Options{
		Policy:     policy,
		UnaryKinds: cfg.Content.Unary,
		DryRun:     opts.dryRun,
	})
	results := r.Run(ctx, files, opts.workers)

	for _, res := range results {
		if res.Outcome == repair.Failed {
			l.Error().Str("file", res.Path).Err(res.Err).Msg("file left unmodified")
		}
	}
	out.Printf("%s", output.RenderSummary(results))

	failed := 0
	for _, res := range results {
		if res.Outcome == repair.Failed {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}
