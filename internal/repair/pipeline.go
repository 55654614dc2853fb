package repair

import (
	"context"
	"fmt"
	"os"

	"github.com/docsweep/docsweep/internal/ecma"
	"github.com/docsweep/docsweep/internal/frameworks"
	"github.com/docsweep/docsweep/internal/log"
)

// Outcome is the explicit per-file result of a repair.
type Outcome int

const (
	// Unchanged means the file already satisfied every invariant.
	Unchanged Outcome = iota
	// Rewritten means the tree was mutated and written back.
	Rewritten
	// Deleted means the type is unknown and the file was removed.
	Deleted
	// Failed means processing errored and the file was left untouched.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Rewritten:
		return "rewritten"
	case Deleted:
		return "deleted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result describes what happened to one file.
type Result struct {
	Path    string
	Outcome Outcome
	Err     error

	// Removal counts, for the run summary.
	DuplicateMembers int
	DuplicateContent int
	OrphanedMembers  int
}

// Options configures a Repairer.
type Options struct {
	// Policy picks duplicate-member survivors. Defaults to KeepFirst.
	Policy SurvivorPolicy
	// UnaryKinds overrides DefaultUnaryKinds when non-nil.
	UnaryKinds []string
	// DryRun reports outcomes without deleting or rewriting files.
	DryRun bool
}

// Repairer applies the three-stage repair to files. It is safe for
// concurrent use: the identifier set is read-only and every file unit owns
// its document exclusively.
type Repairer struct {
	set    *frameworks.Set
	policy SurvivorPolicy
	unary  map[string]bool
	values []string
	dryRun bool
}

// New creates a Repairer validating against set.
func New(set *frameworks.Set, opts Options) *Repairer {
	policy := opts.Policy
	if policy == nil {
		policy = KeepFirst
	}
	kinds := opts.UnaryKinds
	if kinds == nil {
		kinds = DefaultUnaryKinds
	}
	unary := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		unary[k] = true
	}
	return &Repairer{
		set:    set,
		policy: policy,
		unary:  unary,
		values: set.Values(),
		dryRun: opts.DryRun,
	}
}

// ProcessFile loads, repairs, and resolves one file. All failures are
// absorbed into the result; no error crosses the file boundary.
func (r *Repairer) ProcessFile(ctx context.Context, path string) (res Result) {
	res = Result{Path: path}
	defer func() {
		if v := recover(); v != nil {
			res.Outcome = Failed
			res.Err = fmt.Errorf("panic repairing %s: %v", path, v)
		}
	}()

	d, err := ecma.Load(path)
	if err != nil {
		res.Outcome = Failed
		res.Err = err
		return res
	}

	res.DuplicateMembers = r.dedupeMembers(ctx, d)
	res.DuplicateContent = r.dedupeContent(ctx, d)
	deleteFile, pruned := r.validate(ctx, d)
	res.OrphanedMembers = pruned

	l := log.FromContext(ctx)
	if deleteFile {
		// Delete and rewrite are mutually exclusive; dirty stages are moot.
		res.Outcome = Deleted
		if r.dryRun {
			return res
		}
		if err := os.Remove(path); err != nil {
			res.Outcome = Failed
			res.Err = fmt.Errorf("delete %s: %w", path, err)
			return res
		}
		l.Info().Str("file", path).Msg("deleted file for unknown type")
		return res
	}

	dirty := res.DuplicateMembers+res.DuplicateContent+res.OrphanedMembers > 0
	if !dirty {
		res.Outcome = Unchanged
		return res
	}

	res.Outcome = Rewritten
	if r.dryRun {
		return res
	}
	if err := d.Save(); err != nil {
		res.Outcome = Failed
		res.Err = err
		// The original file is intact; surface the unwritten content
		// at the same level as the failure so it is never dropped.
		if content, serr := d.Bytes(); serr == nil {
			l.Error().Str("file", path).Bytes("unwritten", content).Msg("rewrite failed, repaired content not persisted")
		}
		return res
	}
	l.Info().
		Str("file", path).
		Int("duplicate_members", res.DuplicateMembers).
		Int("duplicate_content", res.DuplicateContent).
		Int("orphaned_members", res.OrphanedMembers).
		Msg("rewritten")
	return res
}
