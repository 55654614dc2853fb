package output

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/docsweep/docsweep/internal/repair"
)

func TestPrinter(t *testing.T) {
	t.Parallel()

	t.Run("printf and println", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := New(&buf)
		p.Printf("repaired %d", 3)
		p.Println(" files")
		if got := buf.String(); got != "repaired 3 files\n" {
			t.Errorf("output = %q", got)
		}
	})

	t.Run("context round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		ctx := WithPrinter(context.Background(), &buf)
		FromContext(ctx).Println("hi")
		if buf.String() != "hi\n" {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()

	t.Run("counts outcomes and removals", func(t *testing.T) {
		t.Parallel()
		results := []repair.Result{
			{Path: "a.xml", Outcome: repair.Unchanged},
			{Path: "b.xml", Outcome: repair.Rewritten, DuplicateMembers: 2, DuplicateContent: 1},
			{Path: "c.xml", Outcome: repair.Rewritten, OrphanedMembers: 3},
			{Path: "d.xml", Outcome: repair.Deleted},
		}
		s := RenderSummary(results)
		for _, want := range []string{"OUTCOME", "unchanged", "rewritten", "deleted",
			"2 duplicate members", "1 duplicate content", "3 orphaned members", "4 files processed"} {
			if !strings.Contains(s, want) {
				t.Errorf("summary missing %q:\n%s", want, s)
			}
		}
	})

	t.Run("lists failed files with causes", func(t *testing.T) {
		t.Parallel()
		results := []repair.Result{
			{Path: "bad.xml", Outcome: repair.Failed, Err: errors.New("unexpected EOF")},
		}
		s := RenderSummary(results)
		if !strings.Contains(s, "bad.xml") || !strings.Contains(s, "unexpected EOF") {
			t.Errorf("summary missing failure detail:\n%s", s)
		}
		if !strings.Contains(s, "1 files failed") {
			t.Errorf("summary missing failure count:\n%s", s)
		}
	})
}
