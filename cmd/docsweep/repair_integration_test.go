package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docsweep/docsweep/internal/config"
	"github.com/docsweep/docsweep/internal/log"
	"github.com/docsweep/docsweep/internal/output"
)

// buildCorpus lays out a corpus root with a framework index and three
// per-type files: one clean, one with a duplicate member, one whose type
// is unknown to the index.
func buildCorpus(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("FrameworksIndex/net-8.0.xml", `<Framework Name="net-8.0">
  <Namespace Name="Foo">
    <Type Id="T:Foo.Clean" Name="Foo.Clean">
      <Member Id="M:Foo.Clean.Go" />
    </Type>
    <Type Id="T:Foo.Dup" Name="Foo.Dup">
      <Member Id="M:Foo.Dup.Run" />
    </Type>
  </Namespace>
</Framework>`)

	write("Foo/Foo.Clean.xml", `<Type Name="Clean">
  <TypeSignature Language="DocId" Value="T:Foo.Clean" />
  <Members>
    <Member MemberName="Go">
      <MemberSignature Language="DocId" Value="M:Foo.Clean.Go" />
      <Docs><summary>fine</summary></Docs>
    </Member>
  </Members>
</Type>
`)

	write("Foo/Foo.Dup.xml", `<Type Name="Dup">
  <TypeSignature Language="DocId" Value="T:Foo.Dup" />
  <Members>
    <Member MemberName="Run">
      <MemberSignature Language="DocId" Value="M:Foo.Dup.Run" />
    </Member>
    <Member MemberName="Run">
      <MemberSignature Language="DocId" Value="M:Foo.Dup.Run" />
    </Member>
  </Members>
</Type>
`)

	write("Foo/Foo.Gone.xml", `<Type Name="Gone">
  <TypeSignature Language="DocId" Value="T:Foo.Gone" />
</Type>
`)

	return root
}

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&bytes.Buffer{}, "info", false))
	ctx = output.WithPrinter(ctx, &stdout)
	return ctx, &stdout
}

// TestRunRepair verifies a full corpus run end to end.
//
// Scenario: a corpus with a clean file, a duplicate-member file, and an
// unknown type
// Expected: clean untouched, duplicate collapsed and rewritten, unknown
// type deleted, summary printed
func TestRunRepair(t *testing.T) {
	root := buildCorpus(t)
	ctx, stdout := testContext(t)
	defer setTestConfig(t)()

	if err := runRepair(ctx, root, repairOptions{}); err != nil {
		t.Fatalf("runRepair: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "Foo", "Foo.Gone.xml")); !os.IsNotExist(err) {
		t.Error("unknown type file was not deleted")
	}

	dup, err := os.ReadFile(filepath.Join(root, "Foo", "Foo.Dup.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(dup), `Value="M:Foo.Dup.Run"`); got != 1 {
		t.Errorf("duplicate member not collapsed, %d declarations remain", got)
	}

	summary := stdout.String()
	for _, want := range []string{"rewritten", "deleted", "3 files processed"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestRunRepairDryRun(t *testing.T) {
	root := buildCorpus(t)
	ctx, _ := testContext(t)
	defer setTestConfig(t)()

	if err := runRepair(ctx, root, repairOptions{dryRun: true}); err != nil {
		t.Fatalf("runRepair: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "Foo", "Foo.Gone.xml")); err != nil {
		t.Error("dry run deleted a file")
	}
	dup, err := os.ReadFile(filepath.Join(root, "Foo", "Foo.Dup.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(dup), `Value="M:Foo.Dup.Run"`); got != 2 {
		t.Error("dry run rewrote a file")
	}
}

// TestRunRepairFailedFiles verifies the strengthened exit behavior.
//
// Scenario: the corpus contains an unparseable file
// Expected: runRepair returns an error naming the failure count and the
// bad file stays on disk unmodified
func TestRunRepairFailedFiles(t *testing.T) {
	root := buildCorpus(t)
	broken := filepath.Join(root, "Foo", "Foo.Broken.xml")
	if err := os.WriteFile(broken, []byte("<Type><Members></Type>"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, _ := testContext(t)
	defer setTestConfig(t)()

	err := runRepair(ctx, root, repairOptions{})
	if err == nil {
		t.Fatal("runRepair did not surface the failed file")
	}
	if !strings.Contains(err.Error(), "1 of 4 files failed") {
		t.Errorf("error = %v", err)
	}
	if _, statErr := os.Stat(broken); statErr != nil {
		t.Error("failed file is gone")
	}
}

func TestRunRepairMissingRoot(t *testing.T) {
	ctx, _ := testContext(t)
	defer setTestConfig(t)()

	if err := runRepair(ctx, filepath.Join(t.TempDir(), "absent"), repairOptions{}); err == nil {
		t.Error("missing root did not fail")
	}
}

func TestRunRepairMalformedIndex(t *testing.T) {
	root := buildCorpus(t)
	bad := filepath.Join(root, "FrameworksIndex", "bad.xml")
	if err := os.WriteFile(bad, []byte("<Framework><Type Id=\"T:X\"></Framework>"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, _ := testContext(t)
	defer setTestConfig(t)()

	if err := runRepair(ctx, root, repairOptions{}); err == nil {
		t.Error("malformed index did not abort the run")
	}
	// Fail-fast means nothing in the corpus was touched.
	if _, err := os.Stat(filepath.Join(root, "Foo", "Foo.Gone.xml")); err != nil {
		t.Error("a corpus file was modified despite the aborted run")
	}
}

func TestRunRepairUnknownPolicy(t *testing.T) {
	root := buildCorpus(t)
	ctx, _ := testContext(t)
	defer setTestConfig(t)()

	if err := runRepair(ctx, root, repairOptions{policy: "keep-newest"}); err == nil {
		t.Error("unknown policy did not fail")
	}
}

// setTestConfig points the package-level config at defaults and returns a
// restore func. Integration tests share the cfg global, so they do not
// run in parallel.
func setTestConfig(t *testing.T) func() {
	t.Helper()
	old := cfg
	defaults := config.Default()
	cfg = &defaults
	return func() { cfg = old }
}
