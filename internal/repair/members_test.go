package repair

import (
	"context"
	"testing"

	"github.com/docsweep/docsweep/internal/ecma"
	"github.com/docsweep/docsweep/internal/frameworks"
)

func parseDoc(t *testing.T, src string) *ecma.Document {
	t.Helper()
	d, err := ecma.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return d
}

func testRepairer(opts Options, ids ...string) *Repairer {
	return New(frameworks.NewSet(ids...), opts)
}

// TestDedupeMembers verifies duplicate-member collapse by stable identifier.
//
// Scenario: a file has two Member elements both carrying DocId M:Foo.Bar
// Expected: exactly one Member with that identifier remains and the
// removal count is nonzero
func TestDedupeMembers(t *testing.T) {
	t.Parallel()

	d := parseDoc(t, `<Type>
  <Members>
    <Member MemberName="Bar">
      <MemberSignature Language="DocId" Value="M:Foo.Bar" />
      <Docs><summary>first</summary></Docs>
    </Member>
    <Member MemberName="Bar">
      <MemberSignature Language="DocId" Value="M:Foo.Bar" />
      <Docs><summary>second</summary></Docs>
    </Member>
  </Members>
</Type>`)
	r := testRepairer(Options{})

	removed := r.dedupeMembers(context.Background(), d)

	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	members := d.MemberList()
	if len(members) != 1 {
		t.Fatalf("%d members remain, want 1", len(members))
	}
	if id, _ := ecma.MemberDocID(members[0]); id != "M:Foo.Bar" {
		t.Errorf("surviving member DocId = %q", id)
	}
}

// TestDedupeMembersKeepFirst verifies the default survivor.
//
// Scenario: three duplicates with distinguishable docs text
// Expected: the first in document order survives
func TestDedupeMembersKeepFirst(t *testing.T) {
	t.Parallel()

	d := parseDoc(t, `<Type>
  <Members>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>one</summary></Docs></Member>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>two</summary></Docs></Member>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>three</summary></Docs></Member>
  </Members>
</Type>`)
	r := testRepairer(Options{Policy: KeepFirst})

	if removed := r.dedupeMembers(context.Background(), d); removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	members := d.MemberList()
	if len(members) != 1 {
		t.Fatalf("%d members remain, want 1", len(members))
	}
	docs := members[0].SelectElement("Docs").SelectElement("summary")
	if docs.Text() != "one" {
		t.Errorf("survivor summary = %q, want the first in document order", docs.Text())
	}
}

// TestDedupeMembersKeepRichest verifies the alternative policy.
//
// Scenario: the second duplicate carries more documentation text
// Expected: the richer member survives
func TestDedupeMembersKeepRichest(t *testing.T) {
	t.Parallel()

	d := parseDoc(t, `<Type>
  <Members>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>To be added.</summary></Docs></Member>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /><Docs><summary>Returns the fully resolved path of the entry.</summary></Docs></Member>
  </Members>
</Type>`)
	r := testRepairer(Options{Policy: KeepRichest})

	r.dedupeMembers(context.Background(), d)

	members := d.MemberList()
	if len(members) != 1 {
		t.Fatalf("%d members remain, want 1", len(members))
	}
	summary := members[0].SelectElement("Docs").SelectElement("summary").Text()
	if summary != "Returns the fully resolved path of the entry." {
		t.Errorf("survivor summary = %q, want the richer member", summary)
	}
}

func TestDedupeMembersNoIDNeverMerged(t *testing.T) {
	t.Parallel()

	d := parseDoc(t, `<Type>
  <Members>
    <Member MemberName="a" />
    <Member MemberName="b" />
    <Member MemberName="c"><MemberSignature Language="C#" Value="void c()" /></Member>
  </Members>
</Type>`)
	r := testRepairer(Options{})

	if removed := r.dedupeMembers(context.Background(), d); removed != 0 {
		t.Errorf("removed = %d, want 0: members without a DocId form distinct groups", removed)
	}
	if got := len(d.MemberList()); got != 3 {
		t.Errorf("%d members remain, want 3", got)
	}
}

func TestDedupeMembersDistinctIDsUntouched(t *testing.T) {
	t.Parallel()

	d := parseDoc(t, `<Type>
  <Members>
    <Member><MemberSignature Language="DocId" Value="M:A.B" /></Member>
    <Member><MemberSignature Language="DocId" Value="M:A.C" /></Member>
  </Members>
</Type>`)
	r := testRepairer(Options{})

	if removed := r.dedupeMembers(context.Background(), d); removed != 0 {
		t.Errorf("removed = %d, want 0", removed)
	}
}
